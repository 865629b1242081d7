//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewCategory,
	NewProduct,
	NewOrder,
	NewReview,
	NewWishlist,
	NewTestimonial,
	NewStats,
)
