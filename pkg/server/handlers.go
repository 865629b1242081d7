package server

import (
	"SnackShop/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	Product     *handler.Product
	Category    *handler.Category
	Order       *handler.Order
	Review      *handler.Review
	Wishlist    *handler.Wishlist
	Staff       *handler.Staff
	Testimonial *handler.Testimonial
}
