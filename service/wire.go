package service

import (
	"SnackShop/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	wire.Struct(new(WishlistService), "*"),
	wire.Bind(new(IWishlistService), new(*WishlistService)),

	wire.Struct(new(StaffService), "*"),
	wire.Bind(new(IStaffService), new(*StaffService)),

	wire.Struct(new(TestimonialService), "*"),
	wire.Bind(new(ITestimonialService), new(*TestimonialService)),

	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(OrderStore), new(*dao.Order)),
	wire.Bind(new(InventoryStore), new(*dao.Product)),
	wire.Bind(new(ReviewStore), new(*dao.Review)),
	wire.Bind(new(RatedCatalog), new(*dao.Product)),
	wire.Bind(new(PurchaseChecker), new(*dao.Order)),
)
