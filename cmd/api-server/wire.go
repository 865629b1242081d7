//go:build wireinject
// +build wireinject

package main

import (
	"SnackShop/config"
	"SnackShop/dao"
	"SnackShop/dao/cache"
	"SnackShop/handler"
	"SnackShop/pkg/client"
	"SnackShop/pkg/database"
	"SnackShop/pkg/server"
	"SnackShop/pkg/upload"
	"SnackShop/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		upload.NewStorage,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Wishlist), "*"),
		wire.Struct(new(handler.Staff), "*"),
		wire.Struct(new(handler.Testimonial), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
