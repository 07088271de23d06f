//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitTieredCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		coupon.InitModule,
		wire.FieldsOf(new(*coupon.Module), "AdminHdl"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		address.InitModule,
		wire.FieldsOf(new(*address.Module), "Hdl"),
		checkout.InitModule,
		wire.FieldsOf(new(*checkout.Module), "Hdl", "WebhookHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
