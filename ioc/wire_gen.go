// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	cache := InitTieredCache()
	module, err := product.InitModule(v, cache)
	if err != nil {
		return nil, err
	}
	v2 := module.Hdl
	couponModule, err := coupon.InitModule(v)
	if err != nil {
		return nil, err
	}
	cartModule, err := cart.InitModule(v, cache, module, couponModule)
	if err != nil {
		return nil, err
	}
	v3 := cartModule.Hdl
	orderModule, err := order.InitModule(v, cache)
	if err != nil {
		return nil, err
	}
	v4 := orderModule.Hdl
	addressModule, err := address.InitModule(v)
	if err != nil {
		return nil, err
	}
	v5 := addressModule.Hdl
	mq := InitMQ()
	ecacheCache := InitCache(cmdable)
	checkoutModule, err := checkout.InitModule(mq, ecacheCache, cache, cartModule, module, orderModule, addressModule)
	if err != nil {
		return nil, err
	}
	v6 := checkoutModule.Hdl
	v7 := checkoutModule.WebhookHdl
	component := initGinxServer(provider, v2, v3, v4, v5, v6, v7)
	v8 := module.AdminHdl
	v9 := couponModule.AdminHdl
	v10 := orderModule.AdminHdl
	adminServer := InitAdminServer(v8, v9, v10)
	app := &App{
		Web:   component,
		Admin: adminServer,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitTieredCache, InitMQ)
