// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/test/ioc"
)

// Injectors from wire.go:

func InitModules() (*Modules, error) {
	mq := testioc.InitMQ()
	cache := testioc.InitCache()
	tieredcacheCache := testioc.InitTieredCache()
	v := testioc.InitDB()
	module, err := product.InitModule(v, tieredcacheCache)
	if err != nil {
		return nil, err
	}
	couponModule, err := coupon.InitModule(v)
	if err != nil {
		return nil, err
	}
	cartModule, err := cart.InitModule(v, tieredcacheCache, module, couponModule)
	if err != nil {
		return nil, err
	}
	orderModule, err := order.InitModule(v, tieredcacheCache)
	if err != nil {
		return nil, err
	}
	addressModule, err := address.InitModule(v)
	if err != nil {
		return nil, err
	}
	checkoutModule, err := checkout.InitModule(mq, cache, tieredcacheCache, cartModule, module, orderModule, addressModule)
	if err != nil {
		return nil, err
	}
	modules := &Modules{
		Checkout: checkoutModule,
		Product:  module,
		Coupon:   couponModule,
		Cart:     cartModule,
		Order:    orderModule,
		Address:  addressModule,
	}
	return modules, nil
}

// wire.go:

// Modules 结算链路涉及的全部模块, 测试里要用它们造数据和断言
type Modules struct {
	Checkout *checkout.Module
	Product  *product.Module
	Coupon   *coupon.Module
	Cart     *cart.Module
	Order    *order.Module
	Address  *address.Module
}
