// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package cart

import (
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, tc *tieredcache.Cache, pm *product.Module, cm *coupon.Module) (*Module, error) {
	cartDAO := InitTablesOnce(db)
	cartCache := cache.NewCartTieredCache(tc)
	cartRepository := repository.NewCartRepository(cartDAO, cartCache)
	v := pm.Svc
	v2 := cm.Svc
	v3 := service.NewService(cartRepository, v, v2)
	v4 := web.NewHandler(v3)
	module := &Module{
		Svc: v3,
		Hdl: v4,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CartDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCartGORMDAO(db)
}
