// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package product

import (
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/eshop/internal/product/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, tc *tieredcache.Cache) (*Module, error) {
	productDAO := InitTablesOnce(db)
	productCache := cache.NewProductTieredCache(tc)
	productRepository := repository.NewProductRepository(productDAO, productCache)
	v := service.NewService(productRepository)
	v2 := web.NewHandler(v)
	v3 := web.NewAdminHandler(v)
	module := &Module{
		Svc:      v,
		Hdl:      v2,
		AdminHdl: v3,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
