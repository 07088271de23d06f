// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package order

import (
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/eshop/internal/order/internal/web"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, tc *tieredcache.Cache) (*Module, error) {
	orderDAO := InitTablesOnce(db)
	orderCache := cache.NewOrderTieredCache(tc)
	orderRepository := repository.NewOrderRepository(orderDAO, orderCache)
	generator := sequencenumber.NewGenerator()
	v := service.NewService(orderRepository, generator)
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

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
