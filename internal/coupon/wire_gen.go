// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package coupon

import (
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/ecodeclub/eshop/internal/coupon/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	couponDAO := InitTablesOnce(db)
	couponRepository := repository.NewCouponRepository(couponDAO)
	v := service.NewService(couponRepository)
	v2 := web.NewAdminHandler(v)
	module := &Module{
		Svc:      v,
		AdminHdl: v2,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CouponDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCouponGORMDAO(db)
}
