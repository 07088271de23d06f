// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package address

import (
	"github.com/ecodeclub/eshop/internal/address/internal/repository"
	"github.com/ecodeclub/eshop/internal/address/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/address/internal/service"
	"github.com/ecodeclub/eshop/internal/address/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	addressDAO := InitTablesOnce(db)
	addressRepository := repository.NewAddressRepository(addressDAO)
	v := service.NewService(addressRepository)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.AddressDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewAddressGORMDAO(db)
}
