// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*product.Module, error) {
	v := testioc.InitDB()
	cache := testioc.InitTieredCache()
	module, err := product.InitModule(v, cache)
	if err != nil {
		return nil, err
	}
	return module, nil
}
