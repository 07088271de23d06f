// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*coupon.Module, error) {
	v := testioc.InitDB()
	module, err := coupon.InitModule(v)
	if err != nil {
		return nil, err
	}
	return module, nil
}
