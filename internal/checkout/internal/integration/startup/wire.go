// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/google/wire"
)

// Modules 结算链路涉及的全部模块, 测试里要用它们造数据和断言
type Modules struct {
	Checkout *checkout.Module
	Product  *product.Module
	Coupon   *coupon.Module
	Cart     *cart.Module
	Order    *order.Module
	Address  *address.Module
}

func InitModules() (*Modules, error) {
	wire.Build(testioc.BaseSet,
		product.InitModule,
		coupon.InitModule,
		cart.InitModule,
		order.InitModule,
		address.InitModule,
		checkout.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
