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

package checkout

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout/internal/event"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/eshop/internal/checkout/internal/web"
	"github.com/ecodeclub/eshop/internal/checkout/ioc"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/mqx"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ, ec ecache.Cache, tc *tieredcache.Cache,
	cartM *cart.Module, productM *product.Module,
	orderM *order.Module, addressM *address.Module) (*Module, error) {
	wire.Build(
		ioc.InitStripeConfig,
		ioc.InitPaymentGateway,
		ioc.InitConfig,
		newOrderFinalizedProducer,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*address.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		web.NewWebhookHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func newOrderFinalizedProducer(q mq.MQ) (mqx.Producer[event.OrderFinalizedEvent], error) {
	return mqx.NewGeneralProducer[event.OrderFinalizedEvent](q, event.OrderEventName)
}
