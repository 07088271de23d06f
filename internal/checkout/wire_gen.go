// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
)

// Injectors from wire.go:

func InitModule(q mq.MQ, ec ecache.Cache, tc *tieredcache.Cache, cartM *cart.Module, productM *product.Module, orderM *order.Module, addressM *address.Module) (*Module, error) {
	v := cartM.Svc
	v2 := productM.Svc
	v3 := orderM.Svc
	v4 := addressM.Svc
	stripeConfig := ioc.InitStripeConfig()
	paymentGateway := ioc.InitPaymentGateway(stripeConfig)
	producer, err := newOrderFinalizedProducer(q)
	if err != nil {
		return nil, err
	}
	config := ioc.InitConfig()
	v5 := service.NewService(v, v2, v3, v4, paymentGateway, producer, tc, config)
	v6 := web.NewHandler(v5, ec)
	v7 := web.NewWebhookHandler(v5)
	module := &Module{
		Svc:        v5,
		Hdl:        v6,
		WebhookHdl: v7,
	}
	return module, nil
}

// wire.go:

func newOrderFinalizedProducer(q mq.MQ) (mqx.Producer[event.OrderFinalizedEvent], error) {
	return mqx.NewGeneralProducer[event.OrderFinalizedEvent](q, event.OrderEventName)
}
