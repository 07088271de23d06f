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

package ioc

import (
	"github.com/ecodeclub/eshop/internal/checkout/internal/gateway"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/gotomicro/ego/core/econf"
)

type StripeConfig struct {
	APIKey string
	// EndpointSecret 校验 webhook 签名用
	EndpointSecret string
}

func InitStripeConfig() StripeConfig {
	var cfg StripeConfig
	err := econf.UnmarshalKey("stripe", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitPaymentGateway(cfg StripeConfig) gateway.PaymentGateway {
	return gateway.NewStripeGateway(cfg.APIKey, cfg.EndpointSecret)
}

func InitConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("checkout", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
