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

package coupon

import (
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/ecodeclub/eshop/internal/coupon/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Coupon       = domain.Coupon
	Service      = service.Service
)

var (
	ErrCouponInvalid     = service.ErrCouponInvalid
	ErrAlreadyRedeemed   = service.ErrAlreadyRedeemed
	ErrUsageLimitReached = service.ErrUsageLimitReached
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
}
