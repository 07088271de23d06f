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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/errs"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// AdminHandler 优惠券后台管理, 发券与查询
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/create", ginx.B[CreateCouponReq](h.Create))
	g.POST("/list", ginx.B[ListCouponsReq](h.List))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateCouponReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Coupon{
		Code:     req.Code,
		Discount: req.Discount,
		Active:   req.Active,
		ExpireAt: req.ExpireAt,
		MaxUsage: req.MaxUsage,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateCouponResp{ID: id}}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	cs, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Coupons: slice.Map(cs, func(idx int, src domain.Coupon) Coupon {
				return Coupon{
					ID:         src.ID,
					Code:       src.Code,
					Discount:   src.Discount,
					Active:     src.Active,
					ExpireAt:   src.ExpireAt,
					MaxUsage:   src.MaxUsage,
					UsageCount: src.UsageCount,
				}
			}),
		},
	}, nil
}
