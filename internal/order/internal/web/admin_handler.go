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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 后台订单管理: 查询与状态流转
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[AdminListOrdersReq](h.List))
	g.POST("/status", ginx.B[AdminUpdateStatusReq](h.UpdateStatus))
	g.POST("/paid", ginx.B[AdminMarkPaidReq](h.MarkPaid))
	g.POST("/delivered", ginx.B[AdminMarkDeliveredReq](h.MarkDelivered))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListOrdersReq) (ginx.Result, error) {
	os, total, err := h.svc.List(ctx.Request.Context(), domain.OrderStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(os, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req AdminUpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), req.OrderID, domain.OrderStatus(req.Status), req.Reason)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrReasonRequired):
		return reasonRequiredResult, err
	case errors.Is(err, service.ErrPaymentRequired):
		return paymentRequiredResult, err
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) MarkPaid(ctx *ginx.Context, req AdminMarkPaidReq) (ginx.Result, error) {
	err := h.svc.MarkPaid(ctx.Request.Context(), req.OrderID, req.Gateway, req.Currency, req.Method)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrAlreadyPaid):
		return alreadyPaidResult, err
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) MarkDelivered(ctx *ginx.Context, req AdminMarkDeliveredReq) (ginx.Result, error) {
	err := h.svc.MarkDelivered(ctx.Request.Context(), req.OrderID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrAlreadyDelivered):
		return alreadyDeliveredResult, err
	case errors.Is(err, service.ErrPaymentRequired):
		return paymentRequiredResult, err
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
