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
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.ListByUID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
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

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.FindBySNAndUID(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toOrderVO(o)}, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.FindBySNAndUID(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.Cancel(ctx.Request.Context(), o.ID, req.Reason)
	switch {
	case errors.Is(err, service.ErrReasonRequired):
		return reasonRequiredResult, err
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(o domain.Order) Order {
	return Order{
		ID: o.ID,
		SN: o.SN,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Color:     src.Color,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		ShippingInfo: ShippingInfo{
			Address:    o.ShippingInfo.Address,
			City:       o.ShippingInfo.City,
			State:      o.ShippingInfo.State,
			Phone:      o.ShippingInfo.Phone,
			Country:    o.ShippingInfo.Country,
			PostalCode: o.ShippingInfo.PostalCode,
		},
		PaymentInfo: PaymentInfo{
			Status:   o.PaymentInfo.Status,
			Gateway:  o.PaymentInfo.Gateway,
			Currency: o.PaymentInfo.Currency,
			Method:   o.PaymentInfo.Method,
		},
		TotalPrice:         o.TotalPrice,
		TaxPrice:           o.TaxPrice,
		ShippingPrice:      o.ShippingPrice,
		Status:             o.Status.ToUint8(),
		IsPaid:             o.IsPaid,
		PaidAt:             o.PaidAt,
		IsDelivered:        o.IsDelivered,
		DeliveredAt:        o.DeliveredAt,
		CancellationReason: o.CancellationReason,
		Ctime:              o.Ctime,
	}
}
