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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/checkout")
	g.POST("/cash", ginx.BS[CreateCashOrderReq](h.CreateCashOrder))
	g.POST("/session", ginx.BS[CreateCheckoutSessionReq](h.CreateCheckoutSession))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) CreateCashOrder(ctx *ginx.Context, req CreateCashOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, err
	}
	o, err := h.svc.CreateCashOrder(ctx.Request.Context(), sess.Claims().Uid, req.CartID, req.AddressID)
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, err
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateCashOrderResp{
			OrderSN:    o.SN,
			TotalPrice: o.TotalPrice,
			Status:     o.Status.ToUint8(),
		},
	}, nil
}

func (h *Handler) CreateCheckoutSession(ctx *ginx.Context, req CreateCheckoutSessionReq, sess session.Session) (ginx.Result, error) {
	url, err := h.svc.CreateCheckoutSession(ctx.Request.Context(), sess.Claims().Uid, req.CartID, req.SuccessURL, req.CancelURL)
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateCheckoutSessionResp{URL: url}}, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN, req.Reason)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return systemErrorResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("checkout:cash:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}
