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
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/coupon"
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
	g := server.Group("/cart")
	g.POST("", ginx.S(h.Retrieve))
	g.POST("/add", ginx.BS[AddProductReq](h.AddProduct))
	g.POST("/update", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[RemoveLineReq](h.RemoveLine))
	g.POST("/clear", ginx.S(h.Clear))
	g.POST("/discount", ginx.BS[ApplyDiscountReq](h.ApplyDiscount))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Retrieve(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Cart(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrCartNotFound) {
		// 没有购物车等价于空购物车
		return ginx.Result{Data: Cart{}}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartVO(c)}, nil
}

func (h *Handler) AddProduct(ctx *ginx.Context, req AddProductReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.AddProduct(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Color, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartVO(c)}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ItemID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartVO(c)}, nil
}

func (h *Handler) RemoveLine(ctx *ginx.Context, req RemoveLineReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.RemoveLine(ctx.Request.Context(), sess.Claims().Uid, req.ItemID)
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartVO(c)}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil && !errors.Is(err, service.ErrCartNotFound) {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ApplyDiscount(ctx *ginx.Context, req ApplyDiscountReq, sess session.Session) (ginx.Result, error) {
	c, _, err := h.svc.ApplyDiscount(ctx.Request.Context(), sess.Claims().Uid, req.Code)
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case errors.Is(err, service.ErrAlreadyDiscounted):
		return alreadyDiscountedResult, err
	case errors.Is(err, coupon.ErrCouponInvalid),
		errors.Is(err, coupon.ErrAlreadyRedeemed),
		errors.Is(err, coupon.ErrUsageLimitReached):
		return couponRejectedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartVO(c)}, nil
}

func toCartVO(c domain.Cart) Cart {
	return Cart{
		ID:                 c.ID,
		TotalPrice:         c.TotalPrice,
		TotalAfterDiscount: c.TotalAfterDiscount,
		CouponID:           c.CouponID,
		PayableAmount:      c.PayableAmount(),
		Items: slice.Map(c.Items, func(idx int, src domain.CartItem) CartItem {
			return CartItem{
				ID:        src.ID,
				ProductID: src.ProductID,
				Color:     src.Color,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
	}
}
