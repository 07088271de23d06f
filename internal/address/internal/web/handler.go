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
	"github.com/ecodeclub/eshop/internal/address/internal/domain"
	"github.com/ecodeclub/eshop/internal/address/internal/errs"
	"github.com/ecodeclub/eshop/internal/address/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.AddressNotFound.Code,
		Msg:  errs.AddressNotFound.Msg,
	}
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/address")
	g.POST("/list", ginx.S(h.List))
	g.POST("/add", ginx.BS[AddAddressReq](h.Add))
	g.POST("/delete", ginx.BS[DeleteAddressReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	as, err := h.svc.ListByUID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListAddressesResp{
			Addresses: slice.Map(as, func(idx int, src domain.Address) Address {
				return Address{
					ID:         src.ID,
					Alias:      src.Alias,
					Details:    src.Details,
					Phone:      src.Phone,
					City:       src.City,
					State:      src.State,
					Country:    src.Country,
					PostalCode: src.PostalCode,
				}
			}),
		},
	}, nil
}

func (h *Handler) Add(ctx *ginx.Context, req AddAddressReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Add(ctx.Request.Context(), domain.Address{
		UID:        sess.Claims().Uid,
		Alias:      req.Alias,
		Details:    req.Details,
		Phone:      req.Phone,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: AddAddressResp{ID: id}}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteAddressReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if errors.Is(err, service.ErrAddressNotFound) {
		return notFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
