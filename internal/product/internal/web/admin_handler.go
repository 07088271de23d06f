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
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 商品后台, 挂在管理端服务上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	p := domain.Product{
		ID:          req.Product.ID,
		SN:          req.Product.SN,
		Name:        req.Product.Name,
		Description: req.Product.Description,
		Price:       req.Product.Price,
		Quantity:    req.Product.Quantity,
		Colors:      req.Product.Colors,
	}
	if p.ID == 0 {
		id, err := h.svc.Create(ctx.Request.Context(), p)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{Data: SaveProductResp{ID: id}}, nil
	}
	if err := h.svc.Update(ctx.Request.Context(), p); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveProductResp{ID: p.ID}}, nil
}
