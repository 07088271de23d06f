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

package product

import (
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/eshop/internal/product/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Product      = domain.Product
	Service      = service.Service

	// InsufficientStockError 库存不足的详细信息, 配合 errors.As 使用
	InsufficientStockError = dao.InsufficientStockError
)

var (
	ErrProductNotFound   = service.ErrProductNotFound
	ErrInsufficientStock = service.ErrInsufficientStock
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
