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
	"io"
	"net/http"

	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &WebhookHandler{}

// WebhookHandler 支付渠道回调入口。签名校验需要原始请求体,
// 所以不走 ginx 的绑定包装
type WebhookHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewWebhookHandler(svc service.Service) *WebhookHandler {
	return &WebhookHandler{svc: svc, logger: elog.DefaultLogger}
}

func (h *WebhookHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *WebhookHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/checkout/webhook", h.HandleWebhook)
}

func (h *WebhookHandler) HandleWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		h.logger.Error("读取回调请求体失败", elog.FieldErr(err))
		ctx.Status(http.StatusBadRequest)
		return
	}
	err = h.svc.HandleWebhook(ctx.Request.Context(), payload, ctx.GetHeader("Stripe-Signature"))
	if errors.Is(err, service.ErrInvalidSignature) {
		ctx.Status(http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("处理回调失败", elog.FieldErr(err))
	}
	ctx.Status(http.StatusOK)
}
