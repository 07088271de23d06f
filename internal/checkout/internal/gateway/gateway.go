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

package gateway

import (
	"context"
	"errors"
)

var ErrInvalidSignature = errors.New("回调签名校验失败")

// PaymentGateway 抽象在线支付渠道, 方便在测试里替换掉 Stripe
type PaymentGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
	// ParseWebhook 校验签名并解析回调。签名不合法返回 ErrInvalidSignature,
	// 其余任何解析问题都不能放过签名校验这一步
	ParseWebhook(payload []byte, sigHeader string) (WebhookEvent, error)
}

type SessionRequest struct {
	UID    int64
	CartID int64
	// Amount 结算总额, 单位为分
	Amount      int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
}

type Session struct {
	ID  string
	URL string
}

const EventCheckoutCompleted = "checkout.session.completed"

type WebhookEvent struct {
	Type string
	// Session 仅当 Type 为 EventCheckoutCompleted 时有效
	Session CheckoutSession
}

const (
	PaymentStatusPaid              = "paid"
	PaymentStatusUnpaid            = "unpaid"
	PaymentStatusNoPaymentRequired = "no_payment_required"
)

type CheckoutSession struct {
	ID            string
	Completed     bool
	PaymentStatus string
	UID           int64
	CartID        int64
	Currency      string
	AmountTotal   int64
	Shipping      Shipping
}

type Shipping struct {
	Name       string
	Phone      string
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
}
