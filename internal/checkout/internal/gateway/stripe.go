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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeGateway 基于 Stripe Checkout 的托管收银台。
// 用户ID和购物车ID放在 session metadata 里, 回调时取回
type StripeGateway struct {
	api            *client.API
	endpointSecret string
}

func NewStripeGateway(apiKey, endpointSecret string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api, endpointSecret: endpointSecret}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatInt(req.CartID, 10)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("userId", strconv.FormatInt(req.UID, 10))
	params.AddMetadata("cartId", strconv.FormatInt(req.CartID, 10))

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return Session{}, fmt.Errorf("创建Stripe收银台会话失败: %w", err)
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, sigHeader string) (WebhookEvent, error) {
	evt, err := webhook.ConstructEvent(payload, sigHeader, g.endpointSecret)
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: %s", ErrInvalidSignature, err.Error())
	}
	res := WebhookEvent{Type: string(evt.Type)}
	if res.Type != EventCheckoutCompleted {
		return res, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &s); err != nil {
		return WebhookEvent{}, fmt.Errorf("解析checkout session失败: %w", err)
	}
	res.Session = g.toSession(s)
	return res, nil
}

func (g *StripeGateway) toSession(s stripe.CheckoutSession) CheckoutSession {
	res := CheckoutSession{
		ID:            s.ID,
		Completed:     s.Status == stripe.CheckoutSessionStatusComplete,
		PaymentStatus: string(s.PaymentStatus),
		UID:           parseID(s.Metadata["userId"]),
		CartID:        parseID(s.Metadata["cartId"]),
		Currency:      string(s.Currency),
		AmountTotal:   s.AmountTotal,
	}
	if res.CartID == 0 {
		res.CartID = parseID(s.ClientReferenceID)
	}
	if cd := s.CustomerDetails; cd != nil {
		res.Shipping.Name = cd.Name
		res.Shipping.Phone = cd.Phone
		if addr := cd.Address; addr != nil {
			res.Shipping.Address = addr.Line1
			if addr.Line2 != "" {
				res.Shipping.Address += " " + addr.Line2
			}
			res.Shipping.City = addr.City
			res.Shipping.State = addr.State
			res.Shipping.Country = addr.Country
			res.Shipping.PostalCode = addr.PostalCode
		}
	}
	return res
}

func parseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
