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

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type RetrieveOrderDetailReq struct {
	SN string `json:"sn"`
}

type CancelOrderReq struct {
	SN     string `json:"sn"`
	Reason string `json:"reason"`
}

type AdminListOrdersReq struct {
	Status uint8 `json:"status,omitempty"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type AdminUpdateStatusReq struct {
	OrderID int64  `json:"orderId"`
	Status  uint8  `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

type AdminMarkPaidReq struct {
	OrderID  int64  `json:"orderId"`
	Gateway  string `json:"gateway"`
	Currency string `json:"currency"`
	Method   string `json:"method,omitempty"`
}

type AdminMarkDeliveredReq struct {
	OrderID int64 `json:"orderId"`
}

type Order struct {
	ID                 int64        `json:"id"`
	SN                 string       `json:"sn"`
	Items              []OrderItem  `json:"items,omitempty"`
	ShippingInfo       ShippingInfo `json:"shippingInfo"`
	PaymentInfo        PaymentInfo  `json:"paymentInfo"`
	TotalPrice         int64        `json:"totalPrice"`
	TaxPrice           int64        `json:"taxPrice"`
	ShippingPrice      int64        `json:"shippingPrice"`
	Status             uint8        `json:"status"`
	IsPaid             bool         `json:"isPaid"`
	PaidAt             int64        `json:"paidAt,omitempty"`
	IsDelivered        bool         `json:"isDelivered"`
	DeliveredAt        int64        `json:"deliveredAt,omitempty"`
	CancellationReason string       `json:"cancellationReason,omitempty"`
	Ctime              int64        `json:"ctime"`
}

type OrderItem struct {
	ProductID int64  `json:"productId"`
	Color     string `json:"color,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type ShippingInfo struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type PaymentInfo struct {
	Status   string `json:"status"`
	Gateway  string `json:"gateway"`
	Currency string `json:"currency"`
	Method   string `json:"method,omitempty"`
}
