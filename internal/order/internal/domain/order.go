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

package domain

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending    OrderStatus = 1
	StatusConfirmed  OrderStatus = 2
	StatusProcessing OrderStatus = 3
	StatusShipped    OrderStatus = 4
	StatusDelivered  OrderStatus = 5
	StatusCancelled  OrderStatus = 6
	StatusRefunded   OrderStatus = 7
)

// CanTransitionTo 订单状态机。
// 正向流转只能逐步推进: pending → confirmed → processing → shipped → delivered。
// cancelled 与 refunded 只能从发货前的状态进入, 三个终态不再流转
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch next {
	case StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered:
		return next == s+1
	case StatusCancelled, StatusRefunded:
		return s == StatusPending || s == StatusConfirmed || s == StatusProcessing
	default:
		return false
	}
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"

	GatewayCashOnDelivery = "cashOnDelivery"
	GatewayStripe         = "stripe"
)

type Order struct {
	ID  int64
	SN  string
	UID int64
	// Items 下单时的行项目快照, 单价不随商品改价而变
	Items         []OrderItem
	ShippingInfo  ShippingInfo
	PaymentInfo   PaymentInfo
	TotalPrice    int64
	TaxPrice      int64
	ShippingPrice int64
	Status        OrderStatus
	IsPaid        bool
	PaidAt        int64
	IsDelivered   bool
	DeliveredAt   int64
	// CancellationReason 仅 cancelled/refunded 时非空
	CancellationReason string
	Ctime              int64
	Utime              int64
}

type OrderItem struct {
	ProductID int64
	Price     int64
	Quantity  int64
	Color     string
}

type ShippingInfo struct {
	Address    string
	City       string
	State      string
	Phone      string
	Country    string
	PostalCode string
}

type PaymentInfo struct {
	Status   string
	Gateway  string
	Currency string
	Method   string
}
