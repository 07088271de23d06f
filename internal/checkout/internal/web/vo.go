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

type CreateCashOrderReq struct {
	// RequestID 客户端生成的幂等键, 重复提交只会下一单
	RequestID string `json:"requestId"`
	CartID    int64  `json:"cartId"`
	AddressID int64  `json:"addressId"`
}

type CreateCashOrderResp struct {
	OrderSN    string `json:"orderSn"`
	TotalPrice int64  `json:"totalPrice"`
	Status     uint8  `json:"status"`
}

type CreateCheckoutSessionReq struct {
	CartID     int64  `json:"cartId"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type CreateCheckoutSessionResp struct {
	URL string `json:"url"`
}

type CancelOrderReq struct {
	SN     string `json:"sn"`
	Reason string `json:"reason"`
}
