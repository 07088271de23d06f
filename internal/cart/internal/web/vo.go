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

type AddProductReq struct {
	ProductID int64  `json:"productId"`
	Color     string `json:"color"`
	Quantity  int64  `json:"quantity"`
}

type UpdateQuantityReq struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

type RemoveLineReq struct {
	ItemID int64 `json:"itemId"`
}

type ApplyDiscountReq struct {
	Code string `json:"code"`
}

type Cart struct {
	ID                 int64      `json:"id"`
	Items              []CartItem `json:"items"`
	TotalPrice         int64      `json:"totalPrice"`
	TotalAfterDiscount int64      `json:"totalAfterDiscount"`
	CouponID           int64      `json:"couponId"`
	PayableAmount      int64      `json:"payableAmount"`
}

type CartItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Color     string `json:"color"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}
