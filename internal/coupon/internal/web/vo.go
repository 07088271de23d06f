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

type CreateCouponReq struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
	Active   bool   `json:"active"`
	ExpireAt int64  `json:"expireAt"`
	MaxUsage int64  `json:"maxUsage"`
}

type CreateCouponResp struct {
	ID int64 `json:"id"`
}

type ListCouponsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListCouponsResp struct {
	Coupons []Coupon `json:"coupons"`
}

type Coupon struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Discount   int64  `json:"discount"`
	Active     bool   `json:"active"`
	ExpireAt   int64  `json:"expireAt"`
	MaxUsage   int64  `json:"maxUsage"`
	UsageCount int64  `json:"usageCount"`
}
