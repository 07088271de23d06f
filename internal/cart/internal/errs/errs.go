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

package errs

var (
	SystemError       = ErrorCode{Code: 511001, Msg: "系统错误"}
	CartNotFound      = ErrorCode{Code: 511002, Msg: "购物车不存在"}
	ItemNotFound      = ErrorCode{Code: 511003, Msg: "购物车中没有该商品"}
	AlreadyDiscounted = ErrorCode{Code: 511004, Msg: "购物车已经用过优惠码了"}
	InvalidQuantity   = ErrorCode{Code: 511005, Msg: "商品数量非法"}
	CouponRejected    = ErrorCode{Code: 511006, Msg: "优惠码不可用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
