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
	SystemError       = ErrorCode{Code: 513001, Msg: "系统错误"}
	OrderNotFound     = ErrorCode{Code: 513002, Msg: "订单不存在"}
	InvalidTransition = ErrorCode{Code: 513003, Msg: "订单状态不允许该操作"}
	ReasonRequired    = ErrorCode{Code: 513004, Msg: "取消订单必须填写原因"}
	PaymentRequired   = ErrorCode{Code: 513005, Msg: "订单尚未支付"}
	AlreadyPaid       = ErrorCode{Code: 513006, Msg: "订单已经支付过了"}
	AlreadyDelivered  = ErrorCode{Code: 513007, Msg: "订单已经送达过了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
