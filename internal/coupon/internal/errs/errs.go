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
	SystemError       = ErrorCode{Code: 512001, Msg: "系统错误"}
	CouponInvalid     = ErrorCode{Code: 512002, Msg: "优惠券无效、已过期或未启用"}
	AlreadyRedeemed   = ErrorCode{Code: 512003, Msg: "你已经用过这张优惠券了"}
	UsageLimitReached = ErrorCode{Code: 512004, Msg: "优惠券已被领完"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
