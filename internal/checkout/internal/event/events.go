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

package event

const OrderEventName = "order_events"

// OrderFinalizedEvent 订单落库之后发出, 下游比如营销、通知模块消费。
// 发送失败只记日志, 不影响下单
type OrderFinalizedEvent struct {
	OrderSN    string `json:"orderSn"`
	UID        int64  `json:"uid"`
	TotalPrice int64  `json:"totalPrice"`
	Gateway    string `json:"gateway"`
	IsPaid     bool   `json:"isPaid"`
}
