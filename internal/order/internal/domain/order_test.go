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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "待确认到已确认", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "已确认到处理中", from: StatusConfirmed, to: StatusProcessing, want: true},
		{name: "处理中到已发货", from: StatusProcessing, to: StatusShipped, want: true},
		{name: "已发货到已送达", from: StatusShipped, to: StatusDelivered, want: true},
		{name: "不允许跳步", from: StatusPending, to: StatusShipped, want: false},
		{name: "不允许回退", from: StatusShipped, to: StatusProcessing, want: false},
		{name: "待确认可取消", from: StatusPending, to: StatusCancelled, want: true},
		{name: "已确认可退款", from: StatusConfirmed, to: StatusRefunded, want: true},
		{name: "处理中可取消", from: StatusProcessing, to: StatusCancelled, want: true},
		{name: "已发货不可取消", from: StatusShipped, to: StatusCancelled, want: false},
		{name: "已送达不可退款", from: StatusDelivered, to: StatusRefunded, want: false},
		{name: "已取消不再流转", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "已退款不再流转", from: StatusRefunded, to: StatusCancelled, want: false},
		{name: "已送达不再流转", from: StatusDelivered, to: StatusConfirmed, want: false},
		{name: "不能流转回待确认", from: StatusConfirmed, to: StatusPending, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusRefunded.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusShipped.Terminal())
}
