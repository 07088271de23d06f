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

type Coupon struct {
	ID   int64
	Code string
	// Discount 折扣百分比, 0-100
	Discount int64
	Active   bool
	// ExpireAt 过期时间, 毫秒时间戳
	ExpireAt int64
	// MaxUsage 总可用次数, 不变量: UsageCount <= MaxUsage
	MaxUsage   int64
	UsageCount int64
	Ctime      int64
	Utime      int64
}
