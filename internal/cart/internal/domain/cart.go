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

// Cart 一个用户任意时刻至多一个在用购物车。
// TotalPrice 永远由行项目重新计算得出, 不单独维护。
type Cart struct {
	ID  int64
	UID int64
	// Items 有序的行项目, 同一商品同一颜色只会出现一行
	Items      []CartItem
	TotalPrice int64
	// TotalAfterDiscount 应用优惠码后的总价, 仅当 CouponID != 0 时有意义。
	// 一旦应用, 在购物车被清空或行项目再次变动前不可替换
	TotalAfterDiscount int64
	CouponID           int64
	Ctime              int64
	Utime              int64
}

type CartItem struct {
	ID        int64
	ProductID int64
	Color     string
	// Price 加购那一刻的单价快照, 单位为分
	Price    int64
	Quantity int64
}

// PayableAmount 结算金额: 有优惠取优惠价, 否则取原价
func (c Cart) PayableAmount() int64 {
	if c.CouponID != 0 {
		return c.TotalAfterDiscount
	}
	return c.TotalPrice
}

// Discounted 是否已应用过优惠码
func (c Cart) Discounted() bool {
	return c.CouponID != 0
}

// DiscountedTotal 按百分比折扣计算优惠后总价, 单位为分, 四舍五入
func DiscountedTotal(total, discount int64) int64 {
	return (total*(100-discount) + 50) / 100
}
