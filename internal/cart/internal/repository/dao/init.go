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

package dao

import (
	"github.com/ego-component/egorm"
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Cart{}, &CartItem{})
}

type Cart struct {
	Id  int64 `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	Uid int64 `gorm:"not null;uniqueIndex:uniq_cart_uid;comment:所属用户ID, 一个用户至多一个购物车"`
	// TotalPrice 由行项目重算, 单位为分
	TotalPrice         int64 `gorm:"not null;default:0;comment:总价"`
	TotalAfterDiscount int64 `gorm:"not null;default:0;comment:优惠后总价, coupon_id为0时无意义"`
	CouponId           int64 `gorm:"not null;default:0;comment:已应用的优惠券ID, 0表示未应用"`
	Ctime              int64
	Utime              int64
}

type CartItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:行项目自增ID"`
	CartId    int64  `gorm:"not null;index:idx_cart_id;comment:购物车自增ID"`
	ProductId int64  `gorm:"not null;comment:商品自增ID"`
	Color     string `gorm:"type:varchar(64);not null;default:'';comment:颜色"`
	Price     int64  `gorm:"not null;comment:加购时单价快照;单位为分"`
	Quantity  int64  `gorm:"not null;comment:数量, 至少为1"`
	Ctime     int64
	Utime     int64
}
