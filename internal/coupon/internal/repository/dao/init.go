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
	return db.AutoMigrate(&Coupon{}, &CouponRedemption{})
}

type Coupon struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Code     string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:优惠码"`
	Discount int64  `gorm:"not null;comment:折扣百分比 0-100"`
	Active   bool   `gorm:"not null;default:true;comment:是否启用"`
	ExpireAt int64  `gorm:"not null;comment:过期时间"`
	MaxUsage int64  `gorm:"not null;comment:最大可用次数"`
	// UsageCount 只通过条件更新递增, 不变量 usage_count <= max_usage
	UsageCount int64 `gorm:"not null;default:0;comment:已用次数"`
	Ctime      int64
	Utime      int64
}

type CouponRedemption struct {
	Id       int64 `gorm:"primaryKey;autoIncrement"`
	CouponId int64 `gorm:"not null;uniqueIndex:uniq_coupon_uid,priority:1;comment:优惠券自增ID"`
	Uid      int64 `gorm:"not null;uniqueIndex:uniq_coupon_uid,priority:2;index:idx_redemption_uid;comment:核销用户ID"`
	Ctime    int64
	Utime    int64
}
