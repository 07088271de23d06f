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
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

type Order struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	Uid    int64  `gorm:"not null;index:idx_order_uid;comment:买家ID"`
	Status uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_order_status;comment:订单状态 1=待确认 2=已确认 3=处理中 4=已发货 5=已送达 6=已取消 7=已退款"`

	TotalPrice    int64 `gorm:"not null;comment:实付总价;单位为分"`
	TaxPrice      int64 `gorm:"not null;default:0;comment:税费;单位为分"`
	ShippingPrice int64 `gorm:"not null;default:0;comment:运费;单位为分"`

	PaymentStatus   string `gorm:"type:varchar(32);not null;default:'pending';comment:支付状态"`
	PaymentGateway  string `gorm:"type:varchar(32);not null;comment:支付渠道"`
	PaymentCurrency string `gorm:"type:varchar(8);not null;comment:币种"`
	PaymentMethod   string `gorm:"type:varchar(32);not null;default:'';comment:支付方式"`
	IsPaid          bool   `gorm:"not null;default:false"`
	PaidAt          int64  `gorm:"not null;default:0;comment:支付时间"`
	IsDelivered     bool   `gorm:"not null;default:false"`
	DeliveredAt     int64  `gorm:"not null;default:0;comment:送达时间"`

	ShippingAddress    string `gorm:"type:varchar(512);not null;default:''"`
	ShippingCity       string `gorm:"type:varchar(128);not null;default:''"`
	ShippingState      string `gorm:"type:varchar(128);not null;default:''"`
	ShippingPhone      string `gorm:"type:varchar(32);not null;default:''"`
	ShippingCountry    string `gorm:"type:varchar(128);not null;default:''"`
	ShippingPostalCode string `gorm:"type:varchar(32);not null;default:''"`

	CancellationReason string `gorm:"type:varchar(512);not null;default:'';comment:取消或退款原因"`
	Ctime              int64
	Utime              int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;comment:商品自增ID"`
	Color     string `gorm:"type:varchar(64);not null;default:''"`
	Price     int64  `gorm:"not null;comment:下单时单价快照;单位为分"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}
