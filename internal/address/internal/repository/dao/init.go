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
	return db.AutoMigrate(&Address{})
}

type Address struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:地址自增ID"`
	Uid        int64  `gorm:"not null;index:idx_address_uid;comment:所属用户ID"`
	Alias      string `gorm:"type:varchar(64);not null;default:'';comment:地址别名"`
	Details    string `gorm:"type:varchar(512);not null;comment:详细地址"`
	Phone      string `gorm:"type:varchar(32);not null;comment:联系电话"`
	City       string `gorm:"type:varchar(128);not null;default:''"`
	State      string `gorm:"type:varchar(128);not null;default:''"`
	Country    string `gorm:"type:varchar(128);not null;default:''"`
	PostalCode string `gorm:"type:varchar(32);not null;default:''"`
	Ctime      int64
	Utime      int64
}
