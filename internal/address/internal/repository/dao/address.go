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
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("收货地址不存在")

type AddressDAO interface {
	Create(ctx context.Context, a Address) (int64, error)
	ListByUID(ctx context.Context, uid int64) ([]Address, error)
	FindByIDAndUID(ctx context.Context, id, uid int64) (Address, error)
	Delete(ctx context.Context, id, uid int64) error
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &GORMAddressDAO{db: db}
}

type GORMAddressDAO struct {
	db *egorm.Component
}

func (g *GORMAddressDAO) Create(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *GORMAddressDAO) ListByUID(ctx context.Context, uid int64) ([]Address, error) {
	var as []Address
	err := g.db.WithContext(ctx).Order("id DESC").Find(&as, "uid = ?", uid).Error
	return as, err
}

func (g *GORMAddressDAO) FindByIDAndUID(ctx context.Context, id, uid int64) (Address, error) {
	var a Address
	err := g.db.WithContext(ctx).First(&a, "id = ? AND uid = ?", id, uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Address{}, ErrAddressNotFound
	}
	return a, err
}

func (g *GORMAddressDAO) Delete(ctx context.Context, id, uid int64) error {
	res := g.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
