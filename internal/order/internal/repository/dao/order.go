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

var (
	ErrOrderNotFound = errors.New("订单不存在")
	// ErrStatusConflict 条件更新没有命中, 订单状态已经被并发修改
	ErrStatusConflict = errors.New("订单状态已变更")
)

type OrderDAO interface {
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, []OrderItem, error)
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (Order, []OrderItem, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	// List 按状态过滤的后台查询, status 为 0 表示全部
	List(ctx context.Context, status uint8, offset, limit int) ([]Order, error)
	Count(ctx context.Context, status uint8) (int64, error)
	FindItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	// UpdateStatus 以旧状态为条件的更新, 并发修改只有一个会成功
	UpdateStatus(ctx context.Context, id int64, from, to uint8, fields map[string]any) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &GORMOrderDAO{db: db}
}

type GORMOrderDAO struct {
	db *egorm.Component
}

func (g *GORMOrderDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return o.Id, err
}

func (g *GORMOrderDAO) FindByID(ctx context.Context, id int64) (Order, []OrderItem, error) {
	var o Order
	err := g.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, nil, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, nil, err
	}
	items, err := g.FindItems(ctx, o.Id)
	return o, items, err
}

func (g *GORMOrderDAO) FindBySNAndUID(ctx context.Context, sn string, uid int64) (Order, []OrderItem, error) {
	var o Order
	err := g.db.WithContext(ctx).First(&o, "sn = ? AND uid = ?", sn, uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, nil, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, nil, err
	}
	items, err := g.FindItems(ctx, o.Id)
	return o, items, err
}

func (g *GORMOrderDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&os).Error
	return os, err
}

func (g *GORMOrderDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&total).Error
	return total, err
}

func (g *GORMOrderDAO) List(ctx context.Context, status uint8, offset, limit int) ([]Order, error) {
	var os []Order
	query := g.db.WithContext(ctx).Model(&Order{})
	if status != 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *GORMOrderDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var total int64
	query := g.db.WithContext(ctx).Model(&Order{})
	if status != 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&total).Error
	return total, err
}

func (g *GORMOrderDAO) FindItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Order("id ASC").Find(&items, "order_id = ?", orderID).Error
	return items, err
}

func (g *GORMOrderDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8, fields map[string]any) error {
	updates := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	for k, v := range fields {
		updates[k] = v
	}
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var o Order
		if err := g.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		return ErrStatusConflict
	}
	return nil
}
