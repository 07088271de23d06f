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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrInsufficientStock = errors.New("库存不足")
)

// InsufficientStockError 携带可用与请求数量, 上层拼装提示语时需要
type InsufficientStockError struct {
	ProductID int64
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("库存不足: productID=%d, 可用=%d, 请求=%d", e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type ProductDAO interface {
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySN(ctx context.Context, sn string) (Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	// ReserveStock 原子地检查并扣减库存, 库存不足时一行都不会更新
	ReserveStock(ctx context.Context, id int64, quantity int64) error
	// ReleaseStock 归还一次预留, 仅用于同一次结算内的补偿
	ReleaseStock(ctx context.Context, id int64, quantity int64) error
	// CommitSale 累加已售数量, 必须与一次成功的 ReserveStock 配对
	CommitSale(ctx context.Context, id int64, quantity int64) error
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &GORMProductDAO{db: db}
}

type GORMProductDAO struct {
	db *egorm.Component
}

func (g *GORMProductDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMProductDAO) Update(ctx context.Context, p Product) error {
	p.Utime = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"colors":      p.Colors,
			"utime":       p.Utime,
		}).Error
}

func (g *GORMProductDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *GORMProductDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := g.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (g *GORMProductDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMProductDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (g *GORMProductDAO) ReserveStock(ctx context.Context, id int64, quantity int64) error {
	// 扣减必须是单条条件更新, 读出来再写回去会在并发结算下超卖
	res := g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Updates(map[string]any{
			"quantity": gorm.Expr("`quantity` - ?", quantity),
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		p, err := g.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("商品不存在: id=%d: %w", id, err)
		}
		return &InsufficientStockError{ProductID: id, Available: p.Quantity, Requested: quantity}
	}
	return nil
}

func (g *GORMProductDAO) ReleaseStock(ctx context.Context, id int64, quantity int64) error {
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity": gorm.Expr("`quantity` + ?", quantity),
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (g *GORMProductDAO) CommitSale(ctx context.Context, id int64, quantity int64) error {
	return g.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sold":  gorm.Expr("`sold` + ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}
