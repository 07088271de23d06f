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
	ErrCartNotFound = errors.New("购物车不存在")
	ErrItemNotFound = errors.New("购物车中没有该商品")
	// ErrAlreadyDiscounted 一个购物车只能应用一次优惠码
	ErrAlreadyDiscounted = errors.New("购物车已应用过优惠码")
)

type CartDAO interface {
	FindByUID(ctx context.Context, uid int64) (Cart, []CartItem, error)
	FindByID(ctx context.Context, id int64) (Cart, []CartItem, error)
	// AddItem 同商品同颜色合并数量, 其余追加一行; 总价随之重算
	AddItem(ctx context.Context, uid int64, item CartItem) (int64, error)
	UpdateItemQuantity(ctx context.Context, uid int64, itemID int64, quantity int64) error
	RemoveItem(ctx context.Context, uid int64, itemID int64) error
	DeleteByUID(ctx context.Context, uid int64) error
	DeleteByID(ctx context.Context, id int64) (int64, error)
	// ApplyDiscount 条件更新: 只有未用过优惠码的购物车才会被更新
	ApplyDiscount(ctx context.Context, uid int64, couponID int64, totalAfterDiscount int64) error
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &GORMCartDAO{db: db}
}

type GORMCartDAO struct {
	db *egorm.Component
}

func (g *GORMCartDAO) FindByUID(ctx context.Context, uid int64) (Cart, []CartItem, error) {
	var c Cart
	err := g.db.WithContext(ctx).First(&c, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, nil, ErrCartNotFound
	}
	if err != nil {
		return Cart{}, nil, err
	}
	items, err := g.findItems(g.db.WithContext(ctx), c.Id)
	return c, items, err
}

func (g *GORMCartDAO) FindByID(ctx context.Context, id int64) (Cart, []CartItem, error) {
	var c Cart
	err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, nil, ErrCartNotFound
	}
	if err != nil {
		return Cart{}, nil, err
	}
	items, err := g.findItems(g.db.WithContext(ctx), c.Id)
	return c, items, err
}

func (g *GORMCartDAO) findItems(tx *gorm.DB, cartID int64) ([]CartItem, error) {
	var items []CartItem
	err := tx.Order("id ASC").Find(&items, "cart_id = ?", cartID).Error
	return items, err
}

func (g *GORMCartDAO) AddItem(ctx context.Context, uid int64, item CartItem) (int64, error) {
	var cartID int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var c Cart
		if err := tx.Where(Cart{Uid: uid}).
			Attrs(Cart{Ctime: now, Utime: now}).
			FirstOrCreate(&c).Error; err != nil {
			return err
		}
		cartID = c.Id

		var existing CartItem
		err := tx.First(&existing, "cart_id = ? AND product_id = ? AND color = ?",
			c.Id, item.ProductId, item.Color).Error
		switch {
		case err == nil:
			if err := tx.Model(&CartItem{}).
				Where("id = ?", existing.Id).
				Updates(map[string]any{
					"quantity": gorm.Expr("`quantity` + ?", item.Quantity),
					"utime":    now,
				}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item.CartId = c.Id
			item.Ctime, item.Utime = now, now
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return g.recalculate(tx, c.Id, now)
	})
	return cartID, err
}

func (g *GORMCartDAO) UpdateItemQuantity(ctx context.Context, uid int64, itemID int64, quantity int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c, err := g.lockCartByUID(tx, uid)
		if err != nil {
			return err
		}
		res := tx.Model(&CartItem{}).
			Where("id = ? AND cart_id = ?", itemID, c.Id).
			Updates(map[string]any{
				"quantity": quantity,
				"utime":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return g.recalculate(tx, c.Id, now)
	})
}

func (g *GORMCartDAO) RemoveItem(ctx context.Context, uid int64, itemID int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c, err := g.lockCartByUID(tx, uid)
		if err != nil {
			return err
		}
		res := tx.Where("id = ? AND cart_id = ?", itemID, c.Id).Delete(&CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return g.recalculate(tx, c.Id, now)
	})
}

func (g *GORMCartDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := g.lockCartByUID(tx, uid)
		if err != nil {
			return err
		}
		if err := tx.Delete(&CartItem{}, "cart_id = ?", c.Id).Error; err != nil {
			return err
		}
		return tx.Delete(&Cart{}, "id = ?", c.Id).Error
	})
}

func (g *GORMCartDAO) DeleteByID(ctx context.Context, id int64) (int64, error) {
	var uid int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Cart
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}
		uid = c.Uid
		if err := tx.Delete(&CartItem{}, "cart_id = ?", c.Id).Error; err != nil {
			return err
		}
		return tx.Delete(&Cart{}, "id = ?", c.Id).Error
	})
	return uid, err
}

func (g *GORMCartDAO) ApplyDiscount(ctx context.Context, uid int64, couponID int64, totalAfterDiscount int64) error {
	// coupon_id = 0 的条件保证一个购物车最多应用一次优惠码,
	// 并发重复请求里只有一个会更新成功
	res := g.db.WithContext(ctx).Model(&Cart{}).
		Where("uid = ? AND coupon_id = 0", uid).
		Updates(map[string]any{
			"coupon_id":            couponID,
			"total_after_discount": totalAfterDiscount,
			"utime":                time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var c Cart
		if err := g.db.WithContext(ctx).First(&c, "uid = ?", uid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return err
		}
		return ErrAlreadyDiscounted
	}
	return nil
}

func (g *GORMCartDAO) lockCartByUID(tx *gorm.DB, uid int64) (Cart, error) {
	var c Cart
	err := tx.First(&c, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, ErrCartNotFound
	}
	return c, err
}

// recalculate 行项目任何变动后重算总价, 并且作废已应用的优惠
func (g *GORMCartDAO) recalculate(tx *gorm.DB, cartID int64, now int64) error {
	var total int64
	err := tx.Model(&CartItem{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Where("cart_id = ?", cartID).
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"total_price":          total,
			"total_after_discount": 0,
			"coupon_id":            0,
			"utime":                now,
		}).Error
}
