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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
)

type CartRepository interface {
	FindByUID(ctx context.Context, uid int64) (domain.Cart, error)
	FindByID(ctx context.Context, id int64) (domain.Cart, error)
	AddItem(ctx context.Context, uid int64, item domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, uid int64, itemID, quantity int64) error
	RemoveItem(ctx context.Context, uid int64, itemID int64) error
	DeleteByUID(ctx context.Context, uid int64) error
	DeleteByID(ctx context.Context, id int64) error
	ApplyDiscount(ctx context.Context, uid int64, couponID int64, totalAfterDiscount int64) error
}

func NewCartRepository(d dao.CartDAO, c cache.CartCache) CartRepository {
	return &cartRepository{dao: d, cache: c}
}

type cartRepository struct {
	dao   dao.CartDAO
	cache cache.CartCache
}

func (r *cartRepository) FindByUID(ctx context.Context, uid int64) (domain.Cart, error) {
	if res, ok := r.cache.Get(uid); ok {
		return res, nil
	}
	c, items, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	res := r.toDomain(c, items)
	r.cache.Set(res)
	return res, nil
}

func (r *cartRepository) FindByID(ctx context.Context, id int64) (domain.Cart, error) {
	c, items, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	return r.toDomain(c, items), nil
}

func (r *cartRepository) AddItem(ctx context.Context, uid int64, item domain.CartItem) error {
	_, err := r.dao.AddItem(ctx, uid, dao.CartItem{
		ProductId: item.ProductID,
		Color:     item.Color,
		Price:     item.Price,
		Quantity:  item.Quantity,
	})
	if err != nil {
		return err
	}
	r.cache.Del(uid)
	return nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, uid int64, itemID, quantity int64) error {
	if err := r.dao.UpdateItemQuantity(ctx, uid, itemID, quantity); err != nil {
		return err
	}
	r.cache.Del(uid)
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, uid int64, itemID int64) error {
	if err := r.dao.RemoveItem(ctx, uid, itemID); err != nil {
		return err
	}
	r.cache.Del(uid)
	return nil
}

func (r *cartRepository) DeleteByUID(ctx context.Context, uid int64) error {
	if err := r.dao.DeleteByUID(ctx, uid); err != nil {
		return err
	}
	r.cache.Del(uid)
	return nil
}

func (r *cartRepository) DeleteByID(ctx context.Context, id int64) error {
	uid, err := r.dao.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	r.cache.Del(uid)
	return nil
}

func (r *cartRepository) ApplyDiscount(ctx context.Context, uid int64, couponID int64, totalAfterDiscount int64) error {
	if err := r.dao.ApplyDiscount(ctx, uid, couponID, totalAfterDiscount); err != nil {
		return err
	}
	r.cache.Del(uid)
	return nil
}

func (r *cartRepository) toDomain(c dao.Cart, items []dao.CartItem) domain.Cart {
	return domain.Cart{
		ID:                 c.Id,
		UID:                c.Uid,
		TotalPrice:         c.TotalPrice,
		TotalAfterDiscount: c.TotalAfterDiscount,
		CouponID:           c.CouponId,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
			return domain.CartItem{
				ID:        src.Id,
				ProductID: src.ProductId,
				Color:     src.Color,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}
