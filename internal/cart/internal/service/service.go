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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/product"
)

var (
	ErrCartNotFound      = dao.ErrCartNotFound
	ErrItemNotFound      = dao.ErrItemNotFound
	ErrAlreadyDiscounted = dao.ErrAlreadyDiscounted
	ErrInvalidQuantity   = errors.New("商品数量非法")
)

type Service interface {
	// AddProduct 加购, 单价取商品当前价格作为快照
	AddProduct(ctx context.Context, uid, productID int64, color string, quantity int64) (domain.Cart, error)
	Cart(ctx context.Context, uid int64) (domain.Cart, error)
	// FindByID 给结算流程用, 不走用户态缓存
	FindByID(ctx context.Context, cartID int64) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error)
	RemoveLine(ctx context.Context, uid, itemID int64) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) error
	// Delete 订单落库后由结算流程删除购物车
	Delete(ctx context.Context, cartID int64) error
	// ApplyDiscount 应用优惠码并持久化优惠后总价。
	// 核销与计数递增由 coupon 模块原子完成, 这里只负责购物车侧的终态
	ApplyDiscount(ctx context.Context, uid int64, code string) (domain.Cart, coupon.Coupon, error)
}

func NewService(repo repository.CartRepository, productSvc product.Service, couponSvc coupon.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		couponSvc:  couponSvc,
	}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
	couponSvc  coupon.Service
}

func (s *service) AddProduct(ctx context.Context, uid, productID int64, color string, quantity int64) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	p, err := s.productSvc.Detail(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("查找商品失败: %w", err)
	}
	err = s.repo.AddItem(ctx, uid, domain.CartItem{
		ProductID: p.ID,
		Color:     color,
		Price:     p.Price,
		Quantity:  quantity,
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) Cart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) FindByID(ctx context.Context, cartID int64) (domain.Cart, error) {
	return s.repo.FindByID(ctx, cartID)
}

func (s *service) UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if err := s.repo.UpdateItemQuantity(ctx, uid, itemID, quantity); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) RemoveLine(ctx context.Context, uid, itemID int64) (domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, uid, itemID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.DeleteByUID(ctx, uid)
}

func (s *service) Delete(ctx context.Context, cartID int64) error {
	return s.repo.DeleteByID(ctx, cartID)
}

func (s *service) ApplyDiscount(ctx context.Context, uid int64, code string) (domain.Cart, coupon.Coupon, error) {
	c, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, coupon.Coupon{}, err
	}
	if c.Discounted() {
		return domain.Cart{}, coupon.Coupon{}, ErrAlreadyDiscounted
	}

	cp, err := s.couponSvc.Redeem(ctx, code, uid)
	if err != nil {
		return domain.Cart{}, coupon.Coupon{}, err
	}

	totalAfter := domain.DiscountedTotal(c.TotalPrice, cp.Discount)
	err = s.repo.ApplyDiscount(ctx, uid, cp.ID, totalAfter)
	if err != nil {
		return domain.Cart{}, coupon.Coupon{}, err
	}
	res, err := s.repo.FindByUID(ctx, uid)
	return res, cp, err
}
