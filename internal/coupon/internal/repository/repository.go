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
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
)

type CouponRepository interface {
	Create(ctx context.Context, c domain.Coupon) (int64, error)
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	Redeem(ctx context.Context, code string, uid int64) (domain.Coupon, error)
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (c *couponRepository) Create(ctx context.Context, coupon domain.Coupon) (int64, error) {
	return c.dao.Create(ctx, c.toEntity(coupon))
}

func (c *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	coupon, err := c.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return c.toDomain(coupon), nil
}

func (c *couponRepository) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	cs, err := c.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return c.toDomain(src)
	}), nil
}

func (c *couponRepository) Redeem(ctx context.Context, code string, uid int64) (domain.Coupon, error) {
	coupon, err := c.dao.Redeem(ctx, code, uid)
	if err != nil {
		return domain.Coupon{}, err
	}
	return c.toDomain(coupon), nil
}

func (c *couponRepository) toEntity(coupon domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:         coupon.ID,
		Code:       coupon.Code,
		Discount:   coupon.Discount,
		Active:     coupon.Active,
		ExpireAt:   coupon.ExpireAt,
		MaxUsage:   coupon.MaxUsage,
		UsageCount: coupon.UsageCount,
	}
}

func (c *couponRepository) toDomain(coupon dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:         coupon.Id,
		Code:       coupon.Code,
		Discount:   coupon.Discount,
		Active:     coupon.Active,
		ExpireAt:   coupon.ExpireAt,
		MaxUsage:   coupon.MaxUsage,
		UsageCount: coupon.UsageCount,
		Ctime:      coupon.Ctime,
		Utime:      coupon.Utime,
	}
}
