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

	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
)

var (
	ErrCouponInvalid     = dao.ErrCouponInvalid
	ErrAlreadyRedeemed   = dao.ErrAlreadyRedeemed
	ErrUsageLimitReached = dao.ErrUsageLimitReached
)

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go -typed Service
type Service interface {
	// Redeem 给用户核销一张优惠码, 成功返回包含折扣的券。
	// 核销记录与计数递增是一个逻辑操作, 永远不会只发生一半
	Redeem(ctx context.Context, code string, uid int64) (domain.Coupon, error)
	Create(ctx context.Context, c domain.Coupon) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Redeem(ctx context.Context, code string, uid int64) (domain.Coupon, error) {
	return s.repo.Redeem(ctx, code, uid)
}

func (s *service) Create(ctx context.Context, c domain.Coupon) (int64, error) {
	return s.repo.Create(ctx, c)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	return s.repo.List(ctx, offset, limit)
}
