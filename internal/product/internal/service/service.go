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

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("商品不存在")
	// ErrInsufficientStock 预留库存失败, 通过 errors.As 可以拿到
	// dao.InsufficientStockError 里的可用与请求数量
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type Service interface {
	Detail(ctx context.Context, id int64) (domain.Product, error)
	DetailBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	// ReserveStock 原子扣减库存, 多个订单项指向同一商品时,
	// 调用方必须先聚合总量再调用, 一个商品只检查一次
	ReserveStock(ctx context.Context, id int64, quantity int64) error
	ReleaseStock(ctx context.Context, id int64, quantity int64) error
	CommitSale(ctx context.Context, id int64, quantity int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return p, err
}

func (s *service) DetailBySN(ctx context.Context, sn string) (domain.Product, error) {
	p, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: sn=%s", ErrProductNotFound, sn)
	}
	return p, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, p domain.Product) error {
	return s.repo.Update(ctx, p)
}

func (s *service) ReserveStock(ctx context.Context, id int64, quantity int64) error {
	return s.repo.ReserveStock(ctx, id, quantity)
}

func (s *service) ReleaseStock(ctx context.Context, id int64, quantity int64) error {
	return s.repo.ReleaseStock(ctx, id, quantity)
}

func (s *service) CommitSale(ctx context.Context, id int64, quantity int64) error {
	return s.repo.CommitSale(ctx, id, quantity)
}
