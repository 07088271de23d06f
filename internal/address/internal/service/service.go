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

	"github.com/ecodeclub/eshop/internal/address/internal/domain"
	"github.com/ecodeclub/eshop/internal/address/internal/repository"
	"github.com/ecodeclub/eshop/internal/address/internal/repository/dao"
)

var ErrAddressNotFound = dao.ErrAddressNotFound

type Service interface {
	Add(ctx context.Context, a domain.Address) (int64, error)
	ListByUID(ctx context.Context, uid int64) ([]domain.Address, error)
	// FindByIDAndUID 带归属校验的查找, 地址不属于该用户时视同不存在
	FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Address, error)
	Delete(ctx context.Context, id, uid int64) error
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.AddressRepository
}

func (s *service) Add(ctx context.Context, a domain.Address) (int64, error) {
	return s.repo.Create(ctx, a)
}

func (s *service) ListByUID(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.ListByUID(ctx, uid)
}

func (s *service) FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Address, error) {
	return s.repo.FindByIDAndUID(ctx, id, uid)
}

func (s *service) Delete(ctx context.Context, id, uid int64) error {
	return s.repo.Delete(ctx, id, uid)
}
