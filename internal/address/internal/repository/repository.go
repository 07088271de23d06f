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
	"github.com/ecodeclub/eshop/internal/address/internal/domain"
	"github.com/ecodeclub/eshop/internal/address/internal/repository/dao"
)

type AddressRepository interface {
	Create(ctx context.Context, a domain.Address) (int64, error)
	ListByUID(ctx context.Context, uid int64) ([]domain.Address, error)
	FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Address, error)
	Delete(ctx context.Context, id, uid int64) error
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{dao: d}
}

type addressRepository struct {
	dao dao.AddressDAO
}

func (r *addressRepository) Create(ctx context.Context, a domain.Address) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(a))
}

func (r *addressRepository) ListByUID(ctx context.Context, uid int64) ([]domain.Address, error) {
	as, err := r.dao.ListByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Address) domain.Address {
		return r.toDomain(src)
	}), nil
}

func (r *addressRepository) FindByIDAndUID(ctx context.Context, id, uid int64) (domain.Address, error) {
	a, err := r.dao.FindByIDAndUID(ctx, id, uid)
	if err != nil {
		return domain.Address{}, err
	}
	return r.toDomain(a), nil
}

func (r *addressRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.dao.Delete(ctx, id, uid)
}

func (r *addressRepository) toEntity(a domain.Address) dao.Address {
	return dao.Address{
		Id:         a.ID,
		Uid:        a.UID,
		Alias:      a.Alias,
		Details:    a.Details,
		Phone:      a.Phone,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func (r *addressRepository) toDomain(a dao.Address) domain.Address {
	return domain.Address{
		ID:         a.Id,
		UID:        a.Uid,
		Alias:      a.Alias,
		Details:    a.Details,
		Phone:      a.Phone,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		Ctime:      a.Ctime,
		Utime:      a.Utime,
	}
}
