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
	"testing"

	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductDAO 内存实现, 只为验证仓储层的缓存行为
type fakeProductDAO struct {
	dao.ProductDAO
	products map[int64]dao.Product
	finds    int
}

func (f *fakeProductDAO) FindByID(_ context.Context, id int64) (dao.Product, error) {
	f.finds++
	p, ok := f.products[id]
	if !ok {
		return dao.Product{}, dao.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductDAO) Update(_ context.Context, p dao.Product) error {
	got := f.products[p.Id]
	got.Name, got.Price = p.Name, p.Price
	f.products[p.Id] = got
	return nil
}

func (f *fakeProductDAO) ReserveStock(_ context.Context, id int64, quantity int64) error {
	p := f.products[id]
	if p.Quantity < quantity {
		return &dao.InsufficientStockError{ProductID: id, Available: p.Quantity, Requested: quantity}
	}
	p.Quantity -= quantity
	f.products[id] = p
	return nil
}

func newTestRepo(products map[int64]dao.Product) (*fakeProductDAO, ProductRepository) {
	d := &fakeProductDAO{products: products}
	tc := tieredcache.NewCache()
	return d, NewProductRepository(d, cache.NewProductTieredCache(tc))
}

func TestProductRepository_ReadThrough(t *testing.T) {
	t.Parallel()
	d, repo := newTestRepo(map[int64]dao.Product{
		1: {Id: 1, Name: "机械键盘", Price: 29900, Quantity: 10},
	})

	p1, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	p2, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	// 第二次命中缓存, 不再打到存储
	assert.Equal(t, 1, d.finds)
}

func TestProductRepository_WriteInvalidates(t *testing.T) {
	t.Parallel()
	d, repo := newTestRepo(map[int64]dao.Product{
		1: {Id: 1, Name: "机械键盘", Price: 29900, Quantity: 10},
	})

	_, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)

	p := d.products[1]
	require.NoError(t, repo.Update(context.Background(), domain.Product{
		ID:    p.Id,
		Name:  p.Name,
		Price: 19900,
	}))

	// 写后立刻读, 读到的必须是新值而不是 TTL 内的旧缓存
	got, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(19900), got.Price)
}

func TestProductRepository_ReserveInvalidates(t *testing.T) {
	t.Parallel()
	d, repo := newTestRepo(map[int64]dao.Product{
		1: {Id: 1, Name: "机械键盘", Price: 29900, Quantity: 10},
	})

	_, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, repo.ReserveStock(context.Background(), 1, 3))

	got, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Quantity)
	assert.Equal(t, 2, d.finds)
}
