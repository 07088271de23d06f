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
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	ReserveStock(ctx context.Context, id int64, quantity int64) error
	ReleaseStock(ctx context.Context, id int64, quantity int64) error
	CommitSale(ctx context.Context, id int64, quantity int64) error
}

func NewProductRepository(d dao.ProductDAO, c cache.ProductCache) ProductRepository {
	return &productRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

type productRepository struct {
	dao    dao.ProductDAO
	cache  cache.ProductCache
	logger *elog.Component
}

func (p *productRepository) Create(ctx context.Context, product domain.Product) (int64, error) {
	id, err := p.dao.Create(ctx, p.toEntity(product))
	if err != nil {
		return 0, err
	}
	p.cache.DelLists()
	return id, nil
}

func (p *productRepository) Update(ctx context.Context, product domain.Product) error {
	if err := p.dao.Update(ctx, p.toEntity(product)); err != nil {
		return err
	}
	// 任何商品写入都要在返回前显式失效缓存, 不能指望 TTL
	p.cache.DelProduct(product.ID)
	p.cache.DelLists()
	return nil
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	if res, ok := p.cache.GetProduct(id); ok {
		return res, nil
	}
	product, err := p.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	res := p.toDomain(product)
	p.cache.SetProduct(res)
	return res, nil
}

func (p *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	product, err := p.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	if res, ok := p.cache.GetList(offset, limit); ok {
		return res, nil
	}
	products, err := p.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	res := slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	})
	p.cache.SetList(offset, limit, res)
	return res, nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.dao.Count(ctx)
}

func (p *productRepository) ReserveStock(ctx context.Context, id int64, quantity int64) error {
	if err := p.dao.ReserveStock(ctx, id, quantity); err != nil {
		return err
	}
	p.cache.DelProduct(id)
	return nil
}

func (p *productRepository) ReleaseStock(ctx context.Context, id int64, quantity int64) error {
	if err := p.dao.ReleaseStock(ctx, id, quantity); err != nil {
		return err
	}
	p.cache.DelProduct(id)
	return nil
}

func (p *productRepository) CommitSale(ctx context.Context, id int64, quantity int64) error {
	if err := p.dao.CommitSale(ctx, id, quantity); err != nil {
		return err
	}
	p.cache.DelProduct(id)
	return nil
}

func (p *productRepository) toEntity(product domain.Product) dao.Product {
	colors, err := json.Marshal(product.Colors)
	if err != nil {
		p.logger.Warn("序列化商品颜色失败", elog.FieldErr(err), elog.Int64("pid", product.ID))
	}
	return dao.Product{
		Id:          product.ID,
		SN:          product.SN,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Sold:        product.Sold,
		Colors:      string(colors),
	}
}

func (p *productRepository) toDomain(product dao.Product) domain.Product {
	var colors []string
	if product.Colors != "" {
		if err := json.Unmarshal([]byte(product.Colors), &colors); err != nil {
			p.logger.Warn("反序列化商品颜色失败", elog.FieldErr(err), elog.Int64("pid", product.Id))
		}
	}
	return domain.Product{
		ID:          product.Id,
		SN:          product.SN,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Sold:        product.Sold,
		Colors:      colors,
		Ctime:       product.Ctime,
		Utime:       product.Utime,
	}
}
