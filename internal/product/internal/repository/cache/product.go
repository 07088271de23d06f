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

package cache

import (
	"fmt"

	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
)

type ProductCache interface {
	GetProduct(id int64) (domain.Product, bool)
	SetProduct(p domain.Product)
	DelProduct(id int64)
	GetList(offset, limit int) ([]domain.Product, bool)
	SetList(offset, limit int, ps []domain.Product)
	// DelLists 商品列表没有逐键失效的必要, 直接清掉短期层
	DelLists()
}

// ProductTieredCache 商品详情走中期层, 列表快照走短期层。
// 缓存的任何失败都只是未命中, 不会向上冒泡。
type ProductTieredCache struct {
	tc *tieredcache.Cache
}

func NewProductTieredCache(tc *tieredcache.Cache) ProductCache {
	return &ProductTieredCache{tc: tc}
}

func (c *ProductTieredCache) GetProduct(id int64) (domain.Product, bool) {
	var p domain.Product
	ok := c.tc.GetAs(tieredcache.TierMedium, c.productKey(id), &p)
	return p, ok
}

func (c *ProductTieredCache) SetProduct(p domain.Product) {
	_ = c.tc.Set(tieredcache.TierMedium, c.productKey(p.ID), p)
}

func (c *ProductTieredCache) DelProduct(id int64) {
	c.tc.Delete(tieredcache.TierMedium, c.productKey(id))
}

func (c *ProductTieredCache) GetList(offset, limit int) ([]domain.Product, bool) {
	var ps []domain.Product
	ok := c.tc.GetAs(tieredcache.TierShort, c.listKey(offset, limit), &ps)
	return ps, ok
}

func (c *ProductTieredCache) SetList(offset, limit int, ps []domain.Product) {
	_ = c.tc.Set(tieredcache.TierShort, c.listKey(offset, limit), ps)
}

func (c *ProductTieredCache) DelLists() {
	c.tc.ClearTier(tieredcache.TierShort)
}

func (c *ProductTieredCache) productKey(id int64) string {
	return tieredcache.Key("product", id)
}

func (c *ProductTieredCache) listKey(offset, limit int) string {
	return fmt.Sprintf("products:list:%d:%d", offset, limit)
}
