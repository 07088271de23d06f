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
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
)

type CartCache interface {
	Get(uid int64) (domain.Cart, bool)
	Set(c domain.Cart)
	Del(uid int64)
}

// CartTieredCache 购物车变动频繁, 快照放短期层
type CartTieredCache struct {
	tc *tieredcache.Cache
}

func NewCartTieredCache(tc *tieredcache.Cache) CartCache {
	return &CartTieredCache{tc: tc}
}

func (c *CartTieredCache) Get(uid int64) (domain.Cart, bool) {
	var res domain.Cart
	ok := c.tc.GetAs(tieredcache.TierShort, c.key(uid), &res)
	return res, ok
}

func (c *CartTieredCache) Set(cart domain.Cart) {
	_ = c.tc.Set(tieredcache.TierShort, c.key(cart.UID), cart)
}

func (c *CartTieredCache) Del(uid int64) {
	c.tc.Delete(tieredcache.TierShort, c.key(uid))
}

func (c *CartTieredCache) key(uid int64) string {
	return tieredcache.Key("cart", uid)
}
