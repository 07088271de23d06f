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
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
)

type OrderCache interface {
	Get(id int64) (domain.Order, bool)
	Set(o domain.Order)
	Del(id int64)
	GetUserList(uid int64) ([]domain.Order, bool)
	SetUserList(uid int64, os []domain.Order)
	DelUserList(uid int64)
}

// OrderTieredCache 订单进入终态后很少变动, 放中期层
type OrderTieredCache struct {
	tc *tieredcache.Cache
}

func NewOrderTieredCache(tc *tieredcache.Cache) OrderCache {
	return &OrderTieredCache{tc: tc}
}

func (c *OrderTieredCache) Get(id int64) (domain.Order, bool) {
	var res domain.Order
	ok := c.tc.GetAs(tieredcache.TierMedium, tieredcache.Key("order", id), &res)
	return res, ok
}

func (c *OrderTieredCache) Set(o domain.Order) {
	_ = c.tc.Set(tieredcache.TierMedium, tieredcache.Key("order", o.ID), o)
}

func (c *OrderTieredCache) Del(id int64) {
	c.tc.Delete(tieredcache.TierMedium, tieredcache.Key("order", id))
}

func (c *OrderTieredCache) GetUserList(uid int64) ([]domain.Order, bool) {
	var res []domain.Order
	ok := c.tc.GetAs(tieredcache.TierMedium, c.userKey(uid), &res)
	return res, ok
}

func (c *OrderTieredCache) SetUserList(uid int64, os []domain.Order) {
	_ = c.tc.Set(tieredcache.TierMedium, c.userKey(uid), os)
}

func (c *OrderTieredCache) DelUserList(uid int64) {
	c.tc.Delete(tieredcache.TierMedium, c.userKey(uid))
}

func (c *OrderTieredCache) userKey(uid int64) string {
	return tieredcache.Key("orders:user", uid)
}
