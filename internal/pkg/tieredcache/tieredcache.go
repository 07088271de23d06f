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

package tieredcache

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Tier uint8

const (
	// TierShort 短期缓存, 存放商品列表、库存快照这类写后很快失效的数据
	TierShort Tier = iota + 1
	// TierMedium 中期缓存, 存放单个商品、订单详情
	TierMedium
	// TierLong 长期缓存, 存放极少变化的数据
	TierLong
)

const (
	shortTTL  = 20 * time.Minute
	mediumTTL = 7 * 24 * time.Hour
	longTTL   = 30 * 24 * time.Hour

	defaultMaxBytes = 100 * 1024 * 1024
)

// Key 生成 {entityType}:{id} 形式的缓存键
func Key(entityType string, id any) string {
	return fmt.Sprintf("%s:%v", entityType, id)
}

type tierStore struct {
	lru      *expirable.LRU[string, []byte]
	maxBytes int64
	bytes    atomic.Int64
}

func newTierStore(maxEntries int, maxBytes int64, ttl time.Duration) *tierStore {
	s := &tierStore{maxBytes: maxBytes}
	s.lru = expirable.NewLRU[string, []byte](maxEntries, func(key string, value []byte) {
		s.bytes.Add(int64(-len(value)))
	}, ttl)
	return s
}

func (s *tierStore) set(key string, val []byte) {
	// Add 覆盖同名键时不触发回调, 需要先扣掉旧值的体积
	if old, ok := s.lru.Peek(key); ok {
		s.bytes.Add(int64(-len(old)))
	}
	s.bytes.Add(int64(len(val)))
	s.lru.Add(key, val)
	// 字节上限是近似值, 超出则按 LRU 逐个淘汰
	for s.bytes.Load() > s.maxBytes {
		if _, _, ok := s.lru.RemoveOldest(); !ok {
			break
		}
	}
}

func (s *tierStore) purge() {
	s.lru.Purge()
	s.bytes.Store(0)
}

// Cache 三层进程内缓存。各层仅在容量与过期时间上不同,
// 值以 JSON 字节存放, 同一个键空间下可能存着不同形状的投影,
// 由调用方通过 GetAs 的目标类型区分。
//
// 缓存永远是尽力而为: 任何失败都不应该阻塞正确性,
// 写路径必须在返回成功前显式删除对应的键, 不能只依赖 TTL。
type Cache struct {
	stores map[Tier]*tierStore
}

type Option func(map[Tier]*tierStore)

// WithTier 覆盖某一层的容量配置, 主要用于测试
func WithTier(t Tier, maxEntries int, maxBytes int64, ttl time.Duration) Option {
	return func(stores map[Tier]*tierStore) {
		stores[t] = newTierStore(maxEntries, maxBytes, ttl)
	}
}

func NewCache(opts ...Option) *Cache {
	stores := map[Tier]*tierStore{
		TierShort:  newTierStore(1000, defaultMaxBytes, shortTTL),
		TierMedium: newTierStore(1000, defaultMaxBytes, mediumTTL),
		TierLong:   newTierStore(500, defaultMaxBytes, longTTL),
	}
	for _, opt := range opts {
		opt(stores)
	}
	return &Cache{stores: stores}
}

func (c *Cache) Set(tier Tier, key string, val any) error {
	s, ok := c.stores[tier]
	if !ok {
		return fmt.Errorf("未知的缓存层: %d", tier)
	}
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("序列化缓存值失败: %w", err)
	}
	s.set(key, data)
	return nil
}

func (c *Cache) Get(tier Tier, key string) ([]byte, bool) {
	s, ok := c.stores[tier]
	if !ok {
		return nil, false
	}
	return s.lru.Get(key)
}

// GetAs 命中时将缓存值解码到 dst, 解码失败视为未命中
func (c *Cache) GetAs(tier Tier, key string, dst any) bool {
	data, ok := c.Get(tier, key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c *Cache) Delete(tier Tier, key string) {
	if s, ok := c.stores[tier]; ok {
		s.lru.Remove(key)
	}
}

// ClearTier 清空一整层, 订单落库后用它粗粒度地废弃短期的库存快照
func (c *Cache) ClearTier(tier Tier) {
	if s, ok := c.stores[tier]; ok {
		s.purge()
	}
}

func (c *Cache) Len(tier Tier) int {
	s, ok := c.stores[tier]
	if !ok {
		return 0
	}
	return s.lru.Len()
}
