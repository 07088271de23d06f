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
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "product:123", Key("product", 123))
	assert.Equal(t, "orders:user:7", Key("orders:user", int64(7)))
}

func TestCache_SetGet(t *testing.T) {
	t.Parallel()
	c := NewCache()

	type snapshot struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Quantity int64  `json:"quantity"`
	}
	err := c.Set(TierMedium, Key("product", 1), snapshot{ID: 1, Name: "键盘", Quantity: 10})
	require.NoError(t, err)

	var got snapshot
	ok := c.GetAs(TierMedium, Key("product", 1), &got)
	require.True(t, ok)
	assert.Equal(t, snapshot{ID: 1, Name: "键盘", Quantity: 10}, got)

	// 不同层之间互不可见
	_, ok = c.Get(TierShort, Key("product", 1))
	assert.False(t, ok)
}

func TestCache_DeleteBeatsTTL(t *testing.T) {
	t.Parallel()
	// 写路径显式删除后, 即使远未到 TTL 也读不到旧值
	c := NewCache()
	require.NoError(t, c.Set(TierMedium, Key("product", 2), map[string]any{"quantity": 5}))
	c.Delete(TierMedium, Key("product", 2))
	_, ok := c.Get(TierMedium, Key("product", 2))
	assert.False(t, ok)
}

func TestCache_ClearTier(t *testing.T) {
	t.Parallel()
	c := NewCache()
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Set(TierShort, Key("products:list", i), []int64{int64(i)}))
	}
	require.NoError(t, c.Set(TierMedium, Key("order", 1), "keep"))

	c.ClearTier(TierShort)

	assert.Equal(t, 0, c.Len(TierShort))
	var kept string
	assert.True(t, c.GetAs(TierMedium, Key("order", 1), &kept))
}

func TestCache_TTLExpiry(t *testing.T) {
	t.Parallel()
	c := NewCache(WithTier(TierShort, 16, defaultMaxBytes, 20*time.Millisecond))
	require.NoError(t, c.Set(TierShort, "k", "v"))
	_, ok := c.Get(TierShort, "k")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = c.Get(TierShort, "k")
	assert.False(t, ok)
}

func TestCache_EntryBoundLRU(t *testing.T) {
	t.Parallel()
	c := NewCache(WithTier(TierShort, 3, defaultMaxBytes, time.Minute))
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Set(TierShort, fmt.Sprintf("k%d", i), i))
	}
	assert.Equal(t, 3, c.Len(TierShort))
	// 最早写入的被淘汰
	_, ok := c.Get(TierShort, "k0")
	assert.False(t, ok)
	_, ok = c.Get(TierShort, "k4")
	assert.True(t, ok)
}

func TestCache_ByteCeiling(t *testing.T) {
	t.Parallel()
	// 每个值序列化后约 1KB, 上限 3KB, 写入 5 个后旧值被逐出
	c := NewCache(WithTier(TierShort, 1000, 3*1024, time.Minute))
	val := make([]byte, 760) // base64 后约 1KB
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Set(TierShort, fmt.Sprintf("k%d", i), val))
	}
	assert.LessOrEqual(t, c.Len(TierShort), 3)
	_, ok := c.Get(TierShort, "k4")
	assert.True(t, ok)
}

func TestCache_OverwriteAccounting(t *testing.T) {
	t.Parallel()
	c := NewCache(WithTier(TierShort, 16, 2*1024, time.Minute))
	// 反复覆盖同一个键不应该把字节占用越累越高
	val := make([]byte, 700)
	for i := 0; i < 50; i++ {
		require.NoError(t, c.Set(TierShort, "hot", val))
	}
	_, ok := c.Get(TierShort, "hot")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len(TierShort))
}

func TestCache_UnknownTier(t *testing.T) {
	t.Parallel()
	c := NewCache()
	err := c.Set(Tier(99), "k", "v")
	assert.Error(t, err)
	_, ok := c.Get(Tier(99), "k")
	assert.False(t, ok)
}
