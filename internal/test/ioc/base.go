package testioc

import (
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitMQ, InitTieredCache)

var tc *tieredcache.Cache

func InitTieredCache() *tieredcache.Cache {
	if tc != nil {
		return tc
	}
	tc = tieredcache.NewCache()
	return tc
}
