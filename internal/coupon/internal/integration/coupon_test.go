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

//go:build e2e

package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/coupon/internal/integration/startup"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServiceTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc coupon.Service
	dao dao.CouponDAO
}

func (s *ServiceTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.db = testioc.InitDB()
	s.dao = dao.NewCouponGORMDAO(s.db)
}

func (s *ServiceTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `coupons`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `coupon_redemptions`").Error)
}

func (s *ServiceTestSuite) create(c coupon.Coupon) int64 {
	id, err := s.svc.Create(context.Background(), c)
	require.NoError(s.T(), err)
	return id
}

func (s *ServiceTestSuite) TestRedeem() {
	t := s.T()
	ctx := context.Background()
	s.create(coupon.Coupon{
		Code:     "WELCOME10",
		Discount: 10,
		Active:   true,
		ExpireAt: time.Now().Add(time.Hour).UnixMilli(),
		MaxUsage: 5,
	})

	c, err := s.svc.Redeem(ctx, "WELCOME10", 123)
	require.NoError(t, err)
	assert.Equal(t, int64(10), c.Discount)
	assert.Equal(t, int64(1), c.UsageCount)

	// 同一个用户不能核销第二次
	_, err = s.svc.Redeem(ctx, "WELCOME10", 123)
	require.ErrorIs(t, err, coupon.ErrAlreadyRedeemed)

	got, err := s.dao.FindByCode(ctx, "WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UsageCount)
}

func (s *ServiceTestSuite) TestRedeemInvalid() {
	t := s.T()
	ctx := context.Background()
	s.create(coupon.Coupon{
		Code:     "EXPIRED",
		Discount: 20,
		Active:   true,
		ExpireAt: time.Now().Add(-time.Hour).UnixMilli(),
		MaxUsage: 5,
	})
	s.create(coupon.Coupon{
		Code:     "DISABLED",
		Discount: 20,
		Active:   false,
		ExpireAt: time.Now().Add(time.Hour).UnixMilli(),
		MaxUsage: 5,
	})

	_, err := s.svc.Redeem(ctx, "EXPIRED", 123)
	assert.ErrorIs(t, err, coupon.ErrCouponInvalid)
	_, err = s.svc.Redeem(ctx, "DISABLED", 123)
	assert.ErrorIs(t, err, coupon.ErrCouponInvalid)
	_, err = s.svc.Redeem(ctx, "NO-SUCH-CODE", 123)
	assert.ErrorIs(t, err, coupon.ErrCouponInvalid)

	// 失败的核销不会留下记录
	var cnt int64
	require.NoError(t, s.db.Model(&dao.CouponRedemption{}).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

// 并发核销同一张券: 上限 5 次, 20 个用户抢, 恰好 5 个成功
func (s *ServiceTestSuite) TestConcurrentRedeem() {
	t := s.T()
	ctx := context.Background()
	id := s.create(coupon.Coupon{
		Code:     "FLASH50",
		Discount: 50,
		Active:   true,
		ExpireAt: time.Now().Add(time.Hour).UnixMilli(),
		MaxUsage: 5,
	})

	var (
		wg      sync.WaitGroup
		success int64
	)
	for i := 0; i < 20; i++ {
		uid := int64(1000 + i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Redeem(ctx, "FLASH50", uid)
			if err == nil {
				atomic.AddInt64(&success, 1)
				return
			}
			assert.ErrorIs(t, err, coupon.ErrUsageLimitReached)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5), success)
	got, err := s.dao.FindByCode(ctx, "FLASH50")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.UsageCount)

	// 超限回滚的核销记录不会残留
	var cnt int64
	require.NoError(t, s.db.Model(&dao.CouponRedemption{}).
		Where("coupon_id = ?", id).Count(&cnt).Error)
	assert.Equal(t, int64(5), cnt)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
