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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrCouponInvalid 优惠券不存在、未启用或已过期
	ErrCouponInvalid = errors.New("优惠券无效")
	// ErrAlreadyRedeemed 同一用户最多核销一次
	ErrAlreadyRedeemed = errors.New("优惠券已被该用户使用")
	// ErrUsageLimitReached 核销次数已达上限
	ErrUsageLimitReached = errors.New("优惠券使用次数已达上限")
)

const uniqueIndexErrNo uint16 = 1062

type CouponDAO interface {
	Create(ctx context.Context, c Coupon) (int64, error)
	FindByCode(ctx context.Context, code string) (Coupon, error)
	List(ctx context.Context, offset, limit int) ([]Coupon, error)
	// Redeem 核销: 新增核销记录并递增使用计数,
	// 两个变更在同一事务内, 要么都发生要么都不发生
	Redeem(ctx context.Context, code string, uid int64) (Coupon, error)
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &GORMCouponDAO{db: db}
}

type GORMCouponDAO struct {
	db *egorm.Component
}

func (g *GORMCouponDAO) Create(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMCouponDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var res Coupon
	err := g.db.WithContext(ctx).First(&res, "code = ?", code).Error
	return res, err
}

func (g *GORMCouponDAO) List(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var res []Coupon
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMCouponDAO) Redeem(ctx context.Context, code string, uid int64) (Coupon, error) {
	var res Coupon
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var c Coupon
		if err := tx.First(&c, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCouponInvalid
			}
			return err
		}

		// 唯一索引 (coupon_id, uid) 保证一个用户最多出现一次
		err := tx.Create(&CouponRedemption{
			CouponId: c.Id,
			Uid:      uid,
			Ctime:    now,
			Utime:    now,
		}).Error
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
				return ErrAlreadyRedeemed
			}
			return err
		}

		// 计数递增是条件更新, 并发核销同一张券时最多 max_usage 行成功
		upd := tx.Model(&Coupon{}).
			Where("id = ? AND active = 1 AND expire_at > ? AND usage_count < max_usage", c.Id, now).
			Updates(map[string]any{
				"usage_count": gorm.Expr("`usage_count` + 1"),
				"utime":       now,
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			// 区分失败原因: 事务回滚会把上面的核销记录一起撤销
			if !c.Active || c.ExpireAt <= now {
				return ErrCouponInvalid
			}
			return ErrUsageLimitReached
		}
		res = c
		res.UsageCount++
		return nil
	})
	return res, err
}
