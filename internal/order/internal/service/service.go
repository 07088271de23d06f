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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound     = dao.ErrOrderNotFound
	ErrInvalidTransition = errors.New("订单状态不允许该操作")
	ErrReasonRequired    = errors.New("取消订单必须填写原因")
	ErrPaymentRequired   = errors.New("订单尚未支付")
	ErrAlreadyPaid       = errors.New("订单已经支付过了")
	ErrAlreadyDelivered  = errors.New("订单已经送达过了")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateOrder 只由结算流程调用, 序列号由内部生成
	CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	// List 后台订单查询, status 为 0 表示全部
	List(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	// UpdateStatus 管理端状态流转, 按状态机校验。
	// 取消和退款必须填写原因
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus, reason string) error
	MarkPaid(ctx context.Context, orderID int64, gateway, currency, method string) error
	MarkDelivered(ctx context.Context, orderID int64) error
	Cancel(ctx context.Context, orderID int64, reason string) error
}

func NewService(repo repository.OrderRepository, snGenerator *sequencenumber.Generator) Service {
	return &service{repo: repo, snGenerator: snGenerator}
}

type service struct {
	repo        repository.OrderRepository
	snGenerator *sequencenumber.Generator
}

func (s *service) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	sn, err := s.snGenerator.Generate(o.UID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	o.SN = sn
	if o.Status == 0 {
		o.Status = domain.StatusPending
	}
	id, err := s.repo.Create(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = id
	return o, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error) {
	return s.repo.FindBySNAndUID(ctx, sn, uid)
}

func (s *service) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) List(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus, reason string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !o.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, o.Status, status)
	}
	fields := map[string]any{}
	switch status {
	case domain.StatusCancelled, domain.StatusRefunded:
		if reason == "" {
			return ErrReasonRequired
		}
		fields["cancellation_reason"] = reason
		fields["is_delivered"] = false
	case domain.StatusDelivered:
		if !o.IsPaid {
			return ErrPaymentRequired
		}
		fields["is_delivered"] = true
		fields["delivered_at"] = time.Now().UnixMilli()
	}
	return s.repo.UpdateStatus(ctx, o, o.Status, status, fields)
}

func (s *service) MarkPaid(ctx context.Context, orderID int64, gateway, currency, method string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.IsPaid {
		return ErrAlreadyPaid
	}
	if o.Status == domain.StatusCancelled || o.Status == domain.StatusRefunded {
		return fmt.Errorf("%w: 订单已取消或已退款", ErrInvalidTransition)
	}
	return s.repo.UpdateStatus(ctx, o, o.Status, o.Status, map[string]any{
		"is_paid":          true,
		"paid_at":          time.Now().UnixMilli(),
		"payment_status":   domain.PaymentStatusCompleted,
		"payment_gateway":  gateway,
		"payment_currency": currency,
		"payment_method":   method,
	})
}

func (s *service) MarkDelivered(ctx context.Context, orderID int64) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.IsDelivered {
		return ErrAlreadyDelivered
	}
	if !o.IsPaid {
		return ErrPaymentRequired
	}
	if !o.Status.CanTransitionTo(domain.StatusDelivered) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, o.Status, domain.StatusDelivered)
	}
	return s.repo.UpdateStatus(ctx, o, o.Status, domain.StatusDelivered, map[string]any{
		"is_delivered": true,
		"delivered_at": time.Now().UnixMilli(),
	})
}

func (s *service) Cancel(ctx context.Context, orderID int64, reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !o.Status.CanTransitionTo(domain.StatusCancelled) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, o.Status, domain.StatusCancelled)
	}
	return s.repo.UpdateStatus(ctx, o, o.Status, domain.StatusCancelled, map[string]any{
		"cancellation_reason": reason,
		"is_delivered":        false,
	})
}
