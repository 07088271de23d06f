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
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	repository.OrderRepository
	order   domain.Order
	created *domain.Order
	updated bool
	from    domain.OrderStatus
	to      domain.OrderStatus
	fields  map[string]any
}

func (f *fakeOrderRepo) Create(_ context.Context, o domain.Order) (int64, error) {
	f.created = &o
	return 1, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, _ int64) (domain.Order, error) {
	return f.order, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ domain.Order, from, to domain.OrderStatus, fields map[string]any) error {
	f.updated = true
	f.from, f.to, f.fields = from, to, fields
	return nil
}

func newTestService(repo repository.OrderRepository) Service {
	gen := sequencenumber.NewGeneratorWith(
		func(t time.Time) int64 { return 1700000000000 },
		func() string { return "AAAAAAAAAAAAAAAAAAAAAA" },
	)
	return NewService(repo, gen)
}

func TestService_CreateOrder_GeneratesSN(t *testing.T) {
	t.Parallel()
	repo := &fakeOrderRepo{}
	svc := newTestService(repo)

	o, err := svc.CreateOrder(context.Background(), domain.Order{UID: 6789, TotalPrice: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Len(t, o.SN, 32)
	assert.Equal(t, domain.StatusPending, o.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, o.SN, repo.created.SN)
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		order   domain.Order
		reason  string
		wantErr error
	}{
		{
			name:   "待确认可取消",
			order:  domain.Order{ID: 1, Status: domain.StatusPending},
			reason: "买错了",
		},
		{
			name:    "原因必填",
			order:   domain.Order{ID: 1, Status: domain.StatusPending},
			reason:  "",
			wantErr: ErrReasonRequired,
		},
		{
			name:    "已发货不可取消",
			order:   domain.Order{ID: 1, Status: domain.StatusShipped},
			reason:  "不想要了",
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "已取消不可再取消",
			order:   domain.Order{ID: 1, Status: domain.StatusCancelled},
			reason:  "重复请求",
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeOrderRepo{order: tc.order}
			svc := newTestService(repo)
			err := svc.Cancel(context.Background(), tc.order.ID, tc.reason)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, repo.updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, repo.to)
			assert.Equal(t, tc.reason, repo.fields["cancellation_reason"])
		})
	}
}

func TestService_MarkPaid(t *testing.T) {
	t.Parallel()
	repo := &fakeOrderRepo{order: domain.Order{ID: 1, Status: domain.StatusPending}}
	svc := newTestService(repo)

	err := svc.MarkPaid(context.Background(), 1, domain.GatewayCashOnDelivery, "EGP", "cash")
	require.NoError(t, err)
	assert.Equal(t, true, repo.fields["is_paid"])
	assert.Equal(t, domain.PaymentStatusCompleted, repo.fields["payment_status"])
}

func TestService_MarkPaid_Rejected(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		order   domain.Order
		wantErr error
	}{
		{
			name:    "不可重复支付",
			order:   domain.Order{ID: 1, Status: domain.StatusConfirmed, IsPaid: true},
			wantErr: ErrAlreadyPaid,
		},
		{
			name:    "已取消订单不可支付",
			order:   domain.Order{ID: 1, Status: domain.StatusCancelled},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeOrderRepo{order: tc.order}
			svc := newTestService(repo)
			err := svc.MarkPaid(context.Background(), 1, domain.GatewayStripe, "EGP", "card")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, repo.updated)
		})
	}
}

func TestService_MarkDelivered(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		order   domain.Order
		wantErr error
	}{
		{
			name:  "已发货且已支付可送达",
			order: domain.Order{ID: 1, Status: domain.StatusShipped, IsPaid: true},
		},
		{
			name:    "未支付不可送达",
			order:   domain.Order{ID: 1, Status: domain.StatusShipped},
			wantErr: ErrPaymentRequired,
		},
		{
			name:    "不可重复送达",
			order:   domain.Order{ID: 1, Status: domain.StatusDelivered, IsPaid: true, IsDelivered: true},
			wantErr: ErrAlreadyDelivered,
		},
		{
			name:    "未发货不可送达",
			order:   domain.Order{ID: 1, Status: domain.StatusProcessing, IsPaid: true},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeOrderRepo{order: tc.order}
			svc := newTestService(repo)
			err := svc.MarkDelivered(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusDelivered, repo.to)
			assert.Equal(t, true, repo.fields["is_delivered"])
		})
	}
}
