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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context, status domain.OrderStatus) (int64, error)
	// UpdateStatus 条件更新, from 不匹配时返回 dao.ErrStatusConflict
	UpdateStatus(ctx context.Context, o domain.Order, from, to domain.OrderStatus, fields map[string]any) error
	// DelUserListCache 给结算流程用: 下单后用户订单历史立即失效
	DelUserListCache(uid int64)
}

func NewOrderRepository(d dao.OrderDAO, c cache.OrderCache) OrderRepository {
	return &orderRepository{dao: d, cache: c}
}

type orderRepository struct {
	dao   dao.OrderDAO
	cache cache.OrderCache
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(o), slice.Map(o.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			Color:     src.Color,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	}))
	if err != nil {
		return 0, err
	}
	r.cache.DelUserList(o.UID)
	return id, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	if res, ok := r.cache.Get(id); ok {
		return res, nil
	}
	o, items, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o, items)
	r.cache.Set(res)
	return res, nil
}

func (r *orderRepository) FindBySNAndUID(ctx context.Context, sn string, uid int64) (domain.Order, error) {
	o, items, err := r.dao.FindBySNAndUID(ctx, sn, uid)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	// 只缓存第一页, 用户订单历史的绝大多数访问都落在这里
	firstPage := offset == 0
	if firstPage {
		if res, ok := r.cache.GetUserList(uid); ok && len(res) <= limit {
			return res, nil
		}
	}
	os, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	res := slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	})
	if firstPage {
		r.cache.SetUserList(uid, res)
	}
	return res, nil
}

func (r *orderRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *orderRepository) List(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	}), nil
}

func (r *orderRepository) Count(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return r.dao.Count(ctx, status.ToUint8())
}

func (r *orderRepository) UpdateStatus(ctx context.Context, o domain.Order, from, to domain.OrderStatus, fields map[string]any) error {
	if err := r.dao.UpdateStatus(ctx, o.ID, from.ToUint8(), to.ToUint8(), fields); err != nil {
		return err
	}
	r.cache.Del(o.ID)
	r.cache.DelUserList(o.UID)
	return nil
}

func (r *orderRepository) DelUserListCache(uid int64) {
	r.cache.DelUserList(uid)
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		SN:                 o.SN,
		Uid:                o.UID,
		Status:             o.Status.ToUint8(),
		TotalPrice:         o.TotalPrice,
		TaxPrice:           o.TaxPrice,
		ShippingPrice:      o.ShippingPrice,
		PaymentStatus:      o.PaymentInfo.Status,
		PaymentGateway:     o.PaymentInfo.Gateway,
		PaymentCurrency:    o.PaymentInfo.Currency,
		PaymentMethod:      o.PaymentInfo.Method,
		IsPaid:             o.IsPaid,
		PaidAt:             o.PaidAt,
		IsDelivered:        o.IsDelivered,
		DeliveredAt:        o.DeliveredAt,
		ShippingAddress:    o.ShippingInfo.Address,
		ShippingCity:       o.ShippingInfo.City,
		ShippingState:      o.ShippingInfo.State,
		ShippingPhone:      o.ShippingInfo.Phone,
		ShippingCountry:    o.ShippingInfo.Country,
		ShippingPostalCode: o.ShippingInfo.PostalCode,
		CancellationReason: o.CancellationReason,
	}
}

func (r *orderRepository) toDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:            o.Id,
		SN:            o.SN,
		UID:           o.Uid,
		Status:        domain.OrderStatus(o.Status),
		TotalPrice:    o.TotalPrice,
		TaxPrice:      o.TaxPrice,
		ShippingPrice: o.ShippingPrice,
		PaymentInfo: domain.PaymentInfo{
			Status:   o.PaymentStatus,
			Gateway:  o.PaymentGateway,
			Currency: o.PaymentCurrency,
			Method:   o.PaymentMethod,
		},
		IsPaid:      o.IsPaid,
		PaidAt:      o.PaidAt,
		IsDelivered: o.IsDelivered,
		DeliveredAt: o.DeliveredAt,
		ShippingInfo: domain.ShippingInfo{
			Address:    o.ShippingAddress,
			City:       o.ShippingCity,
			State:      o.ShippingState,
			Phone:      o.ShippingPhone,
			Country:    o.ShippingCountry,
			PostalCode: o.ShippingPostalCode,
		},
		CancellationReason: o.CancellationReason,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductId,
				Color:     src.Color,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}
