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

	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout/internal/event"
	"github.com/ecodeclub/eshop/internal/checkout/internal/gateway"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/mqx"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEmptyCart         = errors.New("购物车是空的")
	ErrInvalidSignature  = gateway.ErrInvalidSignature
	ErrCartNotFound      = cart.ErrCartNotFound
	ErrAddressNotFound   = address.ErrAddressNotFound
	ErrInsufficientStock = product.ErrInsufficientStock
)

var nowFunc = func() int64 { return time.Now().UnixMilli() }

type Config struct {
	// Currency 货到付款订单的币种
	Currency string
	// RestockOnCancel 取消订单时是否归还库存
	RestockOnCancel bool
}

//go:generate mockgen -source=./service.go -package=checkoutmocks -destination=../../mocks/checkout.mock.go -typed Service
type Service interface {
	// CreateCashOrder 货到付款下单, 同步走完结算流程
	CreateCashOrder(ctx context.Context, uid, cartID, addressID int64) (order.Order, error)
	// CreateCheckoutSession 创建在线支付收银台会话, 返回跳转地址
	CreateCheckoutSession(ctx context.Context, uid, cartID int64, successURL, cancelURL string) (string, error)
	// HandleWebhook 处理支付渠道回调。只有签名校验失败会返回错误,
	// 签名通过之后的任何内部错误都记日志并吞掉, 避免渠道无限重发
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
	// CancelOrder 取消订单, 按配置决定是否归还库存
	CancelOrder(ctx context.Context, uid int64, sn string, reason string) error
}

func NewService(cartSvc cart.Service,
	productSvc product.Service,
	orderSvc order.Service,
	addressSvc address.Service,
	gw gateway.PaymentGateway,
	producer mqx.Producer[event.OrderFinalizedEvent],
	tc *tieredcache.Cache,
	cfg Config) Service {
	return &service{
		cartSvc:    cartSvc,
		productSvc: productSvc,
		orderSvc:   orderSvc,
		addressSvc: addressSvc,
		gateway:    gw,
		producer:   producer,
		tc:         tc,
		cfg:        cfg,
		logger:     elog.DefaultLogger,
	}
}

type service struct {
	cartSvc    cart.Service
	productSvc product.Service
	orderSvc   order.Service
	addressSvc address.Service
	gateway    gateway.PaymentGateway
	producer   mqx.Producer[event.OrderFinalizedEvent]
	tc         *tieredcache.Cache
	cfg        Config
	logger     *elog.Component
}

func (s *service) CreateCashOrder(ctx context.Context, uid, cartID, addressID int64) (order.Order, error) {
	c, err := s.findOwnedCart(ctx, uid, cartID)
	if err != nil {
		return order.Order{}, err
	}
	addr, err := s.addressSvc.FindByIDAndUID(ctx, addressID, uid)
	if err != nil {
		return order.Order{}, err
	}
	return s.finalizeOrder(ctx, c, order.ShippingInfo{
		Address:    addr.Details,
		City:       addr.City,
		State:      addr.State,
		Phone:      addr.Phone,
		Country:    addr.Country,
		PostalCode: addr.PostalCode,
	}, order.PaymentInfo{
		Status:   order.PaymentStatusPending,
		Gateway:  order.GatewayCashOnDelivery,
		Currency: s.cfg.Currency,
	}, order.StatusPending, false)
}

func (s *service) CreateCheckoutSession(ctx context.Context, uid, cartID int64, successURL, cancelURL string) (string, error) {
	c, err := s.findOwnedCart(ctx, uid, cartID)
	if err != nil {
		return "", err
	}
	if len(c.Items) == 0 {
		return "", ErrEmptyCart
	}
	sess, err := s.gateway.CreateSession(ctx, gateway.SessionRequest{
		UID:         uid,
		CartID:      c.ID,
		Amount:      c.PayableAmount(),
		Currency:    s.cfg.Currency,
		Description: fmt.Sprintf("订单结算, %d件商品", len(c.Items)),
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

func (s *service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	evt, err := s.gateway.ParseWebhook(payload, sigHeader)
	if errors.Is(err, gateway.ErrInvalidSignature) {
		return err
	}
	if err != nil {
		s.logger.Error("解析支付回调失败", elog.FieldErr(err))
		return nil
	}
	if evt.Type != gateway.EventCheckoutCompleted {
		return nil
	}
	sess := evt.Session
	if !sess.Completed {
		return nil
	}

	c, err := s.cartSvc.FindByID(ctx, sess.CartID)
	if errors.Is(err, cart.ErrCartNotFound) {
		// 购物车已经被消费掉, 说明是重发的回调
		s.logger.Info("回调对应的购物车不存在, 跳过",
			elog.String("session_id", sess.ID),
			elog.Int64("cart_id", sess.CartID))
		return nil
	}
	if err != nil {
		s.logger.Error("查找购物车失败", elog.FieldErr(err), elog.Int64("cart_id", sess.CartID))
		return nil
	}

	isPaid := sess.PaymentStatus == gateway.PaymentStatusPaid
	_, err = s.finalizeOrder(ctx, c, order.ShippingInfo{
		Address:    sess.Shipping.Address,
		City:       sess.Shipping.City,
		State:      sess.Shipping.State,
		Phone:      sess.Shipping.Phone,
		Country:    sess.Shipping.Country,
		PostalCode: sess.Shipping.PostalCode,
	}, order.PaymentInfo{
		Status:   s.paymentStatus(sess.PaymentStatus),
		Gateway:  order.GatewayStripe,
		Currency: sess.Currency,
		Method:   "card",
	}, order.StatusProcessing, isPaid)
	if err != nil {
		s.logger.Error("回调结算失败",
			elog.FieldErr(err),
			elog.String("session_id", sess.ID),
			elog.Int64("cart_id", sess.CartID))
	}
	return nil
}

func (s *service) CancelOrder(ctx context.Context, uid int64, sn string, reason string) error {
	o, err := s.orderSvc.FindBySNAndUID(ctx, sn, uid)
	if err != nil {
		return err
	}
	if err := s.orderSvc.Cancel(ctx, o.ID, reason); err != nil {
		return err
	}
	if !s.cfg.RestockOnCancel {
		return nil
	}
	for _, item := range o.Items {
		if er := s.productSvc.ReleaseStock(ctx, item.ProductID, item.Quantity); er != nil {
			s.logger.Error("取消订单归还库存失败",
				elog.FieldErr(er),
				elog.Int64("product_id", item.ProductID),
				elog.Int64("quantity", item.Quantity))
		}
	}
	s.tc.ClearTier(tieredcache.TierShort)
	return nil
}

// finalizeOrder 结算的核心流程: 预留库存、落订单、确认销量、清购物车、
// 失效缓存、发事件。库存预留是全有或全无的, 任何一个商品不足都会把
// 本次已预留的部分全部归还
func (s *service) finalizeOrder(ctx context.Context, c cart.Cart,
	shipping order.ShippingInfo, payment order.PaymentInfo,
	status order.OrderStatus, isPaid bool) (order.Order, error) {
	if len(c.Items) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	productIDs, quantities := s.aggregate(c.Items)

	reserved := make([]int64, 0, len(productIDs))
	for _, pid := range productIDs {
		if err := s.productSvc.ReserveStock(ctx, pid, quantities[pid]); err != nil {
			s.releaseAll(ctx, reserved, quantities)
			return order.Order{}, fmt.Errorf("预留库存失败: %w", err)
		}
		reserved = append(reserved, pid)
	}

	o := order.Order{
		UID:           c.UID,
		ShippingInfo:  shipping,
		PaymentInfo:   payment,
		TotalPrice:    c.PayableAmount(),
		TaxPrice:      0,
		ShippingPrice: 0,
		Status:        status,
		IsPaid:        isPaid,
	}
	if isPaid {
		o.PaidAt = nowFunc()
	}
	for _, item := range c.Items {
		o.Items = append(o.Items, order.OrderItem{
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Color:     item.Color,
		})
	}
	o, err := s.orderSvc.CreateOrder(ctx, o)
	if err != nil {
		s.releaseAll(ctx, reserved, quantities)
		return order.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}

	for _, pid := range productIDs {
		if er := s.productSvc.CommitSale(ctx, pid, quantities[pid]); er != nil {
			s.logger.Error("更新销量失败", elog.FieldErr(er), elog.Int64("product_id", pid))
		}
	}

	if er := s.cartSvc.Delete(ctx, c.ID); er != nil && !errors.Is(er, cart.ErrCartNotFound) {
		s.logger.Error("删除购物车失败", elog.FieldErr(er), elog.Int64("cart_id", c.ID))
	}

	// 商品可售数量变了, 列表类缓存整层作废
	s.tc.ClearTier(tieredcache.TierShort)

	evt := event.OrderFinalizedEvent{
		OrderSN:    o.SN,
		UID:        o.UID,
		TotalPrice: o.TotalPrice,
		Gateway:    payment.Gateway,
		IsPaid:     isPaid,
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送订单完成事件失败", elog.FieldErr(er), elog.String("order_sn", o.SN))
	}
	return o, nil
}

func (s *service) findOwnedCart(ctx context.Context, uid, cartID int64) (cart.Cart, error) {
	c, err := s.cartSvc.FindByID(ctx, cartID)
	if err != nil {
		return cart.Cart{}, err
	}
	// 不暴露他人购物车的存在性
	if c.UID != uid {
		return cart.Cart{}, ErrCartNotFound
	}
	return c, nil
}

// aggregate 同一商品可能以不同颜色出现在多行, 库存按商品聚合后一次性校验
func (s *service) aggregate(items []cart.CartItem) ([]int64, map[int64]int64) {
	ids := make([]int64, 0, len(items))
	quantities := make(map[int64]int64, len(items))
	for _, item := range items {
		if _, ok := quantities[item.ProductID]; !ok {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}
	return ids, quantities
}

func (s *service) releaseAll(ctx context.Context, reserved []int64, quantities map[int64]int64) {
	for _, pid := range reserved {
		if er := s.productSvc.ReleaseStock(ctx, pid, quantities[pid]); er != nil {
			s.logger.Error("归还库存失败", elog.FieldErr(er), elog.Int64("product_id", pid))
		}
	}
}

func (s *service) paymentStatus(gatewayStatus string) string {
	switch gatewayStatus {
	case gateway.PaymentStatusPaid, gateway.PaymentStatusNoPaymentRequired:
		return order.PaymentStatusCompleted
	default:
		return order.PaymentStatusPending
	}
}
