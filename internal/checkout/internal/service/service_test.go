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
	"fmt"
	"testing"

	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout/internal/event"
	"github.com/ecodeclub/eshop/internal/checkout/internal/gateway"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/tieredcache"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartSvc struct {
	cart.Service
	carts   map[int64]cart.Cart
	deleted []int64
}

func (f *fakeCartSvc) FindByID(_ context.Context, cartID int64) (cart.Cart, error) {
	c, ok := f.carts[cartID]
	if !ok {
		return cart.Cart{}, cart.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeCartSvc) Delete(_ context.Context, cartID int64) error {
	f.deleted = append(f.deleted, cartID)
	delete(f.carts, cartID)
	return nil
}

type fakeProductSvc struct {
	product.Service
	stock     map[int64]int64
	reserves  []int64
	releases  []int64
	committed map[int64]int64
}

func (f *fakeProductSvc) ReserveStock(_ context.Context, id, quantity int64) error {
	if f.stock[id] < quantity {
		return fmt.Errorf("预留失败: %w", product.ErrInsufficientStock)
	}
	f.stock[id] -= quantity
	f.reserves = append(f.reserves, id)
	return nil
}

func (f *fakeProductSvc) ReleaseStock(_ context.Context, id, quantity int64) error {
	f.stock[id] += quantity
	f.releases = append(f.releases, id)
	return nil
}

func (f *fakeProductSvc) CommitSale(_ context.Context, id, quantity int64) error {
	if f.committed == nil {
		f.committed = map[int64]int64{}
	}
	f.committed[id] += quantity
	return nil
}

type fakeOrderSvc struct {
	order.Service
	created   []order.Order
	createErr error
}

func (f *fakeOrderSvc) CreateOrder(_ context.Context, o order.Order) (order.Order, error) {
	if f.createErr != nil {
		return order.Order{}, f.createErr
	}
	o.ID = int64(len(f.created) + 1)
	o.SN = fmt.Sprintf("SN%04d", o.ID)
	f.created = append(f.created, o)
	return o, nil
}

type fakeAddressSvc struct {
	address.Service
	addr address.Address
	err  error
}

func (f *fakeAddressSvc) FindByIDAndUID(_ context.Context, _, _ int64) (address.Address, error) {
	return f.addr, f.err
}

type fakeGateway struct {
	session Session
	event   gateway.WebhookEvent
	err     error
}

type Session = gateway.Session

func (f *fakeGateway) CreateSession(_ context.Context, _ gateway.SessionRequest) (gateway.Session, error) {
	return f.session, f.err
}

func (f *fakeGateway) ParseWebhook(_ []byte, _ string) (gateway.WebhookEvent, error) {
	return f.event, f.err
}

type fakeProducer struct {
	events []event.OrderFinalizedEvent
	err    error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderFinalizedEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

type testEnv struct {
	cartSvc    *fakeCartSvc
	productSvc *fakeProductSvc
	orderSvc   *fakeOrderSvc
	addressSvc *fakeAddressSvc
	gateway    *fakeGateway
	producer   *fakeProducer
	tc         *tieredcache.Cache
	svc        Service
}

func newTestEnv(cfg Config) *testEnv {
	env := &testEnv{
		cartSvc:    &fakeCartSvc{carts: map[int64]cart.Cart{}},
		productSvc: &fakeProductSvc{stock: map[int64]int64{}},
		orderSvc:   &fakeOrderSvc{},
		addressSvc: &fakeAddressSvc{addr: address.Address{ID: 1, UID: 123, Details: "开罗解放广场1号", Phone: "0100000000"}},
		gateway:    &fakeGateway{},
		producer:   &fakeProducer{},
		tc:         tieredcache.NewCache(),
	}
	env.svc = NewService(env.cartSvc, env.productSvc, env.orderSvc, env.addressSvc,
		env.gateway, env.producer, env.tc, cfg)
	return env
}

func testCart() cart.Cart {
	return cart.Cart{
		ID:  10,
		UID: 123,
		Items: []cart.CartItem{
			{ID: 1, ProductID: 7, Color: "黑色", Price: 1000, Quantity: 2},
			{ID: 2, ProductID: 7, Color: "白色", Price: 1000, Quantity: 1},
			{ID: 3, ProductID: 8, Color: "", Price: 500, Quantity: 1},
		},
		TotalPrice: 3500,
	}
}

func TestService_CreateCashOrder(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}

	o, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3500), o.TotalPrice)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.False(t, o.IsPaid)
	assert.Equal(t, order.GatewayCashOnDelivery, o.PaymentInfo.Gateway)
	assert.Len(t, o.Items, 3)

	// 同一商品的两行只检查一次库存, 按聚合数量扣减
	assert.Equal(t, []int64{7, 8}, env.productSvc.reserves)
	assert.Equal(t, int64(2), env.productSvc.stock[7])
	assert.Equal(t, int64(4), env.productSvc.stock[8])
	assert.Equal(t, int64(3), env.productSvc.committed[7])

	assert.Equal(t, []int64{10}, env.cartSvc.deleted)
	require.Len(t, env.producer.events, 1)
	assert.Equal(t, o.SN, env.producer.events[0].OrderSN)
}

func TestService_CreateCashOrder_UsesDiscountedTotal(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	c := testCart()
	c.CouponID = 9
	c.TotalAfterDiscount = 2800
	env.cartSvc.carts[10] = c
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}

	o, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2800), o.TotalPrice)
}

func TestService_CreateCashOrder_Oversell(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	// 商品7需要3件但只剩2件, 商品8预留不会发生
	env.productSvc.stock = map[int64]int64{7: 2, 8: 5}

	_, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, env.orderSvc.created)
	assert.Empty(t, env.cartSvc.deleted)
	assert.Equal(t, int64(2), env.productSvc.stock[7])
	assert.Equal(t, int64(5), env.productSvc.stock[8])
}

func TestService_CreateCashOrder_ReleasesPriorReservations(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	// 商品7够, 商品8不够: 商品7已预留的3件必须归还
	env.productSvc.stock = map[int64]int64{7: 5, 8: 0}

	_, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, []int64{7}, env.productSvc.releases)
	assert.Equal(t, int64(5), env.productSvc.stock[7])
}

func TestService_CreateCashOrder_ReleasesOnOrderFailure(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}
	env.orderSvc.createErr = fmt.Errorf("db down")

	_, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	require.Error(t, err)
	assert.Equal(t, []int64{7, 8}, env.productSvc.releases)
	assert.Equal(t, int64(5), env.productSvc.stock[7])
	assert.Equal(t, int64(5), env.productSvc.stock[8])
	assert.Empty(t, env.cartSvc.deleted)
}

func TestService_CreateCashOrder_EmptyCart(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = cart.Cart{ID: 10, UID: 123}

	_, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestService_CreateCashOrder_NotOwner(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()

	_, err := env.svc.CreateCashOrder(context.Background(), 456, 10, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestService_CreateCashOrder_AddressNotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.addressSvc.err = address.ErrAddressNotFound

	_, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestService_ClearsShortTierAfterFinalize(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}
	require.NoError(t, env.tc.Set(tieredcache.TierShort, "products:list:0:20", []int64{7, 8}))

	_, err := env.svc.CreateCashOrder(context.Background(), 123, 10, 1)
	require.NoError(t, err)
	assert.Zero(t, env.tc.Len(tieredcache.TierShort))
}

func TestService_HandleWebhook_InvalidSignature(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.gateway.err = gateway.ErrInvalidSignature

	err := env.svc.HandleWebhook(context.Background(), []byte("{}"), "bad-sig")
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Empty(t, env.orderSvc.created)
}

func TestService_HandleWebhook_CreatesOrder(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}
	env.gateway.event = gateway.WebhookEvent{
		Type: gateway.EventCheckoutCompleted,
		Session: gateway.CheckoutSession{
			ID:            "cs_test_1",
			Completed:     true,
			PaymentStatus: gateway.PaymentStatusPaid,
			UID:           123,
			CartID:        10,
			Currency:      "egp",
			Shipping:      gateway.Shipping{City: "Cairo", Country: "EG"},
		},
	}

	err := env.svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	require.Len(t, env.orderSvc.created, 1)

	o := env.orderSvc.created[0]
	assert.Equal(t, order.StatusProcessing, o.Status)
	assert.True(t, o.IsPaid)
	assert.Equal(t, order.PaymentStatusCompleted, o.PaymentInfo.Status)
	assert.Equal(t, order.GatewayStripe, o.PaymentInfo.Gateway)
	assert.Equal(t, "Cairo", o.ShippingInfo.City)
}

func TestService_HandleWebhook_Replay(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}
	env.gateway.event = gateway.WebhookEvent{
		Type: gateway.EventCheckoutCompleted,
		Session: gateway.CheckoutSession{
			ID:            "cs_test_1",
			Completed:     true,
			PaymentStatus: gateway.PaymentStatusPaid,
			UID:           123,
			CartID:        10,
		},
	}

	require.NoError(t, env.svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	// 第一单消费掉了购物车, 重发的回调必须静默成功且不再下单
	require.NoError(t, env.svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	assert.Len(t, env.orderSvc.created, 1)
	assert.Equal(t, []int64{7, 8}, env.productSvc.reserves)
}

func TestService_HandleWebhook_IgnoresOtherEvents(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.gateway.event = gateway.WebhookEvent{Type: "invoice.paid"}

	require.NoError(t, env.svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	assert.Empty(t, env.orderSvc.created)
}

func TestService_HandleWebhook_UnpaidSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.productSvc.stock = map[int64]int64{7: 5, 8: 5}
	env.gateway.event = gateway.WebhookEvent{
		Type: gateway.EventCheckoutCompleted,
		Session: gateway.CheckoutSession{
			ID:            "cs_test_2",
			Completed:     true,
			PaymentStatus: gateway.PaymentStatusUnpaid,
			UID:           123,
			CartID:        10,
		},
	}

	require.NoError(t, env.svc.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	require.Len(t, env.orderSvc.created, 1)
	o := env.orderSvc.created[0]
	assert.False(t, o.IsPaid)
	assert.Equal(t, order.PaymentStatusPending, o.PaymentInfo.Status)
}

func TestService_CreateCheckoutSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(Config{Currency: "EGP"})
	env.cartSvc.carts[10] = testCart()
	env.gateway.session = gateway.Session{ID: "cs_test_1", URL: "https://checkout.stripe.com/pay/cs_test_1"}

	url, err := env.svc.CreateCheckoutSession(context.Background(), 123, 10, "https://shop.test/ok", "https://shop.test/cancel")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", url)
}

func TestService_CancelOrder_Restock(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name         string
		restock      bool
		wantReleases []int64
	}{
		{name: "开启归还库存", restock: true, wantReleases: []int64{7}},
		{name: "默认不归还", restock: false, wantReleases: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(Config{Currency: "EGP", RestockOnCancel: tc.restock})
			env.productSvc.stock = map[int64]int64{7: 0}
			env.orderSvc.created = []order.Order{}
			svc := env.svc.(*service)
			svc.orderSvc = &cancellableOrderSvc{o: order.Order{
				ID: 1, SN: "SN0001", UID: 123, Status: order.StatusPending,
				Items: []order.OrderItem{{ProductID: 7, Quantity: 2, Price: 1000}},
			}}

			err := svc.CancelOrder(context.Background(), 123, "SN0001", "不想要了")
			require.NoError(t, err)
			assert.Equal(t, tc.wantReleases, env.productSvc.releases)
		})
	}
}

type cancellableOrderSvc struct {
	order.Service
	o order.Order
}

func (f *cancellableOrderSvc) FindBySNAndUID(_ context.Context, _ string, _ int64) (order.Order, error) {
	return f.o, nil
}

func (f *cancellableOrderSvc) Cancel(_ context.Context, _ int64, _ string) error {
	return nil
}
