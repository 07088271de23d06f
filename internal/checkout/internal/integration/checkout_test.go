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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/address"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/checkout/internal/errs"
	"github.com/ecodeclub/eshop/internal/checkout/internal/integration/startup"
	"github.com/ecodeclub/eshop/internal/checkout/internal/web"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/test"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(123)

type CheckoutTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	ms     *startup.Modules
}

func (s *CheckoutTestSuite) SetupSuite() {
	ms, err := startup.InitModules()
	require.NoError(s.T(), err)
	s.ms = ms

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	ms.Checkout.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *CheckoutTestSuite) TearDownTest() {
	for _, table := range []string{
		"products", "carts", "cart_items",
		"orders", "order_items", "addresses",
		"coupons", "coupon_redemptions",
	} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *CheckoutTestSuite) seedProduct(sn string, price, quantity int64) int64 {
	id, err := s.ms.Product.Svc.Create(context.Background(), product.Product{
		SN:       sn,
		Name:     "测试商品" + sn,
		Price:    price,
		Quantity: quantity,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *CheckoutTestSuite) seedAddress() int64 {
	id, err := s.ms.Address.Svc.Add(context.Background(), address.Address{
		UID:        testUID,
		Alias:      "家",
		Details:    "Tahrir Square 1",
		Phone:      "0100000000",
		City:       "Cairo",
		State:      "Cairo",
		Country:    "Egypt",
		PostalCode: "11511",
	})
	require.NoError(s.T(), err)
	return id
}

func (s *CheckoutTestSuite) postCash(req web.CreateCashOrderReq) *test.JSONResponseRecorder[web.CreateCashOrderResp] {
	body, err := json.Marshal(req)
	require.NoError(s.T(), err)
	httpReq, err := http.NewRequest(http.MethodPost,
		"/checkout/cash", bytes.NewReader(body))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateCashOrderResp]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *CheckoutTestSuite) TestCreateCashOrder() {
	t := s.T()
	ctx := context.Background()
	pid := s.seedProduct("SN-CASH-1", 1000, 10)
	c, err := s.ms.Cart.Svc.AddProduct(ctx, testUID, pid, "black", 2)
	require.NoError(t, err)
	aid := s.seedAddress()

	recorder := s.postCash(web.CreateCashOrderReq{
		RequestID: "req-cash-1",
		CartID:    c.ID,
		AddressID: aid,
	})
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.NotEmpty(t, resp.OrderSN)
	assert.Equal(t, int64(2000), resp.TotalPrice)
	assert.Equal(t, order.StatusPending.ToUint8(), resp.Status)

	// 订单落库, 明细和支付信息齐全
	o, err := s.ms.Order.Svc.FindBySNAndUID(ctx, resp.OrderSN, testUID)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, pid, o.Items[0].ProductID)
	assert.Equal(t, int64(2), o.Items[0].Quantity)
	assert.Equal(t, order.GatewayCashOnDelivery, o.PaymentInfo.Gateway)
	assert.False(t, o.IsPaid)
	assert.Equal(t, "Cairo", o.ShippingInfo.City)

	// 库存已扣减
	p, err := s.ms.Product.Svc.Detail(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.Quantity)

	// 购物车已被消费
	_, err = s.ms.Cart.Svc.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}

func (s *CheckoutTestSuite) TestCreateCashOrderDuplicateRequest() {
	t := s.T()
	ctx := context.Background()
	pid := s.seedProduct("SN-CASH-2", 1000, 10)
	c, err := s.ms.Cart.Svc.AddProduct(ctx, testUID, pid, "", 1)
	require.NoError(t, err)
	aid := s.seedAddress()

	req := web.CreateCashOrderReq{
		RequestID: "req-cash-dup",
		CartID:    c.ID,
		AddressID: aid,
	}
	first := s.postCash(req)
	require.Equal(t, 200, first.Code)

	// 相同幂等键重复提交, 不会下第二单
	second := s.postCash(req)
	require.Equal(t, 500, second.Code)
	assert.Equal(t, errs.DuplicateRequest.Code, second.MustScan().Code)

	_, total, err := s.ms.Order.Svc.ListByUID(ctx, testUID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func (s *CheckoutTestSuite) TestCreateCashOrderInsufficientStock() {
	t := s.T()
	ctx := context.Background()
	pid := s.seedProduct("SN-CASH-3", 1000, 1)
	c, err := s.ms.Cart.Svc.AddProduct(ctx, testUID, pid, "", 3)
	require.NoError(t, err)
	aid := s.seedAddress()

	recorder := s.postCash(web.CreateCashOrderReq{
		RequestID: "req-cash-oversell",
		CartID:    c.ID,
		AddressID: aid,
	})
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InsufficientStock.Code, recorder.MustScan().Code)

	// 库存一件没扣, 购物车保留
	p, err := s.ms.Product.Svc.Detail(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Quantity)
	_, err = s.ms.Cart.Svc.FindByID(ctx, c.ID)
	assert.NoError(t, err)
}

func (s *CheckoutTestSuite) TestCreateCashOrderWithCoupon() {
	t := s.T()
	ctx := context.Background()
	pid := s.seedProduct("SN-CASH-4", 5000, 10)
	c, err := s.ms.Cart.Svc.AddProduct(ctx, testUID, pid, "", 2)
	require.NoError(t, err)
	_, err = s.ms.Coupon.Svc.Create(ctx, coupon.Coupon{
		Code:     "SAVE20",
		Discount: 20,
		Active:   true,
		ExpireAt: time.Now().Add(time.Hour).UnixMilli(),
		MaxUsage: 10,
	})
	require.NoError(t, err)
	_, _, err = s.ms.Cart.Svc.ApplyDiscount(ctx, testUID, "SAVE20")
	require.NoError(t, err)
	aid := s.seedAddress()

	recorder := s.postCash(web.CreateCashOrderReq{
		RequestID: "req-cash-coupon",
		CartID:    c.ID,
		AddressID: aid,
	})
	require.Equal(t, 200, recorder.Code)
	// 10000 打八折
	assert.Equal(t, int64(8000), recorder.MustScan().Data.TotalPrice)
}

func TestCheckout(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}
