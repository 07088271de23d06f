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
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/product/internal/integration/startup"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/product/internal/web"
	"github.com/ecodeclub/eshop/internal/test"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    product.Service
	dao    dao.ProductDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)

	s.server = server
	s.svc = m.Svc
	s.db = testioc.InitDB()
	s.dao = dao.NewProductGORMDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	_, err := s.dao.Create(context.Background(), dao.Product{
		Id:          100,
		SN:          "SN-100",
		Name:        "咖啡杯",
		Description: "陶瓷",
		Price:       1999,
		Quantity:    10,
		Colors:      `["black","white"]`,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/product/detail", bytes.NewReader([]byte(`{"id": 100}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Product]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[web.Product]{
		Data: web.Product{
			ID:          100,
			SN:          "SN-100",
			Name:        "咖啡杯",
			Description: "陶瓷",
			Price:       1999,
			Quantity:    10,
			Colors:      []string{"black", "white"},
		},
	}, recorder.MustScan())
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	ctx := context.Background()
	var lastID int64
	for _, p := range []product.Product{
		{SN: "SN-301", Name: "键盘", Price: 29900, Quantity: 3},
		{SN: "SN-302", Name: "鼠标", Price: 9900, Quantity: 5},
		{SN: "SN-303", Name: "显示器", Price: 129900, Quantity: 1},
	} {
		id, err := s.svc.Create(ctx, p)
		require.NoError(t, err)
		lastID = id
	}

	req, err := http.NewRequest(http.MethodPost,
		"/product/list", bytes.NewReader([]byte(`{"offset": 0, "limit": 2}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan().Data
	assert.Equal(t, int64(3), resp.Total)
	require.Len(t, resp.Products, 2)
	// 按 id 倒序, 最新创建的在最前面
	assert.Equal(t, lastID, resp.Products[0].ID)
	assert.Equal(t, "SN-303", resp.Products[0].SN)
	assert.Equal(t, "SN-302", resp.Products[1].SN)
}

// 并发预留不会超卖: 库存 5, 20 个并发请求各要 1 件, 恰好 5 个成功
func (s *HandlerTestSuite) TestConcurrentReserveStock() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Create(ctx, dao.Product{
		Id: 200, SN: "SN-200", Name: "限量球鞋", Price: 59900, Quantity: 5,
	})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		success int64
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.svc.ReserveStock(ctx, 200, 1)
			if err == nil {
				atomic.AddInt64(&success, 1)
				return
			}
			assert.ErrorIs(t, err, product.ErrInsufficientStock)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5), success)
	p, err := s.dao.FindByID(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Quantity)
}

func (s *HandlerTestSuite) TestReserveStockInsufficient() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Create(ctx, dao.Product{
		Id: 201, SN: "SN-201", Name: "水壶", Price: 3500, Quantity: 3,
	})
	require.NoError(t, err)

	err = s.svc.ReserveStock(ctx, 201, 5)
	require.ErrorIs(t, err, product.ErrInsufficientStock)
	var ise *product.InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, int64(3), ise.Available)
	assert.Equal(t, int64(5), ise.Requested)

	// 失败的预留一件都不会扣
	p, err := s.dao.FindByID(ctx, 201)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Quantity)
}

func (s *HandlerTestSuite) TestReserveReleaseCommit() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Create(ctx, dao.Product{
		Id: 202, SN: "SN-202", Name: "台灯", Price: 12900, Quantity: 10,
	})
	require.NoError(t, err)

	require.NoError(t, s.svc.ReserveStock(ctx, 202, 4))
	require.NoError(t, s.svc.ReleaseStock(ctx, 202, 1))
	require.NoError(t, s.svc.CommitSale(ctx, 202, 3))

	p, err := s.dao.FindByID(ctx, 202)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Quantity)
	assert.Equal(t, int64(3), p.Sold)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
