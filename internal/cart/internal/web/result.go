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

package web

import (
	"github.com/ecodeclub/eshop/internal/cart/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	cartNotFoundResult = ginx.Result{
		Code: errs.CartNotFound.Code,
		Msg:  errs.CartNotFound.Msg,
	}
	itemNotFoundResult = ginx.Result{
		Code: errs.ItemNotFound.Code,
		Msg:  errs.ItemNotFound.Msg,
	}
	alreadyDiscountedResult = ginx.Result{
		Code: errs.AlreadyDiscounted.Code,
		Msg:  errs.AlreadyDiscounted.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	couponRejectedResult = ginx.Result{
		Code: errs.CouponRejected.Code,
		Msg:  errs.CouponRejected.Msg,
	}
)
