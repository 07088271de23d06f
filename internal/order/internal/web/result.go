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
	"github.com/ecodeclub/eshop/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	reasonRequiredResult = ginx.Result{
		Code: errs.ReasonRequired.Code,
		Msg:  errs.ReasonRequired.Msg,
	}
	paymentRequiredResult = ginx.Result{
		Code: errs.PaymentRequired.Code,
		Msg:  errs.PaymentRequired.Msg,
	}
	alreadyPaidResult = ginx.Result{
		Code: errs.AlreadyPaid.Code,
		Msg:  errs.AlreadyPaid.Msg,
	}
	alreadyDeliveredResult = ginx.Result{
		Code: errs.AlreadyDelivered.Code,
		Msg:  errs.AlreadyDelivered.Msg,
	}
)
