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

type DetailReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type Product struct {
	ID          int64    `json:"id"`
	SN          string   `json:"sn"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Quantity    int64    `json:"quantity"`
	Sold        int64    `json:"sold"`
	Colors      []string `json:"colors,omitempty"`
}

// SaveProductReq 后台创建/更新商品
type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveProductResp struct {
	ID int64 `json:"id"`
}
