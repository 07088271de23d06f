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

type AddAddressReq struct {
	Alias      string `json:"alias,omitempty"`
	Details    string `json:"details"`
	Phone      string `json:"phone"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type AddAddressResp struct {
	ID int64 `json:"id"`
}

type DeleteAddressReq struct {
	ID int64 `json:"id"`
}

type ListAddressesResp struct {
	Addresses []Address `json:"addresses,omitempty"`
}

type Address struct {
	ID         int64  `json:"id"`
	Alias      string `json:"alias,omitempty"`
	Details    string `json:"details"`
	Phone      string `json:"phone"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}
