// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ctor

type Client struct { // want "Type 'test/ctor.Client' is always constructed with the same 1 setter 'SetTimeout', pass this value via constructor instead"
	timeout int
}

func NewClient() *Client { return &Client{} }

func (c *Client) SetTimeout(timeout int) { c.timeout = timeout }

type Server struct{ port int }

func Newish() *Server { return &Server{} }

func (s *Server) SetPort(port int) { s.port = port }

var sink []any

func first() {
	c := NewClient()
	c.SetTimeout(1)
	sink = append(sink, c)
}

func second() {
	var c *Client
	c = NewClient()
	c.SetTimeout(2)
	sink = append(sink, c)
}

func servers() {
	s := Newish()
	s.SetPort(80)
	sink = append(sink, s)

	t := Newish()
	t.SetPort(443)
	sink = append(sink, t)
}
