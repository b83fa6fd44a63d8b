// Copyright 2024 Aerospike, Inc.
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

package dataproc

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/aerospike/dataproc/internal/logging"
	"github.com/aerospike/dataproc/io/storage/local"
	"github.com/google/uuid"
)

// Client holds the logger and the filesystem view shared by the
// processors and responses it creates. A Client is safe for concurrent use.
type Client struct {
	id      string
	logger  *slog.Logger
	checker *local.Checker
}

// ClientOpt is a functional option that allows configuring the [Client].
type ClientOpt func(*Client)

// WithID sets the ID for the [Client].
// This ID is used for logging purposes.
func WithID(id string) ClientOpt {
	return func(c *Client) {
		c.id = id
	}
}

// WithLogger sets the logger for the [Client].
func WithLogger(logger *slog.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithFS makes the [Client] check input paths inside fsys
// instead of the host filesystem.
func WithFS(fsys fs.StatFS) ClientOpt {
	return func(c *Client) {
		c.checker = local.NewChecker(local.WithFS(fsys))
	}
}

// NewClient creates a new client.
//
// options:
//   - [WithID] to set an identifier for the client.
//   - [WithLogger] to set a logger that this client will log to.
//   - [WithFS] to check paths inside an fs.StatFS.
func NewClient(opts ...ClientOpt) *Client {
	client := &Client{
		id:     uuid.NewString(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.logger = client.logger.WithGroup("dataproc")
	client.logger = logging.WithClient(client.logger, client.id)

	if client.checker == nil {
		client.checker = local.NewChecker()
	}

	return client
}

// ID returns the client identifier.
func (c *Client) ID() string {
	return c.id
}

var defaultClient = sync.OnceValue(func() *Client {
	return NewClient()
})
