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
	"log/slog"

	"github.com/aerospike/dataproc/internal/logging"
	"github.com/google/uuid"
)

// DataProcessor is a placeholder processor bound to a path.
// The path is stored as given and is never validated.
type DataProcessor struct {
	path   string
	logger *slog.Logger
}

// NewDataProcessor returns a DataProcessor for path using the default client.
func NewDataProcessor(path string) *DataProcessor {
	return defaultClient().NewDataProcessor(path)
}

// NewDataProcessor returns a DataProcessor for path that logs to the client logger.
func (c *Client) NewDataProcessor(path string) *DataProcessor {
	id := uuid.NewString()

	return &DataProcessor{
		path:   path,
		logger: logging.WithProcessor(c.logger, id, logging.ProcessorTypeData),
	}
}

// Path returns the path the processor was created with.
func (p *DataProcessor) Path() string {
	return p.path
}

// Run always reports success.
func (p *DataProcessor) Run() bool {
	if p.logger != nil {
		p.logger.Debug("processor run", slog.String("path", p.path))
	}

	return true
}
