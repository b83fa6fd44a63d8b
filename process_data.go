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

import "log/slog"

// ProcessData checks inputPath using the default client.
// See [Client.ProcessData].
func ProcessData(inputPath, outputPath string) (Result, bool) {
	return defaultClient().ProcessData(inputPath, outputPath)
}

// ProcessData returns a new {"status": "ok"} Result and true if inputPath
// exists at call time. Otherwise it returns nil and false; absence is not an error.
// The input is never read and outputPath is never written.
func (c *Client) ProcessData(inputPath, outputPath string) (Result, bool) {
	if !c.checker.Exists(inputPath) {
		c.logger.Debug("input path not found",
			slog.String("input", inputPath),
		)

		return nil, false
	}

	c.logger.Debug("input path found",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
	)

	return NewResult(), true
}
