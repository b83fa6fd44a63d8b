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

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aerospike/dataproc"
	"github.com/aerospike/dataproc/cmd/internal/models"
	"golang.org/x/sync/errgroup"
)

const idDataProc = "dataproc-cli"

// DataProc runs dataproc operations and prints their results to out.
type DataProc struct {
	client *dataproc.Client
	out    io.Writer
	logger *slog.Logger
}

func NewDataProc(out io.Writer, logger *slog.Logger, opts ...dataproc.ClientOpt) *DataProc {
	opts = append([]dataproc.ClientOpt{
		dataproc.WithID(idDataProc),
		dataproc.WithLogger(logger),
	}, opts...)

	return &DataProc{
		client: dataproc.NewClient(opts...),
		out:    out,
		logger: logger,
	}
}

// Run creates a processor for params.Path, runs it and prints the outcome.
func (d *DataProc) Run(ctx context.Context, params *models.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok := d.client.NewDataProcessor(params.Path).Run()

	if _, err := fmt.Fprintln(d.out, ok); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// Process checks every input and prints one JSON line per input, in input order:
// the result record, or null when the input does not exist.
func (d *DataProc) Process(ctx context.Context, params *models.Process) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid process parameters: %w", err)
	}

	results := make([]dataproc.Result, len(params.InputPaths))

	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.SetLimit(params.GetParallel())

	for i, input := range params.InputPaths {
		i, input := i, input

		errGroup.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// A nil result encodes as null.
			results[i], _ = d.client.ProcessData(input, params.OutputPath)

			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return fmt.Errorf("process interrupted: %w", err)
	}

	found := 0

	for _, result := range results {
		if result != nil {
			found++
		}

		line, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}

		if _, err = fmt.Fprintln(d.out, string(line)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	d.logger.Info("process done",
		slog.Int("inputs", len(results)),
		slog.Int("found", found),
	)

	return nil
}
