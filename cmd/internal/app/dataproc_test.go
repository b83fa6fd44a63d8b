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
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/aerospike/dataproc"
	"github.com/aerospike/dataproc/cmd/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDataProc_Run(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", "missing/" + uuid.NewString(), t.TempDir()} {
		var out bytes.Buffer

		err := NewDataProc(&out, discardLogger()).Run(context.Background(), &models.Run{Path: path})
		require.NoError(t, err)
		assert.Equal(t, "true\n", out.String(), "path %q", path)
	}
}

func TestDataProc_Run_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	err := NewDataProc(&out, discardLogger()).Run(ctx, &models.Run{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestDataProc_Process(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "helpers.py")
	require.NoError(t, os.WriteFile(existing, []byte("import os\n"), 0o600))

	missing := filepath.Join(dir, uuid.NewString())

	var out bytes.Buffer

	err := NewDataProc(&out, discardLogger()).Process(context.Background(), &models.Process{
		InputPaths: []string{existing, missing, "", dir, existing},
		OutputPath: filepath.Join(dir, "out.json"),
		Parallel:   2,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"{\"status\":\"ok\"}\nnull\nnull\n{\"status\":\"ok\"}\n{\"status\":\"ok\"}\n",
		out.String(),
	)

	_, err = os.Stat(filepath.Join(dir, "out.json"))
	assert.True(t, os.IsNotExist(err), "output must never be written")
}

func TestDataProc_Process_WithFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"src/utils/helpers.py": &fstest.MapFile{},
	}

	var out bytes.Buffer

	err := NewDataProc(&out, discardLogger(), dataproc.WithFS(fsys)).Process(context.Background(), &models.Process{
		InputPaths: []string{"src/utils/helpers.py", "src/utils/other.py"},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"status\":\"ok\"}\nnull\n", out.String())
}

func TestDataProc_Process_Invalid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := NewDataProc(&out, discardLogger()).Process(context.Background(), &models.Process{})
	assert.ErrorContains(t, err, "at least one input is required")
	assert.Empty(t, out.String())
}

func TestDataProc_Process_NilParams(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := NewDataProc(&out, discardLogger()).Process(context.Background(), nil)
	assert.ErrorContains(t, err, "process parameters are required")
	assert.Empty(t, out.String())
}

func TestDataProc_Process_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	err := NewDataProc(&out, discardLogger()).Process(ctx, &models.Process{InputPaths: []string{"a", "b"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
