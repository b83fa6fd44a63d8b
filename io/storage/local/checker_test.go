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

package local

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTmpFile(dir, fileName string) (string, error) {
	filePath := filepath.Join(dir, fileName)
	if err := os.WriteFile(filePath, []byte("data"), 0o600); err != nil {
		return "", err
	}

	return filePath, nil
}

func TestChecker_Exists_File(t *testing.T) {
	t.Parallel()

	filePath, err := createTmpFile(t.TempDir(), "file1.py")
	require.NoError(t, err)

	assert.True(t, NewChecker().Exists(filePath))
}

func TestChecker_Exists_Directory(t *testing.T) {
	t.Parallel()

	assert.True(t, NewChecker().Exists(t.TempDir()))
}

func TestChecker_Exists_Missing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), uuid.NewString())

	assert.False(t, NewChecker().Exists(missing))
}

func TestChecker_Exists_EmptyPath(t *testing.T) {
	t.Parallel()

	assert.False(t, NewChecker().Exists(""))
}

func TestChecker_Exists_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target, err := createTmpFile(dir, "target.py")
	require.NoError(t, err)

	live := filepath.Join(dir, "live")
	if err = os.Symlink(target, live); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, uuid.NewString()), dangling))

	checker := NewChecker()
	assert.True(t, checker.Exists(live))
	assert.False(t, checker.Exists(dangling))
}

func TestChecker_Exists_NameTooLong(t *testing.T) {
	t.Parallel()

	long := filepath.Join(t.TempDir(), strings.Repeat("a", 4096))

	assert.False(t, NewChecker().Exists(long))
}

func TestChecker_Stat_NotExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), uuid.NewString())

	_, err := NewChecker().Stat(missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.ErrorContains(t, err, "failed to get path info")
}

func TestChecker_WithFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"src/utils/helpers.py": &fstest.MapFile{Data: []byte("pass\n")},
	}

	checker := NewChecker(WithFS(fsys))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "file", path: "src/utils/helpers.py", want: true},
		{name: "synthesized dir", path: "src/utils", want: true},
		{name: "root", path: ".", want: true},
		{name: "missing", path: "src/" + uuid.NewString(), want: false},
		{name: "empty", path: "", want: false},
		{name: "invalid", path: "/abs/path", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checker.Exists(tt.path))
		})
	}
}
