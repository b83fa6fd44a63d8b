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
	"fmt"
	"io/fs"
	"os"
)

// Checker reports whether paths exist on local storage.
type Checker struct {
	// fsys is used instead of the host filesystem when set.
	fsys fs.StatFS
}

// Opt is a functional option for the Checker.
type Opt func(*Checker)

// WithFS makes the Checker resolve paths inside fsys instead of the host
// filesystem. Paths must then follow io/fs naming rules.
func WithFS(fsys fs.StatFS) Opt {
	return func(c *Checker) {
		c.fsys = fsys
	}
}

// NewChecker creates a new local Checker.
func NewChecker(opts ...Opt) *Checker {
	c := &Checker{}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Stat returns file info for path, following symlinks.
// A missing path yields an error matching fs.ErrNotExist.
func (c *Checker) Stat(path string) (fs.FileInfo, error) {
	var (
		info fs.FileInfo
		err  error
	)

	switch c.fsys {
	case nil:
		info, err = os.Stat(path)
	default:
		info, err = c.fsys.Stat(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get path info %s: %w", path, err)
	}

	return info, nil
}

// Exists returns true if path exists at call time. Any stat failure,
// including a dangling symlink or a permission error, counts as absent.
func (c *Checker) Exists(path string) bool {
	_, err := c.Stat(path)
	return err == nil
}
