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

package flags

import (
	"github.com/aerospike/dataproc/cmd/internal/models"
	"github.com/spf13/pflag"
)

type Run struct {
	models.Run
}

func NewRun() *Run {
	return &Run{}
}

func (f *Run) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringVarP(&f.Path, "path", "p",
		"",
		"Path the processor is created with. It is stored as is and never validated.")

	return flagSet
}

func (f *Run) GetRun() *models.Run {
	return &f.Run
}
