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

type Process struct {
	models.Process
}

func NewProcess() *Process {
	return &Process{}
}

func (f *Process) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringArrayVarP(&f.InputPaths, "input", "i",
		nil,
		"Input path to check. Can be repeated, results are printed in the same order.")
	flagSet.StringVarP(&f.OutputPath, "output", "o",
		"",
		"Output path. Accepted for compatibility, never written.")
	flagSet.IntVar(&f.Parallel, "parallel",
		models.DefaultParallel,
		"Maximum number of inputs checked concurrently.")

	return flagSet
}

func (f *Process) GetProcess() *models.Process {
	return &f.Process
}
