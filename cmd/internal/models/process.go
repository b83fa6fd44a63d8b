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

package models

import "fmt"

const DefaultParallel = 4

// Process contains the parameters of the process command.
type Process struct {
	InputPaths []string `yaml:"input,omitempty"`
	OutputPath string   `yaml:"output,omitempty"`
	Parallel   int      `yaml:"parallel,omitempty"`
}

func (p *Process) Validate() error {
	if p == nil {
		return fmt.Errorf("process parameters are required")
	}

	if len(p.InputPaths) == 0 {
		return fmt.Errorf("at least one input is required")
	}

	if p.Parallel < 0 {
		return fmt.Errorf("parallel must be non-negative")
	}

	return nil
}

// GetParallel returns Parallel, or DefaultParallel when it is not set.
func (p *Process) GetParallel() int {
	if p.Parallel == 0 {
		return DefaultParallel
	}

	return p.Parallel
}
