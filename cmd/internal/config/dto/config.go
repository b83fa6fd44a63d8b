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

package dto

import "github.com/aerospike/dataproc/cmd/internal/models"

// Config is the layout of the YAML configuration file.
type Config struct {
	App     App            `yaml:"app"`
	Run     models.Run     `yaml:"run"`
	Process models.Process `yaml:"process"`
}

// DefaultConfig returns a Config holding the same defaults as the command-line flags.
func DefaultConfig() *Config {
	return &Config{
		App: App{
			LogLevel: models.DefaultLogLevel,
		},
		Process: models.Process{
			Parallel: models.DefaultParallel,
		},
	}
}

type App struct {
	Verbose  bool   `yaml:"verbose"`
	LogLevel string `yaml:"log-level"`
	LogJSON  bool   `yaml:"log-json"`
}

func (a *App) ToModelApp() *models.App {
	return &models.App{
		Verbose:  a.Verbose,
		LogLevel: a.LogLevel,
		LogJSON:  a.LogJSON,
	}
}
