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

package config

import (
	"fmt"

	"github.com/aerospike/dataproc/cmd/internal/models"
)

// ServiceConfig contains the parameters of all dataproc commands.
type ServiceConfig struct {
	App     *models.App
	Run     *models.Run
	Process *models.Process
}

// NewServiceConfig creates and returns a new ServiceConfig initialized with the provided parameters.
// If a config file path is specified in the app, parameters are loaded from the file instead.
// Returns an error if the config file cannot be loaded or parsed.
func NewServiceConfig(
	app *models.App,
	run *models.Run,
	process *models.Process,
) (*ServiceConfig, error) {
	if app.ConfigFilePath != "" {
		serviceConfig, err := decodeServiceConfig(app.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", app.ConfigFilePath, err)
		}

		return serviceConfig, nil
	}

	return &ServiceConfig{
		App:     app,
		Run:     run,
		Process: process,
	}, nil
}
