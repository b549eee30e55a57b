// streamkit
// (C) 2025, Heliosinger
//
// Heliosinger and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heliosinger/streamkit/internal/logger"
)

// LoadFile reads a YAML config file on top of the receiver.
// Fields absent from the file keep their current values.
func (c *Config) LoadFile(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)
	log.Info("Reading config from file", "file", path)

	b, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", "path", path, "error", err)
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		log.Error("Failed to parse config file", "error", err)
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// UnmarshalYAML decodes the monitor section, parsing durations from
// strings like "30s" and keeping defaults for absent keys.
func (m *MonitorConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		StreamURL        string   `yaml:"streamUrl"`
		APIEndpoints     []string `yaml:"apiEndpoints"`
		Interval         string   `yaml:"interval"`
		Timeout          string   `yaml:"timeout"`
		FailureThreshold *int     `yaml:"failureThreshold"`
	}

	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	if r.StreamURL != "" {
		m.StreamURL = r.StreamURL
	}
	if r.APIEndpoints != nil {
		m.APIEndpoints = r.APIEndpoints
	}
	if r.Interval != "" {
		d, err := time.ParseDuration(r.Interval)
		if err != nil {
			return fmt.Errorf("invalid interval duration: %w", err)
		}
		m.Interval = d
	}
	if r.Timeout != "" {
		d, err := time.ParseDuration(r.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout duration: %w", err)
		}
		m.Timeout = d
	}
	if r.FailureThreshold != nil {
		m.FailureThreshold = *r.FailureThreshold
	}

	return nil
}
