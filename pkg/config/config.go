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
	"time"
)

// Config holds the settings for both streamkit commands.
type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
	Doctor  DoctorConfig  `yaml:"doctor"`
}

// MonitorConfig is the configuration of the stream health monitor.
type MonitorConfig struct {
	// StreamURL is the stream page probed on every tick.
	StreamURL string `yaml:"streamUrl"`
	// APIEndpoints are the secondary endpoints swept on every second tick.
	APIEndpoints []string `yaml:"apiEndpoints"`
	// Interval is the time between two probe ticks.
	Interval time.Duration `yaml:"interval"`
	// Timeout bounds each individual HTTP probe.
	Timeout time.Duration `yaml:"timeout"`
	// FailureThreshold is the consecutive-failure count at which
	// the monitor prints an advisory to restart the dev server.
	FailureThreshold int `yaml:"failureThreshold"`
}

// DoctorConfig is the configuration of the setup checker.
type DoctorConfig struct {
	// OBSPaths are the install locations tried for OBS Studio.
	OBSPaths []string `yaml:"obsPaths"`
	// OBSConfigDir is the OBS configuration directory.
	OBSConfigDir string `yaml:"obsConfigDir"`
	// ServerHost and ServerPort locate the dev server for the TCP probe.
	ServerHost string `yaml:"serverHost"`
	ServerPort int    `yaml:"serverPort"`
	// StreamURL is fetched after the TCP probe succeeds.
	StreamURL string `yaml:"streamUrl"`
	// TemplatePath is where the OBS settings template is written.
	TemplatePath string `yaml:"templatePath"`
}

// NewConfig creates a Config populated with the Heliosinger defaults.
func NewConfig() *Config {
	return &Config{
		Monitor: MonitorConfig{
			StreamURL: "http://localhost:5173/stream",
			APIEndpoints: []string{
				"http://localhost:5173/api/space-weather/comprehensive",
				"http://localhost:5173/api/solar-wind/current",
			},
			Interval:         30 * time.Second,
			Timeout:          5 * time.Second,
			FailureThreshold: 3,
		},
		Doctor: DoctorConfig{
			OBSPaths: []string{
				"/Applications/OBS.app",
				"/Applications/OBS Studio.app",
				"/usr/local/bin/obs",
			},
			OBSConfigDir: defaultOBSConfigDir(),
			ServerHost:   "localhost",
			ServerPort:   5173,
			StreamURL:    "http://localhost:5173/stream",
			TemplatePath: "obs_settings_template.json",
		},
	}
}
