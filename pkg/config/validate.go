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
	"net/url"
	"os"
	"path/filepath"

	"github.com/heliosinger/streamkit/internal/logger"
)

// Validate checks the config for values the commands cannot run with.
func (c *Config) Validate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := validateURL(c.Monitor.StreamURL); err != nil {
		log.ErrorContext(ctx, "The stream url is not a valid url", "streamUrl", c.Monitor.StreamURL)
		return ErrInvalidStreamURL
	}

	for _, endpoint := range c.Monitor.APIEndpoints {
		if err := validateURL(endpoint); err != nil {
			log.ErrorContext(ctx, "An api endpoint is not a valid url", "endpoint", endpoint)
			return ErrInvalidAPIEndpoint
		}
	}

	if c.Monitor.Interval <= 0 {
		log.ErrorContext(ctx, "The interval must be positive", "interval", c.Monitor.Interval)
		return ErrInvalidInterval
	}

	if c.Monitor.Timeout <= 0 {
		log.ErrorContext(ctx, "The timeout must be positive", "timeout", c.Monitor.Timeout)
		return ErrInvalidTimeout
	}

	if c.Monitor.FailureThreshold < 1 {
		log.ErrorContext(ctx, "The failure threshold must be at least 1", "failureThreshold", c.Monitor.FailureThreshold)
		return ErrInvalidFailureThreshold
	}

	if c.Doctor.ServerPort < 1 || c.Doctor.ServerPort > 65535 {
		log.ErrorContext(ctx, "The server port is out of range", "serverPort", c.Doctor.ServerPort)
		return ErrInvalidServerPort
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidStreamURL
	}
	return nil
}

// defaultOBSConfigDir resolves the per-user OBS configuration directory.
// OBS Studio on macOS keeps its state under Application Support.
func defaultOBSConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Application Support", "obs-studio")
}
