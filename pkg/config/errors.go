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

import "errors"

var (
	// ErrInvalidStreamURL is returned when the stream url is invalid
	ErrInvalidStreamURL = errors.New("invalid stream url")
	// ErrInvalidAPIEndpoint is returned when an api endpoint url is invalid
	ErrInvalidAPIEndpoint = errors.New("invalid api endpoint url")
	// ErrInvalidInterval is returned when the probe interval is invalid
	ErrInvalidInterval = errors.New("invalid probe interval")
	// ErrInvalidTimeout is returned when the probe timeout is invalid
	ErrInvalidTimeout = errors.New("invalid probe timeout")
	// ErrInvalidFailureThreshold is returned when the failure threshold is invalid
	ErrInvalidFailureThreshold = errors.New("invalid failure threshold")
	// ErrInvalidServerPort is returned when the dev server port is invalid
	ErrInvalidServerPort = errors.New("invalid dev server port")
)
