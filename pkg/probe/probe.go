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

// Package probe performs single bounded-timeout HTTP checks against the
// stream endpoints and classifies the outcome.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/heliosinger/streamkit/internal/httpclient"
	"github.com/heliosinger/streamkit/internal/logger"
)

// Status classifies the outcome of a single probe.
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// maxErrorLen bounds the underlying error text embedded in a result message.
const maxErrorLen = 50

// Result is the outcome of one probe against one target.
// Results are ephemeral; nothing persists them.
type Result struct {
	Target  string `json:"target"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the probe succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Page performs a single GET against the stream page URL.
// A 200 response is OK; any other status or a transport failure is ERROR.
func Page(ctx context.Context, url string, timeout time.Duration) Result {
	status, err := get(ctx, url, timeout)
	if err != nil {
		return Result{
			Target:  url,
			Status:  StatusError,
			Message: fmt.Sprintf("cannot connect to stream: %s", truncate(err.Error(), maxErrorLen)),
		}
	}

	if status != http.StatusOK {
		return Result{
			Target:  url,
			Status:  StatusError,
			Message: fmt.Sprintf("stream returned status %d", status),
		}
	}

	return Result{
		Target:  url,
		Status:  StatusOK,
		Message: "stream page is accessible",
	}
}

// Endpoints probes each API endpoint independently and returns one result
// per URL. One endpoint failing has no effect on the others. Failures are
// classified as WARNING since the endpoints are secondary to the stream page.
func Endpoints(ctx context.Context, urls []string, timeout time.Duration) map[string]Result {
	results := make(map[string]Result, len(urls))
	for _, url := range urls {
		status, err := get(ctx, url, timeout)
		switch {
		case err != nil:
			results[url] = Result{
				Target:  url,
				Status:  StatusWarning,
				Message: fmt.Sprintf("error: %s", truncate(err.Error(), maxErrorLen)),
			}
		case status != http.StatusOK:
			results[url] = Result{
				Target:  url,
				Status:  StatusWarning,
				Message: fmt.Sprintf("status %d", status),
			}
		default:
			results[url] = Result{
				Target:  url,
				Status:  StatusOK,
				Message: "OK",
			}
		}
	}
	return results
}

// get performs one GET with a bounded timeout and returns the response status code.
func get(ctx context.Context, url string, timeout time.Duration) (int, error) {
	log := logger.FromContext(ctx).With("url", url)
	client := httpclient.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		log.Error("Error while creating request", "error", err)
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Debug("Error while requesting target", "error", err)
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
