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

package monitor

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/heliosinger/streamkit/internal/display"
	"github.com/heliosinger/streamkit/internal/httpclient"
	"github.com/heliosinger/streamkit/pkg/config"
)

const (
	streamURL  = "http://localhost:5173/stream"
	apiFirst   = "http://localhost:5173/api/space-weather/comprehensive"
	apiSecond  = "http://localhost:5173/api/solar-wind/current"
	probeLimit = 5 * time.Second
)

func testConfig() config.MonitorConfig {
	return config.MonitorConfig{
		StreamURL:        streamURL,
		APIEndpoints:     []string{apiFirst, apiSecond},
		Interval:         10 * time.Millisecond,
		Timeout:          probeLimit,
		FailureThreshold: 3,
	}
}

func testPoller(buf *bytes.Buffer) (*Poller, context.Context) {
	color.NoColor = true
	ctx := httpclient.IntoContext(context.Background(), http.DefaultClient)
	return New(testConfig(), display.New(buf)), ctx
}

func respondOK() {
	httpmock.RegisterResponder(http.MethodGet, streamURL,
		httpmock.NewStringResponder(http.StatusOK, "ok"))
}

func respondDown() {
	httpmock.RegisterResponder(http.MethodGet, streamURL,
		httpmock.NewErrorResponder(errors.New("connection refused")))
}

func respondAPIs(status int) {
	for _, url := range []string{apiFirst, apiSecond} {
		httpmock.RegisterResponder(http.MethodGet, url,
			httpmock.NewStringResponder(status, "{}"))
	}
}

func TestPoller_failureCounter(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var buf bytes.Buffer
	p, ctx := testPoller(&buf)

	// two failed probes, then one success; odd ticks keep the
	// endpoint sweep out of the picture
	respondDown()
	p.probeOnce(ctx, 1)
	assert.Equal(t, 1, p.Failures())
	p.probeOnce(ctx, 3)
	assert.Equal(t, 2, p.Failures())

	respondOK()
	p.probeOnce(ctx, 5)
	assert.Equal(t, 0, p.Failures())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "❌"))
	assert.Equal(t, 1, strings.Count(out, "✅"))
	assert.NotContains(t, out, "Multiple consecutive failures")
}

func TestPoller_advisoryAtThreshold(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var buf bytes.Buffer
	p, ctx := testPoller(&buf)

	respondDown()
	p.probeOnce(ctx, 1)
	p.probeOnce(ctx, 3)
	assert.NotContains(t, buf.String(), "Multiple consecutive failures")

	p.probeOnce(ctx, 5)
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Multiple consecutive failures detected!"))
	assert.Contains(t, out, "Consider restarting the dev server")
	assert.Equal(t, 3, p.Failures())
}

func TestPoller_endpointCadence(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var buf bytes.Buffer
	p, ctx := testPoller(&buf)

	// the page probe fails the whole time; the sweep cadence must not care
	respondDown()
	respondAPIs(http.StatusOK)

	for tick := 0; tick < 4; tick++ {
		p.probeOnce(ctx, tick)
	}

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 2, info["GET "+apiFirst], "endpoints should be swept on every second tick")
	assert.Equal(t, 2, info["GET "+apiSecond])
	assert.Equal(t, 4, info["GET "+streamURL])

	assert.Equal(t, 2, strings.Count(buf.String(), "API endpoint OK: comprehensive"))
	assert.Equal(t, 2, strings.Count(buf.String(), "API endpoint OK: current"))
}

func TestPoller_endpointWarnings(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var buf bytes.Buffer
	p, ctx := testPoller(&buf)

	respondOK()
	respondAPIs(http.StatusServiceUnavailable)

	p.probeOnce(ctx, 0)

	out := buf.String()
	assert.Contains(t, out, "API issue: comprehensive - status 503")
	assert.Contains(t, out, "API issue: current - status 503")
}

func TestPoller_RunStopsOnCancel(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var buf bytes.Buffer
	p, ctx := testPoller(&buf)
	respondOK()
	respondAPIs(http.StatusOK)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	assert.Contains(t, buf.String(), "Monitoring stopped by user")
	assert.GreaterOrEqual(t, httpmock.GetCallCountInfo()["GET "+streamURL], 1)
}

func TestPoller_Shutdown(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	var buf bytes.Buffer
	p, ctx := testPoller(&buf)
	respondOK()
	respondAPIs(http.StatusOK)

	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx)
	}()

	time.Sleep(5 * time.Millisecond)
	p.Shutdown()
	p.Shutdown() // idempotent

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after shutdown")
	}
}
