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

// Package monitor runs the periodic stream health loop.
package monitor

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/heliosinger/streamkit/internal/display"
	"github.com/heliosinger/streamkit/internal/logger"
	"github.com/heliosinger/streamkit/pkg/config"
	"github.com/heliosinger/streamkit/pkg/probe"
)

// endpointEvery is the tick cadence of the secondary endpoint sweep.
// The endpoints are probed on every endpointEvery-th tick, starting with
// the first. An explicit tick counter keeps the cadence deterministic.
const endpointEvery = 2

// Poller probes the stream page on a fixed cadence and reports status
// lines to the operator. It owns the consecutive-failure counter; no
// process-wide state is involved.
type Poller struct {
	cfg     config.MonitorConfig
	printer *display.Printer

	// Mutex guards failures against concurrent reads from tests or
	// future status surfaces; the loop itself is single-threaded.
	mu       sync.Mutex
	failures int

	done   chan struct{}
	closed bool
}

// New creates a Poller for the given monitor configuration.
func New(cfg config.MonitorConfig, printer *display.Printer) *Poller {
	return &Poller{
		cfg:     cfg,
		printer: printer,
		done:    make(chan struct{}, 1),
	}
}

// Run probes the stream page once per interval until the context is
// canceled or Shutdown is called. Cancellation is the normal way to stop
// the loop and is not an error.
func (p *Poller) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	p.printer.Header("🔍 Heliosinger Stream Health Monitor")
	p.printer.Plain(fmt.Sprintf("Monitoring: %s", display.Highlight(p.cfg.StreamURL)))
	p.printer.Plain(fmt.Sprintf("Check interval: %s", p.cfg.Interval))
	p.printer.Plain("Press Ctrl+C to stop")
	p.printer.Plain("")

	log.InfoContext(ctx, "Starting stream monitor", "interval", p.cfg.Interval.String())

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		p.probeOnce(ctx, tick)

		select {
		case <-ctx.Done():
			p.printer.Plain("")
			p.printer.Info("Monitoring stopped by user")
			log.InfoContext(ctx, "Stream monitor stopped")
			return nil
		case <-p.done:
			return nil
		case <-ticker.C:
		}
	}
}

// Shutdown stops a running loop. Safe to call more than once.
func (p *Poller) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		close(p.done)
		p.closed = true
	}
}

// Failures returns the current consecutive-failure count.
func (p *Poller) Failures() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

// probeOnce runs one iteration: the stream page probe on every tick and
// the endpoint sweep on the configured cadence. The sweep cadence depends
// only on the tick counter, never on the page probe outcome.
func (p *Poller) probeOnce(ctx context.Context, tick int) {
	log := logger.FromContext(ctx)

	res := probe.Page(ctx, p.cfg.StreamURL, p.cfg.Timeout)
	if res.OK() {
		p.printer.StatusOK(res.Message)
		p.setFailures(0)
	} else {
		failures := p.addFailure()
		p.printer.StatusError(res.Message)
		log.WarnContext(ctx, "Stream probe failed", "failures", failures, "message", res.Message)

		if failures >= p.cfg.FailureThreshold {
			p.printer.StatusError("Multiple consecutive failures detected!")
			p.printer.Warning("Consider restarting the dev server")
		}
	}

	if tick%endpointEvery == 0 {
		p.sweepEndpoints(ctx)
	}
}

// sweepEndpoints probes every API endpoint and prints one line per endpoint.
func (p *Poller) sweepEndpoints(ctx context.Context) {
	results := probe.Endpoints(ctx, p.cfg.APIEndpoints, p.cfg.Timeout)
	for _, url := range p.cfg.APIEndpoints {
		res := results[url]
		name := path.Base(url)
		if res.OK() {
			p.printer.StatusOK(fmt.Sprintf("API endpoint OK: %s", name))
		} else {
			p.printer.StatusWarning(fmt.Sprintf("API issue: %s - %s", name, res.Message))
		}
	}
}

func (p *Poller) setFailures(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = n
}

func (p *Poller) addFailure() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures++
	return p.failures
}
