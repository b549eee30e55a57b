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

// Package doctor runs the OBS setup diagnostics battery.
package doctor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/heliosinger/streamkit/internal/display"
	"github.com/heliosinger/streamkit/internal/logger"
	"github.com/heliosinger/streamkit/pkg/config"
)

// Check is one diagnostic in the battery. Checks are independent;
// no check reads another check's outcome.
type Check struct {
	Name string
	// Informational checks report findings but never gate the
	// aggregate result.
	Informational bool
	Run           func(ctx context.Context) bool
}

// CheckResult records the outcome of one check.
type CheckResult struct {
	Name          string `json:"name"`
	Passed        bool   `json:"passed"`
	Informational bool   `json:"informational"`
}

// Report is the ordered outcome of one battery run.
type Report []CheckResult

// Passed reports the aggregate result: the logical AND over all
// non-informational checks.
func (r Report) Passed() bool {
	for _, res := range r {
		if !res.Informational && !res.Passed {
			return false
		}
	}
	return true
}

// Results returns the outcome per check name.
func (r Report) Results() map[string]bool {
	results := make(map[string]bool, len(r))
	for _, res := range r {
		results[res.Name] = res.Passed
	}
	return results
}

// commandRunner invokes a local command and captures its stdout.
// Injectable so tests run without the real system utilities.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Runner executes the diagnostics battery against the local system.
type Runner struct {
	cfg     config.DoctorConfig
	printer *display.Printer

	execCommand commandRunner
	lookPath    func(file string) (string, error)
}

// New creates a Runner for the given doctor configuration.
func New(cfg config.DoctorConfig, printer *display.Printer) *Runner {
	return &Runner{
		cfg:         cfg,
		printer:     printer,
		execCommand: runCommand,
		lookPath:    exec.LookPath,
	}
}

// Checks returns the battery table. The table is the single place a
// check is registered; adding or removing a check does not touch Run.
func (r *Runner) Checks() []Check {
	return []Check{
		{Name: "OBS Installation", Run: r.checkOBSInstalled},
		{Name: "Hardware Encoding", Run: r.checkHardwareEncoding},
		{Name: "Dev Server", Run: r.checkDevServer},
		{Name: "OBS Configuration", Run: r.checkOBSConfig},
		{Name: "System Resources", Informational: true, Run: r.checkSystemResources},
	}
}

// Run executes every check in order and returns the report. A panicking
// check is recorded as failed with its message surfaced; nothing
// propagates out of the battery.
func (r *Runner) Run(ctx context.Context) Report {
	log := logger.FromContext(ctx)

	report := make(Report, 0, len(r.Checks()))
	for _, check := range r.Checks() {
		r.printer.Plain("")
		r.printer.Bold(fmt.Sprintf("Checking: %s", check.Name))

		passed := r.runCheck(ctx, check)
		log.DebugContext(ctx, "Check finished", "check", check.Name, "passed", passed)

		report = append(report, CheckResult{
			Name:          check.Name,
			Passed:        passed,
			Informational: check.Informational,
		})
	}
	return report
}

func (r *Runner) runCheck(ctx context.Context, check Check) (passed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.printer.Failure(fmt.Sprintf("Error checking %s: %v", check.Name, rec))
			passed = false
		}
	}()
	return check.Run(ctx)
}
