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

package doctor

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/heliosinger/streamkit/pkg/probe"
)

const (
	// encoderMarker in the display inventory means the GPU can do
	// hardware encoding.
	encoderMarker = "Metal"

	connectTimeout  = 2 * time.Second
	pageTimeout     = 3 * time.Second
	profilerTimeout = 10 * time.Second

	bytesPerGB = 1 << 30
)

// checkOBSInstalled passes when any of the known install paths exists.
func (r *Runner) checkOBSInstalled(_ context.Context) bool {
	for _, path := range r.cfg.OBSPaths {
		if _, err := os.Stat(path); err == nil {
			r.printer.Success(fmt.Sprintf("OBS Studio found at: %s", path))
			return true
		}
	}

	r.printer.Failure("OBS Studio not found")
	r.printer.Info("Install with: brew install --cask obs")
	return false
}

// checkHardwareEncoding inspects the display inventory for the encoder marker.
func (r *Runner) checkHardwareEncoding(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, profilerTimeout)
	defer cancel()

	out, err := r.execCommand(ctx, "system_profiler", "SPDisplaysDataType")
	if err != nil {
		r.printer.Warning(fmt.Sprintf("Could not check hardware encoding: %v", err))
		return false
	}

	if !strings.Contains(string(out), encoderMarker) {
		r.printer.Warning("Metal not detected - may need software encoding")
		return false
	}

	r.printer.Success("Hardware encoding supported (Metal detected)")
	r.printer.Info("Use 'Apple VT H264 Hardware Encoder' in OBS")
	return true
}

// checkDevServer passes when the dev server port accepts a TCP
// connection and the stream page answers with a 200.
func (r *Runner) checkDevServer(ctx context.Context) bool {
	addr := net.JoinHostPort(r.cfg.ServerHost, strconv.Itoa(r.cfg.ServerPort))
	conn, err := net.DialTimeout("tcp", addr, connectTimeout)
	if err != nil {
		r.printer.Failure(fmt.Sprintf("Dev server is not running on port %d", r.cfg.ServerPort))
		r.printer.Info("Start with: npm run dev")
		return false
	}
	_ = conn.Close()

	if res := probe.Page(ctx, r.cfg.StreamURL, pageTimeout); !res.OK() {
		r.printer.Warning("Dev server is running but the stream page may not be accessible")
		return false
	}

	r.printer.Success("Dev server is running and stream page is accessible")
	return true
}

// checkOBSConfig passes when the OBS configuration directory exists.
// The profile count is reported but never gates the result.
func (r *Runner) checkOBSConfig(_ context.Context) bool {
	if r.cfg.OBSConfigDir == "" {
		r.printer.Warning("OBS configuration directory is not set")
		return false
	}

	if _, err := os.Stat(r.cfg.OBSConfigDir); err != nil {
		r.printer.Warning("OBS configuration directory not found")
		r.printer.Info("OBS may not have been launched yet")
		return false
	}

	r.printer.Success("OBS configuration directory found")

	profilesDir := filepath.Join(r.cfg.OBSConfigDir, "basic", "profiles")
	if entries, err := os.ReadDir(profilesDir); err == nil {
		if len(entries) > 0 {
			r.printer.Info(fmt.Sprintf("Found %d OBS profile(s)", len(entries)))
		} else {
			r.printer.Warning("No OBS profiles found - create one in OBS")
		}
	}

	return true
}

// checkSystemResources reports CPU, memory and the sleep inhibitor.
// Informational only.
func (r *Runner) checkSystemResources(ctx context.Context) bool {
	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		r.printer.Info(fmt.Sprintf("CPU cores: %d", cores))
	} else {
		r.printer.Warning(fmt.Sprintf("Could not read CPU count: %v", err))
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		r.printer.Info(fmt.Sprintf("Total RAM: %.1f GB", float64(vm.Total)/bytesPerGB))
	} else {
		r.printer.Warning(fmt.Sprintf("Could not read memory size: %v", err))
	}

	if _, err := r.lookPath("caffeinate"); err == nil {
		r.printer.Success("caffeinate available (for preventing sleep)")
	} else {
		r.printer.Warning("caffeinate not found")
	}

	return true
}
