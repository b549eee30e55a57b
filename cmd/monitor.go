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

package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heliosinger/streamkit/internal/display"
	"github.com/heliosinger/streamkit/internal/httpclient"
	"github.com/heliosinger/streamkit/internal/logger"
	"github.com/heliosinger/streamkit/pkg/config"
	"github.com/heliosinger/streamkit/pkg/monitor"
)

// MonitorFlagsNameMapping maps the monitor flag names to their config fields
type MonitorFlagsNameMapping struct {
	ConfigFile       string
	StreamURL        string
	APIEndpoints     string
	Interval         string
	Timeout          string
	FailureThreshold string
}

// monitorKey namespaces a flag name for the shared viper registry
func monitorKey(name string) string {
	return "monitor." + name
}

// NewCmdMonitor creates a new monitor command
func NewCmdMonitor() *cobra.Command {
	flagMapping := MonitorFlagsNameMapping{
		ConfigFile:       "config",
		StreamURL:        "streamUrl",
		APIEndpoints:     "apiEndpoint",
		Interval:         "interval",
		Timeout:          "timeout",
		FailureThreshold: "failureThreshold",
	}

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Monitor the stream health",
		Long: "Probes the stream page on an interval and the API endpoints on every second tick,\n" +
			"printing one status line per probe. Runs until interrupted.",
		Run: runMonitor(&flagMapping),
	}

	defaults := config.NewConfig().Monitor

	cmd.PersistentFlags().String(flagMapping.ConfigFile, "", "path to a streamkit config file")
	cmd.PersistentFlags().String(flagMapping.StreamURL, defaults.StreamURL, "the stream page url probed on every tick")
	cmd.PersistentFlags().StringSlice(flagMapping.APIEndpoints, defaults.APIEndpoints, "api endpoint swept on every second tick; repeatable")
	cmd.PersistentFlags().Duration(flagMapping.Interval, defaults.Interval, "time between two probe ticks")
	cmd.PersistentFlags().Duration(flagMapping.Timeout, defaults.Timeout, "timeout for each individual probe")
	cmd.PersistentFlags().Int(flagMapping.FailureThreshold, defaults.FailureThreshold, "consecutive failures before the restart advisory is printed")

	viper.BindPFlag(monitorKey(flagMapping.ConfigFile), cmd.PersistentFlags().Lookup(flagMapping.ConfigFile))
	viper.BindPFlag(monitorKey(flagMapping.StreamURL), cmd.PersistentFlags().Lookup(flagMapping.StreamURL))
	viper.BindPFlag(monitorKey(flagMapping.APIEndpoints), cmd.PersistentFlags().Lookup(flagMapping.APIEndpoints))
	viper.BindPFlag(monitorKey(flagMapping.Interval), cmd.PersistentFlags().Lookup(flagMapping.Interval))
	viper.BindPFlag(monitorKey(flagMapping.Timeout), cmd.PersistentFlags().Lookup(flagMapping.Timeout))
	viper.BindPFlag(monitorKey(flagMapping.FailureThreshold), cmd.PersistentFlags().Lookup(flagMapping.FailureThreshold))

	return cmd
}

// runMonitor is the entry point to start the health poller
func runMonitor(fm *MonitorFlagsNameMapping) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.NewLogger()
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logger.IntoContext(ctx, log)

		cfg := config.NewConfig()
		if path := viper.GetString(monitorKey(fm.ConfigFile)); path != "" {
			if err := cfg.LoadFile(ctx, path); err != nil {
				log.Error("Error while loading the config file", "error", err)
				panic(err)
			}
		}

		// flags override the file only when set explicitly
		flags := cmd.PersistentFlags()
		if flags.Changed(fm.StreamURL) {
			cfg.Monitor.StreamURL = viper.GetString(monitorKey(fm.StreamURL))
		}
		if flags.Changed(fm.APIEndpoints) {
			cfg.Monitor.APIEndpoints = viper.GetStringSlice(monitorKey(fm.APIEndpoints))
		}
		if flags.Changed(fm.Interval) {
			cfg.Monitor.Interval = viper.GetDuration(monitorKey(fm.Interval))
		}
		if flags.Changed(fm.Timeout) {
			cfg.Monitor.Timeout = viper.GetDuration(monitorKey(fm.Timeout))
		}
		if flags.Changed(fm.FailureThreshold) {
			cfg.Monitor.FailureThreshold = viper.GetInt(monitorKey(fm.FailureThreshold))
		}

		if err := cfg.Validate(ctx); err != nil {
			log.Error("Error while validating the config", "error", err)
			panic(err)
		}

		ctx = httpclient.IntoContext(ctx, &http.Client{Timeout: cfg.Monitor.Timeout + time.Second})

		poller := monitor.New(cfg.Monitor, display.New(os.Stdout))

		log.Info("Running stream monitor")
		if err := poller.Run(ctx); err != nil {
			panic(err)
		}
	}
}
