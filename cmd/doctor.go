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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heliosinger/streamkit/internal/display"
	"github.com/heliosinger/streamkit/internal/logger"
	"github.com/heliosinger/streamkit/pkg/config"
	"github.com/heliosinger/streamkit/pkg/doctor"
)

// DoctorFlagsNameMapping maps the doctor flag names to their config fields
type DoctorFlagsNameMapping struct {
	ConfigFile   string
	TemplatePath string
}

// doctorKey namespaces a flag name for the shared viper registry
func doctorKey(name string) string {
	return "doctor." + name
}

// NewCmdDoctor creates a new doctor command
func NewCmdDoctor() *cobra.Command {
	flagMapping := DoctorFlagsNameMapping{
		ConfigFile:   "config",
		TemplatePath: "template",
	}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the local OBS streaming setup",
		Long: "Runs the setup diagnostics battery, writes the recommended OBS settings template\n" +
			"and prints setup instructions and troubleshooting tips.",
		Run: runDoctor(&flagMapping),
	}

	defaults := config.NewConfig().Doctor

	cmd.PersistentFlags().String(flagMapping.ConfigFile, "", "path to a streamkit config file")
	cmd.PersistentFlags().String(flagMapping.TemplatePath, defaults.TemplatePath, "where to write the OBS settings template")

	viper.BindPFlag(doctorKey(flagMapping.ConfigFile), cmd.PersistentFlags().Lookup(flagMapping.ConfigFile))
	viper.BindPFlag(doctorKey(flagMapping.TemplatePath), cmd.PersistentFlags().Lookup(flagMapping.TemplatePath))

	return cmd
}

// runDoctor is the entry point to run the setup checks once
func runDoctor(fm *DoctorFlagsNameMapping) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.NewLogger()
		ctx := logger.IntoContext(context.Background(), log)

		cfg := config.NewConfig()
		if path := viper.GetString(doctorKey(fm.ConfigFile)); path != "" {
			if err := cfg.LoadFile(ctx, path); err != nil {
				log.Error("Error while loading the config file", "error", err)
				panic(err)
			}
		}
		if cmd.PersistentFlags().Changed(fm.TemplatePath) {
			cfg.Doctor.TemplatePath = viper.GetString(doctorKey(fm.TemplatePath))
		}

		if err := cfg.Validate(ctx); err != nil {
			log.Error("Error while validating the config", "error", err)
			panic(err)
		}

		printer := display.New(os.Stdout)
		printer.Header("Heliosinger OBS Setup Helper")
		printer.Plain("Checking system requirements...")

		runner := doctor.New(cfg.Doctor, printer)
		report := runner.Run(ctx)

		printer.Plain("")
		printer.Plain("Generating OBS settings template...")
		settings := doctor.DefaultSettings(cfg.Doctor.StreamURL)
		if err := doctor.WriteTemplate(cfg.Doctor.TemplatePath, settings); err != nil {
			log.Error("Error while writing the settings template", "error", err)
			printer.Warning(fmt.Sprintf("Could not generate template: %v", err))
		} else {
			printer.Success(fmt.Sprintf("Settings template saved to: %s", cfg.Doctor.TemplatePath))
		}

		runner.PrintInstructions()
		runner.PrintTroubleshooting()
		runner.PrintSummary(report)

		printer.Plain("")
		printer.Bold("Quick Start:")
		printer.Plain("  1. Start the dev server: npm run dev")
		printer.Plain("  2. Configure OBS as shown above")
		printer.Plain("  3. Start streaming!")
	}
}
