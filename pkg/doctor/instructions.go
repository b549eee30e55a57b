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

import "fmt"

type instruction struct {
	title   string
	details string
}

type tip struct {
	issue     string
	solutions []string
}

// PrintInstructions prints the step-by-step OBS setup guide.
func (r *Runner) PrintInstructions() {
	r.printer.Header("OBS Setup Instructions")

	instructions := []instruction{
		{"1. Launch OBS Studio", "open /Applications/OBS.app"},
		{"2. Auto-Configuration", "Select 'Optimize for streaming' → YouTube"},
		{"3. Add Browser Source", "Sources → + → Browser → Name: 'Heliosinger Stream'"},
		{"4. Configure Browser Source", fmt.Sprintf("URL: %s\n     Width: 1920, Height: 1080, FPS: 30", r.cfg.StreamURL)},
		{"5. Configure Audio", "Settings → Audio → Enable Desktop Audio"},
		{"6. Set Up YouTube Stream", "Settings → Stream → YouTube - RTMPS\n     Get stream key from YouTube Studio"},
		{"7. Optimize Video Settings", "Settings → Video → 1920x1080 @ 30fps\n     Settings → Output → Use Hardware Encoder"},
	}

	for _, step := range instructions {
		r.printer.Plain("")
		r.printer.Bold(step.title)
		r.printer.Plain("   " + step.details)
	}
}

// PrintTroubleshooting prints remediation tips for the usual failures.
func (r *Runner) PrintTroubleshooting() {
	r.printer.Header("Troubleshooting Tips")

	tips := []tip{
		{
			issue: "No audio from browser source",
			solutions: []string{
				"Click Browser source settings",
				"Check 'Control audio via OBS'",
			},
		},
		{
			issue: "Stream is laggy",
			solutions: []string{
				"Lower FPS to 30",
				"Use Hardware Encoder",
				"Reduce browser source resolution to 1280x720",
			},
		},
		{
			issue: "Can't connect to localhost",
			solutions: []string{
				"Make sure dev server is running: npm run dev",
				fmt.Sprintf("Try http://127.0.0.1:%d/stream instead", r.cfg.ServerPort),
			},
		},
		{
			issue: "YouTube says no data",
			solutions: []string{
				"Wait 30-60 seconds for initial buffer",
				"Check your stream key is correct",
			},
		},
	}

	for _, t := range tips {
		r.printer.Plain("")
		r.printer.Warning(t.issue)
		for _, solution := range t.solutions {
			r.printer.Plain("  • " + solution)
		}
	}
}

// PrintSummary prints the aggregate outcome of a battery run.
func (r *Runner) PrintSummary(report Report) {
	r.printer.Header("Setup Summary")

	if report.Passed() {
		r.printer.Success("All checks passed! You're ready to stream.")
		return
	}

	r.printer.Warning("Some checks failed. Review the issues above.")
	r.printer.Info("Run this command again after fixing issues.")
}
