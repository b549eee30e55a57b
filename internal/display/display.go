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

// Package display renders the operator-facing console output.
// Everything here is human-readable only; nothing parses these lines.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	colorSuccess   = color.New(color.FgHiGreen).SprintFunc()
	colorWarning   = color.New(color.FgHiYellow).SprintFunc()
	colorFailure   = color.New(color.FgHiRed).SprintFunc()
	colorHighlight = color.New(color.FgHiBlue).SprintFunc()
	colorHeading   = color.New(color.FgHiBlue, color.Bold).SprintFunc()
	colorBold      = color.New(color.Bold).SprintFunc()
)

const headerWidth = 60

// Printer writes colored status lines to a single output stream.
type Printer struct {
	out io.Writer
	now func() time.Time
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{
		out: out,
		now: time.Now,
	}
}

// StatusOK prints a timestamped OK status line.
func (p *Printer) StatusOK(message string) {
	p.status(colorSuccess, "✅", message)
}

// StatusWarning prints a timestamped warning status line.
func (p *Printer) StatusWarning(message string) {
	p.status(colorWarning, "⚠️ ", message)
}

// StatusError prints a timestamped error status line.
func (p *Printer) StatusError(message string) {
	p.status(colorFailure, "❌", message)
}

func (p *Printer) status(paint func(...any) string, icon, message string) {
	timestamp := p.now().Format("15:04:05")
	fmt.Fprintln(p.out, paint(fmt.Sprintf("[%s] %s %s", timestamp, icon, message)))
}

// Success prints an untimestamped success line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.out, colorSuccess("✅ "+message))
}

// Warning prints an untimestamped warning line.
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.out, colorWarning("⚠️  "+message))
}

// Failure prints an untimestamped failure line.
func (p *Printer) Failure(message string) {
	fmt.Fprintln(p.out, colorFailure("❌ "+message))
}

// Info prints an untimestamped informational line.
func (p *Printer) Info(message string) {
	fmt.Fprintln(p.out, colorHighlight("ℹ️  "+message))
}

// Header prints a banner with a rule above and below the text.
func (p *Printer) Header(text string) {
	rule := strings.Repeat("=", headerWidth)
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n\n", colorHeading(rule), colorHeading(text), colorHeading(rule))
}

// Bold prints a line in bold without any status color.
func (p *Printer) Bold(message string) {
	fmt.Fprintln(p.out, colorBold(message))
}

// Plain prints an uncolored line.
func (p *Printer) Plain(message string) {
	fmt.Fprintln(p.out, message)
}

// Highlight returns text painted in the highlight color for inline use.
func Highlight(text string) string {
	return colorHighlight(text)
}
