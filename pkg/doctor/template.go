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
	"encoding/json"
	"fmt"
	"os"
)

// Settings is the recommended OBS configuration for the Heliosinger
// stream, written as a reference template next to the binary. The file
// is overwritten on every run; it carries no runtime state.
type Settings struct {
	Video         VideoSettings         `json:"video"`
	Output        OutputSettings        `json:"output"`
	Audio         AudioSettings         `json:"audio"`
	BrowserSource BrowserSourceSettings `json:"browser_source"`
}

type VideoSettings struct {
	BaseResolution   string `json:"base_resolution"`
	OutputResolution string `json:"output_resolution"`
	FPS              int    `json:"fps"`
}

type OutputSettings struct {
	Mode         string `json:"mode"`
	VideoBitrate int    `json:"video_bitrate"`
	AudioBitrate int    `json:"audio_bitrate"`
	Encoder      string `json:"encoder"`
}

type AudioSettings struct {
	SampleRate int `json:"sample_rate"`
	Channels   int `json:"channels"`
}

type BrowserSourceSettings struct {
	URL                     string `json:"url"`
	Width                   int    `json:"width"`
	Height                  int    `json:"height"`
	FPS                     int    `json:"fps"`
	ShutdownWhenNotVisible bool   `json:"shutdown_when_not_visible"`
	RefreshWhenSceneActive bool   `json:"refresh_when_scene_active"`
}

// DefaultSettings returns the recommended template pointing the browser
// source at the given stream URL.
func DefaultSettings(streamURL string) Settings {
	return Settings{
		Video: VideoSettings{
			BaseResolution:   "1920x1080",
			OutputResolution: "1920x1080",
			FPS:              30,
		},
		Output: OutputSettings{
			Mode:         "simple",
			VideoBitrate: 6000,
			AudioBitrate: 160,
			Encoder:      "Apple VT H264 Hardware Encoder",
		},
		Audio: AudioSettings{
			SampleRate: 48000,
			Channels:   2,
		},
		BrowserSource: BrowserSourceSettings{
			URL:                    streamURL,
			Width:                  1920,
			Height:                 1080,
			FPS:                    30,
			ShutdownWhenNotVisible: true,
			RefreshWhenSceneActive: true,
		},
	}
}

// WriteTemplate serializes the settings to path, replacing any previous
// content.
func WriteTemplate(path string, settings Settings) error {
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings template: %w", err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write settings template: %w", err)
	}

	return nil
}
