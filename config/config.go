// Package config holds the tunable knobs of the port in a JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/planetfall/continuum/screen"
)

// GameConfig holds the screen geometry and gameplay timing knobs.
// Geometry defaults match the original hardware; changing it is only
// safe for tools that render off-screen.
type GameConfig struct {
	// ScreenWidth is the screen width in pixels. Default: 512.
	ScreenWidth int `json:"screen_width"`

	// ViewHeight is the playfield height in pixels, excluding the
	// status bar. Default: 318.
	ViewHeight int `json:"view_height"`

	// StatusBarHeight is the status bar height in pixels. Default: 24.
	StatusBarHeight int `json:"status_bar_height"`

	// RowBytes is the byte stride of one screen row. Default: 64.
	RowBytes int `json:"row_bytes"`

	// FrameRate is the world tick rate in frames per second.
	// Default: 20, the original's timing.
	FrameRate int `json:"frame_rate"`

	// ShotLife is the total shot lifetime in frames. Default: 35.
	ShotLife int `json:"shot_life"`

	// WorldWrap enables the horizontal world wrap-around.
	// Default: true.
	WorldWrap bool `json:"world_wrap"`
}

// DefaultGameConfig returns a GameConfig with the original's values.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		ScreenWidth:     screen.ScrWidth,
		ViewHeight:      screen.ViewHeight,
		StatusBarHeight: screen.StatusBarHeight,
		RowBytes:        screen.RowBytes,
		FrameRate:       20,
		ShotLife:        35,
		WorldWrap:       true,
	}
}

// LoadConfig loads a GameConfig from a JSON file. Missing fields keep
// their defaults.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	config := DefaultGameConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a GameConfig to a JSON file.
func (c *GameConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize game config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write game config file: %w", err)
	}

	return nil
}

// Validate checks the config for usable values.
func (c *GameConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenWidth%16 != 0 {
		return fmt.Errorf("screen_width must be a positive multiple of 16")
	}
	if c.ViewHeight <= 0 {
		return fmt.Errorf("view_height must be > 0")
	}
	if c.StatusBarHeight < 0 {
		return fmt.Errorf("status_bar_height must be >= 0")
	}
	if c.RowBytes*8 < c.ScreenWidth {
		return fmt.Errorf("row_bytes too small for screen_width")
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be > 0")
	}
	if c.ShotLife <= 0 {
		return fmt.Errorf("shot_life must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the GameConfig.
func (c *GameConfig) Clone() *GameConfig {
	return &GameConfig{
		ScreenWidth:     c.ScreenWidth,
		ViewHeight:      c.ViewHeight,
		StatusBarHeight: c.StatusBarHeight,
		RowBytes:        c.RowBytes,
		FrameRate:       c.FrameRate,
		ShotLife:        c.ShotLife,
		WorldWrap:       c.WorldWrap,
	}
}
