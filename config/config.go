// Package config holds print density presets and the zlabel.toml settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Print densities in dots per inch for 6, 8, 12 and 24 dots/mm printheads.
const (
	DPI152 = 152
	DPI203 = 203
	DPI305 = 305
	DPI610 = 610
)

// Default label size in inches.
const (
	DefaultWidthInches  = 4
	DefaultHeightInches = 6
	DefaultDPI          = DPI203
)

// DotsPerMM maps the printhead resolution in dots/mm to dots per inch.
var DotsPerMM = map[int]int{
	6:  DPI152,
	8:  DPI203,
	12: DPI305,
	24: DPI610,
}

// Config is the content of zlabel.toml.
type Config struct {
	Label  LabelConfig  `toml:"label"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// LabelConfig is the default canvas, used when a label does not declare one.
type LabelConfig struct {
	Width  float64 `toml:"width"`  // inches
	Height float64 `toml:"height"` // inches
	DPI    int     `toml:"dpi"`
}

// OutputConfig controls the document wrapper written around the label code.
type OutputConfig struct {
	Header bool `toml:"header"` // write ^PW/^LL
	UTF8   bool `toml:"utf8"`   // write ^CI28
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Label: LabelConfig{
			Width:  DefaultWidthInches,
			Height: DefaultHeightInches,
			DPI:    DefaultDPI,
		},
		Output: OutputConfig{UTF8: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data over base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, fmt.Errorf("解析配置失败: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("未知配置项: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate rejects a canvas that could not hold anything.
func (c Config) Validate() error {
	if c.Label.Width <= 0 || c.Label.Height <= 0 {
		return fmt.Errorf("标签尺寸必须为正数: %gin x %gin", c.Label.Width, c.Label.Height)
	}
	if c.Label.DPI <= 0 {
		return fmt.Errorf("dpi 必须为正数: %d", c.Label.DPI)
	}
	return nil
}

// Dots converts inches to dots at dpi, truncating toward zero.
func Dots(inches float64, dpi int) int {
	return int(inches * float64(dpi))
}
