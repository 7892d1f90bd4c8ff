package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout the spread layout, units are points
type Layout struct {
	Title        string  `json:"title,omitempty" yaml:"title"`               // document title
	PageSize     string  `json:"page_size,omitempty" yaml:"page_size"`       // Letter, Legal, A4, A5 ...
	Orientation  string  `json:"orientation,omitempty" yaml:"orientation"`   // P or L
	Margin       float64 `json:"margin,omitempty" yaml:"margin"`             // page margin
	FontDir      string  `json:"font_dir,omitempty" yaml:"font_dir"`         // relative to the layout file
	FontFamily   string  `json:"font_family,omitempty" yaml:"font_family"`   // core font, or the family of FontFile
	FontFile     string  `json:"font_file,omitempty" yaml:"font_file"`       // TTF registered as FontFamily
	BoldFontFile string  `json:"bold_font_file,omitempty" yaml:"bold_font_file"`
	TitleSize    float64 `json:"title_size,omitempty" yaml:"title_size"`
	HeadingSize  float64 `json:"heading_size,omitempty" yaml:"heading_size"`
	BodySize     float64 `json:"body_size,omitempty" yaml:"body_size"`
	LineHeight   float64 `json:"line_height,omitempty" yaml:"line_height"` // multiple of the body size
	LeftDays     int     `json:"left_days,omitempty" yaml:"left_days"`     // weekdays on the left page
	Background   string  `json:"background,omitempty" yaml:"background"`   // background PDF
}

// DefaultLayout a portrait Letter spread, Monday to Wednesday on the left page
func DefaultLayout() Layout {
	return Layout{
		Title:       "Weekly Agenda",
		PageSize:    "Letter",
		Orientation: "P",
		Margin:      36,
		FontFamily:  "Helvetica",
		TitleSize:   20,
		HeadingSize: 12,
		BodySize:    10,
		LineHeight:  1.4,
		LeftDays:    3,
	}
}

// LoadLayout reads the layout file over the defaults.
// An empty path returns the defaults.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return layout, fmt.Errorf("read layout %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &layout); err != nil {
		return layout, fmt.Errorf("parse layout %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if layout.FontDir != "" && !filepath.IsAbs(layout.FontDir) {
		layout.FontDir = filepath.Join(dir, layout.FontDir)
	}
	if layout.Background != "" && !filepath.IsAbs(layout.Background) {
		layout.Background = filepath.Join(dir, layout.Background)
	}

	return layout, layout.Validate()
}

// Validate checks the layout values
func (layout Layout) Validate() error {
	switch strings.ToUpper(layout.Orientation) {
	case "P", "L":
	default:
		return fmt.Errorf("layout: orientation must be P or L, got %q", layout.Orientation)
	}

	if layout.LeftDays < 1 || layout.LeftDays > 4 {
		return fmt.Errorf("layout: left_days must be between 1 and 4, got %d", layout.LeftDays)
	}

	if layout.Margin < 0 {
		return fmt.Errorf("layout: margin must not be negative")
	}

	if layout.TitleSize <= 0 || layout.HeadingSize <= 0 || layout.BodySize <= 0 || layout.LineHeight <= 0 {
		return fmt.Errorf("layout: font sizes and line height must be positive")
	}

	if layout.FontFamily == "" {
		return fmt.Errorf("layout: font_family is required")
	}

	if layout.BoldFontFile != "" && layout.FontFile == "" {
		return fmt.Errorf("layout: bold_font_file requires font_file")
	}

	return nil
}

// FontPath the path of a font file of the layout
func (layout Layout) FontPath(file string) string {
	if file == "" || filepath.IsAbs(file) || layout.FontDir == "" {
		return file
	}
	return filepath.Join(layout.FontDir, file)
}
