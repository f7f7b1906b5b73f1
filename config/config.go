package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"splitpane/log"
	"splitpane/split"
)

const (
	ConfigFileName = "config.json"
	// DefaultGutterSize is the gutter width in cells. The core default is
	// sized for pixels and far too wide for a terminal.
	DefaultGutterSize = 1
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".splitpane"), nil
}

// AreaConfig declares one pane. Numeric fields accept numbers or numeric
// strings and are coerced the way the split package coerces its inputs.
type AreaConfig struct {
	Title string `json:"title" toml:"title"`
	Body  string `json:"body,omitempty" toml:"body"`
	// Order sorts panes when every pane has one.
	Order any `json:"order,omitempty" toml:"order"`
	// Size is a percentage. Sizes are only used when every pane has one and
	// they add up to 100.
	Size any `json:"size,omitempty" toml:"size"`
	// MinSize is a percentage below which a drag cannot shrink the pane.
	MinSize any `json:"min_size,omitempty" toml:"min_size"`
	// Visible defaults to true.
	Visible any `json:"visible,omitempty" toml:"visible"`
}

// Config represents the application configuration
type Config struct {
	// Axis is "horizontal" or "vertical".
	Axis string `json:"axis" toml:"axis"`
	// Dir is "ltr" or "rtl".
	Dir string `json:"dir,omitempty" toml:"dir"`
	// GutterSize is the gutter width in cells.
	GutterSize   any    `json:"gutter_size" toml:"gutter_size"`
	GutterColor  string `json:"gutter_color,omitempty" toml:"gutter_color"`
	GutterImageH string `json:"gutter_image_horizontal,omitempty" toml:"gutter_image_horizontal"`
	GutterImageV string `json:"gutter_image_vertical,omitempty" toml:"gutter_image_vertical"`
	// Width and Height pin the container size in cells instead of measuring
	// the terminal.
	Width         any          `json:"width,omitempty" toml:"width"`
	Height        any          `json:"height,omitempty" toml:"height"`
	Disabled      bool         `json:"disabled" toml:"disabled"`
	UseTransition bool         `json:"use_transition" toml:"use_transition"`
	Areas         []AreaConfig `json:"areas" toml:"areas"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Axis:          "horizontal",
		Dir:           "ltr",
		GutterSize:    DefaultGutterSize,
		GutterColor:   "#585b70",
		UseTransition: true,
		Areas: []AreaConfig{
			{Title: "Files", Body: "Drag the gutters with the mouse.", Size: 25},
			{Title: "Editor", Body: "Press 1-9 to hide or show panes.", Size: 50, MinSize: 20},
			{Title: "Outline", Body: "Press ? for all keys.", Size: 25},
		},
	}
}

// ContainerOptions converts the configuration into container options.
func (c *Config) ContainerOptions() split.Options {
	opts := split.DefaultOptions()
	opts.Axis = split.ParseAxis(c.Axis)
	opts.Direction = split.ParseDirection(c.Dir)
	opts.GutterSize = split.ParseGutterSize(c.GutterSize)
	opts.GutterColor = split.ParseColor(c.GutterColor)
	opts.GutterImageH = split.ParseImage(c.GutterImageH)
	opts.GutterImageV = split.ParseImage(c.GutterImageV)
	opts.FixedWidth = split.ParseFixedSize(c.Width)
	opts.FixedHeight = split.ParseFixedSize(c.Height)
	opts.Disabled = c.Disabled
	opts.UseTransition = c.UseTransition
	return opts
}

// AreaSpecs converts the configured panes into area declarations, in order.
func (c *Config) AreaSpecs() []split.AreaSpec {
	specs := make([]split.AreaSpec, 0, len(c.Areas))
	for _, a := range c.Areas {
		visible := true
		if a.Visible != nil {
			visible = split.ParseBool(a.Visible)
		}
		specs = append(specs, split.AreaSpec{
			OrderHint: split.ParseOrderHint(a.Order),
			SizeHint:  split.ParseSizeHint(a.Size),
			MinSize:   split.ParseMinSize(a.MinSize),
			Visible:   visible,
		})
	}
	return specs
}

// ApplySizes sets the size of the first panes from a comma separated list of
// percentages such as "30,70". Extra panes are added for extra sizes.
func (c *Config) ApplySizes(list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", part, err)
		}
		if i >= len(c.Areas) {
			c.Areas = append(c.Areas, AreaConfig{Title: fmt.Sprintf("Pane %d", i+1)})
		}
		c.Areas[i].Size = v
	}
	return nil
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return &config
}

// LoadConfigFile reads a configuration from an explicit path. Files ending in
// .toml are decoded as TOML, everything else as JSON.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	config.Areas = nil

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if len(config.Areas) == 0 {
		config.Areas = DefaultConfig().Areas
	}
	return config, nil
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
