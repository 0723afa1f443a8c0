package inspector

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"
)

// Config controls how the inspector lays out and decorates field labels.
type Config struct {
	Tooltips   bool    `mapstructure:"tooltips" yaml:"tooltips"`       // show attribute tooltips on hover
	LabelWidth float32 `mapstructure:"label_width" yaml:"label_width"` // width of the label column in pixels
	RowHeight  float32 `mapstructure:"row_height" yaml:"row_height"`   // height of one property row in pixels
	Debug      bool    `mapstructure:"debug" yaml:"debug"`             // log every drawn label
}

// DefaultConfig is used for any setting the file and environment leave unset.
func DefaultConfig() Config {
	return Config{
		Tooltips:   true,
		LabelWidth: 110,
		RowHeight:  24,
	}
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string][]string{
	"tooltips":    {"INSPECTOR_TOOLTIPS"},
	"label_width": {"INSPECTOR_LABEL_WIDTH"},
	"row_height":  {"INSPECTOR_ROW_HEIGHT"},
	"debug":       {"INSPECTOR_DEBUG"},
}

// LoadConfig reads the config file at filePath when it exists and applies
// environment overrides on top of the defaults. An empty path skips the file.
func LoadConfig(filePath string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("tooltips", def.Tooltips)
	v.SetDefault("label_width", def.LabelWidth)
	v.SetDefault("row_height", def.RowHeight)
	v.SetDefault("debug", def.Debug)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = def.RowHeight
	}
	if cfg.LabelWidth < 0 {
		cfg.LabelWidth = def.LabelWidth
	}

	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}
