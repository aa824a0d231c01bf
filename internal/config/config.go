package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okottawar/Finsight/internal/category"
	"github.com/okottawar/Finsight/internal/model"
)

// Config represents the top-level finsight.yaml configuration.
type Config struct {
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Categories []CategoryConfig `yaml:"categories,omitempty"`
}

// AnalysisConfig holds default thresholds for the analytics queries.
type AnalysisConfig struct {
	RecurringThreshold int     `yaml:"recurring_threshold"`
	TopN               int     `yaml:"top_n"`
	ZThreshold         float64 `yaml:"z_threshold"`
}

// CategoryConfig is one entry of a keyword-table override. Entries are
// matched in file order, like the built-in table.
type CategoryConfig struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Load reads a finsight.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard analysis thresholds and no
// category overrides.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			RecurringThreshold: 2,
			TopN:               1,
			ZThreshold:         3,
		},
	}
}

// Rules returns the categorizer rule table: the configured override when
// present, the built-in table otherwise.
func (c *Config) Rules() []category.Rule {
	if len(c.Categories) == 0 {
		return category.DefaultRules()
	}
	rules := make([]category.Rule, 0, len(c.Categories))
	for _, cc := range c.Categories {
		rules = append(rules, category.Rule{
			Category: model.Category(cc.Category),
			Keywords: cc.Keywords,
		})
	}
	return rules
}

func (c *Config) validate() error {
	for _, cc := range c.Categories {
		if !model.ValidCategory(model.Category(cc.Category)) {
			return fmt.Errorf("unknown category %q", cc.Category)
		}
	}
	return nil
}
