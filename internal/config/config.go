package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fundsim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load policy parameters from a separate YAML (e.g. examples/sectors/*.yaml).
	// If both PolicyFile and Policy are provided, Policy overrides PolicyFile.
	PolicyFile string            `yaml:"policy_file"`
	Policy     PolicyConfig      `yaml:"policy"`
	Variations []VariationConfig `yaml:"variations"`
}

type PolicyConfig struct {
	Name                string  `yaml:"name"`
	ProjectValue        float64 `yaml:"project_value"`
	MarketRate          float64 `yaml:"market_rate"`
	SubsidizedRate      float64 `yaml:"subsidized_rate"`
	DiscountRate        float64 `yaml:"discount_rate"`
	FundAmount          float64 `yaml:"fund_amount"`
	TermYears           int     `yaml:"term_years"`
	DemandElasticity    float64 `yaml:"demand_elasticity"`
	AbatementTonnesCO2e float64 `yaml:"abatement_tonnes_co2e"`
}

// VariationConfig names a policy overlay for comparison runs.
type VariationConfig struct {
	Name   string       `yaml:"name"`
	Policy PolicyConfig `yaml:"policy"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If discount_rate is not provided, default it to the market rate.
	// This keeps configs concise: the beneficiary's opportunity cost is the
	// market financing rate unless stated otherwise.
	if c.Policy.DiscountRate == 0 {
		c.Policy.DiscountRate = c.Policy.MarketRate
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If policy_file is set, load it and merge in any explicit overrides from c.Policy.
	if c.PolicyFile != "" {
		policyPath := c.PolicyFile
		if !filepath.IsAbs(policyPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), policyPath)
			if _, err := os.Stat(cand); err == nil {
				policyPath = cand
			}
		}
		loaded, err := loadPolicyFile(policyPath)
		if err != nil {
			return nil, err
		}
		c.Policy = MergePolicy(loaded, c.Policy)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate policy params by constructing a model policy.
	params := c.Policy.ToModelParams()
	if _, err := model.NewPolicy(params); err != nil {
		return fmt.Errorf("policy config invalid: %w", err)
	}
	return nil
}

func (p PolicyConfig) ToModelParams() model.PolicyParams {
	return model.PolicyParams{
		ProjectValue:        p.ProjectValue,
		MarketRate:          p.MarketRate,
		SubsidizedRate:      p.SubsidizedRate,
		DiscountRate:        p.DiscountRate,
		FundAmount:          p.FundAmount,
		TermYears:           p.TermYears,
		DemandElasticity:    p.DemandElasticity,
		AbatementTonnesCO2e: p.AbatementTonnesCO2e,
	}
}

type policyFileWrapper struct {
	Policy PolicyConfig `yaml:"policy"`
}

func loadPolicyFile(path string) (PolicyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PolicyConfig{}, err
	}
	var w policyFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PolicyConfig{}, err
	}
	return w.Policy, nil
}

// MergePolicy overlays non-zero fields from override onto base.
// This is used when loading a sector preset and then applying overrides from
// the request or config file.
func MergePolicy(base, override PolicyConfig) PolicyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ProjectValue != 0 {
		out.ProjectValue = override.ProjectValue
	}
	if override.MarketRate != 0 {
		out.MarketRate = override.MarketRate
	}
	if override.SubsidizedRate != 0 {
		out.SubsidizedRate = override.SubsidizedRate
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.FundAmount != 0 {
		out.FundAmount = override.FundAmount
	}
	if override.TermYears != 0 {
		out.TermYears = override.TermYears
	}
	if override.DemandElasticity != 0 {
		out.DemandElasticity = override.DemandElasticity
	}
	if override.AbatementTonnesCO2e != 0 {
		out.AbatementTonnesCO2e = override.AbatementTonnesCO2e
	}
	return out
}
