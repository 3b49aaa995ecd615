package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadInlinePolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
policy:
  project_value: 30000000
  market_rate: 0.078
  subsidized_rate: 0.03
  fund_amount: 200000000
  term_years: 5
  demand_elasticity: 1.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Policy.ProjectValue != 30000000 {
		t.Errorf("expected project value 30000000, got %v", cfg.Policy.ProjectValue)
	}
	// discount_rate omitted: defaults to the market rate.
	if cfg.Policy.DiscountRate != 0.078 {
		t.Errorf("expected discount rate defaulted to 0.078, got %v", cfg.Policy.DiscountRate)
	}
}

func TestLoadMergesPolicyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "industry.yaml"), `
policy:
  name: Industrial retrofit
  project_value: 30000000
  abatement_tonnes_co2e: 12000
  demand_elasticity: 1.5
  discount_rate: 0.12
`)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
policy_file: industry.yaml
policy:
  fund_amount: 200000000
  market_rate: 0.078
  subsidized_rate: 0.03
  term_years: 5
  demand_elasticity: 2.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Policy.Name != "Industrial retrofit" {
		t.Errorf("expected preset name to survive, got %q", cfg.Policy.Name)
	}
	if cfg.Policy.ProjectValue != 30000000 {
		t.Errorf("expected project value from preset, got %v", cfg.Policy.ProjectValue)
	}
	if cfg.Policy.DemandElasticity != 2.0 {
		t.Errorf("expected config override 2.0, got %v", cfg.Policy.DemandElasticity)
	}
	if cfg.Policy.DiscountRate != 0.12 {
		t.Errorf("expected preset discount rate 0.12, got %v", cfg.Policy.DiscountRate)
	}
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
policy:
  project_value: 0
  fund_amount: 1000
  term_years: 5
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for zero project value")
	}
}

func TestLoadVariations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, `
policy:
  project_value: 30000000
  market_rate: 0.078
  subsidized_rate: 0.03
  fund_amount: 200000000
  term_years: 5
variations:
  - name: deeper-subsidy
    policy:
      subsidized_rate: 0.015
  - name: half-fund
    policy:
      fund_amount: 100000000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Variations) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(cfg.Variations))
	}
	merged := MergePolicy(cfg.Policy, cfg.Variations[0].Policy)
	if merged.SubsidizedRate != 0.015 {
		t.Errorf("expected override 0.015, got %v", merged.SubsidizedRate)
	}
	if merged.ProjectValue != 30000000 {
		t.Errorf("expected base project value to survive, got %v", merged.ProjectValue)
	}
}

func TestMergePolicyIgnoresZeroFields(t *testing.T) {
	base := PolicyConfig{ProjectValue: 100, MarketRate: 0.08, TermYears: 5}
	out := MergePolicy(base, PolicyConfig{MarketRate: 0.06})
	if out.ProjectValue != 100 || out.TermYears != 5 {
		t.Errorf("zero override fields must not clobber base: %+v", out)
	}
	if out.MarketRate != 0.06 {
		t.Errorf("expected market rate override, got %v", out.MarketRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
