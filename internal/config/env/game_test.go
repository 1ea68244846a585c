package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validGameYAML = `
game:
  starting_coins: 100
  bonus_floor: 50
  min_risk: 10
  max_risk: 100
  risk_step: 10
  reel_ticks: 20
  tick_interval_ms: 60
  features:
    real_coins: true
    daily_bonus: true
  default_background: "man"
  backgrounds:
    - id: "man"
      name: "Man"
      price: 10
    - id: "ship"
      name: "Ship"
      price: 100
`

func writeGameYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestNewGameConfigFromYAML_Valid(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(writeGameYAML(t, validGameYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StartingCoins() != 100 || cfg.BonusFloor() != 50 {
		t.Errorf("economy fields parsed wrong: %d/%d", cfg.StartingCoins(), cfg.BonusFloor())
	}
	if cfg.MinRisk() != 10 || cfg.MaxRisk() != 100 || cfg.RiskStep() != 10 {
		t.Errorf("risk bounds parsed wrong: %d/%d/%d", cfg.MinRisk(), cfg.MaxRisk(), cfg.RiskStep())
	}
	if cfg.ReelTicks() != 20 || cfg.TickInterval() != 60*time.Millisecond {
		t.Errorf("reel pacing parsed wrong: %d/%s", cfg.ReelTicks(), cfg.TickInterval())
	}
	if !cfg.RealCoinsEnabled() || !cfg.DailyBonusEnabled() {
		t.Error("feature flags parsed wrong")
	}
	if cfg.DefaultBackgroundID() != "man" || len(cfg.Catalog()) != 2 {
		t.Errorf("catalog parsed wrong: %q, %d items", cfg.DefaultBackgroundID(), len(cfg.Catalog()))
	}
}

func TestNewGameConfigFromYAML_MissingFile(t *testing.T) {
	_, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewGameConfigFromYAML_BadRiskBounds(t *testing.T) {
	bad := `
game:
  min_risk: 100
  max_risk: 10
  risk_step: 10
  reel_ticks: 20
  tick_interval_ms: 60
  default_background: "man"
  backgrounds:
    - id: "man"
      price: 10
`
	if _, err := NewGameConfigFromYAML(writeGameYAML(t, bad)); err == nil {
		t.Fatal("expected error for inverted risk bounds")
	}
}

func TestNewGameConfigFromYAML_DuplicateBackground(t *testing.T) {
	bad := `
game:
  min_risk: 10
  max_risk: 100
  risk_step: 10
  reel_ticks: 20
  tick_interval_ms: 60
  default_background: "man"
  backgrounds:
    - id: "man"
      price: 10
    - id: "man"
      price: 100
`
	if _, err := NewGameConfigFromYAML(writeGameYAML(t, bad)); err == nil {
		t.Fatal("expected error for duplicate catalog entry")
	}
}

func TestNewGameConfigFromYAML_DefaultNotInCatalog(t *testing.T) {
	bad := `
game:
  min_risk: 10
  max_risk: 100
  risk_step: 10
  reel_ticks: 20
  tick_interval_ms: 60
  default_background: "ghost"
  backgrounds:
    - id: "man"
      price: 10
`
	if _, err := NewGameConfigFromYAML(writeGameYAML(t, bad)); err == nil {
		t.Fatal("expected error for default background missing from catalog")
	}
}
