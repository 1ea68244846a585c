package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"slot_machine_backend/internal/config"
	"slot_machine_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// yamlGameConfig - структура секции game в config.yaml
type yamlGameConfig struct {
	Game struct {
		StartingCoins  int `yaml:"starting_coins"`
		BonusFloor     int `yaml:"bonus_floor"`
		MinRisk        int `yaml:"min_risk"`
		MaxRisk        int `yaml:"max_risk"`
		RiskStep       int `yaml:"risk_step"`
		ReelTicks      int `yaml:"reel_ticks"`
		TickIntervalMS int `yaml:"tick_interval_ms"`
		Features       struct {
			RealCoins  bool `yaml:"real_coins"`
			DailyBonus bool `yaml:"daily_bonus"`
		} `yaml:"features"`
		DefaultBackground string `yaml:"default_background"`
		Backgrounds       []struct {
			ID    string `yaml:"id"`
			Name  string `yaml:"name"`
			Price int    `yaml:"price"`
			Asset string `yaml:"asset"`
		} `yaml:"backgrounds"`
	} `yaml:"game"`
}

type gameConfig struct {
	startingCoins     int
	bonusFloor        int
	minRisk           int
	maxRisk           int
	riskStep          int
	reelTicks         int
	tickInterval      time.Duration
	realCoins         bool
	dailyBonus        bool
	defaultBackground string
	catalog           []model.Background
}

// NewGameConfigFromYAML - загружает игровой конфиг из YAML файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed yamlGameConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	g := parsed.Game

	// Валидация параметров ставки
	if g.MinRisk <= 0 || g.MaxRisk < g.MinRisk || g.RiskStep <= 0 {
		return nil, errors.New("invalid risk bounds in game config")
	}
	if g.ReelTicks <= 0 || g.TickIntervalMS <= 0 {
		return nil, errors.New("invalid reel pacing in game config")
	}
	if len(g.Backgrounds) == 0 {
		return nil, errors.New("empty background catalog in game config")
	}

	catalog := make([]model.Background, 0, len(g.Backgrounds))
	knownIDs := make(map[string]struct{}, len(g.Backgrounds))
	for _, bg := range g.Backgrounds {
		if len(bg.ID) == 0 || bg.Price < 0 {
			return nil, fmt.Errorf("invalid catalog entry %q", bg.ID)
		}
		if _, dup := knownIDs[bg.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", bg.ID)
		}
		knownIDs[bg.ID] = struct{}{}
		catalog = append(catalog, model.Background{
			ID:    bg.ID,
			Name:  bg.Name,
			Price: bg.Price,
			Asset: bg.Asset,
		})
	}

	// Дефолтный фон обязан существовать в каталоге
	if _, ok := knownIDs[g.DefaultBackground]; !ok {
		return nil, fmt.Errorf("default background %q not in catalog", g.DefaultBackground)
	}

	return &gameConfig{
		startingCoins:     g.StartingCoins,
		bonusFloor:        g.BonusFloor,
		minRisk:           g.MinRisk,
		maxRisk:           g.MaxRisk,
		riskStep:          g.RiskStep,
		reelTicks:         g.ReelTicks,
		tickInterval:      time.Duration(g.TickIntervalMS) * time.Millisecond,
		realCoins:         g.Features.RealCoins,
		dailyBonus:        g.Features.DailyBonus,
		defaultBackground: g.DefaultBackground,
		catalog:           catalog,
	}, nil
}

func (cfg *gameConfig) StartingCoins() int          { return cfg.startingCoins }
func (cfg *gameConfig) BonusFloor() int             { return cfg.bonusFloor }
func (cfg *gameConfig) MinRisk() int                { return cfg.minRisk }
func (cfg *gameConfig) MaxRisk() int                { return cfg.maxRisk }
func (cfg *gameConfig) RiskStep() int               { return cfg.riskStep }
func (cfg *gameConfig) ReelTicks() int              { return cfg.reelTicks }
func (cfg *gameConfig) TickInterval() time.Duration { return cfg.tickInterval }
func (cfg *gameConfig) RealCoinsEnabled() bool      { return cfg.realCoins }
func (cfg *gameConfig) DailyBonusEnabled() bool     { return cfg.dailyBonus }
func (cfg *gameConfig) DefaultBackgroundID() string { return cfg.defaultBackground }

func (cfg *gameConfig) Catalog() []model.Background {
	out := make([]model.Background, len(cfg.catalog))
	copy(out, cfg.catalog)
	return out
}
