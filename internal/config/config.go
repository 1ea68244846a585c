package config

import (
	"time"

	"slot_machine_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig - настройки игры и экономики (из config.yaml)
type GameConfig interface {
	StartingCoins() int
	BonusFloor() int
	MinRisk() int
	MaxRisk() int
	RiskStep() int
	ReelTicks() int
	TickInterval() time.Duration
	RealCoinsEnabled() bool
	DailyBonusEnabled() bool
	Catalog() []model.Background
	DefaultBackgroundID() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

// StoreConfig - выбор реализации хранилища леджеров
type StoreConfig interface {
	LedgerStore() string // postgres | redis | memory
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
