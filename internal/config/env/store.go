package env

import (
	"fmt"
	"os"

	"slot_machine_backend/internal/config"
)

const (
	ledgerStoreEnvName = "LEDGER_STORE"

	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

type storeConfig struct {
	ledgerStore string
}

// NewStoreConfig - читает выбор хранилища леджеров.
// По умолчанию postgres.
func NewStoreConfig() (config.StoreConfig, error) {
	store := os.Getenv(ledgerStoreEnvName)
	if len(store) == 0 {
		store = StorePostgres
	}

	switch store {
	case StorePostgres, StoreRedis, StoreMemory:
	default:
		return nil, fmt.Errorf("unknown ledger store: %s", store)
	}

	return &storeConfig{ledgerStore: store}, nil
}

func (cfg *storeConfig) LedgerStore() string {
	return cfg.ledgerStore
}
