package shop

import (
	"context"
	"errors"

	"slot_machine_backend/internal/config"
	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/repository"
	"slot_machine_backend/internal/service"
	"slot_machine_backend/pkg/userlock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gameCfg    config.GameConfig
	ledgerRepo repository.LedgerRepository
	txManager  trm.Manager
	locks      *userlock.Locker
}

// NewShopService Создать сервис магазина фонов
func NewShopService(
	gameCfg config.GameConfig,
	ledgerRepo repository.LedgerRepository,
	txManager trm.Manager,
	locks *userlock.Locker,
) service.ShopService {
	return &serv{
		gameCfg:    gameCfg,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		locks:      locks,
	}
}

// findBackground - поиск фона в каталоге по ID
func (s *serv) findBackground(id string) (model.Background, bool) {
	for _, bg := range s.gameCfg.Catalog() {
		if bg.ID == id {
			return bg, true
		}
	}
	return model.Background{}, false
}

// loadLedger - получает леджер игрока или создает стартовый для нового
func (s *serv) loadLedger(ctx context.Context, userID int) (*model.Ledger, error) {
	ledger, err := s.ledgerRepo.GetLedger(ctx, userID)
	if err != nil {
		return nil, errors.New("failed to get player ledger")
	}
	if ledger == nil {
		ledger = model.NewLedger(s.gameCfg.StartingCoins(), s.gameCfg.DefaultBackgroundID())
	}
	return ledger, nil
}
