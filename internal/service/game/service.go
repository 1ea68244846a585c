package game

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
	statsRepo  repository.StatsRepository
	txManager  trm.Manager
	locks      *userlock.Locker
}

// NewGameService Создать игровой сервис слота 1x5
func NewGameService(
	gameCfg config.GameConfig,
	ledgerRepo repository.LedgerRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	locks *userlock.Locker,
) service.GameService {
	return &serv{
		gameCfg:    gameCfg,
		ledgerRepo: ledgerRepo,
		statsRepo:  statsRepo,
		txManager:  txManager,
		locks:      locks,
	}
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
