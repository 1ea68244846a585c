package game

import (
	"context"
	"errors"

	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Курс конвертации: 1000 монет = 1 реальная монета
const softPerReal = 1000

// ConvertToReal - обмен 1000 монет на 1 реальную монету
func (s *serv) ConvertToReal(ctx context.Context) (*model.Data, error) {
	return s.convert(ctx, func(ledger *model.Ledger) error {
		if ledger.Coins < softPerReal {
			return model.ErrInsufficientFunds
		}
		ledger.Coins -= softPerReal
		ledger.RealCoins++
		return nil
	})
}

// ConvertToSoft - обмен 1 реальной монеты на 1000 монет
func (s *serv) ConvertToSoft(ctx context.Context) (*model.Data, error) {
	return s.convert(ctx, func(ledger *model.Ledger) error {
		if ledger.RealCoins < 1 {
			return model.ErrInsufficientFunds
		}
		ledger.RealCoins--
		ledger.Coins += softPerReal
		return nil
	})
}

// convert - общий каркас обеих конвертаций: блокировка игрока,
// транзакция, мутация леджера, сохранение
func (s *serv) convert(ctx context.Context, mutate func(*model.Ledger) error) (*model.Data, error) {
	if !s.gameCfg.RealCoinsEnabled() {
		return nil, model.ErrFeatureDisabled
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	var data *model.Data
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		ledger, err := s.loadLedger(txCtx, userID)
		if err != nil {
			return err
		}

		if err := mutate(ledger); err != nil {
			return err
		}

		if err := s.ledgerRepo.SaveLedger(txCtx, userID, ledger); err != nil {
			return errors.New("failed to save player ledger")
		}

		data = ledger.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
