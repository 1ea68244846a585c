package game

import (
	"context"
	"errors"

	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Deposit - пополнение мягкой валюты (кнопка "Add Coins" в клиенте)
func (s *serv) Deposit(ctx context.Context, amount int) (*model.Data, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
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

		ledger.Coins += amount

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
