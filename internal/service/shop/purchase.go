package shop

import (
	"context"
	"errors"

	"slot_machine_backend/internal/metrics"
	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Purchase - покупка фона за монеты.
// Повторная покупка и нехватка средств отклоняются без изменения леджера
func (s *serv) Purchase(ctx context.Context, backgroundID string) (*model.Data, error) {
	bg, ok := s.findBackground(backgroundID)
	if !ok {
		return nil, model.ErrUnknownCosmetic
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

		if ledger.Owns(bg.ID) {
			return model.ErrAlreadyOwned
		}
		if ledger.Coins < bg.Price {
			return model.ErrInsufficientFunds
		}

		ledger.Coins -= bg.Price
		ledger.Purchased[bg.ID] = struct{}{}

		if err := s.ledgerRepo.SaveLedger(txCtx, userID, ledger); err != nil {
			return errors.New("failed to save player ledger")
		}

		data = ledger.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PurchasesTotal.Inc()

	return data, nil
}
