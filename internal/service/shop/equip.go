package shop

import (
	"context"
	"errors"

	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Equip - экипировка фона. Требует владения фоном либо дефолтного
// бесплатного статуса. Повторная экипировка того же фона - no-op
func (s *serv) Equip(ctx context.Context, backgroundID string) (*model.Data, error) {
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

		// Уже экипирован - ничего не меняем
		if ledger.EquippedBackgroundID == bg.ID {
			data = ledger.Snapshot()
			return nil
		}

		if !ledger.Owns(bg.ID) && bg.ID != s.gameCfg.DefaultBackgroundID() {
			return model.ErrNotOwned
		}

		ledger.EquippedBackgroundID = bg.ID

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
