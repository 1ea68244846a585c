package game

import (
	"context"
	"errors"
	"time"

	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Формат календарного дня для last_updated_day
const dayLayout = "2006-01-02"

// CheckData - снимок состояния игрока для клиента.
// Перед чтением применяет ежедневный бонус, если фича включена.
// Для нового игрока этот вызов создает и сохраняет стартовый леджер
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
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

		if s.gameCfg.DailyBonusEnabled() {
			applyDailyBonus(ledger, time.Now().Format(dayLayout), s.gameCfg.BonusFloor())
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

// applyDailyBonus - не чаще раза в календарный день поднимает баланс
// монет до порога floor. Баланс никогда не опускается.
// Возвращает true, если бонус был применен в этот вызов
func applyDailyBonus(ledger *model.Ledger, today string, floor int) bool {
	if ledger.LastBonusDay == today {
		return false
	}

	ledger.LastBonusDay = today
	if ledger.Coins < floor {
		ledger.Coins = floor
	}
	return true
}
