package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"slot_machine_backend/internal/metrics"
	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Spin выполняет платный спин: списание ставки, прокрутка пяти
// барабанов, оценка комбинации, множитель риска, начисление
func (s *serv) Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error) {
	// Валидация ставки
	// Ставка должна быть кратна шагу и лежать в допустимых пределах
	if spinReq.Risk < s.gameCfg.MinRisk() || spinReq.Risk > s.gameCfg.MaxRisk() || spinReq.Risk%s.gameCfg.RiskStep() != 0 {
		metrics.SpinRejections.WithLabelValues("invalid_stake").Inc()
		return nil, model.ErrInvalidStake
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Операции над леджером одного игрока строго последовательны
	unlock := s.locks.Lock(userID)
	defer unlock()

	started := time.Now()

	// Инициализируем структуру для хранения результатов спина
	var res *model.SpinResult

	// Начало транзакции где выполняется процесс спина
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		ledger, err := s.loadLedger(txCtx, userID)
		if err != nil {
			return err
		}

		// Списание ставки; при нехватке средств спин не начинается
		if ledger.Coins < spinReq.Risk {
			return model.ErrInsufficientFunds
		}
		ledger.Coins -= spinReq.Risk

		// Ставка списана - спин идет до конца, отмена не поддерживается
		reels := s.spinReels(context.WithoutCancel(txCtx))

		base := evaluatePayout(reels)
		jackpot := isJackpot(reels)

		// Джекпот начисляется фиксированной суммой, множитель риска
		// применяется только к обычным выигрышам
		var payout int
		multStr := "1.0"
		if jackpot {
			payout = base
		} else {
			mult := multiplierFor(spinReq.Risk)
			payout = applyMultiplier(base, mult)
			multStr = mult.StringFixed(1)
		}

		// Начисление выигрыша
		ledger.Coins += payout

		if err := s.ledgerRepo.SaveLedger(txCtx, userID, ledger); err != nil {
			return errors.New("failed to save player ledger")
		}

		res = &model.SpinResult{
			Reels:      reels,
			BasePayout: base,
			Multiplier: multStr,
			Payout:     payout,
			Jackpot:    jackpot,
			Coins:      ledger.Coins,
			RealCoins:  ledger.RealCoins,
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			metrics.SpinRejections.WithLabelValues("insufficient_funds").Inc()
		}
		return nil, err
	}

	// Обновляем статистику и метрики
	s.statsRepo.UpdateState(float64(spinReq.Risk), float64(res.Payout))

	metrics.SpinsTotal.Inc()
	metrics.StakedTotal.Add(float64(spinReq.Risk))
	metrics.PayoutsTotal.Add(float64(res.Payout))
	metrics.SpinDuration.Observe(time.Since(started).Seconds())
	if res.Jackpot {
		metrics.JackpotsTotal.Inc()
	}

	return res, nil
}

// spinReels - запускает прокрутку всех пяти барабанов конкурентно и
// ждет завершения всех. Барабаны не разделяют состояние между собой,
// каждый пишет только в свою ячейку результата. Порядок в результате
// фиксирован индексом барабана, а не временем завершения
func (s *serv) spinReels(ctx context.Context) [reelCount]int {
	var result [reelCount]int

	var wg sync.WaitGroup
	for i := 0; i < reelCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			reel := NewReel(s.gameCfg.ReelTicks(), s.gameCfg.TickInterval())
			for sym := range reel.Settle(ctx) {
				result[idx] = sym
			}
		}(i)
	}
	wg.Wait()

	return result
}
