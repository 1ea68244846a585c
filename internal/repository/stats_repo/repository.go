package stats_repo

import (
	"sync"

	"slot_machine_backend/internal/repository"
	repoModel "slot_machine_backend/internal/repository/stats_repo/model"
)

const defaultWindowSize = 500

// Реализация репозитория для хранения статистики спинов.
// Таблица выплат фиксированная, поэтому статистика только наблюдаемая:
// никакой автоматической регулировки весов здесь нет
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.SpinStats
}

// NewStatsRepository Конструктор для создания нового репозитория с начальным состоянием
func NewStatsRepository() *StatsRepo {
	return &StatsRepo{
		state: repoModel.SpinStats{
			SpinWindow: make([]repoModel.SpinSample, 0),
			WindowSize: defaultWindowSize,
		},
	}
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(stake, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalStaked += stake
	r.state.TotalPaid += payout
	if r.state.TotalStaked > 0 {
		r.state.CurrentRTP = r.state.TotalPaid / r.state.TotalStaked * 100
	}

	// Добавляем спин в окно
	spinRTP := 0.0
	if stake > 0 {
		spinRTP = payout / stake * 100
	}
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinSample{
		Stake:  stake,
		Payout: payout,
		RTP:    spinRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowStaked, windowPaid float64
	for _, spin := range r.state.SpinWindow {
		windowStaked += spin.Stake
		windowPaid += spin.Payout
	}

	if windowStaked > 0 {
		r.state.WindowRTP = windowPaid / windowStaked * 100
	} else {
		r.state.WindowRTP = 0
	}
}

// State Получение копии агрегированной статистики
func (r *StatsRepo) State() repository.StatsState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return repository.StatsState{
		TotalSpins:  r.state.TotalSpins,
		TotalStaked: r.state.TotalStaked,
		TotalPaid:   r.state.TotalPaid,
		CurrentRTP:  r.state.CurrentRTP,
		WindowRTP:   r.state.WindowRTP,
	}
}
