package memory_ledger_repo

import (
	"context"
	"sync"

	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/repository"
)

// Реализация хранилища леджеров в памяти.
// Используется в тестах и в режиме разработки без БД
type repo struct {
	mtx     sync.RWMutex
	ledgers map[int]*model.Ledger
}

func NewLedgerRepository() repository.LedgerRepository {
	return &repo{
		ledgers: make(map[int]*model.Ledger),
	}
}

// GetLedger - возвращает копию леджера, (nil, nil) если записи нет
func (r *repo) GetLedger(_ context.Context, userID int) (*model.Ledger, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	ledger, ok := r.ledgers[userID]
	if !ok {
		return nil, nil
	}
	return copyLedger(ledger), nil
}

func (r *repo) SaveLedger(_ context.Context, userID int, ledger *model.Ledger) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.ledgers[userID] = copyLedger(ledger)
	return nil
}

// copyLedger - копия, чтобы вызывающий не держал ссылку на внутреннее состояние
func copyLedger(src *model.Ledger) *model.Ledger {
	dst := *src
	dst.Purchased = make(map[string]struct{}, len(src.Purchased))
	for id := range src.Purchased {
		dst.Purchased[id] = struct{}{}
	}
	return &dst
}
