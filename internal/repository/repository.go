package repository

import (
	"context"

	"slot_machine_backend/internal/model"
)

// LedgerRepository - контракт key-value хранилища леджеров игроков.
// GetLedger возвращает (nil, nil), если записи нет - дефолты создает сервис.
type LedgerRepository interface {
	GetLedger(ctx context.Context, userID int) (*model.Ledger, error)
	SaveLedger(ctx context.Context, userID int, ledger *model.Ledger) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// StatsRepository - накопление статистики спинов (in-memory)
type StatsRepository interface {
	UpdateState(stake, payout float64)
	State() StatsState
}

// StatsState - агрегированная статистика выплат
type StatsState struct {
	TotalSpins  int
	TotalStaked float64
	TotalPaid   float64
	CurrentRTP  float64
	WindowRTP   float64
}
