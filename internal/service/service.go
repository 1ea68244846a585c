package service

import (
	"context"

	"slot_machine_backend/internal/model"
)

type GameService interface {
	Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error)
	Deposit(ctx context.Context, amount int) (*model.Data, error)
	ConvertToReal(ctx context.Context) (*model.Data, error)
	ConvertToSoft(ctx context.Context) (*model.Data, error)
	CheckData(ctx context.Context) (*model.Data, error)
}

type ShopService interface {
	Catalog(ctx context.Context) ([]model.ShopItem, error)
	Purchase(ctx context.Context, backgroundID string) (*model.Data, error)
	Equip(ctx context.Context, backgroundID string) (*model.Data, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
