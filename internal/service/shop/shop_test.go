package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/repository"
	"slot_machine_backend/internal/repository/memory_ledger_repo"
	"slot_machine_backend/pkg/userlock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type nopTxManager struct{}

func (nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (nopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testGameCfg struct{}

func (testGameCfg) StartingCoins() int          { return 100 }
func (testGameCfg) BonusFloor() int             { return 50 }
func (testGameCfg) MinRisk() int                { return 10 }
func (testGameCfg) MaxRisk() int                { return 100 }
func (testGameCfg) RiskStep() int               { return 10 }
func (testGameCfg) ReelTicks() int              { return 3 }
func (testGameCfg) TickInterval() time.Duration { return time.Millisecond }
func (testGameCfg) RealCoinsEnabled() bool      { return true }
func (testGameCfg) DailyBonusEnabled() bool     { return false }
func (testGameCfg) DefaultBackgroundID() string { return "man" }
func (testGameCfg) Catalog() []model.Background {
	return []model.Background{
		{ID: "man", Name: "Man", Price: 10},
		{ID: "ship", Name: "Ship", Price: 100},
		{ID: "wallpaper", Name: "Wallpaper", Price: 100},
	}
}

func newTestService() (*serv, repository.LedgerRepository) {
	ledgerRepo := memory_ledger_repo.NewLedgerRepository()
	s := NewShopService(testGameCfg{}, ledgerRepo, nopTxManager{}, userlock.New()).(*serv)
	return s, ledgerRepo
}

func userCtx(userID int) context.Context {
	return middleware.ContextWithUserID(context.Background(), userID)
}

func TestPurchase_DebitsAndGrants(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	data, err := s.Purchase(ctx, "wallpaper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Coins != 0 {
		t.Errorf("expected 0 coins after purchase, got %d", data.Coins)
	}
	if len(data.PurchasedBackgrounds) != 1 || data.PurchasedBackgrounds[0] != "wallpaper" {
		t.Errorf("expected wallpaper purchased, got %v", data.PurchasedBackgrounds)
	}
	// Покупка не экипирует автоматически
	if data.EquippedBackgroundID != "man" {
		t.Errorf("purchase must not equip: got %q", data.EquippedBackgroundID)
	}
}

func TestPurchase_AlreadyOwnedLeavesCoins(t *testing.T) {
	s, ledgerRepo := newTestService()
	ctx := userCtx(1)

	if _, err := s.Purchase(ctx, "ship"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.Purchase(ctx, "ship")
	if !errors.Is(err, model.ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}

	after, _ := ledgerRepo.GetLedger(ctx, 1)
	if after.Coins != 0 {
		t.Errorf("duplicate purchase must not debit: got %d coins", after.Coins)
	}
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	s, ledgerRepo := newTestService()
	ctx := userCtx(1)

	seed := model.NewLedger(99, "man")
	if err := ledgerRepo.SaveLedger(ctx, 1, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.Purchase(ctx, "ship")
	if !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	after, _ := ledgerRepo.GetLedger(ctx, 1)
	if after.Coins != 99 || len(after.Purchased) != 0 {
		t.Errorf("failed purchase must not touch the ledger: %d coins, %d owned",
			after.Coins, len(after.Purchased))
	}
}

func TestPurchase_UnknownBackground(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	_, err := s.Purchase(ctx, "nope")
	if !errors.Is(err, model.ErrUnknownCosmetic) {
		t.Fatalf("expected ErrUnknownCosmetic, got %v", err)
	}
}

func TestEquip_RequiresOwnership(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	_, err := s.Equip(ctx, "ship")
	if !errors.Is(err, model.ErrNotOwned) {
		t.Fatalf("expected ErrNotOwned, got %v", err)
	}
}

func TestEquip_DefaultIsFree(t *testing.T) {
	s, ledgerRepo := newTestService()
	ctx := userCtx(1)

	if _, err := s.Purchase(ctx, "wallpaper"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Equip(ctx, "wallpaper"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Дефолтный фон экипируется без покупки
	data, err := s.Equip(ctx, "man")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.EquippedBackgroundID != "man" {
		t.Errorf("expected default background equipped, got %q", data.EquippedBackgroundID)
	}

	saved, _ := ledgerRepo.GetLedger(ctx, 1)
	if saved.EquippedBackgroundID != "man" {
		t.Errorf("expected equip persisted, got %q", saved.EquippedBackgroundID)
	}
}

func TestEquip_AfterPurchase(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	if _, err := s.Purchase(ctx, "ship"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := s.Equip(ctx, "ship")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.EquippedBackgroundID != "ship" {
		t.Errorf("expected ship equipped, got %q", data.EquippedBackgroundID)
	}
}

func TestEquip_SameBackgroundIsNoop(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	data, err := s.Equip(ctx, "man")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.EquippedBackgroundID != "man" {
		t.Errorf("expected man equipped, got %q", data.EquippedBackgroundID)
	}
}

func TestEquip_UnknownBackground(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	_, err := s.Equip(ctx, "nope")
	if !errors.Is(err, model.ErrUnknownCosmetic) {
		t.Fatalf("expected ErrUnknownCosmetic, got %v", err)
	}
}

func TestCatalog_Flags(t *testing.T) {
	s, _ := newTestService()
	ctx := userCtx(1)

	if _, err := s.Purchase(ctx, "ship"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := s.Catalog(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 catalog items, got %d", len(items))
	}

	byID := make(map[string]model.ShopItem, len(items))
	for _, it := range items {
		byID[it.Background.ID] = it
	}

	if !byID["man"].Owned || !byID["man"].Equipped {
		t.Error("default background must be owned and equipped")
	}
	if !byID["ship"].Owned || byID["ship"].Equipped {
		t.Errorf("ship must be owned but not equipped: %+v", byID["ship"])
	}
	if byID["wallpaper"].Owned {
		t.Error("wallpaper must not be owned")
	}
}
