package game

import (
	"testing"
	"time"

	"slot_machine_backend/internal/model"
)

func TestApplyDailyBonus_RaisesToFloor(t *testing.T) {
	ledger := model.NewLedger(10, "man")

	applied := applyDailyBonus(ledger, "2026-08-31", 50)
	if !applied {
		t.Fatal("expected bonus to be applied")
	}
	if ledger.Coins != 50 {
		t.Errorf("expected coins raised to 50, got %d", ledger.Coins)
	}
	if ledger.LastBonusDay != "2026-08-31" {
		t.Errorf("expected bonus day recorded, got %q", ledger.LastBonusDay)
	}
}

func TestApplyDailyBonus_OncePerDay(t *testing.T) {
	ledger := model.NewLedger(10, "man")

	applyDailyBonus(ledger, "2026-08-31", 50)
	ledger.Coins = 5

	// Повторный вызов в тот же день ничего не меняет
	applied := applyDailyBonus(ledger, "2026-08-31", 50)
	if applied {
		t.Error("bonus must not be applied twice in one day")
	}
	if ledger.Coins != 5 {
		t.Errorf("expected coins untouched, got %d", ledger.Coins)
	}

	// А на следующий день - снова поднимает
	applied = applyDailyBonus(ledger, "2026-09-01", 50)
	if !applied || ledger.Coins != 50 {
		t.Errorf("expected bonus on the next day, applied=%v coins=%d", applied, ledger.Coins)
	}
}

func TestApplyDailyBonus_NeverLowersBalance(t *testing.T) {
	ledger := model.NewLedger(900, "man")

	applyDailyBonus(ledger, "2026-08-31", 50)
	if ledger.Coins != 900 {
		t.Errorf("bonus must never lower the balance: got %d", ledger.Coins)
	}
}

func TestCheckData_CreatesStartingLedger(t *testing.T) {
	s, ledgerRepo := newTestService(testGameCfg{})
	ctx := userCtx(3)

	data, err := s.CheckData(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Coins != 100 {
		t.Errorf("expected starting coins 100, got %d", data.Coins)
	}
	if data.EquippedBackgroundID != "man" {
		t.Errorf("expected default background, got %q", data.EquippedBackgroundID)
	}

	// Первый визит должен сохранить стартовый леджер
	saved, err := ledgerRepo.GetLedger(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected starting ledger to be persisted")
	}
}

func TestCheckData_AppliesDailyBonus(t *testing.T) {
	s, ledgerRepo := newTestService(testGameCfg{dailyBonus: true})
	ctx := userCtx(4)

	seed := model.NewLedger(10, "man")
	if err := ledgerRepo.SaveLedger(ctx, 4, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := s.CheckData(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Coins != 50 {
		t.Errorf("expected bonus to raise coins to 50, got %d", data.Coins)
	}

	saved, _ := ledgerRepo.GetLedger(ctx, 4)
	if saved.LastBonusDay != time.Now().Format(dayLayout) {
		t.Errorf("expected bonus day persisted, got %q", saved.LastBonusDay)
	}
}

func TestCheckData_BonusDisabled(t *testing.T) {
	s, ledgerRepo := newTestService(testGameCfg{dailyBonus: false})
	ctx := userCtx(5)

	seed := model.NewLedger(10, "man")
	if err := ledgerRepo.SaveLedger(ctx, 5, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := s.CheckData(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Coins != 10 {
		t.Errorf("expected coins untouched with bonus disabled, got %d", data.Coins)
	}
}
