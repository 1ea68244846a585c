package game

import (
	"errors"
	"testing"

	"slot_machine_backend/internal/model"
)

func TestConvert_RoundTrip(t *testing.T) {
	s, ledgerRepo := newTestService(testGameCfg{realCoins: true})
	ctx := userCtx(1)

	seed := model.NewLedger(2500, "man")
	if err := ledgerRepo.SaveLedger(ctx, 1, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := s.ConvertToReal(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Coins != 1500 || data.RealCoins != 1 {
		t.Errorf("expected 1500/1 after convert, got %d/%d", data.Coins, data.RealCoins)
	}

	data, err = s.ConvertToSoft(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Обратная конвертация возвращает исходный баланс
	if data.Coins != 2500 || data.RealCoins != 0 {
		t.Errorf("expected 2500/0 after round trip, got %d/%d", data.Coins, data.RealCoins)
	}
}

func TestConvertToReal_InsufficientFunds(t *testing.T) {
	s, ledgerRepo := newTestService(testGameCfg{realCoins: true})
	ctx := userCtx(1)

	seed := model.NewLedger(999, "man")
	if err := ledgerRepo.SaveLedger(ctx, 1, seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.ConvertToReal(ctx)
	if !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	after, _ := ledgerRepo.GetLedger(ctx, 1)
	if after.Coins != 999 || after.RealCoins != 0 {
		t.Errorf("failed conversion must not touch balances: %d/%d", after.Coins, after.RealCoins)
	}
}

func TestConvertToSoft_NoRealCoins(t *testing.T) {
	s, _ := newTestService(testGameCfg{realCoins: true})
	ctx := userCtx(1)

	_, err := s.ConvertToSoft(ctx)
	if !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestConvert_FeatureDisabled(t *testing.T) {
	s, _ := newTestService(testGameCfg{realCoins: false})
	ctx := userCtx(1)

	if _, err := s.ConvertToReal(ctx); !errors.Is(err, model.ErrFeatureDisabled) {
		t.Errorf("expected ErrFeatureDisabled, got %v", err)
	}
	if _, err := s.ConvertToSoft(ctx); !errors.Is(err, model.ErrFeatureDisabled) {
		t.Errorf("expected ErrFeatureDisabled, got %v", err)
	}
}

func TestDeposit_CreditsCoins(t *testing.T) {
	s, _ := newTestService(testGameCfg{})
	ctx := userCtx(1)

	data, err := s.Deposit(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Coins != 110 {
		t.Errorf("expected 110 coins after deposit, got %d", data.Coins)
	}
}

func TestDeposit_RejectsNonPositive(t *testing.T) {
	s, _ := newTestService(testGameCfg{})
	ctx := userCtx(1)

	for _, amount := range []int{0, -5} {
		if _, err := s.Deposit(ctx, amount); err == nil {
			t.Errorf("amount %d: expected error", amount)
		}
	}
}
