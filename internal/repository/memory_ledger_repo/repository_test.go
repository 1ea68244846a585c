package memory_ledger_repo

import (
	"context"
	"testing"

	"slot_machine_backend/internal/model"
)

func TestGetLedger_AbsentReturnsNilNil(t *testing.T) {
	r := NewLedgerRepository()

	ledger, err := r.GetLedger(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger != nil {
		t.Errorf("expected nil for absent ledger, got %+v", ledger)
	}
}

func TestSaveAndGetLedger(t *testing.T) {
	r := NewLedgerRepository()
	ctx := context.Background()

	src := model.NewLedger(100, "man")
	src.Purchased["ship"] = struct{}{}

	if err := r.SaveLedger(ctx, 1, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.GetLedger(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Coins != 100 || got.EquippedBackgroundID != "man" || !got.Owns("ship") {
		t.Errorf("ledger round trip broken: %+v", got)
	}
}

func TestGetLedger_ReturnsCopy(t *testing.T) {
	r := NewLedgerRepository()
	ctx := context.Background()

	if err := r.SaveLedger(ctx, 1, model.NewLedger(100, "man")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := r.GetLedger(ctx, 1)
	first.Coins = 0
	first.Purchased["hack"] = struct{}{}

	// Мутация копии не видна хранилищу
	second, _ := r.GetLedger(ctx, 1)
	if second.Coins != 100 || second.Owns("hack") {
		t.Errorf("stored ledger mutated through a returned copy: %+v", second)
	}
}

func TestSaveLedger_DetachesFromCaller(t *testing.T) {
	r := NewLedgerRepository()
	ctx := context.Background()

	src := model.NewLedger(100, "man")
	if err := r.SaveLedger(ctx, 1, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.Coins = 0

	got, _ := r.GetLedger(ctx, 1)
	if got.Coins != 100 {
		t.Errorf("stored ledger mutated through the caller's pointer: %+v", got)
	}
}
