package game

import (
	"context"
	"testing"
	"time"
)

func TestReel_SettleEmitsAllTicks(t *testing.T) {
	reel := NewReel(20, time.Millisecond)

	var got []int
	for sym := range reel.Settle(context.Background()) {
		got = append(got, sym)
	}

	if len(got) != 20 {
		t.Fatalf("expected 20 ticks, got %d", len(got))
	}
	for i, sym := range got {
		if sym < 0 || sym >= symbolCount {
			t.Errorf("tick %d: symbol %d out of range [0,%d)", i, sym, symbolCount)
		}
	}
}

func TestReel_LastTickBecomesRestSymbol(t *testing.T) {
	reel := NewReel(20, time.Millisecond)

	last := -1
	for sym := range reel.Settle(context.Background()) {
		last = sym
	}

	if reel.Symbol() != last {
		t.Errorf("rest symbol %d does not match last emitted %d", reel.Symbol(), last)
	}
}

func TestReel_InitialSymbolInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		reel := NewReel(20, time.Millisecond)
		if reel.Symbol() < 0 || reel.Symbol() >= symbolCount {
			t.Fatalf("initial symbol %d out of range", reel.Symbol())
		}
	}
}

func TestReel_ContextCancelStopsSpin(t *testing.T) {
	reel := NewReel(1000, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	out := reel.Settle(ctx)

	// Снимаем пару тиков и отменяем
	<-out
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-out:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after context cancel")
		}
	}
}
