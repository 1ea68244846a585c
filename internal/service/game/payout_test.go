package game

import "testing"

func TestEvaluatePayout_Jackpot(t *testing.T) {
	got := evaluatePayout([reelCount]int{7, 7, 7, 7, 7})
	if got != jackpotPayout {
		t.Errorf("expected jackpot payout %d, got %d", jackpotPayout, got)
	}
}

func TestEvaluatePayout_FiveOfAKind(t *testing.T) {
	// Пять одинаковых, но не семерок - это не джекпот
	got := evaluatePayout([reelCount]int{4, 4, 4, 4, 4})
	if got != fiveOfAKindPayout {
		t.Errorf("expected five of a kind payout %d, got %d", fiveOfAKindPayout, got)
	}
}

func TestEvaluatePayout_FourOfAKind(t *testing.T) {
	got := evaluatePayout([reelCount]int{9, 9, 2, 9, 9})
	if got != fourOfAKindPayout {
		t.Errorf("expected four of a kind payout %d, got %d", fourOfAKindPayout, got)
	}
}

func TestEvaluatePayout_FullHouse(t *testing.T) {
	// Тройка и пара оцениваются как фулл-хаус, а не как просто тройка
	got := evaluatePayout([reelCount]int{3, 3, 3, 5, 5})
	if got != fullHousePayout {
		t.Errorf("expected full house payout %d, got %d", fullHousePayout, got)
	}
}

func TestEvaluatePayout_ThreeOfAKind(t *testing.T) {
	got := evaluatePayout([reelCount]int{6, 6, 6, 1, 2})
	if got != threeOfAKindPayout {
		t.Errorf("expected three of a kind payout %d, got %d", threeOfAKindPayout, got)
	}
}

func TestEvaluatePayout_TwoPair(t *testing.T) {
	got := evaluatePayout([reelCount]int{3, 3, 5, 5, 8})
	if got != twoPairPayout {
		t.Errorf("expected two pair payout %d, got %d", twoPairPayout, got)
	}
}

func TestEvaluatePayout_SinglePairLoses(t *testing.T) {
	// Одна пара не выигрывает
	got := evaluatePayout([reelCount]int{3, 3, 1, 2, 8})
	if got != 0 {
		t.Errorf("expected no payout for a single pair, got %d", got)
	}
}

func TestEvaluatePayout_NoCombination(t *testing.T) {
	got := evaluatePayout([reelCount]int{1, 2, 3, 4, 5})
	if got != 0 {
		t.Errorf("expected no payout, got %d", got)
	}
}

func TestEvaluatePayout_OrderIndependent(t *testing.T) {
	a := evaluatePayout([reelCount]int{5, 5, 3, 3, 3})
	b := evaluatePayout([reelCount]int{3, 5, 3, 5, 3})
	if a != b || a != fullHousePayout {
		t.Errorf("payout must not depend on reel order: %d vs %d", a, b)
	}
}

func TestIsJackpot(t *testing.T) {
	if !isJackpot([reelCount]int{7, 7, 7, 7, 7}) {
		t.Error("five sevens must be a jackpot")
	}
	if isJackpot([reelCount]int{7, 7, 7, 7, 6}) {
		t.Error("four sevens must not be a jackpot")
	}
}
