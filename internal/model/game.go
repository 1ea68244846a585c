package model

// Spin - запрос на платный спин
type Spin struct {
	Risk int // Ставка (риск), кратна 10, в диапазоне [10,100]
}

// SpinResult - результат завершенного спина
type SpinResult struct {
	Reels      [5]int // Итоговые символы барабанов (индекс = номер барабана)
	BasePayout int    // Базовая выплата по таблице комбинаций
	Multiplier string // Примененный множитель риска ("1.0", "1.2", ...)
	Payout     int    // Итоговая начисленная выплата
	Jackpot    bool   // Флаг джекпота (множитель не применяется)
	Coins      int    // Баланс монет после спина
	RealCoins  int    // Баланс реальных монет после спина
}

// Data - снимок состояния игрока для клиента
type Data struct {
	Coins                int
	RealCoins            int
	EquippedBackgroundID string
	PurchasedBackgrounds []string
}
