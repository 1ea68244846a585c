package game

type SpinRequest struct {
	Risk int `json:"risk"` // Ставка, кратная 10, в [10,100]
}

type SpinResponse struct {
	Reels      [5]int `json:"reels"`       // Итоговые символы (индекс = барабан)
	BasePayout int    `json:"base_payout"` // Выплата по таблице комбинаций
	Multiplier string `json:"multiplier"`  // Примененный множитель
	Payout     int    `json:"payout"`      // Итоговое начисление
	Jackpot    bool   `json:"jackpot"`     // Флаг джекпота
	Coins      int    `json:"coins"`       // Баланс после
	RealCoins  int    `json:"real_coins"`  // Баланс реальных монет после
}

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма пополнения
}

type DataResponse struct {
	Coins                int      `json:"coins"`
	RealCoins            int      `json:"real_coins"`
	EquippedBackgroundID string   `json:"equipped_background_id"`
	PurchasedBackgrounds []string `json:"purchased_backgrounds"`
}
