package model

import "sort"

// Ledger - состояние экономики одного игрока.
// Владеет балансами двух валют, набором купленных фонов и
// идентификатором экипированного фона. Мутируется только сервисами.
type Ledger struct {
	Coins                int                 // Мягкая валюта, не может уйти в минус
	RealCoins            int                 // Твердая валюта, не может уйти в минус
	Purchased            map[string]struct{} // Купленные фоны (множество ID)
	EquippedBackgroundID string              // Экипированный фон
	LastBonusDay         string              // День последнего ежедневного бонуса ("2006-01-02")
}

// NewLedger - создает стартовое состояние для нового игрока
func NewLedger(startCoins int, defaultBackgroundID string) *Ledger {
	return &Ledger{
		Coins:                startCoins,
		Purchased:            make(map[string]struct{}),
		EquippedBackgroundID: defaultBackgroundID,
	}
}

// Owns - проверяет, куплен ли фон
func (l *Ledger) Owns(id string) bool {
	_, ok := l.Purchased[id]
	return ok
}

// PurchasedList - список купленных фонов в виде слайса
func (l *Ledger) PurchasedList() []string {
	out := make([]string, 0, len(l.Purchased))
	for id := range l.Purchased {
		out = append(out, id)
	}
	return out
}

// Snapshot - снимок состояния для клиента, только для чтения
func (l *Ledger) Snapshot() *Data {
	purchased := l.PurchasedList()
	sort.Strings(purchased)
	return &Data{
		Coins:                l.Coins,
		RealCoins:            l.RealCoins,
		EquippedBackgroundID: l.EquippedBackgroundID,
		PurchasedBackgrounds: purchased,
	}
}
