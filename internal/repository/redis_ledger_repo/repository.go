package redis_ledger_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/repository"

	"github.com/redis/go-redis/v9"
)

// Ключи hash повторяют key-value контракт персистентности дословно
const (
	fieldCoins        = "coins"
	fieldRealCoins    = "real_coins"
	fieldEquipped     = "equipped_background_id"
	fieldPurchased    = "purchased_backgrounds"
	fieldLastBonusDay = "last_updated_day"
)

type repo struct {
	rdb *redis.Client
}

func NewLedgerRepository(rdb *redis.Client) repository.LedgerRepository {
	return &repo{
		rdb: rdb,
	}
}

func ledgerKey(userID int) string {
	return fmt.Sprintf("ledger:%d", userID)
}

// GetLedger - загрузка леджера из redis hash.
// Возвращает (nil, nil), если записи еще нет
func (r *repo) GetLedger(ctx context.Context, userID int) (*model.Ledger, error) {
	fields, err := r.rdb.HGetAll(ctx, ledgerKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	coins, err := strconv.Atoi(fields[fieldCoins])
	if err != nil {
		return nil, fmt.Errorf("corrupt coins field: %w", err)
	}
	realCoins, err := strconv.Atoi(fields[fieldRealCoins])
	if err != nil {
		return nil, fmt.Errorf("corrupt real_coins field: %w", err)
	}

	var purchased []string
	if raw := fields[fieldPurchased]; len(raw) > 0 {
		if err := json.Unmarshal([]byte(raw), &purchased); err != nil {
			return nil, fmt.Errorf("corrupt purchased_backgrounds field: %w", err)
		}
	}

	ledger := &model.Ledger{
		Coins:                coins,
		RealCoins:            realCoins,
		EquippedBackgroundID: fields[fieldEquipped],
		LastBonusDay:         fields[fieldLastBonusDay],
		Purchased:            make(map[string]struct{}, len(purchased)),
	}
	for _, id := range purchased {
		ledger.Purchased[id] = struct{}{}
	}

	return ledger, nil
}

// SaveLedger - полное сохранение леджера в redis hash
func (r *repo) SaveLedger(ctx context.Context, userID int, ledger *model.Ledger) error {
	purchased := ledger.PurchasedList()
	sort.Strings(purchased)
	purchasedJSON, err := json.Marshal(purchased)
	if err != nil {
		return err
	}

	return r.rdb.HSet(ctx, ledgerKey(userID),
		fieldCoins, ledger.Coins,
		fieldRealCoins, ledger.RealCoins,
		fieldEquipped, ledger.EquippedBackgroundID,
		fieldPurchased, string(purchasedJSON),
		fieldLastBonusDay, ledger.LastBonusDay,
	).Err()
}
