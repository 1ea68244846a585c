package ledger_repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"

	"slot_machine_backend/internal/model"
	"slot_machine_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Колонки повторяют key-value контракт персистентности
const (
	table           = "player_ledger"
	colUserID       = "user_id"
	colCoins        = "coins"
	colRealCoins    = "real_coins"
	colEquipped     = "equipped_background_id"
	colPurchased    = "purchased_backgrounds"
	colLastBonusDay = "last_updated_day"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetLedger - загрузка леджера игрока.
// Возвращает (nil, nil), если записи еще нет
func (r *repo) GetLedger(ctx context.Context, userID int) (*model.Ledger, error) {
	query := sq.Select(colCoins, colRealCoins, colEquipped, colPurchased, colLastBonusDay).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		ledger        model.Ledger
		purchasedJSON []byte
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&ledger.Coins, &ledger.RealCoins, &ledger.EquippedBackgroundID, &purchasedJSON, &ledger.LastBonusDay)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var purchased []string
	if len(purchasedJSON) > 0 {
		if err := json.Unmarshal(purchasedJSON, &purchased); err != nil {
			return nil, err
		}
	}
	ledger.Purchased = make(map[string]struct{}, len(purchased))
	for _, id := range purchased {
		ledger.Purchased[id] = struct{}{}
	}

	return &ledger, nil
}

// SaveLedger - полное сохранение леджера игрока.
// Если записи нет, создается новая
func (r *repo) SaveLedger(ctx context.Context, userID int, ledger *model.Ledger) error {
	purchasedJSON, err := marshalPurchased(ledger)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colCoins, ledger.Coins).
		Set(colRealCoins, ledger.RealCoins).
		Set(colEquipped, ledger.EquippedBackgroundID).
		Set(colPurchased, purchasedJSON).
		Set(colLastBonusDay, ledger.LastBonusDay).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	rowsAffected := res.RowsAffected()

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(colUserID, colCoins, colRealCoins, colEquipped, colPurchased, colLastBonusDay).
			Values(userID, ledger.Coins, ledger.RealCoins, ledger.EquippedBackgroundID, purchasedJSON, ledger.LastBonusDay).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}
	return nil
}

// marshalPurchased - множество купленных фонов в детерминированный JSON массив
func marshalPurchased(ledger *model.Ledger) ([]byte, error) {
	purchased := ledger.PurchasedList()
	sort.Strings(purchased)
	return json.Marshal(purchased)
}
