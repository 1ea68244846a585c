package shop

import (
	"context"
	"errors"

	"slot_machine_backend/internal/middleware"
	"slot_machine_backend/internal/model"
)

// Catalog - каталог фонов с флагами владения и экипировки игрока.
// Дефолтный бесплатный фон считается доступным без покупки
func (s *serv) Catalog(ctx context.Context) ([]model.ShopItem, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog := s.gameCfg.Catalog()
	items := make([]model.ShopItem, 0, len(catalog))
	for _, bg := range catalog {
		items = append(items, model.ShopItem{
			Background: bg,
			Owned:      ledger.Owns(bg.ID) || bg.ID == s.gameCfg.DefaultBackgroundID(),
			Equipped:   ledger.EquippedBackgroundID == bg.ID,
		})
	}

	return items, nil
}
