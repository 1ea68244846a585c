package converter

import (
	"slot_machine_backend/internal/api/dto/shop"
	"slot_machine_backend/internal/model"
)

func ToCatalogResponse(items []model.ShopItem) shop.CatalogResponse {
	out := make([]shop.CatalogItem, len(items))
	for i, item := range items {
		out[i] = shop.CatalogItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Asset:    item.Asset,
			Owned:    item.Owned,
			Equipped: item.Equipped,
		}
	}
	return shop.CatalogResponse{Items: out}
}
