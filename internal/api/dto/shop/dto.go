package shop

type PurchaseRequest struct {
	BackgroundID string `json:"background_id"`
}

type EquipRequest struct {
	BackgroundID string `json:"background_id"`
}

type CatalogItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Asset    string `json:"asset"`
	Owned    bool   `json:"owned"`
	Equipped bool   `json:"equipped"`
}

type CatalogResponse struct {
	Items []CatalogItem `json:"items"`
}
