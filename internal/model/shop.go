package model

// Background - элемент каталога фонов (статичный, только для чтения)
type Background struct {
	ID    string // Идентификатор фона
	Name  string // Отображаемое имя
	Price int    // Цена в монетах
	Asset string // Ссылка на ресурс изображения (непрозрачная для ядра)
}

// ShopItem - элемент каталога с флагами владения для конкретного игрока
type ShopItem struct {
	Background
	Owned    bool
	Equipped bool
}
