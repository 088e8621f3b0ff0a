// Package models содержит структуры фильтрации списка товаров.
// Фильтр строится из параметров запроса и передаётся в слой доступа к данным.
package models

// Значения порядка сортировки, которые понимает хранилище.
const (
	SortPriceAsc    = "price_asc"    // По возрастанию цены
	SortPriceDesc   = "price_desc"   // По убыванию цены
	SortCreatedDesc = "created_desc" // Сначала новые записи
)

// ProductFilter представляет параметры выборки, которые передаются в слой
// доступа к данным. Limit равный nil означает выборку без пагинации.
type ProductFilter struct {
	Category *string // Категория (nil, если фильтра по категории нет)
	Sort     string  // Порядок сортировки, одна из Sort* констант
	Limit    *int    // Размер страницы (nil — вся выборка)
	Offset   int     // Смещение, (page-1)*limit
	Page     int     // Номер страницы, начиная с 1
}

// ProductPage представляет страницу выдачи вместе со счётчиками,
// из которых собирается конверт ответа.
type ProductPage struct {
	Products      []*Product // Товары текущей страницы
	TotalProducts int        // Общее количество товаров под тем же фильтром
	TotalPages    int        // Количество страниц
	CurrentPage   int        // Номер текущей страницы
}
