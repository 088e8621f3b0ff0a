// Package models содержит доменные структуры каталога товаров,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Product представляет собой основную модель товара,
// используемую в бизнес-логике и хранилище.
// Идентификатор назначается базой данных при вставке.
type Product struct {
	ID          string    `json:"id"`          // Уникальный идентификатор товара (UUID)
	Image       string    `json:"image"`       // Ссылка на изображение товара
	Title       string    `json:"title"`       // Название товара
	Price       float64   `json:"price"`       // Цена товара
	Ratings     float64   `json:"ratings"`     // Рейтинг товара
	Category    string    `json:"category"`    // Категория товара
	Description string    `json:"description"` // Описание товара
	CreatedAt   time.Time `json:"created_at"`  // Дата создания записи
	UpdatedAt   time.Time `json:"updated_at"`  // Дата последнего обновления
}

// DummyProduct используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Product. Поля принимаются как есть,
// без проверки диапазонов и обязательности.
type DummyProduct struct {
	Image       string  `json:"image"`       // Ссылка на изображение
	Title       string  `json:"title"`       // Название товара
	Price       float64 `json:"price"`       // Цена
	Ratings     float64 `json:"ratings"`     // Рейтинг
	Category    string  `json:"category"`    // Категория
	Description string  `json:"description"` // Описание
}
