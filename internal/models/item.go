// Package models содержит доменные структуры предметов инвентаря,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Категории предметов. Закрытое множество.
const (
	CategoryWeapon     = "Weapon"
	CategoryCybernetic = "Cybernetic"
	CategoryGadget     = "Gadget"
)

// Item представляет собой предмет инвентаря, хранящийся в базе данных.
// Поля ID и CreatedAt назначаются на стороне сервера при создании
// и далее не изменяются.
type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// DummyItem используется для приёма данных из JSON-запроса на создание предмета,
// прежде чем конвертировать их в Item. Количество и цена не могут быть отрицательными.
type DummyItem struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=Weapon Cybernetic Gadget"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// UpdateItem используется для частичного обновления предмета.
// Поля-указатели: nil означает "не трогать", любое другое значение перезаписывает поле.
type UpdateItem struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty"`
	Category    *string  `json:"category" validate:"omitempty,oneof=Weapon Cybernetic Gadget"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// ItemPage описывает страницу списка предметов с метаданными пагинации.
// Номера страниц начинаются с единицы, страница за пределами данных
// возвращается пустой, а не ошибкой.
type ItemPage struct {
	Items []*Item `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Pages int     `json:"pages"`
}
