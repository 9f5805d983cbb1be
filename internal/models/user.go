// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату регистрации.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Уровни доступа пользователя. Закрытое множество, других значений
// в хранилище быть не может.
const (
	// PermissionReadOnly разрешает только чтение предметов.
	PermissionReadOnly = "read_only"
	// PermissionFullAccess разрешает чтение и изменение предметов.
	PermissionFullAccess = "full_access"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя
	Permission   string    // Уровень доступа: read_only или full_access
	RegisteredAt time.Time // Дата регистрации, назначается при создании
}

// ValidPermission сообщает, входит ли значение в закрытое множество уровней доступа.
func ValidPermission(permission string) bool {
	return permission == PermissionReadOnly || permission == PermissionFullAccess
}
