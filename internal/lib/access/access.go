// Package access реализует статическую матрицу прав доступа.
//
// Матрица отображает пару (операция, уровень доступа) в разрешение.
// Никаких владельцев, иерархий или атрибутов — чистая функция над
// закрытым множеством операций и уровней.
package access

import "github.com/magabrotheeeer/inventory-keeper/internal/models"

// Operation — операция над предметами инвентаря, проверяемая шлюзом доступа.
type Operation string

// Операции над предметами.
const (
	OpListItems  Operation = "list_items"
	OpReadItem   Operation = "read_item"
	OpCreateItem Operation = "create_item"
	OpUpdateItem Operation = "update_item"
	OpRemoveItem Operation = "remove_item"
)

// matrix — единственный источник истины для прав доступа.
// read_only может только читать, full_access может всё.
var matrix = map[Operation]map[string]bool{
	OpListItems:  {models.PermissionReadOnly: true, models.PermissionFullAccess: true},
	OpReadItem:   {models.PermissionReadOnly: true, models.PermissionFullAccess: true},
	OpCreateItem: {models.PermissionReadOnly: false, models.PermissionFullAccess: true},
	OpUpdateItem: {models.PermissionReadOnly: false, models.PermissionFullAccess: true},
	OpRemoveItem: {models.PermissionReadOnly: false, models.PermissionFullAccess: true},
}

// Allowed возвращает true, если уровень доступа permission разрешает операцию op.
// Неизвестная операция или неизвестный уровень — всегда запрет.
func Allowed(op Operation, permission string) bool {
	perms, ok := matrix[op]
	if !ok {
		return false
	}
	return perms[permission]
}
