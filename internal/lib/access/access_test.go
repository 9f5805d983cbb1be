package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

func TestAllowed_Matrix(t *testing.T) {
	tests := []struct {
		name       string
		op         Operation
		permission string
		want       bool
	}{
		{"read_only может читать список", OpListItems, models.PermissionReadOnly, true},
		{"read_only может читать предмет", OpReadItem, models.PermissionReadOnly, true},
		{"read_only не может создавать", OpCreateItem, models.PermissionReadOnly, false},
		{"read_only не может обновлять", OpUpdateItem, models.PermissionReadOnly, false},
		{"read_only не может удалять", OpRemoveItem, models.PermissionReadOnly, false},
		{"full_access может читать список", OpListItems, models.PermissionFullAccess, true},
		{"full_access может читать предмет", OpReadItem, models.PermissionFullAccess, true},
		{"full_access может создавать", OpCreateItem, models.PermissionFullAccess, true},
		{"full_access может обновлять", OpUpdateItem, models.PermissionFullAccess, true},
		{"full_access может удалять", OpRemoveItem, models.PermissionFullAccess, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.op, tt.permission))
		})
	}
}

func TestAllowed_UnknownInputs(t *testing.T) {
	assert.False(t, Allowed(Operation("drop_database"), models.PermissionFullAccess))
	assert.False(t, Allowed(OpReadItem, "superuser"))
	assert.False(t, Allowed(OpReadItem, ""))
}
