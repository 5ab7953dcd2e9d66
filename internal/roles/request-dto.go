package roles

import "gorm.io/datatypes"

// create role payload
type CreateRoleRequest struct {
	Name        string            `json:"name" validate:"required,min=2,max=50"`
	Description string            `json:"description,omitempty"`
	Permissions datatypes.JSONMap `json:"permissions,omitempty"`
}

// update role payload, partial
type UpdateRoleRequest struct {
	Description *string           `json:"description,omitempty"`
	Permissions datatypes.JSONMap `json:"permissions,omitempty"`
}
