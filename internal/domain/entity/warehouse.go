package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Cada bodega pertenece exactamente a una empresa.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Location  string
	CreatedAt time.Time
}
