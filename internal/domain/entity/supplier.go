package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID          int64
	Name        string
	ContactInfo string
	CreatedAt   time.Time
}

// SupplierProduct relación muchos-a-muchos proveedor-producto.
type SupplierProduct struct {
	SupplierID int64
	ProductID  int64
}
