package entity

import "time"

// Company representa una organización dueña de cero o más bodegas.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
