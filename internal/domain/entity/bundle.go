package entity

// ProductBundleItem composición de un bundle (muchos-a-muchos auto-referente
// sobre products). Quantity siempre > 0; la clave es (BundleID, ItemID).
type ProductBundleItem struct {
	BundleID int64
	ItemID   int64
	Quantity int64
}
