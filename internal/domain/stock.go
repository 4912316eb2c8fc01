package domain

// StockItem is a sellable product kept at the front desk.
type StockItem struct {
	ID          int64
	Name        string
	Quantity    int
	MinQuantity int
}

// LowStock reports whether the quantity reached the reorder threshold.
func (s *StockItem) LowStock() bool {
	return s.Quantity <= s.MinQuantity
}
