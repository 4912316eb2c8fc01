package dto

// StockCreateRequest adds a stock item.
type StockCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Quantity    *int   `json:"quantity" validate:"omitempty,gte=0"`
	MinQuantity *int   `json:"minQuantity" validate:"omitempty,gte=0"`
}

// StockUpdateRequest is a sparse update; absent fields are unchanged.
type StockUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=0"`
	MinQuantity *int    `json:"minQuantity" validate:"omitempty,gte=0"`
}

// StockResponse is a stock item.
type StockResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"minQuantity"`
	LowStock    bool   `json:"lowStock"`
}
