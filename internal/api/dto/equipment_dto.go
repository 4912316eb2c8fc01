package dto

// EquipmentCreateRequest adds a machine. IntervalMonths defaults to 3.
type EquipmentCreateRequest struct {
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type" validate:"required"`
	LastMaintenance *Date  `json:"lastMaintenance" validate:"required"`
	IntervalMonths  int    `json:"intervalMonths" validate:"gte=0"`
}

// EquipmentUpdateRequest is a sparse update. A new lastMaintenance
// recomputes nextMaintenance from intervalMonths.
type EquipmentUpdateRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Type            *string `json:"type" validate:"omitempty,min=1"`
	Status          *string `json:"status" validate:"omitempty,min=1"`
	LastMaintenance *Date   `json:"lastMaintenance"`
	IntervalMonths  int     `json:"intervalMonths" validate:"gte=0"`
}

// MaintenanceRequest records maintenance done today.
type MaintenanceRequest struct {
	IntervalMonths int `json:"intervalMonths" validate:"gte=0"`
}

// EquipmentResponse is equipment with its derived maintenance status.
type EquipmentResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	LastMaintenance   Date   `json:"lastMaintenance"`
	NextMaintenance   Date   `json:"nextMaintenance"`
	Status            string `json:"status"`
	RemainingDays     int    `json:"remainingDays"`
	MaintenanceStatus string `json:"maintenanceStatus"`
}
