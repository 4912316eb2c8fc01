package domain

import "time"

// EquipmentStatusActive is the status given to new equipment.
const EquipmentStatusActive = "Aktif"

// Equipment is a machine with a recurring maintenance schedule.
type Equipment struct {
	ID              int64
	Name            string
	Type            string
	LastMaintenance time.Time
	NextMaintenance time.Time
	Status          string
}

// Schedule sets the last maintenance date and derives the next one.
func (e *Equipment) Schedule(last time.Time, intervalMonths int) {
	if intervalMonths <= 0 {
		intervalMonths = DefaultMaintenanceIntervalMonths
	}
	e.LastMaintenance = last
	e.NextMaintenance = AddMonths(last, intervalMonths)
}

// Lifetime returns the maintenance status at now.
func (e *Equipment) Lifetime(now time.Time, soonDays int) Lifetime {
	return LifetimeOf(e.NextMaintenance, now, soonDays)
}
