package entity

// Unit adalah catalog entity, read-only untuk booking engine.
// All amounts are stored in minor units (no decimals).
type Unit struct {
	BaseNoDelete
	Name              string `db:"name"`
	Description       string `db:"description"`
	BasePricePerNight int64  `db:"base_price_per_night"`
	CleaningFee       int64  `db:"cleaning_fee"`
	MaxOccupancy      int    `db:"max_occupancy"`
	IsActive          bool   `db:"is_active"`
}
