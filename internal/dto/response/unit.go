package response

import "stay-booking/internal/data/entity"

type UnitResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	BasePricePerNight int64  `json:"base_price_per_night"`
	CleaningFee       int64  `json:"cleaning_fee"`
	MaxOccupancy      int    `json:"max_occupancy"`
}

type AvailabilityResponse struct {
	UnitID    string `json:"unit_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

func UnitToResponse(unit *entity.Unit) UnitResponse {
	return UnitResponse{
		ID:                unit.ID.String(),
		Name:              unit.Name,
		Description:       unit.Description,
		BasePricePerNight: unit.BasePricePerNight,
		CleaningFee:       unit.CleaningFee,
		MaxOccupancy:      unit.MaxOccupancy,
	}
}
