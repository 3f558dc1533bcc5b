package request

// PricingBreakdown is the caller-submitted price. It is never trusted; the
// server recomputes and rejects any field outside tolerance.
type PricingBreakdown struct {
	BaseAmount     int64 `json:"base_amount" validate:"gte=0"`
	CleaningFee    int64 `json:"cleaning_fee" validate:"gte=0"`
	TaxAmount      int64 `json:"tax_amount" validate:"gte=0"`
	DiscountAmount int64 `json:"discount_amount" validate:"gte=0"`
	TotalAmount    int64 `json:"total_amount" validate:"gte=0"`
}

type CreateReservationRequest struct {
	UnitID        string           `json:"unit_id" validate:"required,uuid4"`
	CheckIn       string           `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string           `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests        int              `json:"guests" validate:"required,gte=1,lte=50"`
	FullName      string           `json:"full_name" validate:"required,min=1,max=120"`
	Email         string           `json:"email" validate:"required,email"`
	Phone         *string          `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Notes         *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
	PaymentOption string           `json:"payment_option" validate:"required,oneof=full deposit none"`
	DepositAmount int64            `json:"deposit_amount" validate:"gte=0"`
	Pricing       PricingBreakdown `json:"pricing"`
}

type LookupReservationRequest struct {
	ReservationNumber string `json:"reservation_number" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
}

type CancelReservationRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
