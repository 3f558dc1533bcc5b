package response

import (
	"time"

	"stay-booking/internal/data/entity"
)

type CreateReservationResponse struct {
	ReservationID     string `json:"reservation_id"`
	ReservationNumber string `json:"reservation_number"`
	CustomerID        string `json:"customer_id"`
}

type PricingResponse struct {
	Nights         int   `json:"nights"`
	BaseAmount     int64 `json:"base_amount"`
	CleaningFee    int64 `json:"cleaning_fee"`
	TaxAmount      int64 `json:"tax_amount"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`
}

type ReservationDetailResponse struct {
	ID                string                   `json:"id"`
	ReservationNumber string                   `json:"reservation_number"`
	UnitID            string                   `json:"unit_id"`
	UnitName          string                   `json:"unit_name,omitempty"`
	CustomerName      string                   `json:"customer_name"`
	CustomerEmail     string                   `json:"customer_email"`
	CheckIn           string                   `json:"check_in"`
	CheckOut          string                   `json:"check_out"`
	Guests            int                      `json:"guests"`
	BaseAmount        int64                    `json:"base_amount"`
	CleaningFee       int64                    `json:"cleaning_fee"`
	TaxAmount         int64                    `json:"tax_amount"`
	DiscountAmount    int64                    `json:"discount_amount"`
	TotalAmount       int64                    `json:"total_amount"`
	AmountPaid        int64                    `json:"amount_paid"`
	Status            entity.ReservationStatus `json:"status"`
	PaymentStatus     entity.PaymentStatus     `json:"payment_status"`
	ApprovalStatus    entity.ApprovalStatus    `json:"approval_status"`
	Notes             *string                  `json:"notes,omitempty"`
	CancelledAt       *time.Time               `json:"cancelled_at,omitempty"`
	CancelReason      *string                  `json:"cancel_reason,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
}

type CancelReservationResponse struct {
	ReservationID     string     `json:"reservation_id"`
	ReservationNumber string     `json:"reservation_number"`
	Status            string     `json:"status"`
	RefundPercent     int        `json:"refund_percent"`
	RefundAmount      int64      `json:"refund_amount"`
	CancelledAt       time.Time  `json:"cancelled_at"`
	CancelReason      *string    `json:"cancel_reason,omitempty"`
	CheckIn           string     `json:"check_in"`
}

// ReservationToDetail maps an entity plus its customer to the lookup response.
func ReservationToDetail(res *entity.Reservation, customer *entity.Customer, unitName string) *ReservationDetailResponse {
	return &ReservationDetailResponse{
		ID:                res.ID.String(),
		ReservationNumber: res.ReservationNumber,
		UnitID:            res.UnitID.String(),
		UnitName:          unitName,
		CustomerName:      customer.FullName,
		CustomerEmail:     customer.Email,
		CheckIn:           res.CheckIn.Format("2006-01-02"),
		CheckOut:          res.CheckOut.Format("2006-01-02"),
		Guests:            res.Guests,
		BaseAmount:        res.BaseAmount,
		CleaningFee:       res.CleaningFee,
		TaxAmount:         res.TaxAmount,
		DiscountAmount:    res.DiscountAmount,
		TotalAmount:       res.TotalAmount,
		AmountPaid:        res.AmountPaid,
		Status:            res.Status,
		PaymentStatus:     res.PaymentStatus,
		ApprovalStatus:    res.ApprovalStatus,
		Notes:             res.Notes,
		CancelledAt:       res.CancelledAt,
		CancelReason:      res.CancelReason,
		CreatedAt:         res.CreatedAt,
	}
}
