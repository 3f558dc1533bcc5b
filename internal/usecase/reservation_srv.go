package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/data/repository"
	"stay-booking/internal/dto/request"
	"stay-booking/internal/dto/response"
	"stay-booking/pkg/events"
	"stay-booking/pkg/mailer"
	"stay-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"

	// attempts to mint a unique reservation number before giving up
	maxNumberAttempts = 3
)

type ReservationService interface {
	// CreateReservation runs the whole booking pipeline: validate, resolve
	// customer, check availability, compute authoritative price, verify
	// caller pricing, commit. All-or-nothing except the customer row,
	// which is kept for reuse even when the booking itself fails.
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.CreateReservationResponse, error)

	// LookupReservation returns the full detail only when the supplied
	// email matches the reservation's customer email. Missing number and
	// email mismatch are indistinguishable to the caller.
	LookupReservation(ctx context.Context, req *request.LookupReservationRequest) (*response.ReservationDetailResponse, error)

	// CancelReservation transitions a non-terminal reservation to
	// cancelled and computes the refund from the configured policy.
	CancelReservation(ctx context.Context, reservationID string, req *request.CancelReservationRequest) (*response.CancelReservationResponse, error)
}

type reservationService struct {
	repo   *repository.Repository
	refund RefundPolicy
	clock  utils.Clock
	audit  *AuditWriter
	mail   mailer.Service
	bus    events.Publisher
	log    *zap.Logger
}

func NewReservationService(
	repo *repository.Repository,
	refund RefundPolicy,
	clock utils.Clock,
	audit *AuditWriter,
	mail mailer.Service,
	bus events.Publisher,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		repo:   repo,
		refund: refund,
		clock:  clock,
		audit:  audit,
		mail:   mail,
		bus:    bus,
		log:    log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.CreateReservationResponse, error) {
	// Step 1: shape validation, before any state change
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	checkIn, checkOut, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid unit ID format", ErrValidation)
	}

	unit, err := s.repo.Unit.FindByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("load unit: %w", err)
	}
	if unit == nil || !unit.IsActive {
		return nil, fmt.Errorf("%w: unit", ErrNotFound)
	}

	// Step 2: resolve customer identity by email
	customer, err := s.resolveCustomer(ctx, req.Email, req.FullName, req.Phone)
	if err != nil {
		return nil, err
	}

	// Step 3: advisory availability check, fail closed early
	available, err := s.repo.Reservation.IsUnitAvailable(ctx, unitID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return nil, ErrUnitNotAvailable
	}

	// Step 4: authoritative price
	computed, err := CalculatePrice(unit, checkIn, checkOut, req.Guests, req.Pricing.DiscountAmount)
	if err != nil {
		return nil, err
	}

	// Step 5: integrity guard; exactly one audit entry on mismatch
	if !VerifyPricing(req.Pricing, computed) {
		email := customer.Email
		s.audit.Write(ctx, entity.AuditActionPricingMismatch, &customer.ID, &email,
			fmt.Sprintf("submitted pricing rejected for unit %s", unitID.String()))
		s.log.Warn("Pricing mismatch rejected",
			zap.String("unit_id", unitID.String()),
			zap.String("customer_id", customer.ID.String()),
		)
		return nil, ErrPricingMismatch
	}

	status, paymentStatus, approvalStatus, amountPaid, err := initialState(req.PaymentOption, req.DepositAmount, computed.TotalAmount)
	if err != nil {
		return nil, err
	}

	// Step 6: commit; the store enforces no-overlap, so a racing insert
	// for the same range fails here even though step 3 passed.
	now := s.clock.Now()
	reservation := &entity.Reservation{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReservationNumber: utils.GenerateReservationNumber(),
		UnitID:            unitID,
		CustomerID:        customer.ID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Guests:            req.Guests,
		BaseAmount:        computed.BaseAmount,
		CleaningFee:       computed.CleaningFee,
		TaxAmount:         computed.TaxAmount,
		DiscountAmount:    computed.DiscountAmount,
		TotalAmount:       computed.TotalAmount,
		AmountPaid:        amountPaid,
		Status:            status,
		PaymentStatus:     paymentStatus,
		ApprovalStatus:    approvalStatus,
		Notes:             req.Notes,
	}

	if err := s.commitWithFreshNumber(ctx, reservation); err != nil {
		if errors.Is(err, repository.ErrUnitOccupied) {
			return nil, ErrUnitNotAvailable
		}
		s.log.Error("Failed to commit reservation",
			zap.Error(err),
			zap.String("unit_id", unitID.String()),
			zap.String("customer_id", customer.ID.String()),
		)
		return nil, fmt.Errorf("commit reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("reservation_number", reservation.ReservationNumber),
		zap.String("unit_id", unitID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.Int("nights", computed.Nights),
		zap.Int64("total_amount", computed.TotalAmount),
	)

	// Step 7: best-effort side effects, never undo the commit
	email := customer.Email
	s.audit.Write(ctx, entity.AuditActionReservationCreated, &customer.ID, &email,
		fmt.Sprintf("reservation %s for unit %s", reservation.ReservationNumber, unitID.String()))
	s.notifyCreated(ctx, reservation, customer)

	return &response.CreateReservationResponse{
		ReservationID:     reservation.ID.String(),
		ReservationNumber: reservation.ReservationNumber,
		CustomerID:        customer.ID.String(),
	}, nil
}

// resolveCustomer finds or creates the identity record for an email. On a
// concurrent duplicate insert the unique index rejects the loser, which
// re-reads and uses the winning row. Contact fields of an existing customer
// are left untouched: one booking must not overwrite another party's
// stored details just because the emails coincide.
func (s *reservationService) resolveCustomer(ctx context.Context, email, fullName string, phone *string) (*entity.Customer, error) {
	normalized := utils.NormalizeEmail(email)

	existing, err := s.repo.Customer.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	now := s.clock.Now()
	customer := &entity.Customer{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName: strings.TrimSpace(fullName),
		Email:    normalized,
		Phone:    phone,
	}

	err = s.repo.Customer.Create(ctx, customer)
	if err == nil {
		s.log.Info("Customer created",
			zap.String("customer_id", customer.ID.String()),
			zap.String("email", normalized),
		)
		return customer, nil
	}
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	// lost the race, use the row the winner inserted
	existing, readErr := s.repo.Customer.FindByEmail(ctx, normalized)
	if readErr != nil {
		return nil, fmt.Errorf("re-read customer after duplicate: %w", readErr)
	}
	if existing == nil {
		return nil, fmt.Errorf("customer %s vanished after duplicate insert", normalized)
	}
	return existing, nil
}

func (s *reservationService) commitWithFreshNumber(ctx context.Context, reservation *entity.Reservation) error {
	var err error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		err = s.repo.Reservation.CreateIfAvailable(ctx, reservation)
		if !errors.Is(err, repository.ErrDuplicateReservationNumber) {
			return err
		}
		reservation.ReservationNumber = utils.GenerateReservationNumber()
	}
	return err
}

func (s *reservationService) LookupReservation(ctx context.Context, req *request.LookupReservationRequest) (*response.ReservationDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	reservation, err := s.repo.Reservation.FindByNumber(ctx, strings.TrimSpace(req.ReservationNumber))
	if err != nil {
		return nil, fmt.Errorf("lookup reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: reservation", ErrNotFound)
	}

	customer, err := s.repo.Customer.FindByID(ctx, reservation.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load reservation customer: %w", err)
	}

	// Email mismatch gets the identical response as a missing number so
	// valid reservation numbers cannot be enumerated.
	if customer == nil || !strings.EqualFold(customer.Email, strings.TrimSpace(req.Email)) {
		return nil, fmt.Errorf("%w: reservation", ErrNotFound)
	}

	var unitName string
	if unit, err := s.repo.Unit.FindByID(ctx, reservation.UnitID); err == nil && unit != nil {
		unitName = unit.Name
	}

	return response.ReservationToDetail(reservation, customer, unitName), nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string, req *request.CancelReservationRequest) (*response.CancelReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID format", ErrValidation)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: reservation", ErrNotFound)
	}

	if !reservation.Status.CanCancel() {
		return nil, fmt.Errorf("%w: status is %s", ErrTerminalState, reservation.Status)
	}

	now := s.clock.Now()
	refundPercent, refundAmount := s.refund.RefundFor(reservation.AmountPaid, now, reservation.CheckIn)

	paymentStatus := reservation.PaymentStatus
	if refundAmount > 0 {
		paymentStatus = entity.PaymentStatusRefunded
	}

	if err := s.repo.Reservation.Cancel(ctx, id, paymentStatus, now, req.Reason); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", id.String()),
		zap.String("reservation_number", reservation.ReservationNumber),
		zap.Int("refund_percent", refundPercent),
		zap.Int64("refund_amount", refundAmount),
	)

	customer, _ := s.repo.Customer.FindByID(ctx, reservation.CustomerID)

	var actorID *uuid.UUID
	var actorEmail *string
	if customer != nil {
		actorID = &customer.ID
		actorEmail = &customer.Email
	}
	s.audit.Write(ctx, entity.AuditActionReservationCancelled, actorID, actorEmail,
		fmt.Sprintf("reservation %s cancelled, refund %d%%", reservation.ReservationNumber, refundPercent))
	s.notifyCancelled(ctx, reservation, customer, refundAmount, now)

	return &response.CancelReservationResponse{
		ReservationID:     id.String(),
		ReservationNumber: reservation.ReservationNumber,
		Status:            string(entity.ReservationStatusCancelled),
		RefundPercent:     refundPercent,
		RefundAmount:      refundAmount,
		CancelledAt:       now,
		CancelReason:      req.Reason,
		CheckIn:           reservation.CheckIn.Format(dateLayout),
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *reservationService) notifyCreated(ctx context.Context, reservation *entity.Reservation, customer *entity.Customer) {
	event := events.ReservationCreatedEvent{
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		UnitID:            reservation.UnitID,
		CustomerEmail:     customer.Email,
		CheckIn:           reservation.CheckIn.Format(dateLayout),
		CheckOut:          reservation.CheckOut.Format(dateLayout),
		TotalAmount:       reservation.TotalAmount,
		CreatedAt:         reservation.CreatedAt,
	}
	if err := s.bus.Publish(ctx, events.ReservationCreated, event); err != nil {
		s.log.Warn("Failed to publish reservation created event",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}

	text := fmt.Sprintf("Your reservation %s is booked: check-in %s, check-out %s.",
		reservation.ReservationNumber,
		reservation.CheckIn.Format(dateLayout),
		reservation.CheckOut.Format(dateLayout),
	)
	if err := s.mail.Send(customer.Email, customer.FullName, "Reservation confirmed", text); err != nil {
		s.log.Warn("Failed to send reservation email",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}
}

func (s *reservationService) notifyCancelled(ctx context.Context, reservation *entity.Reservation, customer *entity.Customer, refundAmount int64, cancelledAt time.Time) {
	var email string
	if customer != nil {
		email = customer.Email
	}

	event := events.ReservationCancelledEvent{
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		CustomerEmail:     email,
		RefundAmount:      refundAmount,
		CancelledAt:       cancelledAt,
	}
	if err := s.bus.Publish(ctx, events.ReservationCancelled, event); err != nil {
		s.log.Warn("Failed to publish reservation cancelled event",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}

	if customer == nil {
		return
	}
	text := fmt.Sprintf("Your reservation %s has been cancelled.", reservation.ReservationNumber)
	if err := s.mail.Send(customer.Email, customer.FullName, "Reservation cancelled", text); err != nil {
		s.log.Warn("Failed to send cancellation email",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
	}
}

// parseDateRange parses ISO dates and enforces the half-open range rule.
func parseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_in must be yyyy-mm-dd", ErrValidation)
	}
	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_out must be yyyy-mm-dd", ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	}
	return checkIn, checkOut, nil
}

// initialState maps the chosen payment path to the initial reservation
// state. A reservation without payment needs later manual approval.
func initialState(paymentOption string, deposit, total int64) (entity.ReservationStatus, entity.PaymentStatus, entity.ApprovalStatus, int64, error) {
	switch paymentOption {
	case "full":
		return entity.ReservationStatusConfirmed, entity.PaymentStatusPaid, entity.ApprovalStatusApproved, total, nil
	case "deposit":
		if deposit <= 0 || deposit >= total {
			return "", "", "", 0, fmt.Errorf("%w: deposit must be positive and below the total", ErrValidation)
		}
		return entity.ReservationStatusConfirmed, entity.PaymentStatusPartial, entity.ApprovalStatusApproved, deposit, nil
	case "none":
		return entity.ReservationStatusPending, entity.PaymentStatusPending, entity.ApprovalStatusPending, 0, nil
	}
	return "", "", "", 0, fmt.Errorf("%w: unknown payment option", ErrValidation)
}
