package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"stay-booking/internal/data/entity"
	"stay-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the store's behavior closely
// enough for service tests: the unique email index, the overlap rule and
// the reservation number collision all surface the same sentinel errors.

type fakeUnitRepo struct {
	units map[uuid.UUID]*entity.Unit
}

func newFakeUnitRepo(units ...*entity.Unit) *fakeUnitRepo {
	m := make(map[uuid.UUID]*entity.Unit)
	for _, u := range units {
		m[u.ID] = u
	}
	return &fakeUnitRepo{units: m}
}

func (f *fakeUnitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Unit, error) {
	return f.units[id], nil
}

func (f *fakeUnitRepo) FindAllActive(_ context.Context) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range f.units {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers []*entity.Customer
	// pending simulates a concurrent insert: the next Create for this email
	// fails with ErrDuplicateEmail after inserting the competing row.
	pending map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{pending: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.ToLower(customer.Email)
	if rival, ok := f.pending[key]; ok {
		delete(f.pending, key)
		f.customers = append(f.customers, rival)
		return repository.ErrDuplicateEmail
	}

	for _, c := range f.customers {
		if strings.EqualFold(c.Email, customer.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.customers {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return nil, nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations []*entity.Reservation
	// takenNumbers forces number collisions for the retry path.
	takenNumbers map[string]bool
	// rejectNumberInserts fails the next N inserts with a number collision
	// regardless of the generated value.
	rejectNumberInserts int
}

func newFakeReservationRepo(existing ...*entity.Reservation) *fakeReservationRepo {
	return &fakeReservationRepo{
		reservations: existing,
		takenNumbers: make(map[string]bool),
	}
}

func (f *fakeReservationRepo) overlaps(unitID uuid.UUID, checkIn, checkOut time.Time) bool {
	for _, r := range f.reservations {
		if r.UnitID != unitID || !r.Status.CanCancel() {
			continue
		}
		if r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn) {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepo) IsUnitAvailable(_ context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.overlaps(unitID, checkIn, checkOut), nil
}

func (f *fakeReservationRepo) CreateIfAvailable(_ context.Context, reservation *entity.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overlaps(reservation.UnitID, reservation.CheckIn, reservation.CheckOut) {
		return repository.ErrUnitOccupied
	}
	if f.rejectNumberInserts > 0 {
		f.rejectNumberInserts--
		return repository.ErrDuplicateReservationNumber
	}
	if f.takenNumbers[reservation.ReservationNumber] {
		return repository.ErrDuplicateReservationNumber
	}
	for _, r := range f.reservations {
		if r.ReservationNumber == reservation.ReservationNumber {
			return repository.ErrDuplicateReservationNumber
		}
	}
	f.reservations = append(f.reservations, reservation)
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByNumber(_ context.Context, number string) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.ReservationNumber == number {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id uuid.UUID, paymentStatus entity.PaymentStatus, cancelledAt time.Time, reason *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.ID == id {
			r.Status = entity.ReservationStatusCancelled
			r.PaymentStatus = paymentStatus
			r.CancelledAt = &cancelledAt
			r.CancelReason = reason
			r.UpdatedAt = cancelledAt
			return nil
		}
	}
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeAuditRepo) byAction(action string) []*entity.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.AuditLog
	for _, e := range f.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) Send(toEmail, _, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail+": "+subject)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (f *fakePublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	return nil
}

func (f *fakePublisher) Close() error { return nil }
