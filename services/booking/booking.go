package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "assemblr/database/repository/booking"
	serviceRepo "assemblr/database/repository/service"
	"assemblr/models"
	"assemblr/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateBooking validates the request, admits the window against the
// provider's availability and existing bookings, captures the price, and
// persists a Pending booking. The conflict check and insert run under the
// (provider, date) lock so two concurrent requests cannot both claim the
// same window.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if err := validateWindow(in.Date, in.Start, in.End); err != nil {
		return nil, err
	}
	if in.CustomerID == "" || in.ProviderID == "" || in.ServiceID == "" {
		return nil, fmt.Errorf("%w: customer, provider and service are required", ErrInvalidInput)
	}

	service, err := s.Services.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNoDocument) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if service.ProviderID != in.ProviderID {
		return nil, fmt.Errorf("%w: service %s does not belong to provider %s", ErrInvalidInput, in.ServiceID, in.ProviderID)
	}

	open, err := s.Availability.IsOpen(ctx, in.ProviderID, in.Date, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, fmt.Errorf("%w: outside provider availability", ErrSlotUnavailable)
	}

	lock := s.locks.acquire(in.ProviderID, in.Date)
	lock.Lock()
	defer lock.Unlock()

	conflict, err := s.Conflicts.HasConflict(ctx, in.ProviderID, in.Date, in.Start, in.End, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotUnavailable
	}

	totalPrice := ComputePrice(decimal.NewFromFloat(service.HourlyPrice), in.Start, in.End)

	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		ProviderID: in.ProviderID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		Start:      in.Start,
		End:        in.End,
		Notes:      in.Notes,
		Status:     models.StatusPending,
		TotalPrice: totalPrice.InexactFloat64(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.String("date", booking.Date),
		zap.String("window", booking.Start.String()+"-"+booking.End.String()))
	return booking, nil
}

// UpdateStatus applies the lifecycle guard and persists the new status.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.getExisting(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist status change: %w", err)
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", booking.ID),
		zap.String("status", string(status)))
	return booking, nil
}

// UpdateDetails edits date/time/notes. Only Pending bookings are editable;
// once Confirmed or later the window is immutable. Window changes re-run the
// conflict check, excluding the booking's own row.
func (s *DefaultBookingService) UpdateDetails(ctx context.Context, bookingID string, in UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.getExisting(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrBookingLocked, booking.Status)
	}

	date, start, end := booking.Date, booking.Start, booking.End
	if in.Date != nil {
		date = *in.Date
	}
	if in.Start != nil {
		start = *in.Start
	}
	if in.End != nil {
		end = *in.End
	}
	windowChanged := date != booking.Date || start != booking.Start || end != booking.End

	if windowChanged {
		if err := validateWindow(date, start, end); err != nil {
			return nil, err
		}

		open, err := s.Availability.IsOpen(ctx, booking.ProviderID, date, start, end)
		if err != nil {
			return nil, err
		}
		if !open {
			return nil, fmt.Errorf("%w: outside provider availability", ErrSlotUnavailable)
		}

		lock := s.locks.acquire(booking.ProviderID, date)
		lock.Lock()
		defer lock.Unlock()

		conflict, err := s.Conflicts.HasConflict(ctx, booking.ProviderID, date, start, end, booking.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrSlotUnavailable
		}
	}

	booking.Date, booking.Start, booking.End = date, start, end
	if in.Notes != nil {
		booking.Notes = *in.Notes
	}
	booking.UpdatedAt = time.Now()
	if err := s.Bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking edit: %w", err)
	}
	return booking, nil
}

// Delete soft-deletes a booking; the row stays in storage but disappears from
// every read, including the conflict detector's.
func (s *DefaultBookingService) Delete(ctx context.Context, bookingID string) error {
	if err := s.Bookings.SoftDelete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNoDocument) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.getExisting(ctx, bookingID)
}

func (s *DefaultBookingService) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return s.Bookings.ListByCustomer(ctx, customerID)
}

func (s *DefaultBookingService) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Bookings.ListByProvider(ctx, providerID)
}

func (s *DefaultBookingService) ListByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	if err := models.ValidateDate(from); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := models.ValidateDate(to); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Bookings.ListByDateRange(ctx, from, to)
}

// CheckSlot is the standalone availability query: open hours containment plus
// conflict freedom.
func (s *DefaultBookingService) CheckSlot(ctx context.Context, providerID, date string, start, end models.MinuteOfDay) (bool, error) {
	if err := validateWindow(date, start, end); err != nil {
		return false, err
	}
	open, err := s.Availability.IsOpen(ctx, providerID, date, start, end)
	if err != nil {
		return false, err
	}
	if !open {
		return false, nil
	}
	conflict, err := s.Conflicts.HasConflict(ctx, providerID, date, start, end, "")
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (s *DefaultBookingService) getExisting(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoDocument) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

func validateWindow(date string, start, end models.MinuteOfDay) error {
	if err := models.ValidateDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !start.Valid() || !end.Valid() {
		return fmt.Errorf("%w: time out of range", ErrInvalidInput)
	}
	if start >= end {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	return nil
}
