package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/connect237/busconnect/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) (*domain.Booking, error)
	SetRating(ctx context.Context, reference string, rating int, review string) error
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	PopularRoutes(ctx context.Context, limit int) ([]domain.RouteStat, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, route_id, origin, destination, passenger_count, seat_numbers, service_class,
	baggage, promo_code, carbon_offset, insurance, total_price, status, booking_reference, qr_code,
	scheduled_departure, is_advance_booking, special_requests, rating, review, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	seats, err := json.Marshal(b.SeatNumbers)
	if err != nil {
		return err
	}
	baggage, err := json.Marshal(b.Baggage)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, `INSERT INTO bookings (id, user_id, route_id, origin, destination, passenger_count,
			seat_numbers, service_class, baggage, promo_code, carbon_offset, insurance, total_price, status,
			booking_reference, qr_code, scheduled_departure, is_advance_booking, special_requests)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		RETURNING created_at, updated_at`,
		b.ID, b.UserID, b.RouteID, b.Origin, b.Destination, b.PassengerCount,
		seats, b.ServiceClass, baggage, nullable(b.PromoCode), b.CarbonOffset, b.Insurance, b.TotalPrice, b.Status,
		b.Reference, b.QRCode, b.ScheduledDeparture, b.IsAdvanceBooking, b.SpecialRequests).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.StorageError("insert booking", err)
	}
	return nil
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference=$1`, reference)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, domain.StorageError("list bookings", err)
	}
	defer rows.Close()

	// Never nil: the handler serializes this directly and an empty list must
	// come out as [].
	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE booking_reference=$2
		RETURNING `+bookingColumns, status, reference)
	return scanBooking(row)
}

func (r *PGBookingRepository) SetRating(ctx context.Context, reference string, rating int, review string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE bookings SET rating=$1, review=$2, updated_at=now() WHERE booking_reference=$3`,
		rating, review, reference)
	if err != nil {
		return domain.StorageError("rate booking", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("booking %q", reference)
	}
	return nil
}

func (r *PGBookingRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE booking_reference=$1`, reference).Scan(&count); err != nil {
		return false, domain.StorageError("count references", err)
	}
	return count > 0, nil
}

func (r *PGBookingRepository) PopularRoutes(ctx context.Context, limit int) ([]domain.RouteStat, error) {
	rows, err := r.db.Query(ctx, `SELECT origin, destination, count(*) AS bookings, coalesce(sum(total_price),0) AS revenue
		FROM bookings WHERE status <> $1 GROUP BY origin, destination ORDER BY bookings DESC LIMIT $2`,
		domain.BookingStatusCancelled, limit)
	if err != nil {
		return nil, domain.StorageError("popular routes", err)
	}
	defer rows.Close()

	var stats []domain.RouteStat
	for rows.Next() {
		var s domain.RouteStat
		if err := rows.Scan(&s.Origin, &s.Destination, &s.Bookings, &s.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var seats, baggage []byte
	var promo, requests, review *string
	var rating *int
	err := row.Scan(&b.ID, &b.UserID, &b.RouteID, &b.Origin, &b.Destination, &b.PassengerCount, &seats, &b.ServiceClass,
		&baggage, &promo, &b.CarbonOffset, &b.Insurance, &b.TotalPrice, &b.Status, &b.Reference, &b.QRCode,
		&b.ScheduledDeparture, &b.IsAdvanceBooking, &requests, &rating, &review, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("booking")
		}
		return nil, domain.StorageError("scan booking", err)
	}
	if err := json.Unmarshal(seats, &b.SeatNumbers); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(baggage, &b.Baggage); err != nil {
		return nil, err
	}
	if promo != nil {
		b.PromoCode = *promo
	}
	if requests != nil {
		b.SpecialRequests = *requests
	}
	if rating != nil {
		b.Rating = *rating
	}
	if review != nil {
		b.Review = *review
	}
	return &b, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ BookingRepository = (*PGBookingRepository)(nil)
