package repository

import (
	"context"
	"errors"

	"github.com/connect237/busconnect/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ParcelRepository interface {
	Create(ctx context.Context, parcel *domain.Parcel) error
	GetByTrackingCode(ctx context.Context, code string) (*domain.Parcel, error)
	UpdateStatus(ctx context.Context, code string, status domain.ParcelStatus) (*domain.Parcel, error)
	TrackingCodeExists(ctx context.Context, code string) (bool, error)
}

type PGParcelRepository struct {
	db *pgxpool.Pool
}

func NewParcelRepository(db *pgxpool.Pool) ParcelRepository {
	return &PGParcelRepository{db: db}
}

const parcelColumns = `id, sender_id, recipient_name, recipient_phone, origin, destination, parcel_type,
	weight_kg, declared_value, insurance, delivery_instructions, tracking_code, status, price, created_at`

func (r *PGParcelRepository) Create(ctx context.Context, p *domain.Parcel) error {
	err := r.db.QueryRow(ctx, `INSERT INTO parcels (id, sender_id, recipient_name, recipient_phone, origin,
			destination, parcel_type, weight_kg, declared_value, insurance, delivery_instructions, tracking_code,
			status, price)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at`,
		p.ID, p.SenderID, p.RecipientName, p.RecipientPhone, p.Origin, p.Destination, p.ParcelType,
		p.WeightKg, p.DeclaredValue, p.Insurance, p.Instructions, p.TrackingCode, p.Status, p.Price).
		Scan(&p.CreatedAt)
	if err != nil {
		return domain.StorageError("insert parcel", err)
	}
	return nil
}

func (r *PGParcelRepository) GetByTrackingCode(ctx context.Context, code string) (*domain.Parcel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+parcelColumns+` FROM parcels WHERE tracking_code=$1`, code)
	return scanParcel(row)
}

func (r *PGParcelRepository) UpdateStatus(ctx context.Context, code string, status domain.ParcelStatus) (*domain.Parcel, error) {
	row := r.db.QueryRow(ctx, `UPDATE parcels SET status=$1 WHERE tracking_code=$2 RETURNING `+parcelColumns, status, code)
	return scanParcel(row)
}

func (r *PGParcelRepository) TrackingCodeExists(ctx context.Context, code string) (bool, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM parcels WHERE tracking_code=$1`, code).Scan(&count); err != nil {
		return false, domain.StorageError("count tracking codes", err)
	}
	return count > 0, nil
}

func scanParcel(row pgx.Row) (*domain.Parcel, error) {
	var p domain.Parcel
	err := row.Scan(&p.ID, &p.SenderID, &p.RecipientName, &p.RecipientPhone, &p.Origin, &p.Destination,
		&p.ParcelType, &p.WeightKg, &p.DeclaredValue, &p.Insurance, &p.Instructions, &p.TrackingCode,
		&p.Status, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("parcel")
		}
		return nil, domain.StorageError("scan parcel", err)
	}
	return &p, nil
}

var _ ParcelRepository = (*PGParcelRepository)(nil)
