package parcels

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/connect237/busconnect/internal/repository"
	"github.com/google/uuid"
)

type ParcelUseCase interface {
	BookParcel(ctx context.Context, input BookParcelInput) (*domain.Parcel, error)
	TrackParcel(ctx context.Context, trackingCode string) (*domain.Parcel, error)
	UpdateStatus(ctx context.Context, trackingCode string, status domain.ParcelStatus) (*domain.Parcel, error)
}

type Cache interface {
	ReserveReference(ctx context.Context, reference string, ttl time.Duration) (bool, error)
	ReleaseReference(ctx context.Context, reference string) error
}

type BookParcelInput struct {
	SenderID       string  `json:"sender_id"`
	RecipientName  string  `json:"recipient_name"`
	RecipientPhone string  `json:"recipient_phone"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	ParcelType     string  `json:"parcel_type"`
	WeightKg       float64 `json:"weight_kg"`
	DeclaredValue  int     `json:"declared_value"`
	Insurance      bool    `json:"insurance"`
	Instructions   string  `json:"delivery_instructions"`
}

type ParcelService struct {
	parcels repository.ParcelRepository
	catalog *catalog.Catalog
	quoter  *pricing.Quoter
	cache   Cache
}

func NewParcelService(parcels repository.ParcelRepository, cat *catalog.Catalog, quoter *pricing.Quoter, cache Cache) *ParcelService {
	return &ParcelService{parcels: parcels, catalog: cat, quoter: quoter, cache: cache}
}

func (s *ParcelService) BookParcel(ctx context.Context, input BookParcelInput) (*domain.Parcel, error) {
	if input.SenderID == "" || input.RecipientName == "" {
		return nil, domain.Validationf("sender and recipient are required")
	}
	if input.WeightKg <= 0 {
		return nil, domain.Validationf("weight must be positive")
	}
	if _, err := s.catalog.CityByName(input.Origin); err != nil {
		return nil, err
	}
	if _, err := s.catalog.CityByName(input.Destination); err != nil {
		return nil, err
	}

	code, err := s.generateTrackingCode(ctx)
	if err != nil {
		return nil, err
	}

	parcel := &domain.Parcel{
		ID:             uuid.NewString(),
		SenderID:       input.SenderID,
		RecipientName:  input.RecipientName,
		RecipientPhone: input.RecipientPhone,
		Origin:         input.Origin,
		Destination:    input.Destination,
		ParcelType:     input.ParcelType,
		WeightKg:       input.WeightKg,
		DeclaredValue:  input.DeclaredValue,
		Insurance:      input.Insurance,
		Instructions:   input.Instructions,
		TrackingCode:   code,
		Status:         domain.ParcelStatusPending,
		Price:          s.quoter.ParcelPrice(input.WeightKg, input.DeclaredValue, input.Insurance),
	}

	if err := s.parcels.Create(ctx, parcel); err != nil {
		if s.cache != nil {
			_ = s.cache.ReleaseReference(ctx, code)
		}
		return nil, err
	}
	return parcel, nil
}

func (s *ParcelService) TrackParcel(ctx context.Context, trackingCode string) (*domain.Parcel, error) {
	return s.parcels.GetByTrackingCode(ctx, trackingCode)
}

func (s *ParcelService) UpdateStatus(ctx context.Context, trackingCode string, status domain.ParcelStatus) (*domain.Parcel, error) {
	switch status {
	case domain.ParcelStatusPending, domain.ParcelStatusCollected, domain.ParcelStatusInTransit, domain.ParcelStatusDelivered:
	default:
		return nil, domain.Validationf("unknown parcel status %q", status)
	}
	return s.parcels.UpdateStatus(ctx, trackingCode, status)
}

func (s *ParcelService) generateTrackingCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("PD%06d", n.Int64()+100000)

		if s.cache != nil {
			ok, err := s.cache.ReserveReference(ctx, code, time.Minute)
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
		}
		exists, err := s.parcels.TrackingCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if exists {
			if s.cache != nil {
				_ = s.cache.ReleaseReference(ctx, code)
			}
			continue
		}
		return code, nil
	}
	return "", fmt.Errorf("could not generate a unique tracking code")
}

var _ ParcelUseCase = (*ParcelService)(nil)
