package parcels

import (
	"context"
	"testing"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Create(ctx context.Context, parcel *domain.Parcel) error {
	args := m.Called(ctx, parcel)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByTrackingCode(ctx context.Context, code string) (*domain.Parcel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Parcel), args.Error(1)
}

func (m *MockParcelRepository) UpdateStatus(ctx context.Context, code string, status domain.ParcelStatus) (*domain.Parcel, error) {
	args := m.Called(ctx, code, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Parcel), args.Error(1)
}

func (m *MockParcelRepository) TrackingCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func newService(repo *MockParcelRepository) *ParcelService {
	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat, pricing.DefaultConfig())
	return NewParcelService(repo, cat, quoter, nil)
}

func validInput() BookParcelInput {
	return BookParcelInput{
		SenderID:      "user-1",
		RecipientName: "Ngo Bassa",
		Origin:        "Yaoundé",
		Destination:   "Douala",
		ParcelType:    "document",
		WeightKg:      2.5,
	}
}

func TestBookParcel_Success(t *testing.T) {
	repo := &MockParcelRepository{}
	svc := newService(repo)

	repo.On("TrackingCodeExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	parcel, err := svc.BookParcel(context.Background(), validInput())
	require.NoError(t, err)

	assert.Regexp(t, `^PD\d{6}$`, parcel.TrackingCode)
	assert.Equal(t, domain.ParcelStatusPending, parcel.Status)
	// 2000 base + 2.5 kg x 500, no insurance.
	assert.Equal(t, 3250, parcel.Price)
	repo.AssertExpectations(t)
}

func TestBookParcel_InsuredPriceIncludesDeclaredValue(t *testing.T) {
	repo := &MockParcelRepository{}
	svc := newService(repo)

	repo.On("TrackingCodeExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.WeightKg = 3
	input.DeclaredValue = 100000
	input.Insurance = true

	parcel, err := svc.BookParcel(context.Background(), input)
	require.NoError(t, err)

	// 2000 + 3 x 500 + 2% of 100000.
	assert.Equal(t, 5500, parcel.Price)
}

func TestBookParcel_Validation(t *testing.T) {
	svc := newService(&MockParcelRepository{})

	input := validInput()
	input.SenderID = ""
	_, err := svc.BookParcel(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = validInput()
	input.WeightKg = 0
	_, err = svc.BookParcel(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = validInput()
	input.Destination = "Atlantis"
	_, err = svc.BookParcel(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrackParcel(t *testing.T) {
	repo := &MockParcelRepository{}
	svc := newService(repo)

	stored := &domain.Parcel{TrackingCode: "PD123456", Status: domain.ParcelStatusInTransit}
	repo.On("GetByTrackingCode", mock.Anything, "PD123456").Return(stored, nil)

	parcel, err := svc.TrackParcel(context.Background(), "PD123456")
	require.NoError(t, err)
	assert.Equal(t, domain.ParcelStatusInTransit, parcel.Status)
}

func TestUpdateStatus(t *testing.T) {
	repo := &MockParcelRepository{}
	svc := newService(repo)

	delivered := &domain.Parcel{TrackingCode: "PD123456", Status: domain.ParcelStatusDelivered}
	repo.On("UpdateStatus", mock.Anything, "PD123456", domain.ParcelStatusDelivered).Return(delivered, nil)

	parcel, err := svc.UpdateStatus(context.Background(), "PD123456", domain.ParcelStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.ParcelStatusDelivered, parcel.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &MockParcelRepository{}
	svc := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), "PD123456", domain.ParcelStatus("lost"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
