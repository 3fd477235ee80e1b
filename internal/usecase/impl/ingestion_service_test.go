package impl

import (
	"context"
	"testing"

	"housekeep/internal/domain/entity"
	domainerrors "housekeep/internal/domain/errors"
	"housekeep/internal/domain/repository"
	mockRepo "housekeep/internal/mocks/repository"
	mockService "housekeep/internal/mocks/service"
	"housekeep/internal/observability"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ingestionServiceFixtures holds all test dependencies for ingestion service tests.
type ingestionServiceFixtures struct {
	service   usecase.IngestionUsecase
	txManager *mockRepo.MockTransactionManager
	provider  *mockService.MockPropertyProvider
}

func createTestIngestionService(t *testing.T) ingestionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	provider := mockService.NewMockPropertyProvider(t)
	service := NewIngestionService(txManager, provider, observability.NewMetricsForTesting(), newDiscardLogger())

	return ingestionServiceFixtures{
		service:   service,
		txManager: txManager,
		provider:  provider,
	}
}

const fullPayload = `{"property":[{
	"address":{"oneLine":"4529 Winona Ct, Denver, CO 80212"},
	"location":{"latitude":"39.7789","longitude":"-105.0477"},
	"summary":{"yearbuilt":"1922","propclass":"house"},
	"building":{"rooms":{"beds":"3","bathstotal":"2.5"}},
	"vintage":{"pubDate":"2024-05-01"}
}]}`

func TestIngestionService_IngestPayload_CreatesHomeAndArchives(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHomeRepo := mockRepo.NewMockHomeRepository(t)
			mockRawRepo := mockRepo.NewMockRawPropertyRepository(t)

			mockFactory.EXPECT().Homes().Return(mockHomeRepo)
			mockFactory.EXPECT().RawProperties().Return(mockRawRepo)

			mockHomeRepo.EXPECT().
				FindByUserAndAddress(ctx, userID, "4529 Winona Ct, Denver, CO 80212").
				Return(nil, repository.ErrHomeNotFound)
			mockHomeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Home")).
				RunAndReturn(func(_ context.Context, home *entity.Home) error {
					assert.Equal(t, userID, home.UserID)
					assert.Equal(t, entity.BuildingTypeHouse, home.BuildingType)
					require.NotNil(t, home.Latitude)
					assert.InDelta(t, 39.7789, *home.Latitude, 1e-9)
					require.NotNil(t, home.YearBuilt)
					assert.Equal(t, 1922, *home.YearBuilt)
					assert.Equal(t, "2024-05-01T00:00:00", home.CreatedAt)
					assert.Equal(t, home.CreatedAt, home.UpdatedAt)

					return nil
				})
			mockRawRepo.EXPECT().
				Archive(ctx, mock.AnythingOfType("*entity.RawProperty")).
				RunAndReturn(func(_ context.Context, raw *entity.RawProperty) error {
					// The archived payload is the exact input bytes.
					assert.Equal(t, fullPayload, string(raw.RawJSON))
					assert.Equal(t, "attom", raw.Source)
					require.NotNil(t, raw.HomeID)

					return nil
				})

			return fn(mockFactory)
		})

	output, err := fx.service.IngestPayload(ctx, &usecase.IngestPayloadInput{
		UserID:   userID,
		Source:   "attom",
		Raw:      []byte(fullPayload),
		StoreRaw: true,
	})

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.NotEqual(t, uuid.Nil, output.HomeID)
}

func TestIngestionService_IngestPayload_ReusesExistingHome(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingHome := &entity.Home{
		ID:          uuid.New(),
		UserID:      userID,
		AddressText: "4529 Winona Ct, Denver, CO 80212",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHomeRepo := mockRepo.NewMockHomeRepository(t)
			mockRawRepo := mockRepo.NewMockRawPropertyRepository(t)

			mockFactory.EXPECT().Homes().Return(mockHomeRepo)
			mockFactory.EXPECT().RawProperties().Return(mockRawRepo)

			// Existing home: no Create call, fields stay untouched.
			mockHomeRepo.EXPECT().
				FindByUserAndAddress(ctx, userID, "4529 Winona Ct, Denver, CO 80212").
				Return(existingHome, nil)
			// One archive row per ingestion call even when the home is reused.
			mockRawRepo.EXPECT().
				Archive(ctx, mock.AnythingOfType("*entity.RawProperty")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.IngestPayload(ctx, &usecase.IngestPayloadInput{
		UserID:   userID,
		Source:   "attom",
		Raw:      []byte(fullPayload),
		StoreRaw: true,
	})

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, existingHome.ID, output.HomeID)
}

func TestIngestionService_IngestPayload_StoreRawDisabledSkipsArchive(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHomeRepo := mockRepo.NewMockHomeRepository(t)

			// RawProperties is never requested when archival is off.
			mockFactory.EXPECT().Homes().Return(mockHomeRepo)

			mockHomeRepo.EXPECT().
				FindByUserAndAddress(ctx, userID, "4529 Winona Ct, Denver, CO 80212").
				Return(nil, repository.ErrHomeNotFound)
			mockHomeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Home")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.IngestPayload(ctx, &usecase.IngestPayloadInput{
		UserID:   userID,
		Source:   "attom",
		Raw:      []byte(fullPayload),
		StoreRaw: false,
	})

	require.NoError(t, err)
	assert.True(t, output.Created)
}

func TestIngestionService_IngestPayload_EmptyPayloadRejected(t *testing.T) {
	fx := createTestIngestionService(t)

	// No transaction is opened: the payload is rejected before any storage work.
	output, err := fx.service.IngestPayload(context.Background(), &usecase.IngestPayloadInput{
		UserID:   uuid.New(),
		Source:   "attom",
		Raw:      []byte(`{"property":[]}`),
		StoreRaw: true,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoPropertyData)
}

func TestIngestionService_IngestPayload_MalformedJSONRejected(t *testing.T) {
	fx := createTestIngestionService(t)

	output, err := fx.service.IngestPayload(context.Background(), &usecase.IngestPayloadInput{
		UserID:   uuid.New(),
		Source:   "attom",
		Raw:      []byte(`not json at all`),
		StoreRaw: true,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoPropertyData)
}

func TestIngestionService_IngestPayload_ArchiveFailureRollsBack(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHomeRepo := mockRepo.NewMockHomeRepository(t)
			mockRawRepo := mockRepo.NewMockRawPropertyRepository(t)

			mockFactory.EXPECT().Homes().Return(mockHomeRepo)
			mockFactory.EXPECT().RawProperties().Return(mockRawRepo)

			mockHomeRepo.EXPECT().
				FindByUserAndAddress(ctx, userID, "4529 Winona Ct, Denver, CO 80212").
				Return(nil, repository.ErrHomeNotFound)
			mockHomeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Home")).
				Return(nil)
			mockRawRepo.EXPECT().
				Archive(ctx, mock.AnythingOfType("*entity.RawProperty")).
				Return(errors.New("disk full"))

			return fn(mockFactory)
		})

	output, err := fx.service.IngestPayload(ctx, &usecase.IngestPayloadInput{
		UserID:   userID,
		Source:   "attom",
		Raw:      []byte(fullPayload),
		StoreRaw: true,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to archive raw payload")
}

func TestIngestionService_IngestAddress_FetchesAndIngests(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().
		FetchByAddress(ctx, "4529 Winona Ct", "Denver, CO 80212").
		Return([]byte(fullPayload), nil)
	fx.provider.EXPECT().Source().Return("attom")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockHomeRepo := mockRepo.NewMockHomeRepository(t)
			mockRawRepo := mockRepo.NewMockRawPropertyRepository(t)

			mockFactory.EXPECT().Homes().Return(mockHomeRepo)
			mockFactory.EXPECT().RawProperties().Return(mockRawRepo)

			mockHomeRepo.EXPECT().
				FindByUserAndAddress(ctx, userID, "4529 Winona Ct, Denver, CO 80212").
				Return(nil, repository.ErrHomeNotFound)
			mockHomeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Home")).Return(nil)
			mockRawRepo.EXPECT().Archive(ctx, mock.AnythingOfType("*entity.RawProperty")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.IngestAddress(ctx, &usecase.IngestAddressInput{
		UserID:   userID,
		Address1: "4529 Winona Ct",
		Address2: "Denver, CO 80212",
		StoreRaw: true,
	})

	require.NoError(t, err)
	assert.True(t, output.Created)
}

func TestIngestionService_IngestAddress_ProviderFailureIsNoData(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		FetchByAddress(ctx, "1 Nowhere Ln", "Nowhere, ZZ 00000").
		Return(nil, errors.New("connection refused"))
	fx.provider.EXPECT().Source().Return("attom")

	output, err := fx.service.IngestAddress(ctx, &usecase.IngestAddressInput{
		UserID:   uuid.New(),
		Address1: "1 Nowhere Ln",
		Address2: "Nowhere, ZZ 00000",
		StoreRaw: true,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoPropertyData)
}

func TestIngestionService_ListHomes_UnknownUser(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	homes, err := fx.service.ListHomes(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, homes)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIngestionService_ListHomes_Success(t *testing.T) {
	fx := createTestIngestionService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Home{
		{ID: uuid.New(), UserID: userID, AddressText: "1 Elm St"},
		{ID: uuid.New(), UserID: userID, AddressText: "2 Oak Ave"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockHomeRepo := mockRepo.NewMockHomeRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)
			mockFactory.EXPECT().Homes().Return(mockHomeRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			mockHomeRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

			return fn(mockFactory)
		})

	homes, err := fx.service.ListHomes(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, homes)
}
