package impl

import (
	"context"
	"testing"

	"housekeep/internal/domain/entity"
	domainerrors "housekeep/internal/domain/errors"
	"housekeep/internal/domain/repository"
	mockRepo "housekeep/internal/mocks/repository"
	"housekeep/internal/observability"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewIdentityService(txManager, observability.NewMetricsForTesting(), newDiscardLogger())

	return identityServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestIdentityService_ResolveOrCreateUser_PhoneMatchWins(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	phone := "+13035551234"
	existingUser := &entity.User{
		ID:          uuid.New(),
		DisplayName: "Robin",
		PhoneE164:   &phone,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)
			// Phone matches; display name must not even be consulted.
			mockUserRepo.EXPECT().FindByPhone(ctx, phone).Return(existingUser, nil)

			return fn(mockFactory)
		})

	// Different display name from the stored one.
	user, err := fx.service.ResolveOrCreateUser(ctx, &usecase.ResolveUserInput{
		DisplayName: "Someone Else",
		PhoneE164:   &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, existingUser.ID, user.ID)
	assert.Equal(t, "Robin", user.DisplayName)
}

func TestIdentityService_ResolveOrCreateUser_FallsBackToDisplayName(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	phone := "+13035559999"
	existingUser := &entity.User{
		ID:          uuid.New(),
		DisplayName: "Robin",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByPhone(ctx, phone).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByDisplayName(ctx, "Robin").Return(existingUser, nil)

			return fn(mockFactory)
		})

	user, err := fx.service.ResolveOrCreateUser(ctx, &usecase.ResolveUserInput{
		DisplayName: "Robin",
		PhoneE164:   &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, existingUser.ID, user.ID)
}

func TestIdentityService_ResolveOrCreateUser_CreatesWhenNoMatch(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	phone := "+13035550000"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByPhone(ctx, phone).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByDisplayName(ctx, "New User").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, user *entity.User) error {
					assert.NotEqual(t, uuid.Nil, user.ID)
					assert.Equal(t, "New User", user.DisplayName)
					require.NotNil(t, user.PhoneE164)
					assert.Equal(t, phone, *user.PhoneE164)

					return nil
				})

			return fn(mockFactory)
		})

	user, err := fx.service.ResolveOrCreateUser(ctx, &usecase.ResolveUserInput{
		DisplayName: "New User",
		PhoneE164:   &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "New User", user.DisplayName)
}

func TestIdentityService_ResolveOrCreateUser_NameOnly(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	existingUser := &entity.User{ID: uuid.New(), DisplayName: "Sam"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)
			// No phone in the input; resolution starts at the display name.
			mockUserRepo.EXPECT().FindByDisplayName(ctx, "Sam").Return(existingUser, nil)

			return fn(mockFactory)
		})

	user, err := fx.service.ResolveOrCreateUser(ctx, &usecase.ResolveUserInput{DisplayName: "Sam"})

	require.NoError(t, err)
	assert.Equal(t, existingUser.ID, user.ID)
}

func TestIdentityService_ResolveOrCreateUser_RequiresIdentity(t *testing.T) {
	fx := createTestIdentityService(t)

	user, err := fx.service.ResolveOrCreateUser(context.Background(), &usecase.ResolveUserInput{
		DisplayName: "   ",
		PhoneE164:   strPtr(""),
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}
