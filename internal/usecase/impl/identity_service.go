// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"housekeep/internal/domain/entity"
	domainerrors "housekeep/internal/domain/errors"
	"housekeep/internal/domain/repository"
	"housekeep/internal/observability"
	"housekeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager repository.TransactionManager
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	txManager repository.TransactionManager,
	metrics *observability.Metrics,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// ResolveOrCreateUser resolves a user by phone first, then by display name,
// creating a new user when neither identifier matches. Phone is the strong
// key: a phone match wins even when the display name differs.
func (srv *identityService) ResolveOrCreateUser(ctx context.Context, input *usecase.ResolveUserInput) (*entity.User, error) {
	displayName := strings.TrimSpace(input.DisplayName)
	phone := ""
	if input.PhoneE164 != nil {
		phone = strings.TrimSpace(*input.PhoneE164)
	}

	if displayName == "" && phone == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	var user *entity.User
	var matched string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		// 1. Phone is the strong natural key
		if phone != "" {
			found, err := userRepo.FindByPhone(ctx, phone)
			if err == nil {
				user = found
				matched = "phone"

				return nil
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to resolve user by phone")
			}
		}

		// 2. Display name is the weaker secondary key
		if displayName != "" {
			found, err := userRepo.FindByDisplayName(ctx, displayName)
			if err == nil {
				user = found
				matched = "display_name"

				return nil
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to resolve user by display name")
			}
		}

		// 3. No match, create a new user
		newUser := &entity.User{
			ID:          uuid.New(),
			DisplayName: displayName,
		}
		if phone != "" {
			newUser.PhoneE164 = &phone
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		user = newUser
		matched = "created"

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to resolve user", "error", err)

		return nil, err
	}

	srv.metrics.UsersResolved.WithLabelValues(matched).Inc()
	srv.logger.Debug("user resolved", "userID", user.ID, "matched", matched)

	return user, nil
}
