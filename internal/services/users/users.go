package users

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MyelinBots/userapi-go/internal/db/repositories/user"
	"github.com/MyelinBots/userapi-go/internal/logger"
	"github.com/MyelinBots/userapi-go/internal/services/loyalty"
)

// enrichLimit bounds concurrent loyalty lookups during list enrichment.
const enrichLimit = 4

type UserDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Loyalty  int    `json:"loyalty"`
}

type CreateUserInput struct {
	Username string
	Email    string
	Address  string
}

// UpdateUserInput carries an update patch. Email is a pointer so "field absent"
// is distinguishable from "blank": address is applied only when the email field
// was present in the patch, matching the service's historical behavior.
type UpdateUserInput struct {
	Email   *string
	Address string
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*UserDTO, error)
	GetUser(ctx context.Context, usernameOrEmail string) (*UserDTO, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (*UserDTO, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserServiceImpl struct {
	repo    user.UserRepository
	loyalty loyalty.LoyaltyClient
	log     *logger.Logger
}

func NewUserService(repo user.UserRepository, loyaltyClient loyalty.LoyaltyClient, log *logger.Logger) UserService {
	return &UserServiceImpl{
		repo:    repo,
		loyalty: loyaltyClient,
		log:     log.With("service", "UserService"),
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*UserDTO, error) {
	entities, err := s.repo.FindAllWithUsername(ctx)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(entities) == 0 {
		return nil, ErrNoRecords
	}

	dtos := make([]*UserDTO, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, entity := range entities {
		i, entity := i, entity
		g.Go(func() error {
			dtos[i] = s.enrich(gctx, entity)
			return nil
		})
	}
	// enrich never returns an error; loyalty failures degrade to zero
	_ = g.Wait()

	return dtos, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, usernameOrEmail string) (*UserDTO, error) {
	entity, err := s.repo.FindByUsername(ctx, usernameOrEmail)
	if err != nil {
		s.log.Error("failed to look up user by username", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if entity == nil {
		entity, err = s.repo.FindByEmail(ctx, usernameOrEmail)
		if err != nil {
			s.log.Error("failed to look up user by email", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}
	if entity == nil {
		return nil, ErrNotFound
	}

	return s.enrich(ctx, entity), nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	usernameTaken, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.log.Error("failed to check username existence", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	emailTaken, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.log.Error("failed to check email existence", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if usernameTaken || emailTaken {
		return nil, ErrConflict
	}

	entity := &user.User{
		UserID:   GenerateUserID(input.Username),
		Username: input.Username,
		Email:    input.Email,
		Address:  input.Address,
	}

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		s.log.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// loyalty is a read-time concern; created users carry zero
	return toDTO(saved, 0), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (*UserDTO, error) {
	entity, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to look up user by id", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if entity == nil {
		return nil, ErrNotFound
	}

	if input.Email != nil && strings.TrimSpace(*input.Email) != "" {
		emailTaken, err := s.repo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			s.log.Error("failed to check email existence", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if !emailTaken {
			entity.Email = *input.Email
		}
	}

	// address follows the email field: applied only when the patch carried
	// an email at all (historical coupling, kept for compatibility)
	if input.Email != nil {
		entity.Address = input.Address
	}

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		s.log.Error("failed to update user", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return toDTO(saved, 0), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	entity, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("failed to look up user by id", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if entity == nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, entity); err != nil {
		s.log.Error("failed to delete user", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GenerateUserID derives the public identifier from the username. Identifiers
// are deterministic; the unique index on user_id backstops collisions.
func GenerateUserID(username string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(username))
}

// enrich attaches the loyalty balance to a user record. Enrichment failure
// never fails the caller; the balance degrades to zero.
func (s *UserServiceImpl) enrich(ctx context.Context, entity *user.User) *UserDTO {
	points, err := s.loyalty.GetPoints(ctx, entity.UserID)
	if err != nil {
		s.log.Warn("loyalty lookup failed, defaulting to zero", "user_id", entity.UserID, "error", err)
		points = 0
	}
	return toDTO(entity, points)
}

func toDTO(entity *user.User, points int) *UserDTO {
	return &UserDTO{
		UserID:   entity.UserID,
		Username: entity.Username,
		Email:    entity.Email,
		Address:  entity.Address,
		Loyalty:  points,
	}
}
