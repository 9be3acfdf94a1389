package commands

import (
	"context"

	"corral-store/internal/domain/user"
	"corral-store/internal/pkg/errs"
	"corral-store/internal/pkg/jwt"
	"corral-store/internal/pkg/password"
	"corral-store/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type UserRepository interface {
	// FindByEmail returns the user view together with the stored
	// password hash; KindNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type LoginResult struct {
	User        *readmodel.AuthorizedUserRM
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authCommandsImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	rm, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(rm.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: rm, AccessToken: token}, nil
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := a.users.FindByID(ctx, id)
	if err != nil {
		if infraNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if !rm.IsActive {
		return nil, ErrUserInactive
	}
	return rm, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	rm, hashed, err := a.users.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Lookup failures collapse into the password-mismatch error so
		// the endpoint cannot be used to enumerate accounts.
		return nil, ErrInvalidCredentials
	}

	if !rm.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashed, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return rm, nil
}
