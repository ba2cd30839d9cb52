package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/app/models/dto"
	"github.com/campushq/placement-portal/internal/app/repositories"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
	"github.com/campushq/placement-portal/internal/pkg/auth"
	"github.com/campushq/placement-portal/internal/pkg/metrics"
)

// AuthService resolves credentials across the three account collections and
// issues token pairs.
type AuthService struct {
	studentRepo repositories.IStudentRepository
	companyRepo repositories.ICompanyRepository
	adminRepo   repositories.IAdminRepository
	tokenRepo   repositories.ITokenRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	companyRepo repositories.ICompanyRepository,
	adminRepo repositories.IAdminRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		adminRepo:   adminRepo,
		tokenRepo:   tokenRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// account is the collection-independent view of a matched record.
type account struct {
	ID    int64
	Name  string
	Email string
	Hash  string
	Role  models.Role
}

// probe looks up one collection by email. A missing account is reported as
// (nil, nil); only storage failures return an error.
type probe struct {
	role   models.Role
	lookup func(ctx context.Context, email string) (*account, error)
}

// probesFor returns the ordered list of collections to try. With no role the
// fixed student, company, admin order decides ties: an email/password pair
// present in two collections resolves to the earlier one.
func (s *AuthService) probesFor(role string) ([]probe, error) {
	student := probe{models.RoleStudent, func(ctx context.Context, email string) (*account, error) {
		st, err := s.studentRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &account{ID: st.ID, Name: st.Name, Email: st.Email, Hash: st.Password, Role: models.RoleStudent}, nil
	}}
	company := probe{models.RoleCompany, func(ctx context.Context, email string) (*account, error) {
		co, err := s.companyRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, apperrors.ErrCompanyNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &account{ID: co.ID, Name: co.Name, Email: co.Email, Hash: co.Password, Role: models.RoleCompany}, nil
	}}
	admin := probe{models.RoleAdmin, func(ctx context.Context, email string) (*account, error) {
		ad, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, apperrors.ErrAdminNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &account{ID: ad.ID, Name: ad.Name, Email: ad.Email, Hash: ad.Password, Role: models.RoleAdmin}, nil
	}}

	switch models.Role(role) {
	case "":
		return []probe{student, company, admin}, nil
	case models.RoleStudent:
		return []probe{student}, nil
	case models.RoleCompany:
		return []probe{company}, nil
	case models.RoleAdmin, models.RoleCoordinator:
		return []probe{admin}, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}
}

// Login authenticates a credential tuple. A wrong password does not stop the
// probe sequence: the same email may legitimately exist in a later
// collection with the right password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	probes, err := s.probesFor(req.Role)
	if err != nil {
		return nil, err
	}

	for _, p := range probes {
		acct, err := p.lookup(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("error probing %s collection: %w", p.role, err)
		}
		if acct == nil || !auth.CheckPassword(acct.Hash, req.Password) {
			continue
		}

		if acct.Role == models.RoleAdmin {
			if err := s.adminRepo.UpdateLastLogin(ctx, acct.ID, time.Now()); err != nil {
				s.logger.Warn().Err(err).Int64("adminID", acct.ID).Msg("Could not stamp admin last login")
			}
		}

		token, err := s.generateTokenResponse(ctx, acct)
		if err != nil {
			return nil, err
		}

		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
		s.logger.Info().Str("email", acct.Email).Str("role", string(acct.Role)).Msg("Login successful")

		return &dto.LoginResponse{
			User: dto.AuthUser{
				ID:    acct.ID,
				Name:  acct.Name,
				Email: acct.Email,
				Role:  string(acct.Role),
			},
			Token: *token,
		}, nil
	}

	metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
	return nil, apperrors.ErrInvalidCredentials
}

// RefreshToken rotates a refresh token, revoking the old one.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	accountID, role, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if apperrorsIs(err, apperrors.ErrTokenNotFound, apperrors.ErrTokenExpired, apperrors.ErrTokenRevoked) {
			return nil, err
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	acct, err := s.resolveAccount(ctx, accountID, role)
	if err != nil {
		return nil, err
	}

	// Revoke before reissuing so a leaked token cannot be replayed
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, acct)
}

// resolveAccount loads the account record a refresh token points at.
func (s *AuthService) resolveAccount(ctx context.Context, accountID int64, role string) (*account, error) {
	switch models.Role(role) {
	case models.RoleStudent:
		st, err := s.studentRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &account{ID: st.ID, Name: st.Name, Email: st.Email, Role: models.RoleStudent}, nil
	case models.RoleCompany:
		co, err := s.companyRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &account{ID: co.ID, Name: co.Name, Email: co.Email, Role: models.RoleCompany}, nil
	case models.RoleAdmin, models.RoleCoordinator:
		ad, err := s.adminRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &account{ID: ad.ID, Name: ad.Name, Email: ad.Email, Role: models.RoleAdmin}, nil
	default:
		return nil, apperrors.ErrTokenInvalid
	}
}

// generateTokenResponse creates and persists a token pair for an account.
func (s *AuthService) generateTokenResponse(ctx context.Context, acct *account) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(acct.ID, acct.Email, string(acct.Role))
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, acct.ID, string(acct.Role), tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}

// apperrorsIs reports whether err matches any of the given sentinels.
func apperrorsIs(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
