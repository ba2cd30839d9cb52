package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushq/placement-portal/internal/app/models"
	appRepos "github.com/campushq/placement-portal/internal/app/repositories"
	"github.com/campushq/placement-portal/internal/pkg/apperrors"
	"github.com/campushq/placement-portal/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
// A fresh install has no accounts at all, so without this there is no way to
// verify companies or view the student roster.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	hashedPassword, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		return err
	}

	admin := &appModels.Admin{
		Name:             "Placement Cell",
		Email:            "placement@college.edu",
		Password:         hashedPassword,
		Role:             string(appModels.RoleAdmin),
		Designation:      "Placement Officer",
		Department:       "Training and Placement",
		Permissions:      []string{"manage_students", "manage_companies", "manage_placements"},
		RegistrationDate: time.Now(),
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrAdminAlreadyExists) {
			lgr.Debug().Str("email", admin.Email).Msg("Default admin already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
