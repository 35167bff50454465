package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/sujeet/alumnisphere/internal/app/models"
	appRepos "github.com/sujeet/alumnisphere/internal/app/repositories"
	pkgAuth "github.com/sujeet/alumnisphere/internal/pkg/auth"
)

const defaultSuperAdminEmail = "superadmin@alumnisphere.app"

// CreateDefaultData creates the platform superadmin account if it does not
// exist yet. The superadmin belongs to no college, so its CollegeID stays
// NULL. The password comes from SUPERADMIN_PASSWORD when set.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default superadmin account...")

	exists, err := userRepo.EmailExists(ctx, defaultSuperAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if superadmin exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Superadmin account already exists, skipping creation")
		return nil
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		lgr.Warn().Msg("SUPERADMIN_PASSWORD not set, using default password")
	}

	hashedPassword, err := pkgAuth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing superadmin password")
		return err
	}

	superadmin := &appModels.User{
		CollegeID:    nil,
		Name:         "Platform Administrator",
		Email:        defaultSuperAdminEmail,
		PasswordHash: hashedPassword,
		RoleType:     appModels.RoleSuperAdmin,
		Status:       appModels.UserStatusActive,
	}

	id, err := userRepo.Create(ctx, superadmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating superadmin account")
		return errors.Join(errors.New("failed to create superadmin account"), err)
	}

	lgr.Info().Int64("userID", id).Msg("Default superadmin account created")
	return nil
}
