package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	CompanyRepository     *CompanyRepository
	PlacementRepository   *PlacementRepository
	ApplicationRepository *ApplicationRepository
	AdminRepository       *AdminRepository
	TokenRepository       *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		AdminRepository:       NewAdminRepository(db),
		TokenRepository:       NewTokenRepository(db),
	}
}
