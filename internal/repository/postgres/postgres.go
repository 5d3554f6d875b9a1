package postgres

import (
	"database/sql"

	"orghub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
	repository.OrganizationRepository
	repository.UserRepository
	repository.ApplicationRepository
	repository.NomenclatureRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RequestRepository:      NewRequestRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		UserRepository:         NewUserRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NomenclatureRepository: NewNomenclatureRepository(db),
	}
}
