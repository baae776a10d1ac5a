package postgres

import (
	"database/sql"
	"pvmarket-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PoleRepository
	repository.ProfileRepository
	repository.UserRepository
	repository.SessionRepository
	repository.RequestRepository
	repository.InquiryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		PoleRepository:    NewPoleRepository(db),
		ProfileRepository: NewProfileRepository(db),
		UserRepository:    NewUserRepository(db),
		SessionRepository: NewSessionRepository(db),
		RequestRepository: NewRequestRepository(db),
		InquiryRepository: NewInquiryRepository(db),
	}
}
