package service

import (
	"context"

	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/repository"
)

type ProdiService interface {
	GetAll(ctx context.Context) ([]*model.Prodi, error)
	GetByID(ctx context.Context, id int) (*model.Prodi, error)
	Create(ctx context.Context, kodeProdi, namaProdi string) (*model.Prodi, error)
	Update(ctx context.Context, id int, kodeProdi, namaProdi string) (*model.Prodi, error)
	Delete(ctx context.Context, id int) error
}

type prodiService struct {
	prodiRepo repository.ProdiRepository
}

func NewProdiService(prodiRepo repository.ProdiRepository) ProdiService {
	return &prodiService{prodiRepo: prodiRepo}
}

func (s *prodiService) GetAll(ctx context.Context) ([]*model.Prodi, error) {
	return s.prodiRepo.GetAll(ctx)
}

func (s *prodiService) GetByID(ctx context.Context, id int) (*model.Prodi, error) {
	p, err := s.prodiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return p, nil
}

func (s *prodiService) Create(ctx context.Context, kodeProdi, namaProdi string) (*model.Prodi, error) {
	prodi := &model.Prodi{
		KodeProdi: kodeProdi,
		NamaProdi: namaProdi,
	}

	// The unique index on kode_prodi is the authoritative guard; the insert
	// surfaces a duplicate as ErrDuplicateKey rather than racing a pre-check.
	if err := s.prodiRepo.Create(ctx, prodi); err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return prodi, nil
}

func (s *prodiService) Update(ctx context.Context, id int, kodeProdi, namaProdi string) (*model.Prodi, error) {
	// Full replace: every mutable field comes from the request.
	prodi := &model.Prodi{
		ID:        id,
		KodeProdi: kodeProdi,
		NamaProdi: namaProdi,
	}

	if err := s.prodiRepo.Update(ctx, prodi); err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return prodi, nil
}

func (s *prodiService) Delete(ctx context.Context, id int) error {
	// Deleting a prodi still referenced by a dosen trips the FK constraint.
	return fromRepository(s.prodiRepo.Delete(ctx, id), ErrStillReferenced)
}
