package service

import (
	"context"

	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/repository"
)

type DosenService interface {
	GetAll(ctx context.Context) ([]*model.Dosen, error)
	GetByNIP(ctx context.Context, nip string) (*model.Dosen, error)
	Create(ctx context.Context, nip, namaLengkap string, prodiID int) (*model.Dosen, error)
	Update(ctx context.Context, nip, namaLengkap string, prodiID int) (*model.Dosen, error)
	Delete(ctx context.Context, nip string) error
}

type dosenService struct {
	dosenRepo repository.DosenRepository
}

func NewDosenService(dosenRepo repository.DosenRepository) DosenService {
	return &dosenService{dosenRepo: dosenRepo}
}

func (s *dosenService) GetAll(ctx context.Context) ([]*model.Dosen, error) {
	return s.dosenRepo.GetAll(ctx)
}

func (s *dosenService) GetByNIP(ctx context.Context, nip string) (*model.Dosen, error) {
	d, err := s.dosenRepo.GetByNIP(ctx, nip)
	if err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return d, nil
}

func (s *dosenService) Create(ctx context.Context, nip, namaLengkap string, prodiID int) (*model.Dosen, error) {
	dosen := &model.Dosen{
		NIP:         nip,
		NamaLengkap: namaLengkap,
		ProdiID:     prodiID,
	}

	// A duplicate nip or dangling prodi_id surfaces from the constraints.
	if err := s.dosenRepo.Create(ctx, dosen); err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return dosen, nil
}

func (s *dosenService) Update(ctx context.Context, nip, namaLengkap string, prodiID int) (*model.Dosen, error) {
	// Full replace of the mutable fields; nip itself is immutable.
	dosen := &model.Dosen{
		NIP:         nip,
		NamaLengkap: namaLengkap,
		ProdiID:     prodiID,
	}

	if err := s.dosenRepo.Update(ctx, dosen); err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return dosen, nil
}

func (s *dosenService) Delete(ctx context.Context, nip string) error {
	// A dosen that still owns dokumen rows trips the FK constraint.
	return fromRepository(s.dosenRepo.Delete(ctx, nip), ErrStillReferenced)
}
