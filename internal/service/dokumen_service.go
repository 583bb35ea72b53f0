package service

import (
	"context"

	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/repository"
)

type DokumenService interface {
	GetAll(ctx context.Context) ([]*model.Dokumen, error)
	GetByID(ctx context.Context, id int) (*model.Dokumen, error)
	Create(ctx context.Context, nip string, typeDokumen model.DokumenType, namaDokumen, namaFile string) (*model.Dokumen, error)
	Update(ctx context.Context, id int, nip string, typeDokumen model.DokumenType, namaDokumen, namaFile string) (*model.Dokumen, error)
	Delete(ctx context.Context, id int) error
}

type dokumenService struct {
	dokumenRepo repository.DokumenRepository
}

func NewDokumenService(dokumenRepo repository.DokumenRepository) DokumenService {
	return &dokumenService{dokumenRepo: dokumenRepo}
}

func (s *dokumenService) GetAll(ctx context.Context) ([]*model.Dokumen, error) {
	return s.dokumenRepo.GetAll(ctx)
}

func (s *dokumenService) GetByID(ctx context.Context, id int) (*model.Dokumen, error) {
	d, err := s.dokumenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return d, nil
}

func (s *dokumenService) Create(ctx context.Context, nip string, typeDokumen model.DokumenType, namaDokumen, namaFile string) (*model.Dokumen, error) {
	if !typeDokumen.Valid() {
		return nil, ErrInvalidValue
	}

	dokumen := &model.Dokumen{
		NIP:         nip,
		TypeDokumen: typeDokumen,
		NamaDokumen: namaDokumen,
		NamaFile:    namaFile,
	}

	// A nip without a matching dosen row trips the FK constraint.
	if err := s.dokumenRepo.Create(ctx, dokumen); err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return dokumen, nil
}

func (s *dokumenService) Update(ctx context.Context, id int, nip string, typeDokumen model.DokumenType, namaDokumen, namaFile string) (*model.Dokumen, error) {
	if !typeDokumen.Valid() {
		return nil, ErrInvalidValue
	}

	// Keyed by document id, consistent with get and delete.
	dokumen := &model.Dokumen{
		ID:          id,
		NIP:         nip,
		TypeDokumen: typeDokumen,
		NamaDokumen: namaDokumen,
		NamaFile:    namaFile,
	}

	if err := s.dokumenRepo.Update(ctx, dokumen); err != nil {
		return nil, fromRepository(err, ErrMissingReference)
	}
	return dokumen, nil
}

func (s *dokumenService) Delete(ctx context.Context, id int) error {
	return fromRepository(s.dokumenRepo.Delete(ctx, id), ErrStillReferenced)
}
