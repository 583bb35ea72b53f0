package service_test

import (
	"context"

	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/repository"
)

// Map-backed repository fakes. Each optionally fails with a forced error so
// tests can exercise the storage error translation paths.

type mockDosenRepo struct {
	rows      map[string]*model.Dosen
	forcedErr error
}

func newMockDosenRepo() *mockDosenRepo {
	return &mockDosenRepo{rows: make(map[string]*model.Dosen)}
}

func (m *mockDosenRepo) GetAll(ctx context.Context) ([]*model.Dosen, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	var list []*model.Dosen
	for _, d := range m.rows {
		list = append(list, d)
	}
	return list, nil
}

func (m *mockDosenRepo) GetByNIP(ctx context.Context, nip string) (*model.Dosen, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	if d, ok := m.rows[nip]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockDosenRepo) GetByNamaAndNIP(ctx context.Context, namaLengkap, nip string) (*model.Dosen, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	if d, ok := m.rows[nip]; ok && d.NamaLengkap == namaLengkap {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockDosenRepo) Create(ctx context.Context, dosen *model.Dosen) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[dosen.NIP]; ok {
		return repository.ErrDuplicateKey
	}
	m.rows[dosen.NIP] = dosen
	return nil
}

func (m *mockDosenRepo) Update(ctx context.Context, dosen *model.Dosen) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[dosen.NIP]; !ok {
		return repository.ErrNotFound
	}
	m.rows[dosen.NIP] = dosen
	return nil
}

func (m *mockDosenRepo) Delete(ctx context.Context, nip string) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[nip]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, nip)
	return nil
}

type mockProdiRepo struct {
	rows      map[int]*model.Prodi
	nextID    int
	forcedErr error
}

func newMockProdiRepo() *mockProdiRepo {
	return &mockProdiRepo{rows: make(map[int]*model.Prodi), nextID: 1}
}

func (m *mockProdiRepo) GetAll(ctx context.Context) ([]*model.Prodi, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	var list []*model.Prodi
	for _, p := range m.rows {
		list = append(list, p)
	}
	return list, nil
}

func (m *mockProdiRepo) GetByID(ctx context.Context, id int) (*model.Prodi, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	if p, ok := m.rows[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockProdiRepo) GetByKode(ctx context.Context, kode string) (*model.Prodi, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	for _, p := range m.rows {
		if p.KodeProdi == kode {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockProdiRepo) Create(ctx context.Context, prodi *model.Prodi) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	for _, p := range m.rows {
		if p.KodeProdi == prodi.KodeProdi {
			return repository.ErrDuplicateKey
		}
	}
	prodi.ID = m.nextID
	m.nextID++
	m.rows[prodi.ID] = prodi
	return nil
}

func (m *mockProdiRepo) Update(ctx context.Context, prodi *model.Prodi) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[prodi.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, p := range m.rows {
		if p.ID != prodi.ID && p.KodeProdi == prodi.KodeProdi {
			return repository.ErrDuplicateKey
		}
	}
	m.rows[prodi.ID] = prodi
	return nil
}

func (m *mockProdiRepo) Delete(ctx context.Context, id int) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockDokumenRepo struct {
	rows      map[int]*model.Dokumen
	nextID    int
	validNIPs map[string]bool
	forcedErr error
}

func newMockDokumenRepo(validNIPs ...string) *mockDokumenRepo {
	m := &mockDokumenRepo{
		rows:      make(map[int]*model.Dokumen),
		nextID:    1,
		validNIPs: make(map[string]bool),
	}
	for _, nip := range validNIPs {
		m.validNIPs[nip] = true
	}
	return m
}

func (m *mockDokumenRepo) GetAll(ctx context.Context) ([]*model.Dokumen, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	var list []*model.Dokumen
	for _, d := range m.rows {
		list = append(list, d)
	}
	return list, nil
}

func (m *mockDokumenRepo) GetByID(ctx context.Context, id int) (*model.Dokumen, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	if d, ok := m.rows[id]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockDokumenRepo) Create(ctx context.Context, dokumen *model.Dokumen) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if !m.validNIPs[dokumen.NIP] {
		return repository.ErrForeignKey
	}
	dokumen.ID = m.nextID
	m.nextID++
	m.rows[dokumen.ID] = dokumen
	return nil
}

func (m *mockDokumenRepo) Update(ctx context.Context, dokumen *model.Dokumen) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[dokumen.ID]; !ok {
		return repository.ErrNotFound
	}
	if !m.validNIPs[dokumen.NIP] {
		return repository.ErrForeignKey
	}
	m.rows[dokumen.ID] = dokumen
	return nil
}

func (m *mockDokumenRepo) Delete(ctx context.Context, id int) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}
