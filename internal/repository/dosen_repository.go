package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repodosen/repositori-backend/internal/model"
)

type DosenRepository interface {
	GetAll(ctx context.Context) ([]*model.Dosen, error)
	GetByNIP(ctx context.Context, nip string) (*model.Dosen, error)
	// GetByNamaAndNIP is the login lookup: both fields must match exactly.
	GetByNamaAndNIP(ctx context.Context, namaLengkap, nip string) (*model.Dosen, error)
	Create(ctx context.Context, dosen *model.Dosen) error
	Update(ctx context.Context, dosen *model.Dosen) error
	Delete(ctx context.Context, nip string) error
}

type dosenRepository struct {
	db *pgxpool.Pool
}

func NewDosenRepository(db *pgxpool.Pool) DosenRepository {
	return &dosenRepository{db: db}
}

func (r *dosenRepository) GetAll(ctx context.Context) ([]*model.Dosen, error) {
	query := `SELECT nip, nama_lengkap, prodi_id FROM data_dosen ORDER BY nama_lengkap ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var list []*model.Dosen
	for rows.Next() {
		d := &model.Dosen{}
		if err := rows.Scan(&d.NIP, &d.NamaLengkap, &d.ProdiID); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *dosenRepository) GetByNIP(ctx context.Context, nip string) (*model.Dosen, error) {
	query := `SELECT nip, nama_lengkap, prodi_id FROM data_dosen WHERE nip = $1`
	d := &model.Dosen{}
	if err := r.db.QueryRow(ctx, query, nip).Scan(&d.NIP, &d.NamaLengkap, &d.ProdiID); err != nil {
		return nil, classify(err)
	}
	return d, nil
}

func (r *dosenRepository) GetByNamaAndNIP(ctx context.Context, namaLengkap, nip string) (*model.Dosen, error) {
	query := `SELECT nip, nama_lengkap, prodi_id FROM data_dosen WHERE nama_lengkap = $1 AND nip = $2`
	d := &model.Dosen{}
	if err := r.db.QueryRow(ctx, query, namaLengkap, nip).Scan(&d.NIP, &d.NamaLengkap, &d.ProdiID); err != nil {
		return nil, classify(err)
	}
	return d, nil
}

func (r *dosenRepository) Create(ctx context.Context, dosen *model.Dosen) error {
	query := `
		INSERT INTO data_dosen (nip, nama_lengkap, prodi_id)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, dosen.NIP, dosen.NamaLengkap, dosen.ProdiID)
	return classify(err)
}

func (r *dosenRepository) Update(ctx context.Context, dosen *model.Dosen) error {
	query := `UPDATE data_dosen SET nama_lengkap = $1, prodi_id = $2 WHERE nip = $3`
	tag, err := r.db.Exec(ctx, query, dosen.NamaLengkap, dosen.ProdiID, dosen.NIP)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *dosenRepository) Delete(ctx context.Context, nip string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM data_dosen WHERE nip = $1`, nip)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
