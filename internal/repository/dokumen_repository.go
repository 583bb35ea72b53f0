package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repodosen/repositori-backend/internal/model"
)

type DokumenRepository interface {
	GetAll(ctx context.Context) ([]*model.Dokumen, error)
	GetByID(ctx context.Context, id int) (*model.Dokumen, error)
	Create(ctx context.Context, dokumen *model.Dokumen) error
	Update(ctx context.Context, dokumen *model.Dokumen) error
	Delete(ctx context.Context, id int) error
}

type dokumenRepository struct {
	db *pgxpool.Pool
}

func NewDokumenRepository(db *pgxpool.Pool) DokumenRepository {
	return &dokumenRepository{db: db}
}

func (r *dokumenRepository) GetAll(ctx context.Context) ([]*model.Dokumen, error) {
	query := `SELECT id, nip, type_dokumen, nama_dokumen, nama_file FROM data_dokumen ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var list []*model.Dokumen
	for rows.Next() {
		d := &model.Dokumen{}
		if err := rows.Scan(&d.ID, &d.NIP, &d.TypeDokumen, &d.NamaDokumen, &d.NamaFile); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *dokumenRepository) GetByID(ctx context.Context, id int) (*model.Dokumen, error) {
	query := `SELECT id, nip, type_dokumen, nama_dokumen, nama_file FROM data_dokumen WHERE id = $1`
	d := &model.Dokumen{}
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.NIP, &d.TypeDokumen, &d.NamaDokumen, &d.NamaFile)
	if err != nil {
		return nil, classify(err)
	}
	return d, nil
}

func (r *dokumenRepository) Create(ctx context.Context, dokumen *model.Dokumen) error {
	query := `
		INSERT INTO data_dokumen (nip, type_dokumen, nama_dokumen, nama_file)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, dokumen.NIP, dokumen.TypeDokumen, dokumen.NamaDokumen, dokumen.NamaFile).Scan(&dokumen.ID)
	return classify(err)
}

func (r *dokumenRepository) Update(ctx context.Context, dokumen *model.Dokumen) error {
	query := `
		UPDATE data_dokumen
		SET nip = $1, type_dokumen = $2, nama_dokumen = $3, nama_file = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, dokumen.NIP, dokumen.TypeDokumen, dokumen.NamaDokumen, dokumen.NamaFile, dokumen.ID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *dokumenRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM data_dokumen WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
