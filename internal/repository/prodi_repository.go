package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repodosen/repositori-backend/internal/model"
)

type ProdiRepository interface {
	GetAll(ctx context.Context) ([]*model.Prodi, error)
	GetByID(ctx context.Context, id int) (*model.Prodi, error)
	GetByKode(ctx context.Context, kode string) (*model.Prodi, error)
	Create(ctx context.Context, prodi *model.Prodi) error
	Update(ctx context.Context, prodi *model.Prodi) error
	Delete(ctx context.Context, id int) error
}

type prodiRepository struct {
	db *pgxpool.Pool
}

func NewProdiRepository(db *pgxpool.Pool) ProdiRepository {
	return &prodiRepository{db: db}
}

func (r *prodiRepository) GetAll(ctx context.Context) ([]*model.Prodi, error) {
	query := `SELECT id, kode_prodi, nama_prodi FROM data_prodi ORDER BY kode_prodi ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var list []*model.Prodi
	for rows.Next() {
		p := &model.Prodi{}
		if err := rows.Scan(&p.ID, &p.KodeProdi, &p.NamaProdi); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *prodiRepository) GetByID(ctx context.Context, id int) (*model.Prodi, error) {
	query := `SELECT id, kode_prodi, nama_prodi FROM data_prodi WHERE id = $1`
	p := &model.Prodi{}
	if err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.KodeProdi, &p.NamaProdi); err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *prodiRepository) GetByKode(ctx context.Context, kode string) (*model.Prodi, error) {
	query := `SELECT id, kode_prodi, nama_prodi FROM data_prodi WHERE kode_prodi = $1`
	p := &model.Prodi{}
	if err := r.db.QueryRow(ctx, query, kode).Scan(&p.ID, &p.KodeProdi, &p.NamaProdi); err != nil {
		return nil, classify(err)
	}
	return p, nil
}

func (r *prodiRepository) Create(ctx context.Context, prodi *model.Prodi) error {
	query := `
		INSERT INTO data_prodi (kode_prodi, nama_prodi)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, prodi.KodeProdi, prodi.NamaProdi).Scan(&prodi.ID)
	return classify(err)
}

func (r *prodiRepository) Update(ctx context.Context, prodi *model.Prodi) error {
	query := `UPDATE data_prodi SET kode_prodi = $1, nama_prodi = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, query, prodi.KodeProdi, prodi.NamaProdi, prodi.ID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *prodiRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM data_prodi WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
