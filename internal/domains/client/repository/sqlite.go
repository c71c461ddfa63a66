package repository

import (
	"context"
	"database/sql"
	"errors"

	"libreria-backend/internal/domains/client/model"
	"libreria-backend/internal/infrastructure/database"
)

type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the client repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

// GetByPhone implements RepositoryInterface.GetByPhone.
func (r *sqliteRepository) GetByPhone(ctx context.Context, phone string) (*model.Client, error) {
	var c model.Client
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone FROM clients WHERE phone = ?`, phone).
		Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrClientNotFound
	}
	if err != nil {
		return nil, database.WrapStorage("get client by phone", err)
	}
	return &c, nil
}

// GetByID implements RepositoryInterface.GetByID.
func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	var c model.Client
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone FROM clients WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrClientNotFound
	}
	if err != nil {
		return nil, database.WrapStorage("get client by id", err)
	}
	return &c, nil
}

// Create implements RepositoryInterface.Create.
func (r *sqliteRepository) Create(ctx context.Context, name, phone string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (name, phone) VALUES (?, ?)`, name, phone)
	if err != nil {
		return 0, database.WrapStorage("insert client", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, database.WrapStorage("insert client", err)
	}
	return id, nil
}
