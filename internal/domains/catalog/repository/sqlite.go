package repository

import (
	"context"
	"database/sql"
	"errors"

	"libreria-backend/internal/domains/catalog/model"
	"libreria-backend/internal/infrastructure/database"
)

// sqliteRepository implements RepositoryInterface over the embedded store.
type sqliteRepository struct {
	db *database.DB
}

// NewRepository creates the catalog repository.
func NewRepository(db *database.DB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

// Upsert implements RepositoryInterface.Upsert.
func (r *sqliteRepository) Upsert(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (identifier, title, author, publisher, image_url, categories, price)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (identifier) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			publisher = excluded.publisher,
			image_url = excluded.image_url,
			categories = excluded.categories,
			price = excluded.price`

	_, err := r.db.ExecContext(ctx, query,
		book.Identifier,
		book.Title,
		book.Author,
		book.Publisher,
		book.ImageURL,
		model.JoinCategories(book.Categories),
		book.Price,
	)
	if err != nil {
		return database.WrapStorage("upsert book", err)
	}
	return nil
}

// Get implements RepositoryInterface.Get.
func (r *sqliteRepository) Get(ctx context.Context, identifier string) (*model.Book, error) {
	query := `
		SELECT identifier, title, author, publisher, image_url, categories, price
		FROM books
		WHERE identifier = ?`

	var book model.Book
	var categories string
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(
		&book.Identifier,
		&book.Title,
		&book.Author,
		&book.Publisher,
		&book.ImageURL,
		&categories,
		&book.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, database.WrapStorage("get book", err)
	}

	book.Categories = model.SplitCategories(categories)
	return &book, nil
}

// Search implements RepositoryInterface.Search.
func (r *sqliteRepository) Search(ctx context.Context, term string, filters model.SearchFilters) ([]model.BookView, error) {
	query, args := buildSearchQuery(term, filters)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.WrapStorage("search books", err)
	}
	defer rows.Close()

	var views []model.BookView
	for rows.Next() {
		var v model.BookView
		var categories string
		if err := rows.Scan(
			&v.Identifier,
			&v.Title,
			&v.Author,
			&v.Publisher,
			&v.ImageURL,
			&categories,
			&v.Price,
			&v.Position,
			&v.Quantity,
		); err != nil {
			return nil, database.WrapStorage("scan book view", err)
		}
		v.Categories = model.SplitCategories(categories)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapStorage("iterate book views", err)
	}

	return views, nil
}

// DeleteTx implements RepositoryInterface.DeleteTx.
func (r *sqliteRepository) DeleteTx(tx *sql.Tx, identifier string) error {
	res, err := tx.Exec(`DELETE FROM books WHERE identifier = ?`, identifier)
	if err != nil {
		return database.WrapStorage("delete book", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return database.WrapStorage("delete book", err)
	}
	if affected == 0 {
		return model.ErrBookNotFound
	}
	return nil
}
