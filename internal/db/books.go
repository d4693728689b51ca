package db

import (
	"context"

	"github.com/bookwyrm/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const bookColumns = `id, title, description, author, isbn, price, created_at, updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var book model.Book
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Description,
		&book.Author,
		&book.ISBN,
		&book.Price,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (db *Postgres) CreateBook(ctx context.Context, id string, req model.CreateBookRequest) (*model.Book, error) {
	query := `
		INSERT INTO books (id, title, description, author, isbn, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + bookColumns
	return scanBook(db.Pool.QueryRow(ctx, query, id, req.Title, req.Description, req.Author, req.ISBN, *req.Price))
}

func (db *Postgres) GetBookByID(ctx context.Context, id string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	return scanBook(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListBooks(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at`
	return db.queryBooks(ctx, query)
}

// SearchBooks filters by exact title and/or author match. Empty filters are
// ignored; no filters behaves like ListBooks.
func (db *Postgres) SearchBooks(ctx context.Context, q model.BookSearchQuery) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE ($1 = '' OR title = $1) AND ($2 = '' OR author = $2) ORDER BY created_at`
	return db.queryBooks(ctx, query, q.Title, q.Author)
}

func (db *Postgres) queryBooks(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

func (db *Postgres) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (int64, error) {
	query := `
		UPDATE books
		SET title = $2, description = $3, author = $4, isbn = $5, price = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, id, req.Title, req.Description, req.Author, req.ISBN, *req.Price)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (db *Postgres) DeleteBook(ctx context.Context, id string) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
