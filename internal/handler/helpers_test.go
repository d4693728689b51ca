package handler

import (
	"context"
	"testing"
	"time"

	"github.com/bookwyrm/backend/internal/config"
	"github.com/bookwyrm/backend/internal/model"
	"github.com/bookwyrm/backend/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, id, username, pseudonym, passwordHash string) (*model.User, error) {
	if _, ok := f.users[username]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	user := &model.User{
		ID:           id,
		Username:     username,
		Pseudonym:    pseudonym,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[username] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if user, ok := f.users[username]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) UpdateUserPassword(ctx context.Context, id, passwordHash string) (int64, error) {
	for _, user := range f.users {
		if user.ID == id {
			user.PasswordHash = passwordHash
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id string) (int64, error) {
	for username, user := range f.users {
		if user.ID == id {
			delete(f.users, username)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBookRepo struct {
	books map[string]*model.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[string]*model.Book{}}
}

func (f *fakeBookRepo) CreateBook(ctx context.Context, id string, req model.CreateBookRequest) (*model.Book, error) {
	for _, book := range f.books {
		if book.ISBN == req.ISBN {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	book := &model.Book{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       *req.Price,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.books[id] = book
	return book, nil
}

func (f *fakeBookRepo) GetBookByID(ctx context.Context, id string) (*model.Book, error) {
	if book, ok := f.books[id]; ok {
		return book, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeBookRepo) ListBooks(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0, len(f.books))
	for _, book := range f.books {
		books = append(books, *book)
	}
	return books, nil
}

func (f *fakeBookRepo) SearchBooks(ctx context.Context, q model.BookSearchQuery) ([]model.Book, error) {
	books := make([]model.Book, 0)
	for _, book := range f.books {
		if q.Title != "" && book.Title != q.Title {
			continue
		}
		if q.Author != "" && book.Author != q.Author {
			continue
		}
		books = append(books, *book)
	}
	return books, nil
}

func (f *fakeBookRepo) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (int64, error) {
	book, ok := f.books[id]
	if !ok {
		return 0, nil
	}
	book.Title = req.Title
	book.Description = req.Description
	book.Author = req.Author
	book.ISBN = req.ISBN
	book.Price = *req.Price
	book.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakeBookRepo) DeleteBook(ctx context.Context, id string) (int64, error) {
	if _, ok := f.books[id]; !ok {
		return 0, nil
	}
	delete(f.books, id)
	return 1, nil
}

func newTestAuthService(t *testing.T, repo service.UserReader) *service.AuthService {
	t.Helper()
	svc, err := service.NewAuthService(repo, config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   "2h",
		BcryptCost: "4",
	})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

// seedUser creates an account directly through the repo with a properly hashed
// credential.
func seedUser(t *testing.T, authSvc *service.AuthService, repo *fakeUserRepo, id, username, password string) *model.User {
	t.Helper()
	hash, err := authSvc.Hasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.CreateUser(context.Background(), id, username, username, hash)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return user
}
