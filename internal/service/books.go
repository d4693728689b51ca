package service

import (
	"context"

	"github.com/bookwyrm/backend/internal/db"
	"github.com/bookwyrm/backend/internal/model"
	"github.com/google/uuid"
)

type BookRepo interface {
	CreateBook(ctx context.Context, id string, req model.CreateBookRequest) (*model.Book, error)
	GetBookByID(ctx context.Context, id string) (*model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, q model.BookSearchQuery) ([]model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (int64, error)
	DeleteBook(ctx context.Context, id string) (int64, error)
}

type BookService struct {
	repo BookRepo
}

func NewBookService(repo BookRepo) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if req.Price == nil || *req.Price < 0 {
		return nil, ErrInvalidInput
	}

	book, err := s.repo.CreateBook(ctx, uuid.NewString(), req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return book, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*model.Book, error) {
	book, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *BookService) Search(ctx context.Context, q model.BookSearchQuery) ([]model.Book, error) {
	return s.repo.SearchBooks(ctx, q)
}

func (s *BookService) Update(ctx context.Context, id string, req model.UpdateBookRequest) error {
	if req.Price == nil || *req.Price < 0 {
		return ErrInvalidInput
	}

	affected, err := s.repo.UpdateBook(ctx, id, req)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
