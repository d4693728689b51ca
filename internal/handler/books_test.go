package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/bookwyrm/backend/internal/model"
	"github.com/bookwyrm/backend/internal/service"
	"github.com/gin-gonic/gin"
)

func newBookRouter(t *testing.T) (*gin.Engine, *fakeBookRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeBookRepo()
	h := NewBookHandler(service.NewBookService(repo))

	r := gin.New()
	r.GET("/books", h.List)
	r.GET("/books/search", h.Search)
	r.GET("/books/:id", h.Get)
	r.POST("/books", h.Create)
	r.PUT("/books/:id", h.Update)
	r.DELETE("/books/:id", h.Delete)

	return r, repo
}

func TestCreateBookHandler(t *testing.T) {
	r, repo := newBookRouter(t)

	body := `{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","price":9.99}`
	w := doRequest(r, http.MethodPost, "/books", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var book model.Book
	if err := json.Unmarshal(w.Body.Bytes(), &book); err != nil || book.ID == "" {
		t.Fatalf("expected created book with id, got %s", w.Body.String())
	}

	// Same isbn again: rejected, nothing inserted.
	w = doRequest(r, http.MethodPost, "/books", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate isbn: expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to create book") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(repo.books) != 1 {
		t.Fatalf("duplicate row created")
	}
}

func TestCreateBookHandlerValidation(t *testing.T) {
	r, repo := newBookRouter(t)

	// Each body is missing a required field, carries a negative price, or is
	// not JSON at all.
	cases := []string{
		`{"author":"Frank Herbert","isbn":"1","price":9.99}`,
		`{"title":"Dune","isbn":"1","price":9.99}`,
		`{"title":"Dune","author":"Frank Herbert","price":1}`,
		`{"title":"Dune","author":"Frank Herbert","isbn":"1"}`,
		`{"title":"Dune","author":"Frank Herbert","isbn":"1","price":-1}`,
		`not json`,
	}
	for _, body := range cases {
		w := doRequest(r, http.MethodPost, "/books", "", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
	if len(repo.books) != 0 {
		t.Fatalf("invalid request created a row")
	}
}

func TestListAndSearchBooksHandler(t *testing.T) {
	r, _ := newBookRouter(t)

	for _, body := range []string{
		`{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","price":9.99}`,
		`{"title":"Hyperion","author":"Dan Simmons","isbn":"9780553283686","price":7.99}`,
	} {
		if w := doRequest(r, http.MethodPost, "/books", "", body); w.Code != http.StatusCreated {
			t.Fatalf("seed: got %d", w.Code)
		}
	}

	w := doRequest(r, http.MethodGet, "/books", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var books []model.Book
	if err := json.Unmarshal(w.Body.Bytes(), &books); err != nil || len(books) != 2 {
		t.Fatalf("expected 2 books, got %s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/books/search?author=Dan+Simmons", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &books); err != nil || len(books) != 1 || books[0].Title != "Hyperion" {
		t.Fatalf("unexpected search result: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/books/search?title=dune", "", "")
	if err := json.Unmarshal(w.Body.Bytes(), &books); err != nil || len(books) != 0 {
		t.Fatalf("search must be exact-match: %s", w.Body.String())
	}
}

func TestBookHandlerNotFound(t *testing.T) {
	r, _ := newBookRouter(t)

	w := doRequest(r, http.MethodGet, "/books/missing", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404, got %d", w.Code)
	}

	body := `{"title":"X","author":"Y","isbn":"1","price":1}`
	w = doRequest(r, http.MethodPut, "/books/missing", "", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update: expected 404, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/books/missing", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404, got %d", w.Code)
	}
}

func TestUpdateAndDeleteBookHandler(t *testing.T) {
	r, repo := newBookRouter(t)

	w := doRequest(r, http.MethodPost, "/books", "", `{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","price":9.99}`)
	var book model.Book
	if err := json.Unmarshal(w.Body.Bytes(), &book); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doRequest(r, http.MethodPut, "/books/"+book.ID, "", `{"title":"Dune Messiah","author":"Frank Herbert","isbn":"9780441172719","price":11.99}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Book updated successfully") {
		t.Fatalf("update: got %d %s", w.Code, w.Body.String())
	}
	if repo.books[book.ID].Title != "Dune Messiah" {
		t.Fatalf("update not applied")
	}

	w = doRequest(r, http.MethodDelete, "/books/"+book.ID, "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Book deleted successfully") {
		t.Fatalf("delete: got %d %s", w.Code, w.Body.String())
	}
	if len(repo.books) != 0 {
		t.Fatalf("row still present")
	}
}
