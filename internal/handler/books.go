package handler

import (
	"errors"
	"net/http"

	"github.com/bookwyrm/backend/internal/model"
	"github.com/bookwyrm/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	svc *service.BookService
}

func NewBookHandler(svc *service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

// Create godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateBookRequest true "New book"
// @Success 201 {object} model.Book
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to create book"})
		return
	}

	book, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, book)
}

// List godoc
// @Summary List all books
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Failure 400 {object} model.ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to list books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// Search godoc
// @Summary Search books by exact title and/or author
// @Tags books
// @Produce json
// @Param title query string false "Exact title"
// @Param author query string false "Exact author"
// @Success 200 {array} model.Book
// @Failure 400 {object} model.ErrorResponse
// @Router /books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	var q model.BookSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to search books"})
		return
	}

	books, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to search books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// Get godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} model.Book
// @Failure 404 {object} model.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	book, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Book not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to get book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update godoc
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body model.UpdateBookRequest true "Replacement fields"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update book"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Book not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to update book"})
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Book updated successfully"})
}

// Delete godoc
// @Summary Delete a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Book not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Failed to delete book"})
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Book deleted successfully"})
}
