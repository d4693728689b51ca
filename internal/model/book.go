package model

import "time"

type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateBookRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Author      string   `json:"author" binding:"required"`
	ISBN        string   `json:"isbn" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// UpdateBookRequest replaces every mutable field. Fields are enumerated
// explicitly so nothing outside this shape can reach the record.
type UpdateBookRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Author      string   `json:"author" binding:"required"`
	ISBN        string   `json:"isbn" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// BookSearchQuery holds the exact-match filters accepted by /books/search.
type BookSearchQuery struct {
	Title  string `form:"title"`
	Author string `form:"author"`
}
