package handlers

//go:generate mockgen -source=books.go -destination=mock_books.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// Catalog looks books up in external catalogs.
type Catalog interface {
	Search(ctx context.Context, term string) ([]models.CatalogBook, error)
	Details(ctx context.Context, volumeID string) (*models.CatalogBook, error)
	Bestsellers(ctx context.Context) ([]models.CatalogBook, error)
	BestsellerDetails(ctx context.Context, isbn string) (*models.CatalogBook, error)
}

// BooksResponse lists catalog books
// swagger:model BooksResponse
type BooksResponse struct {
	Books []models.CatalogBook `json:"books"`
}

// BookResponse wraps one catalog book
// swagger:model BookResponse
type BookResponse struct {
	Book *models.CatalogBook `json:"book"`
}

// NewSearchBooksHandler searches Google Books.
// @Summary Search books
// @Description term uses Google query syntax, e.g. inauthor:michael crichton+intitle:airframe
// @Tags books
// @Produce json
// @Param term query string true "Search term"
// @Success 200 {object} handlers.BooksResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /books [get]
func NewSearchBooksHandler(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.Search(r.Context(), r.URL.Query().Get("term"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, BooksResponse{Books: books})
	}
}

// NewBookDetailsHandler returns one Google volume.
// @Summary Book details
// @Tags books
// @Produce json
// @Param volumeID path string true "Volume id"
// @Success 200 {object} handlers.BookResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /books/details/{volumeID} [get]
func NewBookDetailsHandler(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err := svc.Details(r.Context(), chi.URLParam(r, "volumeID"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, BookResponse{Book: book})
	}
}

// NewBestsellersHandler returns the current NYT bestseller list.
// @Summary Bestsellers
// @Tags books
// @Produce json
// @Success 200 {object} handlers.BooksResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /books/bestsellers [get]
func NewBestsellersHandler(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.Bestsellers(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, BooksResponse{Books: books})
	}
}

// NewBestsellerDetailsHandler resolves a bestseller isbn to its Google volume.
// @Summary Bestseller details
// @Tags books
// @Produce json
// @Param isbn path string true "ISBN-13"
// @Success 200 {object} handlers.BookResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /books/bestsellers/details/{isbn} [get]
func NewBestsellerDetailsHandler(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err := svc.BestsellerDetails(r.Context(), chi.URLParam(r, "isbn"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, BookResponse{Book: book})
	}
}
