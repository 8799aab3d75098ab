package services

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=services

import (
	"context"
	"strings"

	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// GoogleBooksReader reads volumes from the Google Books API.
type GoogleBooksReader interface {
	SearchVolumes(ctx context.Context, query string) ([]models.GoogleVolume, error)
	GetVolume(ctx context.Context, volumeID string) (*models.GoogleVolume, error)
}

// BestsellerReader reads the current bestseller list.
type BestsellerReader interface {
	GetBestsellers(ctx context.Context) ([]models.NYTBook, error)
}

// CatalogCache caches catalog lookups as JSON.
type CatalogCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

// CatalogService looks books up in external catalogs and returns them in
// one simplified shape.
type CatalogService struct {
	google      GoogleBooksReader
	bestsellers BestsellerReader
	cache       CatalogCache
}

// NewCatalogService creates a CatalogService. cache may be nil.
func NewCatalogService(google GoogleBooksReader, bestsellers BestsellerReader, cache CatalogCache) *CatalogService {
	return &CatalogService{
		google:      google,
		bestsellers: bestsellers,
		cache:       cache,
	}
}

// Search returns Google volumes matching term.
func (s *CatalogService) Search(ctx context.Context, term string) ([]models.CatalogBook, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerrors.ValidationWithDetails("term must not be empty", map[string]string{"term": "is required"})
	}

	return cached(ctx, s.cache, "search:"+term, func() ([]models.CatalogBook, error) {
		volumes, err := s.google.SearchVolumes(ctx, term)
		if err != nil {
			logger.Log.Errorw("failed to search volumes", "term", term, "err", err)
			return nil, err
		}
		books := make([]models.CatalogBook, 0, len(volumes))
		for _, v := range volumes {
			books = append(books, fromGoogle(v))
		}
		return books, nil
	})
}

// Details returns one Google volume.
func (s *CatalogService) Details(ctx context.Context, volumeID string) (*models.CatalogBook, error) {
	book, err := cached(ctx, s.cache, "details:"+volumeID, func() (models.CatalogBook, error) {
		v, err := s.google.GetVolume(ctx, volumeID)
		if err != nil {
			logger.Log.Errorw("failed to get volume", "volume_id", volumeID, "err", err)
			return models.CatalogBook{}, err
		}
		return fromGoogle(*v), nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Bestsellers returns the current NYT bestseller list.
func (s *CatalogService) Bestsellers(ctx context.Context) ([]models.CatalogBook, error) {
	return cached(ctx, s.cache, "bestsellers", func() ([]models.CatalogBook, error) {
		list, err := s.bestsellers.GetBestsellers(ctx)
		if err != nil {
			logger.Log.Errorw("failed to get bestsellers", "err", err)
			return nil, err
		}
		books := make([]models.CatalogBook, 0, len(list))
		for _, b := range list {
			books = append(books, fromNYT(b))
		}
		return books, nil
	})
}

// BestsellerDetails resolves a bestseller isbn to its Google volume.
func (s *CatalogService) BestsellerDetails(ctx context.Context, isbn string) (*models.CatalogBook, error) {
	volumes, err := s.google.SearchVolumes(ctx, "isbn:"+isbn)
	if err != nil {
		logger.Log.Errorw("failed to look up isbn", "isbn", isbn, "err", err)
		return nil, err
	}
	if len(volumes) == 0 {
		return nil, domainerrors.NotFoundf("No book with isbn: %s", isbn)
	}

	book, err := s.Details(ctx, volumes[0].ID)
	if err != nil {
		return nil, err
	}
	book.ISBN = isbn
	return book, nil
}

// cached serves key from cache when possible and stores fresh results.
// Cache failures never fail the lookup.
func cached[T any](ctx context.Context, cache CatalogCache, key string, load func() (T, error)) (T, error) {
	var v T
	if cache != nil {
		ok, err := cache.Get(ctx, key, &v)
		if err != nil {
			logger.Log.Warnw("catalog cache unavailable", "key", key, "err", err)
		}
		if ok {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, v); err != nil {
			logger.Log.Warnw("failed to cache catalog result", "key", key, "err", err)
		}
	}
	return v, nil
}

func fromGoogle(v models.GoogleVolume) models.CatalogBook {
	return models.CatalogBook{
		VolumeID:    v.ID,
		Title:       v.VolumeInfo.Title,
		Authors:     v.VolumeInfo.Authors,
		Publisher:   v.VolumeInfo.Publisher,
		Categories:  v.VolumeInfo.Categories,
		Description: v.VolumeInfo.Description,
		Image:       v.VolumeInfo.ImageLinks.Thumbnail,
	}
}

func fromNYT(b models.NYTBook) models.CatalogBook {
	book := models.CatalogBook{
		Title:       b.Title,
		Publisher:   b.Publisher,
		Description: b.Description,
		Image:       b.BookImage,
	}
	if b.Author != "" {
		book.Authors = []string{b.Author}
	}
	if len(b.ISBNs) > 0 {
		book.ISBN = b.ISBNs[0].ISBN13
	}
	return book
}
