package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCatalog(ctrl)
	svc.EXPECT().Search(gomock.Any(), "intitle:airframe").
		Return([]models.CatalogBook{{VolumeID: "v1", Title: "Airframe"}}, nil)
	svc.EXPECT().Search(gomock.Any(), "").
		Return(nil, domainerrors.Validation("Search term is required"))

	rec := serve(t, http.MethodGet, "/books", "/books?term=intitle:airframe", "", NewSearchBooksHandler(svc))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BooksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "Airframe", resp.Books[0].Title)

	rec = serve(t, http.MethodGet, "/books", "/books", "", NewSearchBooksHandler(svc))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookDetailsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCatalog(ctrl)
	svc.EXPECT().Details(gomock.Any(), "v1").Return(&models.CatalogBook{VolumeID: "v1"}, nil)
	svc.EXPECT().Details(gomock.Any(), "gone").Return(nil, domainerrors.NotFoundf("No volume: %s", "gone"))

	rec := serve(t, http.MethodGet, "/books/details/{volumeID}", "/books/details/v1", "", NewBookDetailsHandler(svc))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp BookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.Book.VolumeID)

	rec = serve(t, http.MethodGet, "/books/details/{volumeID}", "/books/details/gone", "", NewBookDetailsHandler(svc))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBestsellersHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCatalog(ctrl)
	svc.EXPECT().Bestsellers(gomock.Any()).Return(nil, errors.New("upstream down"))
	svc.EXPECT().BestsellerDetails(gomock.Any(), "9780000000001").
		Return(&models.CatalogBook{VolumeID: "v9", ISBN: "9780000000001"}, nil)

	rec := serve(t, http.MethodGet, "/books/bestsellers", "/books/bestsellers", "", NewBestsellersHandler(svc))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)

	rec = serve(t, http.MethodGet, "/books/bestsellers/details/{isbn}", "/books/bestsellers/details/9780000000001", "",
		NewBestsellerDetailsHandler(svc))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeMap(t, rec)["book"]), "9780000000001")
}
