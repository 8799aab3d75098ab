package facades

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"golang.org/x/time/rate"
)

// googleMaxResults is the largest page the Google Books API serves.
const googleMaxResults = "40"

// ErrCatalogUnavailable is returned when an external catalog answers with an
// unexpected status or cannot be reached.
var ErrCatalogUnavailable = domainerrors.Internal("Catalog service unavailable", nil)

// GoogleBooksFacade reads volumes from the Google Books API.
type GoogleBooksFacade struct {
	client  *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

// NewGoogleBooksFacade creates a facade for the Google Books API at baseURL.
// Outbound calls are limited to rps requests per second.
func NewGoogleBooksFacade(baseURL, apiKey string, timeout time.Duration, rps float64) *GoogleBooksFacade {
	return &GoogleBooksFacade{
		client:  newClient(baseURL, timeout),
		apiKey:  apiKey,
		limiter: newLimiter(rps),
	}
}

// SearchVolumes returns the volumes matching query (Google query syntax,
// e.g. "intitle:airframe" or "isbn:9781250178633").
func (f *GoogleBooksFacade) SearchVolumes(ctx context.Context, query string) ([]models.GoogleVolume, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var list models.GoogleVolumeList
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(withKey(map[string]string{
			"q":          query,
			"maxResults": googleMaxResults,
		}, "key", f.apiKey)).
		SetResult(&list).
		Get("/volumes")
	if err := checkResponse(resp, err, "google volumes search"); err != nil {
		return nil, err
	}

	return list.Items, nil
}

// GetVolume returns one volume by its id.
func (f *GoogleBooksFacade) GetVolume(ctx context.Context, volumeID string) (*models.GoogleVolume, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var volume models.GoogleVolume
	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParam("volumeID", volumeID).
		SetQueryParams(withKey(map[string]string{}, "key", f.apiKey)).
		SetResult(&volume).
		Get("/volumes/{volumeID}")
	if resp != nil && resp.StatusCode() == http.StatusNotFound {
		return nil, domainerrors.NotFoundf("No volume: %s", volumeID)
	}
	if err := checkResponse(resp, err, "google volume details"); err != nil {
		return nil, err
	}

	return &volume, nil
}

// NYTBooksFacade reads bestseller lists from the New York Times Books API.
type NYTBooksFacade struct {
	client   *resty.Client
	apiKey   string
	listName string
	limiter  *rate.Limiter
}

// NewNYTBooksFacade creates a facade for the NYT Books API at baseURL serving
// the list named listName.
func NewNYTBooksFacade(baseURL, apiKey, listName string, timeout time.Duration, rps float64) *NYTBooksFacade {
	return &NYTBooksFacade{
		client:   newClient(baseURL, timeout),
		apiKey:   apiKey,
		listName: listName,
		limiter:  newLimiter(rps),
	}
}

// GetBestsellers returns the current edition of the configured list.
func (f *NYTBooksFacade) GetBestsellers(ctx context.Context) ([]models.NYTBook, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var list models.NYTList
	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParam("list", f.listName).
		SetQueryParams(withKey(map[string]string{}, "api-key", f.apiKey)).
		SetResult(&list).
		Get("/lists/current/{list}.json")
	if err := checkResponse(resp, err, "nyt current list"); err != nil {
		return nil, err
	}

	return list.Results.Books, nil
}

func newClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// newLimiter returns a limiter allowing rps requests per second, or an
// unlimited one when rps is not positive.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

func withKey(params map[string]string, name, key string) map[string]string {
	if key != "" {
		params[name] = key
	}
	return params
}

func checkResponse(resp *resty.Response, err error, call string) error {
	if err != nil {
		logger.Log.Errorw("catalog request failed", "call", call, "err", err)
		return ErrCatalogUnavailable.WithCause(err)
	}
	if resp.IsError() {
		logger.Log.Errorw("catalog returned error status",
			"call", call, "status", resp.StatusCode(), "body", resp.String())
		return ErrCatalogUnavailable
	}
	logger.Log.Infow("catalog request", "call", call, "status", resp.StatusCode(), "duration", resp.Time())
	return nil
}
