package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/translate/internal/dictionary"
	"resty.dev/v3"
)

// Fetcher issues a single GET per call. It never retries.
type Fetcher struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

func New(logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: resty.New(),
		logger:     logger,
	}
}

func (f *Fetcher) Close() error {
	return f.httpClient.Close()
}

// Fetch returns the body of a 200 response.
// Any other outcome is a *dictionary.TransportError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.logger.InfoContext(ctx, "Requesting "+url+" for parsing")

	res, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		f.logger.ErrorContext(ctx, "Request to "+url+" failed: "+err.Error())
		return nil, &dictionary.TransportError{URL: url, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		f.logger.InfoContext(ctx, fmt.Sprintf("Request failed with status %d", res.StatusCode()))
		return nil, &dictionary.TransportError{URL: url, StatusCode: res.StatusCode()}
	}

	f.logger.InfoContext(ctx, "Request for "+url+" successful")
	return res.Bytes(), nil
}
