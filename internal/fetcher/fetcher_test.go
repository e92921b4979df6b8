package fetcher

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/at-ishikawa/translate/internal/dictionary"
	"github.com/at-ishikawa/translate/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantBody       []byte
		wantStatusCode int
		wantErr        bool
		wantLogs       []string
	}{
		{
			name: "200 returns the body",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/enfr/ice cream", r.URL.Path)
				_, _ = w.Write([]byte("<html></html>"))
			},
			wantBody: []byte("<html></html>"),
			wantLogs: []string{"for parsing", "successful"},
		},
		{
			name: "404 is a transport failure",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("<html>not found</html>"))
			},
			wantStatusCode: http.StatusNotFound,
			wantErr:        true,
			wantLogs:       []string{"for parsing", "Request failed with status 404"},
		},
		{
			name: "500 is a transport failure and is not retried",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantErr:        true,
			wantLogs:       []string{"Request failed with status 500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			var logs bytes.Buffer
			fetcher := New(slog.New(slog.NewTextHandler(&logs, nil)))
			defer func() {
				_ = fetcher.Close()
			}()

			url := server.URL + "/enfr/ice%20cream"
			got, err := fetcher.Fetch(context.Background(), url)
			assert.Equal(t, 1, requests)
			for _, want := range tt.wantLogs {
				assert.Contains(t, logs.String(), want)
			}
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.ErrorIs(t, err, dictionary.ErrTransport)

				var transportErr *dictionary.TransportError
				require.ErrorAs(t, err, &transportErr)
				assert.Equal(t, tt.wantStatusCode, transportErr.StatusCode)
				assert.Equal(t, url, transportErr.URL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestFetcher_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/"
	server.Close()

	fetcher := New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	defer func() {
		_ = fetcher.Close()
	}()

	got, err := fetcher.Fetch(context.Background(), url)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, dictionary.ErrTransport)

	var transportErr *dictionary.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
	assert.Error(t, transportErr.Err)
}

func TestFetcher_Fetch_LogLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	var logs bytes.Buffer
	fetcher := New(slog.New(logging.NewHandler(&logs, slog.LevelInfo)))
	defer func() {
		_ = fetcher.Close()
	}()

	_, err := fetcher.Fetch(context.Background(), server.URL+"/")
	require.NoError(t, err)
	_, err = fetcher.Fetch(context.Background(), server.URL+"/missing")
	require.Error(t, err)

	timestamp := regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2} \| `)
	var got []string
	for _, line := range strings.Split(strings.TrimSuffix(logs.String(), "\n"), "\n") {
		require.Regexp(t, timestamp, line)
		got = append(got, timestamp.ReplaceAllString(line, ""))
	}
	assert.Equal(t, []string{
		"INFO | Requesting " + server.URL + "/ for parsing",
		"INFO | Request for " + server.URL + "/ successful",
		"INFO | Requesting " + server.URL + "/missing for parsing",
		"INFO | Request failed with status 404",
	}, got)
}
