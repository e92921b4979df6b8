// Package testutil provides shared test helpers for creating config files and fake dictionary websites.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file pointing the provider to baseURL and the log file into tmpDir.
// Returns the path to the generated config file and to the log file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) (string, string) {
	t.Helper()

	logPath := filepath.Join(tmpDir, ".log")
	configContent := fmt.Sprintf(`provider:
  base_url: %s
log:
  file: %s
  level: info
`, baseURL, logPath)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath, logPath
}

// Website is a fake dictionary website serving fixed pages by path.
// Unknown paths respond 404.
type Website struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// NewWebsite starts a Website closed at the end of the test.
func NewWebsite(t *testing.T, pages map[string]string) *Website {
	t.Helper()

	website := &Website{}
	website.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		website.mu.Lock()
		website.requests = append(website.requests, r.URL.Path)
		website.mu.Unlock()

		page, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(website.Close)
	return website
}

// Requests returns the paths requested since the last call.
func (w *Website) Requests() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	requests := w.requests
	w.requests = nil
	return requests
}
