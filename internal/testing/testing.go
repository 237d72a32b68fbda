// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/lyrx/internal/models"
)

// CallLog records the order in which test doubles are invoked.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *CallLog) Add(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *CallLog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// MockCatalog is a test double for [services.CatalogService]
type MockCatalog struct {
	Result *models.CatalogTrack
	Err    error
	Log    *CallLog
	IDs    []string
}

func (m *MockCatalog) Track(ctx context.Context, trackID string) (*models.CatalogTrack, error) {
	m.IDs = append(m.IDs, trackID)
	m.Log.Add("catalog")
	return m.Result, m.Err
}

func (m *MockCatalog) Name() string { return "mock catalog" }

// MockLyrics is a test double for [services.LyricsService]
type MockLyrics struct {
	Result  []models.LyricsRecord
	Err     error
	Log     *CallLog
	Queries []models.LyricsQuery
}

func (m *MockLyrics) Search(ctx context.Context, q models.LyricsQuery) ([]models.LyricsRecord, error) {
	m.Queries = append(m.Queries, q)
	m.Log.Add("lyrics")
	return m.Result, m.Err
}

func (m *MockLyrics) Name() string { return "mock lyrics" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
	Requests []*http.Request
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// NewBody wraps s as a response body.
func NewBody(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Chdir changes into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}
