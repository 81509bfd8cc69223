// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/desertthunder/customers/internal/models"
	"github.com/desertthunder/customers/internal/shared"
)

// MockStore is an in-memory test double for [models.CustomerStore].
//
// Names listed in FailOn make Insert fail; ListErr and CountErr force read failures.
type MockStore struct {
	mu        sync.Mutex
	nextID    int64
	customers []*models.Customer

	FailOn   map[string]bool
	ListErr  error
	CountErr error
}

// NewMockStore returns an empty [MockStore] whose inserts fail for each name in failOn.
func NewMockStore(failOn ...string) *MockStore {
	m := &MockStore{FailOn: map[string]bool{}}
	for _, name := range failOn {
		m.FailOn[name] = true
	}
	return m
}

func (m *MockStore) Insert(ctx context.Context, name string) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailOn[name] {
		return nil, fmt.Errorf("%w: mock insert of %q", shared.ErrStorageUnavailable, name)
	}

	m.nextID++
	c := &models.Customer{ID: m.nextID, Name: name}
	m.customers = append(m.customers, c)
	return c, nil
}

func (m *MockStore) List(ctx context.Context) ([]*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*models.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *MockStore) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return len(m.customers), nil
}

// SafeBuffer is a [bytes.Buffer] guarded by a mutex, for log output written from several goroutines.
type SafeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// FResponseWriter records headers and status but fails every body write
type FResponseWriter struct {
	*httptest.ResponseRecorder
}

func NewFResponseWriter() *FResponseWriter {
	return &FResponseWriter{ResponseRecorder: httptest.NewRecorder()}
}

func (f *FResponseWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
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
