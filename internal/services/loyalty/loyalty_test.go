package loyalty

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyelinBots/userapi-go/internal/logger"
)

func newTestClient(baseURL string, timeout time.Duration) LoyaltyClient {
	return NewLoyaltyClient(logger.NewNop(), Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: timeout,
	})
}

func TestGetPoints(t *testing.T) {
	var gotPath, gotAuth, gotAccept string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authentication")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"point": 42}`))
	}))
	defer stub.Close()

	client := newTestClient(stub.URL, time.Second)

	points, err := client.GetPoints(context.Background(), "YWxpY2U")
	require.NoError(t, err)
	assert.Equal(t, 42, points)
	assert.Equal(t, "/api/loyalty/YWxpY2U", gotPath)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetPoints_Non2xx(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer stub.Close()

	client := newTestClient(stub.URL, time.Second)

	points, err := client.GetPoints(context.Background(), "YWxpY2U")
	assert.Error(t, err)
	assert.Equal(t, 0, points)
}

func TestGetPoints_MalformedBody(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer stub.Close()

	client := newTestClient(stub.URL, time.Second)

	points, err := client.GetPoints(context.Background(), "YWxpY2U")
	assert.Error(t, err)
	assert.Equal(t, 0, points)
}

func TestGetPoints_Timeout(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"point": 1}`))
	}))
	defer stub.Close()

	client := newTestClient(stub.URL, 50*time.Millisecond)

	points, err := client.GetPoints(context.Background(), "YWxpY2U")
	assert.Error(t, err)
	assert.Equal(t, 0, points)
}

func TestGetPoints_Unreachable(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	stub.Close()

	client := newTestClient(stub.URL, time.Second)

	points, err := client.GetPoints(context.Background(), "YWxpY2U")
	assert.Error(t, err)
	assert.Equal(t, 0, points)
}
