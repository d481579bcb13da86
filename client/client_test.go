package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeHandler(t *testing.T, wantPath string, status int, body string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_Businesses_DecodesListPage(t *testing.T) {
	server := httptest.NewServer(envelopeHandler(t, "/businesses", http.StatusOK, `{
		"success": true,
		"code": 200,
		"message": "Businesses retrieved successfully",
		"data": {
			"items": [
				{"id": "b1", "name": "Shanti Tiffins", "type": "tiffin", "is_active": true},
				{"id": "b2", "name": "Udupi Grand", "type": "restaurant", "is_active": true}
			],
			"total": 2,
			"page": 1,
			"page_size": 20
		}
	}`))
	defer server.Close()

	c := New(server.URL)
	page, err := c.Businesses(context.Background(), BusinessListOptions{})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Shanti Tiffins", page.Items[0].Name)
}

func TestClient_QueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "dosa", q.Get("search"))
		assert.Equal(t, "tiffin", q.Get("type"))
		assert.Equal(t, "4.5", q.Get("min_rating"))
		assert.Equal(t, "2", q.Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "code": 200, "data": {"items": [], "total": 0, "page": 2, "page_size": 20}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Businesses(context.Background(), BusinessListOptions{
		Search:    "dosa",
		Type:      "tiffin",
		MinRating: 4.5,
		Page:      2,
	})

	require.NoError(t, err)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(envelopeHandler(t, "/businesses/missing", http.StatusNotFound, `{
		"success": false,
		"code": 404,
		"message": "Business not found",
		"error": {"code": "BUSINESS_NOT_FOUND", "details": ""}
	}`))
	defer server.Close()

	c := New(server.URL)
	business, err := c.Business(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, business)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "BUSINESS_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Business not found", apiErr.Message)
}

func TestClient_APIError_NonEnvelopeBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Business(context.Background(), "b1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestClient_AuthedEndpoint_FailsFastWithoutToken(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Profile(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
	assert.Equal(t, 0, requests, "no request should be issued when signed out")
}

func TestClient_AuthedEndpoint_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "code": 200, "data": {"id": "u1", "name": "Asha Rao", "email": "asha@example.com"}}`))
	}))
	defer server.Close()

	c := New(server.URL, WithTokenSource(NewMemoryTokenSource("secret-token")))
	user, err := c.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", user.Name)
}

func TestClient_ShapeMismatch_DegradesToEmptySlice(t *testing.T) {
	// The reviews endpoint answering with an object instead of a list must
	// not fail the page.
	server := httptest.NewServer(envelopeHandler(t, "/businesses/b1/reviews", http.StatusOK, `{
		"success": true,
		"code": 200,
		"data": {"unexpected": "shape"}
	}`))
	defer server.Close()

	c := New(server.URL)
	reviews, err := c.BusinessReviews(context.Background(), "b1")

	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestClient_Login_ReturnsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"code": 200,
			"data": {"access_token": "jwt-token", "user": {"id": "u1", "email": "asha@example.com"}}
		}`))
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "asha@example.com", "Password123!")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.AccessToken)
	require.NotNil(t, result.User)
	assert.Equal(t, "u1", result.User.ID)
}

func TestClient_Logout_DropsCredential(t *testing.T) {
	ts := NewMemoryTokenSource("secret")
	require.True(t, ts.Authenticated())

	ts.Logout()

	assert.False(t, ts.Authenticated())
	_, ok := ts.Token()
	assert.False(t, ok)
}

func TestDataSource_DemoMode(t *testing.T) {
	source := NewDataSource(nil, true)

	businesses, err := source.GetBusinesses(context.Background(), BusinessListOptions{Type: "tiffin"})
	require.NoError(t, err)
	require.NotEmpty(t, businesses)
	for _, b := range businesses {
		assert.Equal(t, "tiffin", b.Type)
	}

	_, err = source.GetCart(context.Background())
	assert.True(t, errors.Is(err, ErrNotImplemented))

	_, err = source.GetWishlist(context.Background())
	assert.True(t, errors.Is(err, ErrNotImplemented))
}
