package delivery

import (
	"luxefurnish/domain"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_Scenario(t *testing.T) {
	s := newTestServer(t)

	id := s.mustCreateProduct(t, "Chair", 100, 5)
	require.NotEmpty(t, id)

	w := s.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Product](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "Chair", list[0].Name)

	w = s.do(t, http.MethodPut, "/api/products/"+id, s.admin, map[string]any{"stock": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[domain.Product](t, w).Stock)

	w = s.do(t, http.MethodDelete, "/api/products/"+id, s.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/products/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Product not found", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestProductHandler_Validation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{"negative price", map[string]any{"name": "Chair", "price": -1, "stock": 1}},
		{"negative stock", map[string]any{"name": "Chair", "price": 1, "stock": -1}},
		{"missing price", map[string]any{"name": "Chair", "stock": 1}},
		{"unknown field", map[string]any{"name": "Chair", "price": 1, "stock": 1, "discount": 50}},
		{"malformed", `{"name": "Chair",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/products", s.admin, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, decode[map[string]string](t, w), "error")
		})
	}
}

func TestProductHandler_Access(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"name": "Chair", "price": 1, "stock": 1}

	w := s.do(t, http.MethodPost, "/api/products", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/products", s.customerToken(t, uuid.NewString()), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodDelete, "/api/products/"+uuid.NewString(), s.admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/products/not-a-uuid", s.admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
