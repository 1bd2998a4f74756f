package product_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
	productrepo "github.com/ernitinjai/meenicode-pos/repository/product"
	"github.com/ernitinjai/meenicode-pos/repository/remote"
	cerr "github.com/ernitinjai/meenicode-pos/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(baseURL string) productrepo.ProductRepository {
	return productrepo.NewProductRepository(remote.NewClient(baseURL, 2*time.Second))
}

func TestProductRepository_List(t *testing.T) {
	t.Run("success: decodes the collection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/products", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":1,"name":"Apple","brand":"Fresh Farms","barcode":"111","unit":"kg","unit_quantity":1,"selling_price":2.5,"purchase_price":1.5,"current_stock":10},
				{"id":2,"name":"Banana","brand":"Fresh Farms","barcode":"222","unit":"kg","unit_quantity":1,"selling_price":1.2,"purchase_price":0.8,"current_stock":5}
			]`))
		}))
		defer server.Close()

		items, err := newRepo(server.URL).List(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Apple", items[0].Name)
		assert.Equal(t, 2.5, items[0].SalePrice)
		assert.Equal(t, int64(5), items[1].CurrentStock)
	})

	t.Run("malformed body is a decode error, not an empty collection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"oops": `))
		}))
		defer server.Close()

		items, err := newRepo(server.URL).List(context.Background())
		assert.True(t, cerr.IsType(err, constant.ErrDecode))
		assert.Nil(t, items)
	})

	t.Run("unreachable service is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newRepo(server.URL).List(context.Background())
		assert.True(t, cerr.IsType(err, constant.ErrNetwork))
	})
}

func TestProductRepository_Create(t *testing.T) {
	t.Run("success: sends the contract payload keys and returns the stored record", func(t *testing.T) {
		var body map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/products", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			_ = json.NewEncoder(w).Encode(model.Product{
				ID: 42, Name: "Cheese", Brand: "Dairyland", Barcode: "555",
				Unit: "pcs", UnitQuantity: 1, SalePrice: 6.5, CurrentStock: 8,
			})
		}))
		defer server.Close()

		draft := &model.ProductDraft{
			Name: "Cheese", Brand: "Dairyland", Barcode: "555",
			Unit: "pcs", UnitQuantity: 1, SalePrice: 6.5, CurrentStock: 8,
		}
		created, err := newRepo(server.URL).Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), created.ID)

		// The snake_case remapping is a contract boundary.
		for _, key := range []string{"name", "brand", "barcode", "unit", "unit_quantity", "selling_price", "purchase_price", "current_stock"} {
			assert.Contains(t, body, key)
		}
		assert.NotContains(t, body, "id")
	})

	t.Run("rejection carries the service's message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"barcode already exists"}`))
		}))
		defer server.Close()

		_, err := newRepo(server.URL).Create(context.Background(), &model.ProductDraft{Name: "Cheese"})
		require.Error(t, err)
		assert.True(t, cerr.IsType(err, constant.ErrServerRejected))
		assert.Equal(t, "barcode already exists", err.Error())
	})
}

func TestProductRepository_Update(t *testing.T) {
	t.Run("success: full-record replace against the id path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/products/2", r.URL.Path)

			var payload model.Product
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			payload.CurrentStock = 3 // the server may normalize values
			_ = json.NewEncoder(w).Encode(payload)
		}))
		defer server.Close()

		product := &model.Product{ID: 2, Name: "Banana", Brand: "Fresh Farms", Barcode: "222", Unit: "kg", CurrentStock: 4}
		updated, err := newRepo(server.URL).Update(context.Background(), 2, product)
		require.NoError(t, err)
		assert.Equal(t, int64(3), updated.CurrentStock)
	})

	t.Run("vanished target", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Product not found"}`))
		}))
		defer server.Close()

		_, err := newRepo(server.URL).Update(context.Background(), 99, &model.Product{ID: 99})
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})
}

func TestProductRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/products/7", r.URL.Path)
			_, _ = w.Write([]byte(`{"message":"Product ID 7 deleted successfully"}`))
		}))
		defer server.Close()

		assert.NoError(t, newRepo(server.URL).Delete(context.Background(), 7))
	})

	t.Run("vanished target", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := newRepo(server.URL).Delete(context.Background(), 7)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})
}
