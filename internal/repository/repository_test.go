package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/config"
	"github.com/Dan9191/custlysis-dashboard/internal/integrations/backend"
	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
	body   map[string]any
}

func newTestRepository(t *testing.T, responses map[string]string) (*Repository, *[]call) {
	t.Helper()
	calls := &[]call{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := call{method: r.Method, path: r.URL.Path}
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &c.body)
			}
		}
		*calls = append(*calls, c)
		if body, ok := responses[r.Method+" "+r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	client := backend.NewClient(&config.Config{BackendURL: srv.URL, RequestTimeout: 2 * time.Second}, log)
	return NewRepository(client), calls
}

func TestRepository_ListNullIsEmpty(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{"GET /customers": `null`})

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestRepository_UpdateUsesItemPath(t *testing.T) {
	repo, calls := newTestRepository(t, map[string]string{"PUT /accounts/5": `{"accountId":5,"accountType":"Credit"}`})

	kind := "Credit"
	account, err := repo.UpdateAccount(context.Background(), 5, &models.AccountPayload{AccountType: &kind})
	require.NoError(t, err)
	assert.Equal(t, "Credit", account.AccountType)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, "Credit", (*calls)[0].body["accountType"])
}

func TestRepository_DeleteWrapsStatusError(t *testing.T) {
	repo, _ := newTestRepository(t, nil)

	err := repo.DeleteProduct(context.Background(), 77)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete product 77")

	var se *backend.StatusError
	assert.ErrorAs(t, err, &se)
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, calls := newTestRepository(t, map[string]string{"POST /transactions": `{"txnId":31}`})

	txn, err := repo.CreateTransaction(context.Background(), &models.TransactionPayload{IsRecurring: true})
	require.NoError(t, err)
	assert.Equal(t, int64(31), txn.ID)
	assert.Equal(t, true, (*calls)[0].body["isRecurring"])
	assert.Nil(t, (*calls)[0].body["amount"])
}

func TestRepository_ListRecommendations(t *testing.T) {
	repo, _ := newTestRepository(t, map[string]string{
		"GET /recommendations/detailed": `[{"customerId":1,"productName":"Gold Card","confidence":90,"priority":"High"}]`,
	})

	recs, err := repo.ListRecommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Gold Card", recs[0].ProductName)
}
