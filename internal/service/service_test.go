package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/config"
	"github.com/Dan9191/custlysis-dashboard/internal/integrations/backend"
	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/Dan9191/custlysis-dashboard/internal/repository"
	"github.com/Dan9191/custlysis-dashboard/internal/snapshot"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend answers "METHOD /path" keys with canned JSON and records every call
type fakeBackend struct {
	mu        sync.Mutex
	responses map[string]string
	calls     []string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls = append(f.calls, key)
	body, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Write([]byte(body))
}

func (f *fakeBackend) set(key, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = body
}

func (f *fakeBackend) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if len(c) > len(method) && c[:len(method)+1] == method+" " {
			n++
		}
	}
	return n
}

func newTestService(t *testing.T, responses map[string]string) (*Service, *fakeBackend, snapshot.Store) {
	t.Helper()
	if responses == nil {
		responses = map[string]string{}
	}
	fb := &fakeBackend{responses: responses}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	client := backend.NewClient(&config.Config{BackendURL: srv.URL, RequestTimeout: 2 * time.Second}, log)
	store := snapshot.NewMemoryStore(time.Minute)
	return NewService(repository.NewRepository(client), store, log), fb, store
}

func TestLoadDashboard_CountsCollections(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"GET /customers":    `[{"customerId":1},{"customerId":2}]`,
		"GET /accounts":     `[{"accountId":1}]`,
		"GET /products":     `[]`,
		"GET /transactions": `[{"txnId":1},{"txnId":2},{"txnId":3}]`,
	})

	v, err := svc.LoadDashboard(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, DashboardView{Customers: 2, Accounts: 1, Products: 0, Transactions: 3}, *v)
}

func TestLoadDashboard_AnyFailureFails(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"GET /customers": `[]`,
		"GET /accounts":  `[]`,
		"GET /products":  `[]`,
	})

	_, err := svc.LoadDashboard(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error! status: 500")
}

func TestLoadCustomers_EmptyBackend(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{"GET /customers": `[]`})

	v, err := svc.LoadCustomers(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, v.Customers)
	assert.Empty(t, v.Customers)
}

func TestNavigationDiscardsSnapshot(t *testing.T) {
	svc, fb, store := newTestService(t, map[string]string{
		"GET /customers": `[{"customerId":1,"name":"Asha"}]`,
		"GET /products":  `[{"productId":4,"name":"Gold"}]`,
	})
	ctx := context.Background()

	_, err := svc.LoadProducts(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.LoadCustomers(ctx, "s1")
	require.NoError(t, err)

	var products []models.Product
	assert.ErrorIs(t, store.Load(ctx, "s1", TabProducts, &products), snapshot.ErrMissing)

	// filtering is served from the snapshot without another fetch
	before := fb.count(http.MethodGet)
	v, err := svc.CustomerRows(ctx, "s1", "ash")
	require.NoError(t, err)
	assert.Len(t, v.Customers, 1)
	assert.Equal(t, before, fb.count(http.MethodGet))
}

func TestCustomer_LookupFromSnapshot(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{"GET /customers": `[{"customerId":7,"name":"Ravi"}]`})
	ctx := context.Background()

	v, err := svc.Customers(ctx, "s1")
	require.NoError(t, err)

	c, err := v.Find(7)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", c.Name)

	_, err = v.Find(8)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "customer with ID 8 not found")
}

func TestLoadAccounts_CustomerLabels(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{
		"GET /accounts":  `[{"accountId":1,"customerId":7,"balance":-50},{"accountId":2,"customerId":9,"balance":200},{"accountId":3}]`,
		"GET /customers": `[{"customerId":7,"name":"Ravi"}]`,
	})

	v, err := svc.LoadAccounts(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, v.Accounts, 3)
	assert.True(t, v.Accounts[0].Balance.IsNegative())
	assert.False(t, v.Accounts[1].Balance.IsNegative())

	assert.Equal(t, "Ravi", v.CustomerLabel(v.Accounts[0].CustomerID))
	assert.Equal(t, "-", v.CustomerLabel(v.Accounts[1].CustomerID))
	assert.Equal(t, "-", v.CustomerLabel(v.Accounts[2].CustomerID))
}

func TestDelete_WithoutConfirmationIssuesNoCall(t *testing.T) {
	svc, fb, _ := newTestService(t, map[string]string{
		"DELETE /customers/1": ``,
		"DELETE /accounts/2":  ``,
		"DELETE /products/3":  ``,
	})
	ctx := context.Background()

	_, err := svc.DeleteCustomer(ctx, 1, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	_, err = svc.DeleteAccount(ctx, 2, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	_, err = svc.DeleteProduct(ctx, 3, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Zero(t, fb.count(http.MethodDelete))

	msg, err := svc.DeleteAccount(ctx, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "Account deleted successfully!", msg)
	assert.Equal(t, 1, fb.count(http.MethodDelete))
}

func TestSaveCustomer_Modes(t *testing.T) {
	svc, fb, _ := newTestService(t, map[string]string{
		"POST /customers":  `{"customerId":12}`,
		"PUT /customers/5": `{"customerId":5}`,
	})
	ctx := context.Background()
	form := url.Values{"name": {"Asha"}}

	msg, err := svc.SaveCustomer(ctx, CreateMode(), form)
	require.NoError(t, err)
	assert.Equal(t, "Customer created successfully!", msg)

	msg, err = svc.SaveCustomer(ctx, EditMode(5), form)
	require.NoError(t, err)
	assert.Equal(t, "Customer updated successfully!", msg)

	assert.Equal(t, 1, fb.count(http.MethodPost))
	assert.Equal(t, 1, fb.count(http.MethodPut))
}

func TestSaveProduct_BackendError(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.SaveProduct(context.Background(), CreateMode(), url.Values{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create product")
}

func TestRecordTransaction(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{"POST /transactions": `{"txnId":3}`})

	msg, err := svc.RecordTransaction(context.Background(), url.Values{"amount": {"12.50"}, "isRecurring": {"on"}})
	require.NoError(t, err)
	assert.Equal(t, "Transaction recorded successfully!", msg)
}

func TestLoadRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLive bool
		wantLen  int
	}{
		{name: "live", body: `[{"customerId":1,"priority":"High","confidence":50}]`, wantLive: true, wantLen: 1},
		{name: "empty falls back", body: `[]`, wantLive: false, wantLen: 8},
		{name: "error falls back", wantLive: false, wantLen: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := map[string]string{}
			if tt.body != "" {
				responses["GET /recommendations/detailed"] = tt.body
			}
			svc, _, _ := newTestService(t, responses)

			v := svc.LoadRecommendations(context.Background(), "s1")
			assert.Equal(t, tt.wantLive, v.Live)
			assert.Len(t, v.Recommendations, tt.wantLen)
			assert.Equal(t, tt.wantLen, v.Stats.Count)
		})
	}
}

func TestTransactionRows_RefetchesWhenSnapshotMissing(t *testing.T) {
	svc, fb, _ := newTestService(t, map[string]string{
		"GET /transactions": `[{"txnId":1,"txnType":"Credit"},{"txnId":2,"txnType":"Debit"}]`,
		"GET /accounts":     `[]`,
	})

	v, err := svc.TransactionRows(context.Background(), "fresh", "", "Credit")
	require.NoError(t, err)
	require.Len(t, v.Transactions, 1)
	assert.Equal(t, int64(1), v.Transactions[0].ID)
	assert.Equal(t, 2, fb.count(http.MethodGet))
}
