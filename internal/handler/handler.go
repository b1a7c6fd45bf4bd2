package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/health"
	"github.com/Dan9191/custlysis-dashboard/internal/integrations/backend"
	"github.com/Dan9191/custlysis-dashboard/internal/metrics"
	"github.com/Dan9191/custlysis-dashboard/internal/middleware"
	"github.com/Dan9191/custlysis-dashboard/internal/service"
	"github.com/Dan9191/custlysis-dashboard/internal/view"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// StatusSource reports the latest backend health probe
type StatusSource interface {
	Status() health.Status
}

// loader produces the content of one tab. fresh=false reuses the session snapshot.
type loader func(ctx context.Context, session string, fresh bool) (any, error)

type Handler struct {
	svc     *service.Service
	view    *view.Renderer
	status  StatusSource
	log     *logrus.Logger
	now     func() time.Time
	loaders map[string]loader

	exportEnabled bool
}

func NewHandler(svc *service.Service, renderer *view.Renderer, status StatusSource, log *logrus.Logger) *Handler {
	h := &Handler{svc: svc, view: renderer, status: status, log: log, now: time.Now}
	h.loaders = map[string]loader{
		service.TabDashboard:       h.loadDashboard,
		service.TabCustomers:       h.loadCustomers,
		service.TabAccounts:        h.loadAccounts,
		service.TabProducts:        h.loadProducts,
		service.TabTransactions:    h.loadTransactions,
		service.TabCampaigns:       h.loadCampaigns,
		service.TabAnalytics:       h.loadAnalytics,
		service.TabRecommendations: h.loadRecommendations,
	}
	return h
}

// Register mounts the dashboard routes. The export route only exists when enabled.
func (h *Handler) Register(r *mux.Router, exportEnabled bool) {
	h.exportEnabled = exportEnabled
	r.HandleFunc("/", h.Home).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
	if exportEnabled {
		r.HandleFunc("/tab/transactions/export", h.ExportTransactions).Methods(http.MethodGet)
	}
	r.HandleFunc("/tab/{tab}", h.Tab).Methods(http.MethodGet)
	r.HandleFunc("/tab/{tab}/rows", h.Rows).Methods(http.MethodGet)
	r.HandleFunc("/tab/{entity:customers|accounts|products|transactions}/new", h.New).Methods(http.MethodGet)
	r.HandleFunc("/tab/{entity:customers|accounts|products}/{id:[0-9]+}/edit", h.Edit).Methods(http.MethodGet)
	r.HandleFunc("/tab/{entity:customers|accounts|products|transactions}", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/tab/{entity:customers|accounts|products}/{id:[0-9]+}", h.Update).Methods(http.MethodPost)
	r.HandleFunc("/tab/{entity:customers|accounts|products}/{id:[0-9]+}/delete", h.Delete).Methods(http.MethodPost)
}

// Home redirects to the dashboard tab
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/tab/"+service.TabDashboard, http.StatusFound)
}

// Tab renders a tab with freshly fetched data. Unknown tabs render the dashboard.
func (h *Handler) Tab(w http.ResponseWriter, r *http.Request) {
	tab := service.ResolveTab(mux.Vars(r)["tab"])
	content, err := h.loaders[tab.ID](r.Context(), middleware.SessionID(r.Context()), true)
	if err != nil {
		h.renderError(w, r, tab, err)
		return
	}
	h.renderPage(w, r, tab, content)
}

// Rows renders the filtered table region of an entity tab from the session snapshot
func (h *Handler) Rows(w http.ResponseWriter, r *http.Request) {
	tab := mux.Vars(r)["tab"]
	if !view.HasRows(tab) {
		http.NotFound(w, r)
		return
	}

	ctx, session := r.Context(), middleware.SessionID(r.Context())
	q := r.URL.Query()
	var (
		data any
		err  error
	)
	switch tab {
	case service.TabCustomers:
		data, err = h.svc.CustomerRows(ctx, session, q.Get("q"))
	case service.TabAccounts:
		data, err = h.svc.AccountRows(ctx, session, q.Get("q"))
	case service.TabProducts:
		data, err = h.svc.ProductRows(ctx, session, q.Get("q"))
	case service.TabTransactions:
		data, err = h.svc.TransactionRows(ctx, session, q.Get("q"), q.Get("type"))
	}
	if err != nil {
		h.log.WithError(err).WithField("tab", tab).Error("Failed to filter rows")
		http.Error(w, loadFailure(err), http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := h.view.Rows(&buf, tab, data); err != nil {
		h.log.WithError(err).WithField("tab", tab).Error("Failed to render rows")
		http.Error(w, "Failed to render rows", http.StatusInternalServerError)
		return
	}
	metrics.PageRenders.WithLabelValues(tab, "rows").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Healthz reports process liveness and the last backend probe
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	st := h.status.Status()
	backendState := "unknown"
	if st.Checked {
		backendState = "down"
		if st.Up {
			backendState = "up"
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "backend": backendState})
}

func (h *Handler) loadDashboard(ctx context.Context, session string, _ bool) (any, error) {
	v, err := h.svc.LoadDashboard(ctx, session)
	if err != nil {
		return nil, err
	}
	return view.DashboardPage{View: v, Status: h.status.Status()}, nil
}

func (h *Handler) loadCustomers(ctx context.Context, session string, fresh bool) (any, error) {
	load := h.svc.Customers
	if fresh {
		load = h.svc.LoadCustomers
	}
	v, err := load(ctx, session)
	if err != nil {
		return nil, err
	}
	return view.CustomersPage{View: v}, nil
}

func (h *Handler) loadAccounts(ctx context.Context, session string, fresh bool) (any, error) {
	load := h.svc.Accounts
	if fresh {
		load = h.svc.LoadAccounts
	}
	v, err := load(ctx, session)
	if err != nil {
		return nil, err
	}
	return view.AccountsPage{View: v}, nil
}

func (h *Handler) loadProducts(ctx context.Context, session string, fresh bool) (any, error) {
	load := h.svc.Products
	if fresh {
		load = h.svc.LoadProducts
	}
	v, err := load(ctx, session)
	if err != nil {
		return nil, err
	}
	return view.ProductsPage{View: v}, nil
}

func (h *Handler) loadTransactions(ctx context.Context, session string, fresh bool) (any, error) {
	load := h.svc.Transactions
	if fresh {
		load = h.svc.LoadTransactions
	}
	v, err := load(ctx, session)
	if err != nil {
		return nil, err
	}
	return view.TransactionsPage{View: v, TypeFilters: view.TxnTypeFilters, ExportEnabled: h.exportEnabled}, nil
}

func (h *Handler) loadCampaigns(ctx context.Context, session string, _ bool) (any, error) {
	return h.svc.LoadCampaigns(ctx, session), nil
}

func (h *Handler) loadAnalytics(ctx context.Context, session string, _ bool) (any, error) {
	return h.svc.LoadAnalytics(ctx, session), nil
}

func (h *Handler) loadRecommendations(ctx context.Context, session string, _ bool) (any, error) {
	return h.svc.LoadRecommendations(ctx, session), nil
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, tab service.Tab, content any) {
	h.write(w, r, http.StatusOK, &view.Page{Tab: tab, Content: content}, "page")
}

// renderError replaces the tab content with the error panel
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, tab service.Tab, err error) {
	h.log.WithError(err).WithFields(logrus.Fields{
		"tab":        tab.ID,
		"request_id": middleware.RequestIDFrom(r.Context()),
	}).Error("Failed to load tab")

	h.write(w, r, http.StatusBadGateway, &view.Page{
		Tab:      tab,
		Error:    loadFailure(err),
		RetryURL: "/tab/" + tab.ID,
	}, "error")
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, page *view.Page, kind string) {
	page.Nav = service.Nav(page.Tab.ID)
	page.Notice = popFlash(w, r)

	var buf bytes.Buffer
	if err := h.view.Page(&buf, page); err != nil {
		h.log.WithError(err).WithField("tab", page.Tab.ID).Error("Failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	metrics.PageRenders.WithLabelValues(page.Tab.ID, kind).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// loadFailure is the user-facing text of a failed backend load
func loadFailure(err error) string {
	return "Failed to load data: " + failureText(err)
}

// failureText strips repository wrapping from backend status errors
func failureText(err error) string {
	var se *backend.StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}
