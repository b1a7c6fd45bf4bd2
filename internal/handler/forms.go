package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Dan9191/custlysis-dashboard/internal/middleware"
	"github.com/Dan9191/custlysis-dashboard/internal/service"
	"github.com/Dan9191/custlysis-dashboard/internal/view"
	"github.com/gorilla/mux"
)

// entity names used in notifications
var entityNames = map[string]string{
	service.TabCustomers:    "customer",
	service.TabAccounts:     "account",
	service.TabProducts:     "product",
	service.TabTransactions: "transaction",
}

// New renders the tab with an empty create form
func (h *Handler) New(w http.ResponseWriter, r *http.Request) {
	tab := service.ResolveTab(mux.Vars(r)["entity"])
	content, err := h.loaders[tab.ID](r.Context(), middleware.SessionID(r.Context()), false)
	if err != nil {
		h.renderError(w, r, tab, err)
		return
	}

	var form *view.Form
	switch c := content.(type) {
	case view.CustomersPage:
		form = view.CustomerForm(service.CreateMode(), nil)
	case view.AccountsPage:
		form = view.AccountForm(service.CreateMode(), nil, c.View.Customers)
	case view.ProductsPage:
		form = view.ProductForm(service.CreateMode(), nil)
	case view.TransactionsPage:
		form = view.TransactionForm(c.View.Accounts, h.now())
	}
	h.renderPage(w, r, tab, withOverlay(content, view.Overlay{Form: form}))
}

// Edit renders the tab with a form pre-filled from the session snapshot
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	tab := service.ResolveTab(mux.Vars(r)["entity"])
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	content, err := h.loaders[tab.ID](r.Context(), middleware.SessionID(r.Context()), false)
	if err != nil {
		h.renderError(w, r, tab, err)
		return
	}

	var form *view.Form
	mode := service.EditMode(id)
	switch c := content.(type) {
	case view.CustomersPage:
		customer, ferr := c.View.Find(id)
		if err = ferr; err == nil {
			form = view.CustomerForm(mode, customer)
		}
	case view.AccountsPage:
		account, ferr := c.View.Find(id)
		if err = ferr; err == nil {
			form = view.AccountForm(mode, account, c.View.Customers)
		}
	case view.ProductsPage:
		product, ferr := c.View.Find(id)
		if err = ferr; err == nil {
			form = view.ProductForm(mode, product)
		}
	}
	if err != nil {
		h.redirectWithNotice(w, r, tab.ID, view.NoticeError, "Error loading "+entityNames[tab.ID]+": "+err.Error())
		return
	}
	h.renderPage(w, r, tab, withOverlay(content, view.Overlay{Form: form}))
}

// Create submits a create form
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, service.CreateMode())
}

// Update submits an edit form
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	h.save(w, r, service.EditMode(id))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, mode service.FormMode) {
	tab := mux.Vars(r)["entity"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	msg, err := h.saveEntity(r.Context(), tab, mode, r.PostForm)
	if err != nil {
		h.log.WithError(err).WithField("tab", tab).Error("Failed to save")
		verb := "saving"
		if tab == service.TabTransactions {
			verb = "recording"
		}
		h.redirectWithNotice(w, r, tab, view.NoticeError, fmt.Sprintf("Error %s %s: %s", verb, entityNames[tab], failureText(err)))
		return
	}
	h.redirectWithNotice(w, r, tab, view.NoticeSuccess, msg)
}

func (h *Handler) saveEntity(ctx context.Context, tab string, mode service.FormMode, form url.Values) (string, error) {
	switch tab {
	case service.TabCustomers:
		return h.svc.SaveCustomer(ctx, mode, form)
	case service.TabAccounts:
		return h.svc.SaveAccount(ctx, mode, form)
	case service.TabProducts:
		return h.svc.SaveProduct(ctx, mode, form)
	case service.TabTransactions:
		return h.svc.RecordTransaction(ctx, form)
	}
	return "", fmt.Errorf("unknown entity %q", tab)
}

// Delete asks for confirmation first and deletes only a confirmed request
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tab := service.ResolveTab(mux.Vars(r)["entity"])
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	confirmed := r.PostForm.Get("confirm") == "true"

	var (
		msg string
		err error
	)
	switch tab.ID {
	case service.TabCustomers:
		msg, err = h.svc.DeleteCustomer(r.Context(), id, confirmed)
	case service.TabAccounts:
		msg, err = h.svc.DeleteAccount(r.Context(), id, confirmed)
	case service.TabProducts:
		msg, err = h.svc.DeleteProduct(r.Context(), id, confirmed)
	}

	switch {
	case errors.Is(err, service.ErrNotConfirmed):
		content, lerr := h.loaders[tab.ID](r.Context(), middleware.SessionID(r.Context()), false)
		if lerr != nil {
			h.renderError(w, r, tab, lerr)
			return
		}
		h.renderPage(w, r, tab, withOverlay(content, view.Overlay{Confirm: view.ConfirmDelete(tab.ID, id)}))
	case err != nil:
		h.log.WithError(err).WithField("tab", tab.ID).Error("Failed to delete")
		h.redirectWithNotice(w, r, tab.ID, view.NoticeError, "Error deleting "+entityNames[tab.ID]+": "+failureText(err))
	default:
		h.redirectWithNotice(w, r, tab.ID, view.NoticeSuccess, msg)
	}
}

// ExportTransactions downloads the session's transactions as CSV
func (h *Handler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.svc.ExportTransactions(r.Context(), middleware.SessionID(r.Context()), &buf)
	switch {
	case errors.Is(err, service.ErrNothingToExport):
		h.redirectWithNotice(w, r, service.TabTransactions, view.NoticeError, err.Error())
		return
	case err != nil:
		h.log.WithError(err).Error("Failed to export transactions")
		h.redirectWithNotice(w, r, service.TabTransactions, view.NoticeError, loadFailure(err))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFilename(h.now())))
	w.Write(buf.Bytes())
}

// redirectWithNotice reloads the tab and shows the notice once
func (h *Handler) redirectWithNotice(w http.ResponseWriter, r *http.Request, tab, level, msg string) {
	setFlash(w, view.Notice{Level: level, Message: msg})
	http.Redirect(w, r, "/tab/"+tab, http.StatusSeeOther)
}

func withOverlay(content any, o view.Overlay) any {
	switch c := content.(type) {
	case view.CustomersPage:
		c.Overlay = o
		return c
	case view.AccountsPage:
		c.Overlay = o
		return c
	case view.ProductsPage:
		c.Overlay = o
		return c
	case view.TransactionsPage:
		c.Overlay = o
		return c
	}
	return content
}
