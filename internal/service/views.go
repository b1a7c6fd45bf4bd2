package service

import (
	"context"
	"net/url"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"golang.org/x/sync/errgroup"
)

// CustomersView is the state of the customers tab
type CustomersView struct {
	Customers []models.Customer
}

// Find returns the customer with the given id
func (v *CustomersView) Find(id int64) (*models.Customer, error) {
	for i := range v.Customers {
		if v.Customers[i].ID == id {
			return &v.Customers[i], nil
		}
	}
	return nil, NewNotFound("customer", id)
}

// AccountsView is the state of the accounts tab. Customers back the owner column and the account form.
type AccountsView struct {
	Accounts  []models.Account
	Customers []models.Customer
}

// CustomerLabel returns the owner name of an account. Unresolved owners render as "-".
func (v *AccountsView) CustomerLabel(id *int64) string {
	if id == nil {
		return "-"
	}
	for _, c := range v.Customers {
		if c.ID == *id && c.Name != "" {
			return c.Name
		}
	}
	return "-"
}

// Find returns the account with the given id
func (v *AccountsView) Find(id int64) (*models.Account, error) {
	for i := range v.Accounts {
		if v.Accounts[i].ID == id {
			return &v.Accounts[i], nil
		}
	}
	return nil, NewNotFound("account", id)
}

// ProductsView is the state of the products tab
type ProductsView struct {
	Products []models.Product
}

// Find returns the product with the given id
func (v *ProductsView) Find(id int64) (*models.Product, error) {
	for i := range v.Products {
		if v.Products[i].ID == id {
			return &v.Products[i], nil
		}
	}
	return nil, NewNotFound("product", id)
}

// TransactionsView is the state of the transactions tab. Accounts back the transaction form.
type TransactionsView struct {
	Transactions []models.Transaction
	Accounts     []models.Account
}

// DashboardView holds the entity counts of the dashboard tab
type DashboardView struct {
	Customers    int
	Accounts     int
	Products     int
	Transactions int
}

// LoadDashboard fetches all four collections concurrently and counts them
func (s *Service) LoadDashboard(ctx context.Context, session string) (*DashboardView, error) {
	s.enter(ctx, session)

	var (
		customers    []models.Customer
		accounts     []models.Account
		products     []models.Product
		transactions []models.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { customers, err = s.repo.ListCustomers(gctx); return })
	g.Go(func() (err error) { accounts, err = s.repo.ListAccounts(gctx); return })
	g.Go(func() (err error) { products, err = s.repo.ListProducts(gctx); return })
	g.Go(func() (err error) { transactions, err = s.repo.ListTransactions(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardView{
		Customers:    len(customers),
		Accounts:     len(accounts),
		Products:     len(products),
		Transactions: len(transactions),
	}, nil
}

// LoadCustomers fetches the customer list and replaces the session snapshot
func (s *Service) LoadCustomers(ctx context.Context, session string) (*CustomersView, error) {
	s.enter(ctx, session)
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, session, TabCustomers, customers)
	return &CustomersView{Customers: customers}, nil
}

// Customers returns the session's customer snapshot
func (s *Service) Customers(ctx context.Context, session string) (*CustomersView, error) {
	customers, err := cached(ctx, s, session, TabCustomers, s.repo.ListCustomers)
	if err != nil {
		return nil, err
	}
	return &CustomersView{Customers: customers}, nil
}

// LoadAccounts fetches accounts and customers concurrently and replaces the session snapshot
func (s *Service) LoadAccounts(ctx context.Context, session string) (*AccountsView, error) {
	s.enter(ctx, session)

	v := &AccountsView{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { v.Accounts, err = s.repo.ListAccounts(gctx); return })
	g.Go(func() (err error) { v.Customers, err = s.repo.ListCustomers(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.remember(ctx, session, TabAccounts, v.Accounts)
	s.remember(ctx, session, TabCustomers, v.Customers)
	return v, nil
}

// Accounts returns the session's account snapshot
func (s *Service) Accounts(ctx context.Context, session string) (*AccountsView, error) {
	accounts, err := cached(ctx, s, session, TabAccounts, s.repo.ListAccounts)
	if err != nil {
		return nil, err
	}
	customers, err := cached(ctx, s, session, TabCustomers, s.repo.ListCustomers)
	if err != nil {
		return nil, err
	}
	return &AccountsView{Accounts: accounts, Customers: customers}, nil
}

// LoadProducts fetches the product list and replaces the session snapshot
func (s *Service) LoadProducts(ctx context.Context, session string) (*ProductsView, error) {
	s.enter(ctx, session)
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, session, TabProducts, products)
	return &ProductsView{Products: products}, nil
}

// Products returns the session's product snapshot
func (s *Service) Products(ctx context.Context, session string) (*ProductsView, error) {
	products, err := cached(ctx, s, session, TabProducts, s.repo.ListProducts)
	if err != nil {
		return nil, err
	}
	return &ProductsView{Products: products}, nil
}

// LoadTransactions fetches transactions and accounts concurrently and replaces the session snapshot
func (s *Service) LoadTransactions(ctx context.Context, session string) (*TransactionsView, error) {
	s.enter(ctx, session)

	v := &TransactionsView{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { v.Transactions, err = s.repo.ListTransactions(gctx); return })
	g.Go(func() (err error) { v.Accounts, err = s.repo.ListAccounts(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.remember(ctx, session, TabTransactions, v.Transactions)
	s.remember(ctx, session, TabAccounts, v.Accounts)
	return v, nil
}

// Transactions returns the session's transaction snapshot
func (s *Service) Transactions(ctx context.Context, session string) (*TransactionsView, error) {
	txns, err := cached(ctx, s, session, TabTransactions, s.repo.ListTransactions)
	if err != nil {
		return nil, err
	}
	accounts, err := cached(ctx, s, session, TabAccounts, s.repo.ListAccounts)
	if err != nil {
		return nil, err
	}
	return &TransactionsView{Transactions: txns, Accounts: accounts}, nil
}

// CustomerRows returns the snapshot filtered by term
func (s *Service) CustomerRows(ctx context.Context, session, term string) (*CustomersView, error) {
	v, err := s.Customers(ctx, session)
	if err != nil {
		return nil, err
	}
	v.Customers = FilterCustomers(v.Customers, term)
	return v, nil
}

// AccountRows returns the snapshot filtered by term
func (s *Service) AccountRows(ctx context.Context, session, term string) (*AccountsView, error) {
	v, err := s.Accounts(ctx, session)
	if err != nil {
		return nil, err
	}
	v.Accounts = FilterAccounts(v.Accounts, term)
	return v, nil
}

// ProductRows returns the snapshot filtered by term
func (s *Service) ProductRows(ctx context.Context, session, term string) (*ProductsView, error) {
	v, err := s.Products(ctx, session)
	if err != nil {
		return nil, err
	}
	v.Products = FilterProducts(v.Products, term)
	return v, nil
}

// TransactionRows returns the snapshot filtered by term and transaction type
func (s *Service) TransactionRows(ctx context.Context, session, term, txnType string) (*TransactionsView, error) {
	v, err := s.Transactions(ctx, session)
	if err != nil {
		return nil, err
	}
	v.Transactions = FilterTransactions(v.Transactions, term, txnType)
	return v, nil
}

// SaveCustomer creates or updates a customer from submitted form values and returns the notification text
func (s *Service) SaveCustomer(ctx context.Context, mode FormMode, form url.Values) (string, error) {
	payload := BindCustomer(form)
	if mode.IsEdit() {
		if _, err := s.repo.UpdateCustomer(ctx, mode.ID, payload); err != nil {
			return "", err
		}
		s.log.Infof("Customer updated: %d", mode.ID)
		return "Customer updated successfully!", nil
	}

	customer, err := s.repo.CreateCustomer(ctx, payload)
	if err != nil {
		return "", err
	}
	s.log.Infof("Customer created: %d", customer.ID)
	return "Customer created successfully!", nil
}

// DeleteCustomer deletes a customer once the user has confirmed
func (s *Service) DeleteCustomer(ctx context.Context, id int64, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrNotConfirmed
	}
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return "", err
	}
	s.log.Infof("Customer deleted: %d", id)
	return "Customer deleted!", nil
}

// SaveAccount creates or updates an account from submitted form values
func (s *Service) SaveAccount(ctx context.Context, mode FormMode, form url.Values) (string, error) {
	payload := BindAccount(form)
	if mode.IsEdit() {
		if _, err := s.repo.UpdateAccount(ctx, mode.ID, payload); err != nil {
			return "", err
		}
		s.log.Infof("Account updated: %d", mode.ID)
		return "Account updated successfully!", nil
	}

	account, err := s.repo.CreateAccount(ctx, payload)
	if err != nil {
		return "", err
	}
	s.log.Infof("Account created: %d", account.ID)
	return "Account created successfully!", nil
}

// DeleteAccount deletes an account once the user has confirmed
func (s *Service) DeleteAccount(ctx context.Context, id int64, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrNotConfirmed
	}
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return "", err
	}
	s.log.Infof("Account deleted: %d", id)
	return "Account deleted successfully!", nil
}

// SaveProduct creates or updates a product from submitted form values
func (s *Service) SaveProduct(ctx context.Context, mode FormMode, form url.Values) (string, error) {
	payload := BindProduct(form)
	if mode.IsEdit() {
		if _, err := s.repo.UpdateProduct(ctx, mode.ID, payload); err != nil {
			return "", err
		}
		s.log.Infof("Product updated: %d", mode.ID)
		return "Product updated successfully!", nil
	}

	product, err := s.repo.CreateProduct(ctx, payload)
	if err != nil {
		return "", err
	}
	s.log.Infof("Product created: %d", product.ID)
	return "Product created successfully!", nil
}

// DeleteProduct deletes a product once the user has confirmed
func (s *Service) DeleteProduct(ctx context.Context, id int64, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrNotConfirmed
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return "", err
	}
	s.log.Infof("Product deleted: %d", id)
	return "Product deleted successfully!", nil
}

// RecordTransaction creates a transaction from submitted form values
func (s *Service) RecordTransaction(ctx context.Context, form url.Values) (string, error) {
	txn, err := s.repo.CreateTransaction(ctx, BindTransaction(form))
	if err != nil {
		return "", err
	}
	s.log.Infof("Transaction recorded: %d", txn.ID)
	return "Transaction recorded successfully!", nil
}
