package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/custlysis-dashboard/internal/integrations/backend"
	"github.com/Dan9191/custlysis-dashboard/internal/models"
)

// Backend resource paths
const (
	CustomersPath       = "/customers"
	AccountsPath        = "/accounts"
	ProductsPath        = "/products"
	TransactionsPath    = "/transactions"
	RecommendationsPath = "/recommendations/detailed"
)

// Repository provides backend operations per resource
type Repository struct {
	api *backend.Client
}

// NewRepository initializes a new repository
func NewRepository(api *backend.Client) *Repository {
	return &Repository{api: api}
}

// ListCustomers retrieves all customers
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := r.api.Get(ctx, CustomersPath, &customers); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return nonNil(customers), nil
}

// CreateCustomer creates a new customer
func (r *Repository) CreateCustomer(ctx context.Context, p *models.CustomerPayload) (*models.Customer, error) {
	customer := &models.Customer{}
	if err := r.api.Post(ctx, CustomersPath, p, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomer updates an existing customer
func (r *Repository) UpdateCustomer(ctx context.Context, id int64, p *models.CustomerPayload) (*models.Customer, error) {
	customer := &models.Customer{}
	if err := r.api.Put(ctx, itemPath(CustomersPath, id), p, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (r *Repository) DeleteCustomer(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, itemPath(CustomersPath, id)); err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	return nil
}

// ListAccounts retrieves all accounts
func (r *Repository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.api.Get(ctx, AccountsPath, &accounts); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return nonNil(accounts), nil
}

// CreateAccount creates a new account
func (r *Repository) CreateAccount(ctx context.Context, p *models.AccountPayload) (*models.Account, error) {
	account := &models.Account{}
	if err := r.api.Post(ctx, AccountsPath, p, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// UpdateAccount updates an existing account
func (r *Repository) UpdateAccount(ctx context.Context, id int64, p *models.AccountPayload) (*models.Account, error) {
	account := &models.Account{}
	if err := r.api.Put(ctx, itemPath(AccountsPath, id), p, account); err != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", id, err)
	}
	return account, nil
}

// DeleteAccount deletes an account
func (r *Repository) DeleteAccount(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, itemPath(AccountsPath, id)); err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return nil
}

// ListProducts retrieves all products
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.api.Get(ctx, ProductsPath, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return nonNil(products), nil
}

// CreateProduct creates a new product
func (r *Repository) CreateProduct(ctx context.Context, p *models.ProductPayload) (*models.Product, error) {
	product := &models.Product{}
	if err := r.api.Post(ctx, ProductsPath, p, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (r *Repository) UpdateProduct(ctx context.Context, id int64, p *models.ProductPayload) (*models.Product, error) {
	product := &models.Product{}
	if err := r.api.Put(ctx, itemPath(ProductsPath, id), p, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return product, nil
}

// DeleteProduct deletes a product
func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, itemPath(ProductsPath, id)); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// ListTransactions retrieves all transactions
func (r *Repository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.api.Get(ctx, TransactionsPath, &transactions); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return nonNil(transactions), nil
}

// CreateTransaction records a new transaction. Transactions cannot be updated or deleted.
func (r *Repository) CreateTransaction(ctx context.Context, p *models.TransactionPayload) (*models.Transaction, error) {
	txn := &models.Transaction{}
	if err := r.api.Post(ctx, TransactionsPath, p, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return txn, nil
}

// ListRecommendations retrieves the detailed recommendations produced by the model
func (r *Repository) ListRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	recs := []models.Recommendation{}
	if err := r.api.Get(ctx, RecommendationsPath, &recs); err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return nonNil(recs), nil
}

func itemPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}

// nonNil turns a JSON null list into an empty slice.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
