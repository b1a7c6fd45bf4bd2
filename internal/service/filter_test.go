package service

import (
	"testing"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func id(n int64) *int64 { return &n }

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	customers := []models.Customer{{ID: 1}, {ID: 2}}
	assert.Equal(t, customers, FilterCustomers(customers, ""))

	accounts := []models.Account{{ID: 1}}
	assert.Equal(t, accounts, FilterAccounts(accounts, ""))

	products := []models.Product{{ID: 1}}
	assert.Equal(t, products, FilterProducts(products, ""))

	txns := []models.Transaction{{ID: 1}, {ID: 2}}
	assert.Equal(t, txns, FilterTransactions(txns, "", ""))
}

func TestFilterCustomers(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Asha Rao", Location: "Pune", Occupation: "Engineer"},
		{ID: 2, Name: "Ravi", Location: "Mumbai", Occupation: "Teacher"},
		{ID: 3, Name: "Meera"},
	}

	assert.Len(t, FilterCustomers(customers, "ASHA"), 1)
	assert.Len(t, FilterCustomers(customers, "mumbai"), 1)
	assert.Len(t, FilterCustomers(customers, "e"), 3)
	assert.Empty(t, FilterCustomers(customers, "zzz"))
}

func TestFilterAccounts(t *testing.T) {
	accounts := []models.Account{
		{ID: 101, CustomerID: id(7), AccountType: "Savings"},
		{ID: 202, CustomerID: id(12), AccountType: "Checking"},
		{ID: 303, AccountType: "Credit"},
	}

	assert.Len(t, FilterAccounts(accounts, "savings"), 1)
	assert.Len(t, FilterAccounts(accounts, "12"), 1)
	assert.Len(t, FilterAccounts(accounts, "30"), 1)
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{Name: "Gold Card", Category: "Credit", SubCategory: "Premium"},
		{Name: "Home Loan", Category: "Mortgage"},
	}
	assert.Len(t, FilterProducts(products, "premium"), 1)
	assert.Len(t, FilterProducts(products, "mort"), 1)
}

func TestFilterTransactions_TypeIsExactSubset(t *testing.T) {
	txns := []models.Transaction{
		{ID: 1, TxnType: "Credit", AccountID: id(5), Channel: "Mobile"},
		{ID: 2, TxnType: "Debit", AccountID: id(5), Channel: "ATM"},
		{ID: 3, TxnType: "Credit", AccountID: id(9), GeoLocation: "Delhi"},
		{ID: 4, TxnType: "credit"},
	}

	got := FilterTransactions(txns, "", "Credit")
	assert.Len(t, got, 2)
	for _, txn := range got {
		assert.Equal(t, "Credit", txn.TxnType)
	}

	assert.Len(t, FilterTransactions(txns, "delhi", "Credit"), 1)
	assert.Len(t, FilterTransactions(txns, "5", ""), 2)
	assert.Empty(t, FilterTransactions(txns, "mobile", "Debit"))
}
