package service

import (
	"strconv"
	"strings"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
)

// FilterCustomers matches name, location and occupation
func FilterCustomers(customers []models.Customer, term string) []models.Customer {
	if term == "" {
		return customers
	}
	q := strings.ToLower(term)
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if containsFold(c.Name, q) || containsFold(c.Location, q) || containsFold(c.Occupation, q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterAccounts matches account type, customer id and account id
func FilterAccounts(accounts []models.Account, term string) []models.Account {
	if term == "" {
		return accounts
	}
	q := strings.ToLower(term)
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if containsFold(a.AccountType, q) || containsID(a.CustomerID, q) || strings.Contains(strconv.FormatInt(a.ID, 10), q) {
			out = append(out, a)
		}
	}
	return out
}

// FilterProducts matches name, category and sub-category
func FilterProducts(products []models.Product, term string) []models.Product {
	if term == "" {
		return products
	}
	q := strings.ToLower(term)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, q) || containsFold(p.Category, q) || containsFold(p.SubCategory, q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterTransactions matches type, merchant category, location, channel and account id,
// and keeps only transactions whose type equals txnType when txnType is set.
func FilterTransactions(txns []models.Transaction, term, txnType string) []models.Transaction {
	if term == "" && txnType == "" {
		return txns
	}
	q := strings.ToLower(term)
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		matchesSearch := q == "" ||
			containsFold(t.TxnType, q) ||
			containsFold(t.MerchantCategory, q) ||
			containsFold(t.GeoLocation, q) ||
			containsFold(t.Channel, q) ||
			containsID(t.AccountID, q)
		matchesType := txnType == "" || t.TxnType == txnType
		if matchesSearch && matchesType {
			out = append(out, t)
		}
	}
	return out
}

// containsFold expects q to be lower-cased already.
func containsFold(s, q string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), q)
}

func containsID(id *int64, q string) bool {
	return id != nil && strings.Contains(strconv.FormatInt(*id, 10), q)
}
