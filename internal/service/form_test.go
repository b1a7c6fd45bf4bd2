package service

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestBindCustomer_AbsentFields(t *testing.T) {
	body := encode(t, BindCustomer(url.Values{"name": {"Asha"}, "digitalScore": {""}, "tenureDays": {"abc"}}))

	assert.Equal(t, "Asha", body["name"])
	assert.Nil(t, body["dob"])
	assert.Nil(t, body["digitalScore"])
	assert.Nil(t, body["churnRiskScore"])
	assert.Equal(t, "English", body["preferredLanguage"])
	assert.EqualValues(t, 0, body["tenureDays"])
}

func TestBindCustomer_Numbers(t *testing.T) {
	p := BindCustomer(url.Values{"digitalScore": {"72.5"}, "churnRiskScore": {"0.3"}, "tenureDays": {"400"}, "preferredLanguage": {"Hindi"}})

	require.NotNil(t, p.DigitalScore)
	assert.Equal(t, 72.5, *p.DigitalScore)
	assert.Equal(t, 0.3, *p.ChurnRiskScore)
	assert.Equal(t, 400, p.TenureDays)
	assert.Equal(t, "Hindi", p.PreferredLanguage)
}

func TestBindAccount(t *testing.T) {
	body := encode(t, BindAccount(url.Values{
		"customerId":       {"12"},
		"balance":          {"-50.25"},
		"overdraftEnabled": {"true"},
		"dormantFlag":      {"false"},
	}))

	assert.EqualValues(t, 12, body["customerId"])
	assert.Equal(t, -50.25, body["balance"])
	assert.EqualValues(t, 0, body["avgMonthlyTxn"])
	assert.EqualValues(t, 0, body["tenureMonths"])
	assert.Equal(t, true, body["overdraftEnabled"])
	assert.Equal(t, false, body["dormantFlag"])
	assert.Nil(t, body["accountType"])
	assert.Nil(t, body["lastActiveDate"])
}

func TestBindAccount_MissingCustomer(t *testing.T) {
	p := BindAccount(url.Values{"customerId": {""}})
	assert.Nil(t, p.CustomerID)
	assert.False(t, p.OverdraftEnabled)
}

func TestBindProduct(t *testing.T) {
	p := BindProduct(url.Values{"name": {"Gold"}, "avgRating": {"4.5"}, "popularityScore": {"x"}})

	assert.Equal(t, "Gold", *p.Name)
	assert.Equal(t, 4.5, *p.AvgRating)
	assert.Nil(t, p.PopularityScore)
	assert.Nil(t, p.Category)
}

func TestBindTransaction_CheckboxPresence(t *testing.T) {
	p := BindTransaction(url.Values{"accountId": {"3"}, "amount": {"100.10"}, "isHighValue": {"on"}})

	assert.Equal(t, int64(3), *p.AccountID)
	assert.Equal(t, "100.1", p.Amount.String())
	assert.True(t, p.IsHighValue)
	assert.False(t, p.IsRecurring)
	assert.Nil(t, p.TxnScore)

	empty := encode(t, BindTransaction(url.Values{}))
	assert.Nil(t, empty["amount"])
	assert.Nil(t, empty["accountId"])
	assert.Equal(t, false, empty["isRecurring"])
}

func TestBind_NonFiniteNumbersAreAbsent(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Infinity"} {
		t.Run(raw, func(t *testing.T) {
			customer := BindCustomer(url.Values{"digitalScore": {raw}, "churnRiskScore": {raw}})
			assert.Nil(t, customer.DigitalScore)
			assert.Nil(t, customer.ChurnRiskScore)

			body := encode(t, BindProduct(url.Values{"avgRating": {raw}}))
			assert.Nil(t, body["avgRating"])

			txn := BindTransaction(url.Values{"txnScore": {raw}})
			assert.Nil(t, txn.TxnScore)
		})
	}
}

func TestBind_WhitespaceStringsAreKept(t *testing.T) {
	p := BindProduct(url.Values{"name": {"  "}, "category": {""}})
	require.NotNil(t, p.Name)
	assert.Equal(t, "  ", *p.Name)
	assert.Nil(t, p.Category)
}

func TestFormMode(t *testing.T) {
	assert.False(t, CreateMode().IsEdit())
	m := EditMode(9)
	assert.True(t, m.IsEdit())
	assert.Equal(t, int64(9), m.ID)
}
