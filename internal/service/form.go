package service

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// FormKind tells whether a submitted form creates or updates an entity
type FormKind int

const (
	FormCreate FormKind = iota
	FormEdit
)

// FormMode is the explicit create/edit discriminator passed to save operations
type FormMode struct {
	Kind FormKind
	ID   int64
}

// CreateMode returns the mode for a new entity
func CreateMode() FormMode { return FormMode{Kind: FormCreate} }

// EditMode returns the mode for updating the entity with the given id
func EditMode(id int64) FormMode { return FormMode{Kind: FormEdit, ID: id} }

// IsEdit reports whether the mode updates an existing entity
func (m FormMode) IsEdit() bool { return m.Kind == FormEdit }

// BindCustomer builds a customer payload from submitted form values
func BindCustomer(v url.Values) *models.CustomerPayload {
	lang := v.Get("preferredLanguage")
	if lang == "" {
		lang = "English"
	}
	return &models.CustomerPayload{
		Name:              optString(v, "name"),
		DOB:               optString(v, "dob"),
		Gender:            optString(v, "gender"),
		MaritalStatus:     optString(v, "maritalStatus"),
		EducationalLevel:  optString(v, "educationalLevel"),
		Occupation:        optString(v, "occupation"),
		IncomeBracket:     optString(v, "incomeBracket"),
		Location:          optString(v, "location"),
		GeoCluster:        optString(v, "geoCluster"),
		DigitalScore:      optFloat(v, "digitalScore"),
		RiskProfile:       optString(v, "riskProfile"),
		PreferredLanguage: lang,
		TenureDays:        intOr(v, "tenureDays", 0),
		ChurnRiskScore:    optFloat(v, "churnRiskScore"),
	}
}

// BindAccount builds an account payload from submitted form values
func BindAccount(v url.Values) *models.AccountPayload {
	return &models.AccountPayload{
		CustomerID:         optInt(v, "customerId"),
		AccountType:        optString(v, "accountType"),
		Balance:            decimalOr(v, "balance", decimal.Zero),
		AvgMonthlyTxn:      decimalOr(v, "avgMonthlyTxn", decimal.Zero),
		OverdraftEnabled:   v.Get("overdraftEnabled") == "true",
		TenureMonths:       intOr(v, "tenureMonths", 0),
		ChannelPreferences: optString(v, "channelPreferences"),
		DormantFlag:        v.Get("dormantFlag") == "true",
		LastActiveDate:     optString(v, "lastActiveDate"),
	}
}

// BindProduct builds a product payload from submitted form values
func BindProduct(v url.Values) *models.ProductPayload {
	return &models.ProductPayload{
		Name:             optString(v, "name"),
		Category:         optString(v, "category"),
		SubCategory:      optString(v, "subCategory"),
		Features:         optString(v, "features"),
		RiskLevel:        optString(v, "riskLevel"),
		EligibilityRules: optString(v, "eligibilityRules"),
		AvgRating:        optFloat(v, "avgRating"),
		PopularityScore:  optFloat(v, "popularityScore"),
	}
}

// BindTransaction builds a transaction payload from submitted form values.
// Checkbox flags are true only when the field was submitted at all.
func BindTransaction(v url.Values) *models.TransactionPayload {
	return &models.TransactionPayload{
		AccountID:        optInt(v, "accountId"),
		TxnType:          optString(v, "txnType"),
		Amount:           optDecimal(v, "amount"),
		Timestamp:        optString(v, "timestamp"),
		Channel:          optString(v, "channel"),
		MerchantCategory: optString(v, "merchantCategory"),
		GeoLocation:      optString(v, "geoLocation"),
		IsRecurring:      v.Has("isRecurring"),
		IsHighValue:      v.Has("isHighValue"),
		TxnScore:         optFloat(v, "txnScore"),
	}
}

func optString(v url.Values, key string) *string {
	s := v.Get(key)
	if s == "" {
		return nil
	}
	return &s
}

// Unparseable numbers count as absent.
func optFloat(v url.Values, key string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Get(key)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func optInt(v url.Values, key string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(v.Get(key)), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func intOr(v url.Values, key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.Get(key)))
	if err != nil {
		return def
	}
	return n
}

func optDecimal(v url.Values, key string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(v.Get(key)))
	if err != nil {
		return nil
	}
	return &d
}

func decimalOr(v url.Values, key string, def decimal.Decimal) decimal.Decimal {
	if d := optDecimal(v, key); d != nil {
		return *d
	}
	return def
}
