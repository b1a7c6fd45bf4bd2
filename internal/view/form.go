package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/models"
	"github.com/Dan9191/custlysis-dashboard/internal/service"
	"github.com/Dan9191/custlysis-dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// Option is one entry of a select field
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is a single form input. Constraints map to native HTML validation attributes.
type Field struct {
	Name        string
	Label       string
	Type        string // text, number, date, datetime-local, select, textarea, checkbox
	Value       string
	Checked     bool
	Options     []Option
	Required    bool
	Min         string
	Max         string
	Step        string
	Placeholder string
	Rows        int
	Wide        bool
}

// Section groups fields under a heading
type Section struct {
	Title  string
	Fields []Field
}

// Form is a modal create/edit form
type Form struct {
	Title     string
	Action    string
	Submit    string
	CancelURL string
	Sections  []Section
}

// Confirm is the delete confirmation dialog
type Confirm struct {
	Message   string
	Action    string
	CancelURL string
}

type choice struct{ value, label string }

var (
	genders        = plain("Male", "Female", "Other")
	maritalStates  = plain("Single", "Married", "Divorced", "Widowed")
	educations     = []choice{{"High School", "High School"}, {"Bachelor", "Bachelor's Degree"}, {"Master", "Master's Degree"}, {"PhD", "PhD"}, {"Other", "Other"}}
	incomeBrackets = plain("$40K-$60K", "$50K-$70K", "$60K-$80K", "$70K-$90K", "$80K-$100K", "$90K-$120K", "$100K+")
	geoClusters    = plain("Urban East", "Urban West", "Urban Central", "Urban South", "Suburban", "Rural")
	riskLevels     = []choice{{"Low", "Low Risk"}, {"Medium", "Medium Risk"}, {"High", "High Risk"}}
	languages      = plain("English", "Spanish", "French", "German", "Chinese", "Other")

	accountTypes      = plain("Checking", "Savings", "Investment", "Credit", "Business")
	overdraftStates   = []choice{{"false", "Disabled"}, {"true", "Enabled"}}
	dormantStates     = []choice{{"false", "Active"}, {"true", "Dormant"}}
	productCategories = plain("Savings", "Checking", "Credit", "Investment", "Loan", "Mortgage", "Business")

	txnTypes = []choice{{"Credit", "Credit"}, {"Debit", "Debit"}, {"Transfer", "Transfer"}, {"ATM", "ATM Withdrawal"},
		{"Interest", "Interest Payment"}, {"Fee", "Fee"}, {"Refund", "Refund"}}
	channels = []choice{{"Online", "Online Banking"}, {"Mobile", "Mobile App"}, {"ATM", "ATM"}, {"Branch", "Branch"},
		{"Card", "Debit/Credit Card"}, {"ACH", "ACH Transfer"}, {"Wire", "Wire Transfer"}, {"System", "System Generated"}}
	merchantCategories = plain("Grocery Stores", "Gas Stations", "Restaurants", "Department Stores", "Online Shopping",
		"Healthcare", "Entertainment", "Transportation", "Utilities", "Insurance", "Education", "Payroll Deposit",
		"Interest Credit", "Cash Withdrawal", "Internal Transfer")
)

// TxnTypeFilters are the choices of the transaction type filter
var TxnTypeFilters = []string{"Credit", "Debit", "Transfer", "ATM", "Interest"}

func plain(values ...string) []choice {
	out := make([]choice, len(values))
	for i, v := range values {
		out[i] = choice{v, v}
	}
	return out
}

// options builds select options. An empty placeholder omits the blank entry.
func options(choices []choice, current, placeholder string) []Option {
	out := make([]Option, 0, len(choices)+1)
	if placeholder != "" {
		out = append(out, Option{Value: "", Label: placeholder, Selected: current == ""})
	}
	for _, c := range choices {
		out = append(out, Option{Value: c.value, Label: c.label, Selected: c.value == current})
	}
	return out
}

func floatValue(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func intValue(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func decimalValue(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func idValue(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func formTarget(base string, mode service.FormMode) string {
	if mode.IsEdit() {
		return fmt.Sprintf("%s/%d", base, mode.ID)
	}
	return base
}

// CustomerForm builds the customer modal. c may be nil in create mode.
func CustomerForm(mode service.FormMode, c *models.Customer) *Form {
	if c == nil {
		c = &models.Customer{}
	}
	lang := c.PreferredLanguage
	if lang == "" {
		lang = "English"
	}
	f := &Form{
		Title:     "Add Customer",
		Submit:    "Save Customer",
		Action:    formTarget("/tab/customers", mode),
		CancelURL: "/tab/customers",
	}
	if mode.IsEdit() {
		f.Title = "Edit Customer"
		f.Submit = "Update Customer"
	}
	f.Sections = []Section{
		{Title: "Personal Information", Fields: []Field{
			{Name: "name", Label: "Full Name", Type: "text", Value: c.Name, Required: true},
			{Name: "dob", Label: "Date of Birth", Type: "date", Value: dateValue(c.DOB)},
			{Name: "gender", Label: "Gender", Type: "select", Options: options(genders, c.Gender, "Select Gender")},
			{Name: "maritalStatus", Label: "Marital Status", Type: "select", Options: options(maritalStates, c.MaritalStatus, "Select Status")},
		}},
		{Title: "Professional Information", Fields: []Field{
			{Name: "educationalLevel", Label: "Education Level", Type: "select", Options: options(educations, c.EducationalLevel, "Select Education")},
			{Name: "occupation", Label: "Occupation", Type: "text", Value: c.Occupation, Placeholder: "e.g., Software Engineer"},
			{Name: "incomeBracket", Label: "Income Bracket", Type: "select", Options: options(incomeBrackets, c.IncomeBracket, "Select Income")},
			{Name: "tenureDays", Label: "Tenure (Days)", Type: "number", Value: intValue(c.TenureDays), Min: "0", Placeholder: "Days as customer"},
		}},
		{Title: "Location Information", Fields: []Field{
			{Name: "location", Label: "Location", Type: "text", Value: c.Location, Placeholder: "City, State"},
			{Name: "geoCluster", Label: "Geographic Cluster", Type: "select", Options: options(geoClusters, c.GeoCluster, "Select Cluster")},
		}},
		{Title: "Banking Profile", Fields: []Field{
			{Name: "digitalScore", Label: "Digital Score (0-100)", Type: "number", Value: floatValue(c.DigitalScore),
				Min: "0", Max: "100", Step: "0.1", Placeholder: "Digital engagement score"},
			{Name: "riskProfile", Label: "Risk Profile", Type: "select", Options: options(riskLevels, c.RiskProfile, "Select Risk Level")},
			{Name: "churnRiskScore", Label: "Churn Risk Score (0-100)", Type: "number", Value: floatValue(c.ChurnRiskScore),
				Min: "0", Max: "100", Step: "0.1", Placeholder: "Probability of leaving"},
			{Name: "preferredLanguage", Label: "Preferred Language", Type: "select", Options: options(languages, lang, "")},
		}},
	}
	return f
}

// AccountForm builds the account modal with a customer select
func AccountForm(mode service.FormMode, a *models.Account, customers []models.Customer) *Form {
	if a == nil {
		a = &models.Account{}
	}
	owners := make([]choice, 0, len(customers))
	for _, c := range customers {
		owners = append(owners, choice{strconv.FormatInt(c.ID, 10), fmt.Sprintf("%s (ID: %d)", c.Name, c.ID)})
	}
	f := &Form{
		Title:     "Add Account",
		Submit:    "Save Account",
		Action:    formTarget("/tab/accounts", mode),
		CancelURL: "/tab/accounts",
	}
	if mode.IsEdit() {
		f.Title = "Edit Account"
		f.Submit = "Update Account"
	}
	f.Sections = []Section{
		{Title: "Account Information", Fields: []Field{
			{Name: "customerId", Label: "Customer", Type: "select", Required: true, Options: options(owners, idValue(a.CustomerID), "Select Customer")},
			{Name: "accountType", Label: "Account Type", Type: "select", Required: true, Options: options(accountTypes, a.AccountType, "Select Type")},
		}},
		{Title: "Financial Information", Fields: []Field{
			{Name: "balance", Label: "Current Balance (₹)", Type: "number", Value: decimalValue(a.Balance), Step: "0.01", Placeholder: "0.00"},
			{Name: "avgMonthlyTxn", Label: "Avg Monthly Transactions (₹)", Type: "number", Value: decimalValue(a.AvgMonthlyTxn), Step: "0.01", Placeholder: "0.00"},
		}},
		{Title: "Account Settings", Fields: []Field{
			{Name: "overdraftEnabled", Label: "Overdraft Protection", Type: "select", Options: options(overdraftStates, strconv.FormatBool(a.OverdraftEnabled), "")},
			{Name: "tenureMonths", Label: "Account Tenure (Months)", Type: "number", Value: intValue(a.TenureMonths), Min: "0", Placeholder: "Months since opened"},
			{Name: "channelPreferences", Label: "Channel Preferences", Type: "text", Value: a.ChannelPreferences, Placeholder: "e.g., Online,Mobile,ATM"},
			{Name: "dormantFlag", Label: "Account Status", Type: "select", Options: options(dormantStates, strconv.FormatBool(a.DormantFlag), "")},
			{Name: "lastActiveDate", Label: "Last Active Date", Type: "datetime-local", Value: utils.DateTimeLocal(a.LastActiveDate)},
		}},
	}
	return f
}

// ProductForm builds the product modal
func ProductForm(mode service.FormMode, p *models.Product) *Form {
	if p == nil {
		p = &models.Product{}
	}
	f := &Form{
		Title:     "Add Product",
		Submit:    "Save Product",
		Action:    formTarget("/tab/products", mode),
		CancelURL: "/tab/products",
	}
	if mode.IsEdit() {
		f.Title = "Edit Product"
		f.Submit = "Update Product"
	}
	f.Sections = []Section{
		{Title: "Basic Information", Fields: []Field{
			{Name: "name", Label: "Product Name", Type: "text", Value: p.Name, Required: true},
			{Name: "category", Label: "Category", Type: "select", Required: true, Options: options(productCategories, p.Category, "Select Category")},
			{Name: "subCategory", Label: "Sub Category", Type: "text", Value: p.SubCategory, Placeholder: "e.g., High Yield, Premium, Standard"},
			{Name: "riskLevel", Label: "Risk Level", Type: "select", Options: options(riskLevels, p.RiskLevel, "Select Risk Level")},
		}},
		{Title: "Product Details", Fields: []Field{
			{Name: "features", Label: "Features", Type: "textarea", Value: p.Features, Rows: 3, Wide: true,
				Placeholder: "Describe the key features and benefits of this product"},
			{Name: "eligibilityRules", Label: "Eligibility Rules", Type: "textarea", Value: p.EligibilityRules, Rows: 2, Wide: true,
				Placeholder: "Define who is eligible for this product"},
		}},
		{Title: "Performance Metrics", Fields: []Field{
			{Name: "avgRating", Label: "Average Rating (1-5)", Type: "number", Value: floatValue(p.AvgRating), Min: "1", Max: "5", Step: "0.1", Placeholder: "4.5"},
			{Name: "popularityScore", Label: "Popularity Score (0-100)", Type: "number", Value: floatValue(p.PopularityScore), Min: "0", Max: "100", Step: "0.1", Placeholder: "85.5"},
		}},
	}
	return f
}

// TransactionForm builds the create-only transaction modal. The timestamp defaults to now.
func TransactionForm(accounts []models.Account, now time.Time) *Form {
	owned := make([]choice, 0, len(accounts))
	for _, a := range accounts {
		owned = append(owned, choice{
			strconv.FormatInt(a.ID, 10),
			fmt.Sprintf("Account %d - %s (Customer %s)", a.ID, a.AccountType, idValue(a.CustomerID)),
		})
	}
	return &Form{
		Title:     "Add Transaction",
		Submit:    "Record Transaction",
		Action:    "/tab/transactions",
		CancelURL: "/tab/transactions",
		Sections: []Section{
			{Title: "Transaction Details", Fields: []Field{
				{Name: "accountId", Label: "Account", Type: "select", Required: true, Options: options(owned, "", "Select Account")},
				{Name: "txnType", Label: "Transaction Type", Type: "select", Required: true, Options: options(txnTypes, "", "Select Type")},
				{Name: "amount", Label: "Amount (₹)", Type: "number", Step: "0.01", Required: true,
					Placeholder: "Enter amount (positive for credit, negative for debit)"},
				{Name: "channel", Label: "Channel", Type: "select", Options: options(channels, "", "Select Channel")},
			}},
			{Title: "Merchant & Location", Fields: []Field{
				{Name: "merchantCategory", Label: "Merchant Category", Type: "select", Options: options(merchantCategories, "", "Select Category")},
				{Name: "geoLocation", Label: "Location", Type: "text", Placeholder: "e.g., New York, NY or Online"},
			}},
			{Title: "Transaction Attributes", Fields: []Field{
				{Name: "txnScore", Label: "Transaction Score (0-100)", Type: "number", Min: "0", Max: "100", Step: "0.1", Placeholder: "Quality/Risk score"},
				{Name: "timestamp", Label: "Date & Time", Type: "datetime-local", Value: now.Format("2006-01-02T15:04")},
				{Name: "isRecurring", Label: "Recurring Transaction", Type: "checkbox"},
				{Name: "isHighValue", Label: "High Value Transaction", Type: "checkbox"},
			}},
		},
	}
}

var confirmMessages = map[string]string{
	service.TabCustomers: "Delete this customer?",
	service.TabAccounts:  "Delete this account? This action cannot be undone.",
	service.TabProducts:  "Delete this product? This action cannot be undone.",
}

// ConfirmDelete builds the confirmation dialog for deleting an entity of the given tab
func ConfirmDelete(tab string, id int64) *Confirm {
	return &Confirm{
		Message:   confirmMessages[tab],
		Action:    fmt.Sprintf("/tab/%s/%d/delete", tab, id),
		CancelURL: "/tab/" + tab,
	}
}

func dateValue(raw string) string {
	t, ok := utils.ParseTimestamp(raw)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
