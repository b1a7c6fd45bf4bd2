package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dan9191/custlysis-dashboard/internal/health"
	"github.com/Dan9191/custlysis-dashboard/internal/service"
	"github.com/Dan9191/custlysis-dashboard/internal/utils"
)

//go:embed templates static
var assets embed.FS

// Notice levels
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// Notice is a transient, dismissible notification
type Notice struct {
	Level   string
	Message string
}

// Page is the data of a full page render
type Page struct {
	Tab      service.Tab
	Nav      []service.NavItem
	Notice   *Notice
	Error    string
	RetryURL string
	Content  any
}

// Overlay holds the modal shown on top of an entity tab, if any
type Overlay struct {
	Form    *Form
	Confirm *Confirm
}

// DashboardPage is the content of the dashboard tab
type DashboardPage struct {
	View   *service.DashboardView
	Status health.Status
}

// CustomersPage is the content of the customers tab
type CustomersPage struct {
	View *service.CustomersView
	Overlay
}

// AccountsPage is the content of the accounts tab
type AccountsPage struct {
	View *service.AccountsView
	Overlay
}

// ProductsPage is the content of the products tab
type ProductsPage struct {
	View *service.ProductsView
	Overlay
}

// TransactionsPage is the content of the transactions tab
type TransactionsPage struct {
	View          *service.TransactionsView
	TypeFilters   []string
	ExportEnabled bool
	Overlay
}

var tableTemplates = map[string]string{
	service.TabCustomers:    "customer_table",
	service.TabAccounts:     "account_table",
	service.TabProducts:     "product_table",
	service.TabTransactions: "transaction_table",
}

// Renderer executes the embedded templates
type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
}

// NewRenderer parses the layout, the partials and one template set per tab
func NewRenderer() (*Renderer, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, tab := range service.Tabs() {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", tab.ID, err)
		}
		if _, err := set.ParseFS(assets, "templates/pages/"+tab.ID+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse %s page: %w", tab.ID, err)
		}
		pages[tab.ID] = set
	}
	return &Renderer{base: base, pages: pages}, nil
}

// Page renders a full page for p.Tab
func (r *Renderer) Page(w io.Writer, p *Page) error {
	set, ok := r.pages[p.Tab.ID]
	if !ok {
		return fmt.Errorf("no page template for tab %q", p.Tab.ID)
	}
	return set.ExecuteTemplate(w, "layout", p)
}

// Rows renders only the table region of an entity tab
func (r *Renderer) Rows(w io.Writer, tab string, data any) error {
	name, ok := tableTemplates[tab]
	if !ok {
		return fmt.Errorf("tab %q has no table", tab)
	}
	return r.base.ExecuteTemplate(w, name, data)
}

// HasRows reports whether the tab has a filterable table region
func HasRows(tab string) bool {
	_, ok := tableTemplates[tab]
	return ok
}

// Static serves the embedded stylesheet and script under /static/
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

var funcs = template.FuncMap{
	"money":      utils.FormatMoney,
	"signed":     utils.FormatSignedAmount,
	"stars":      utils.Stars,
	"width":      utils.ScoreWidth,
	"pct":        utils.Percent,
	"points":     utils.PercentPoints,
	"truncate":   utils.Truncate,
	"lower":      strings.ToLower,
	"count":      count,
	"num":        num,
	"ref":        ref,
	"date":       func(raw string) string { return orDash(utils.FormatDate(raw)) },
	"clock":      utils.FormatClock,
	"conversion": service.ConversionRate,
	"rowActions": func(tab string, id int64) RowActions { return RowActions{Tab: tab, ID: id} },
	"card":       card,
}

// RowActions is the data of the edit/delete buttons of a table row
type RowActions struct {
	Tab string
	ID  int64
}

// StatCard is a summary tile
type StatCard struct {
	Label string
	Value string
	Icon  string
	Class string
	Note  string
}

func card(label, value, icon, class, note string) StatCard {
	return StatCard{Label: label, Value: value, Icon: icon, Class: class, Note: note}
}

func count(v any) string {
	switch n := v.(type) {
	case int:
		return utils.FormatCount(n)
	case int64:
		return utils.FormatCount(int(n))
	default:
		return fmt.Sprint(v)
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ref(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
