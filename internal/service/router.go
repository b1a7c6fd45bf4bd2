package service

// Tab identifiers
const (
	TabDashboard       = "dashboard"
	TabCustomers       = "customers"
	TabAccounts        = "accounts"
	TabProducts        = "products"
	TabTransactions    = "transactions"
	TabCampaigns       = "campaigns"
	TabAnalytics       = "analytics"
	TabRecommendations = "recommendations"
)

// Tab is a top-level navigation section
type Tab struct {
	ID    string
	Title string
	Label string
	Icon  string
}

// NavItem is a tab as shown in the sidebar
type NavItem struct {
	Tab
	Active bool
}

var tabs = []Tab{
	{ID: TabDashboard, Title: "Dashboard", Label: "Dashboard", Icon: "fa-tachometer-alt"},
	{ID: TabCustomers, Title: "Customer Management", Label: "Customers", Icon: "fa-users"},
	{ID: TabAccounts, Title: "Account Overview", Label: "Accounts", Icon: "fa-university"},
	{ID: TabProducts, Title: "Product Management", Label: "Products", Icon: "fa-box"},
	{ID: TabTransactions, Title: "Transaction History", Label: "Transactions", Icon: "fa-exchange-alt"},
	{ID: TabCampaigns, Title: "Marketing Campaigns", Label: "Campaigns", Icon: "fa-bullhorn"},
	{ID: TabAnalytics, Title: "Analytics & Reports", Label: "Analytics", Icon: "fa-chart-line"},
	{ID: TabRecommendations, Title: "AI Recommendations", Label: "Recommendations", Icon: "fa-robot"},
}

// Tabs returns all tabs in navigation order
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// ResolveTab maps a tab identifier to its tab. Unknown identifiers resolve to the dashboard.
func ResolveTab(id string) Tab {
	for _, t := range tabs {
		if t.ID == id {
			return t
		}
	}
	return tabs[0]
}

// Nav returns the sidebar items with the resolved tab highlighted
func Nav(active string) []NavItem {
	current := ResolveTab(active).ID
	items := make([]NavItem, 0, len(tabs))
	for _, t := range tabs {
		items = append(items, NavItem{Tab: t, Active: t.ID == current})
	}
	return items
}
