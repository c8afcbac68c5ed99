package viewmodel

// User represents the authenticated user context exposed to templates.
type User struct {
	Name     string
	Email    string
	Role     string
	HomePath string
}

// NavItem is one entry of the role-specific navigation.
type NavItem struct {
	Page  string
	Label string
	Href  string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsHR            bool
	IsApplicant     bool
	User            *User
	Nav             []NavItem
	Notice          string
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
