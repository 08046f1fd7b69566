package dashboard

import (
	"github.com/DukeRupert/memberhub/internal/domain"
	"github.com/DukeRupert/memberhub/internal/templ/components/pagination"
)

// SectionPageData contains data for a dashboard section page.
type SectionPageData struct {
	Path        string // Current section path, used to highlight the sidebar
	Title       string
	Description string
	CSRFToken   string
}

// SupportPageData contains data for the support ticket list.
type SupportPageData struct {
	Tickets    []domain.Ticket
	Navigator  *pagination.Navigator
	Pagination pagination.Config
	CSRFToken  string
}
