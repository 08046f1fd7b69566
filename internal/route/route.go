// Package route holds the static route table shared by the access gate and
// every page that generates links.
//
// Paths are centralized here so classification stays a pure function of the
// table: handlers should use the Path constants instead of string literals.
package route

import "strings"

// Logical page paths.
const (
	Home           = "/"
	Login          = "/login"
	Register       = "/register"
	Dashboard      = "/dashboard"
	Team           = "/dashboard/team"
	Investment     = "/dashboard/investment"
	Income         = "/dashboard/income"
	Assets         = "/dashboard/assets"
	Profile        = "/dashboard/profile"
	Support        = "/dashboard/support"
	Subscription   = "/dashboard/subscription"
	Maintenance    = "/maintenance"
	LinkAccount    = "/link-account"
	Privacy        = "/privacy"
	Terms          = "/terms"
	UserAgreement  = "/user-agreement"
	ResetPassword  = "/reset-password"
	Verify         = "/verify"
	UpdatePassword = "/update-password"
)

// Logout is a form action, not a page, so it is absent from Table and
// classifies as public.
const Logout = "/logout"

// Table maps logical route names to their paths.
var Table = map[string]string{
	"home":            Home,
	"login":           Login,
	"register":        Register,
	"dashboard":       Dashboard,
	"team":            Team,
	"investment":      Investment,
	"income":          Income,
	"assets":          Assets,
	"profile":         Profile,
	"support":         Support,
	"subscription":    Subscription,
	"maintenance":     Maintenance,
	"link-account":    LinkAccount,
	"privacy":         Privacy,
	"terms":           Terms,
	"user-agreement":  UserAgreement,
	"reset-password":  ResetPassword,
	"verify":          Verify,
	"update-password": UpdatePassword,
}

// Kind classifies a requested path for access control.
type Kind int

const (
	KindPublic Kind = iota
	KindMaintenance
	KindAuth
	KindProtected
)

func (k Kind) String() string {
	switch k {
	case KindMaintenance:
		return "maintenance-page"
	case KindAuth:
		return "auth-page"
	case KindProtected:
		return "protected-page"
	default:
		return "public-page"
	}
}

// Prefixes lists the path prefixes that put a request into each prefix-matched
// kind. Maintenance is matched exactly and is not listed here.
var Prefixes = map[Kind][]string{
	KindAuth: {Login, Register},
	KindProtected: {
		Dashboard,
		Team,
		Investment,
		Income,
		Assets,
		Profile,
		Support,
		Subscription,
	},
}

// Classify returns the kind of the requested path.
//
// The maintenance page matches exactly; auth and protected pages match by
// prefix, so nested paths such as /dashboard/settings count as protected.
func Classify(path string) Kind {
	if path == Maintenance {
		return KindMaintenance
	}
	if hasAnyPrefix(path, Prefixes[KindAuth]) {
		return KindAuth
	}
	if hasAnyPrefix(path, Prefixes[KindProtected]) {
		return KindProtected
	}
	return KindPublic
}

// Name returns the logical name registered for path, or "" if the path is not
// in the table.
func Name(path string) string {
	for name, p := range Table {
		if p == path {
			return name
		}
	}
	return ""
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
