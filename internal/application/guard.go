package application

import "github.com/aitaprogrammer/blogify-cli/internal/domain"

type Decision string

const (
	// DecisionPending means the persisted session has not been checked yet.
	// Callers render a neutral waiting state; redirecting here would flash
	// an anonymous user to the login view before resolution.
	DecisionPending Decision = "pending"

	DecisionAllow    Decision = "allow"
	DecisionRedirect Decision = "redirect"
)

const loginRoute = "/login"

type Admission struct {
	Decision   Decision
	RedirectTo string
}

// Guard admits or redirects navigation based on live session state. Every
// Admit call consults the session again; decisions are never cached, so a
// logout while a protected view is open redirects the next check.
type Guard struct {
	session *Session
}

func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

func (g *Guard) Admit(requireAuth bool) Admission {
	switch g.session.Current() {
	case domain.StateResolving:
		return Admission{Decision: DecisionPending}
	case domain.StateAuthenticated:
		return Admission{Decision: DecisionAllow}
	default:
		if !requireAuth {
			return Admission{Decision: DecisionAllow}
		}
		return Admission{Decision: DecisionRedirect, RedirectTo: loginRoute}
	}
}
