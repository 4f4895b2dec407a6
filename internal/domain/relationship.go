package domain

import "fmt"

type SubjectKind string

const (
	SubjectPost     SubjectKind = "post"
	SubjectComment  SubjectKind = "comment"
	SubjectCategory SubjectKind = "category"
	SubjectProfile  SubjectKind = "profile"
)

// SubjectKey identifies one toggleable entity across list and detail views.
// The ID is the backend's lookup value for the kind: a slug for posts and
// categories, a numeric id for comments, a username for profiles.
type SubjectKey struct {
	Kind SubjectKind
	ID   string
}

func (k SubjectKey) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.ID)
}

// Relationship is the boolean relation between the current identity and a
// subject, paired with the subject's aggregate count. Count never goes below
// zero.
type Relationship struct {
	Active bool
	Count  int
}

// Toggled returns the inverse relationship: activating increments the count,
// deactivating decrements it with a floor of zero.
func (r Relationship) Toggled() Relationship {
	if r.Active {
		next := Relationship{Active: false, Count: r.Count - 1}
		if next.Count < 0 {
			next.Count = 0
		}
		return next
	}

	return Relationship{Active: true, Count: r.Count + 1}
}

// ToggleOutcome is the server's authoritative answer to a toggle mutation.
// HasCount is false when the endpoint reports only the active flag (category
// and profile follows); the caller keeps its optimistic count in that case.
type ToggleOutcome struct {
	Active   bool
	Count    int
	HasCount bool
}
