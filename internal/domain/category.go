package domain

type Category struct {
	ID       int64
	Name     string
	Slug     string
	Followed bool
}

func (c Category) Subject() SubjectKey {
	return SubjectKey{Kind: SubjectCategory, ID: c.Slug}
}
