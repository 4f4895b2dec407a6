package domain

import "time"

type PostStatus string

const (
	PostPublished PostStatus = "published"
	PostDraft     PostStatus = "draft"
)

type Post struct {
	ID            int64
	Title         string
	Slug          string
	Author        string
	Category      string
	Content       string
	Tags          []string
	Status        PostStatus
	CreatedAt     time.Time
	Likes         Relationship
	CommentsCount int
	FirstComment  *Comment
}

func (p Post) Subject() SubjectKey {
	return SubjectKey{Kind: SubjectPost, ID: p.Slug}
}
