package domain

import (
	"strconv"
	"time"
)

// Comment is only ever created from a server confirmation: the client never
// fabricates one with a placeholder id before the backend assigns it.
type Comment struct {
	ID        int64
	PostSlug  string
	Author    string
	Body      string
	CreatedAt time.Time
	Likes     Relationship
}

func (c Comment) Subject() SubjectKey {
	return SubjectKey{Kind: SubjectComment, ID: strconv.FormatInt(c.ID, 10)}
}
