package rest

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
)

type identitySchema struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s identitySchema) toDomain() domain.Identity {
	return domain.Identity{
		ID:       s.ID,
		Username: s.Username,
		Email:    s.Email,
	}
}

// loginEnvelope covers the backend's nested login payload. Some deployments
// return the identity flat instead; normalizeLogin tries both shapes so only
// one Identity shape exists past this adapter.
type loginEnvelope struct {
	Message   string          `json:"message"`
	CSRFToken string          `json:"csrf_token"`
	User      *identitySchema `json:"user"`
}

func normalizeLogin(body []byte) (domain.Identity, string, error) {
	var envelope loginEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.User != nil {
		return envelope.User.toDomain(), envelope.CSRFToken, nil
	}

	var flat identitySchema
	if err := json.Unmarshal(body, &flat); err != nil {
		return domain.Identity{}, "", err
	}

	return flat.toDomain(), envelope.CSRFToken, nil
}

type userSchema struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type commentSchema struct {
	ID         int64  `json:"id"`
	Author     string `json:"author"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
	LikesCount int    `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}

func (s commentSchema) toDomain(slug string) domain.Comment {
	return domain.Comment{
		ID:        s.ID,
		PostSlug:  slug,
		Author:    s.Author,
		Body:      s.Body,
		CreatedAt: parseTime(s.CreatedAt),
		Likes:     domain.Relationship{Active: s.IsLiked, Count: s.LikesCount},
	}
}

type postSchema struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Slug   string     `json:"slug"`
	Author userSchema `json:"author"`

	// The list serializer flattens the category to its name while the
	// detail serializer nests the full object; accept both.
	Category json.RawMessage `json:"category"`

	Content       string         `json:"content"`
	Tags          []string       `json:"tags"`
	TagNames      []string       `json:"tag_names"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"created_at"`
	LikesCount    int            `json:"likes_count"`
	IsLiked       bool           `json:"is_liked"`
	CommentsCount int            `json:"comments_count"`
	FirstComment  *commentSchema `json:"first_comment"`
}

func (s postSchema) toDomain() domain.Post {
	post := domain.Post{
		ID:            s.ID,
		Title:         s.Title,
		Slug:          s.Slug,
		Author:        s.Author.Username,
		Category:      normalizeCategoryName(s.Category),
		Content:       s.Content,
		Tags:          s.Tags,
		Status:        domain.PostStatus(s.Status),
		CreatedAt:     parseTime(s.CreatedAt),
		Likes:         domain.Relationship{Active: s.IsLiked, Count: s.LikesCount},
		CommentsCount: s.CommentsCount,
	}

	if len(post.Tags) == 0 {
		post.Tags = s.TagNames
	}

	if s.FirstComment != nil {
		first := s.FirstComment.toDomain(s.Slug)
		post.FirstComment = &first
	}

	return post
}

func normalizeCategoryName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}

	var nested struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return nested.Name
	}

	return ""
}

type categorySchema struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	IsFollowed bool   `json:"is_followed"`
}

func (s categorySchema) toDomain() domain.Category {
	return domain.Category{
		ID:       s.ID,
		Name:     s.Name,
		Slug:     s.Slug,
		Followed: s.IsFollowed,
	}
}

type profileSchema struct {
	ID             int64  `json:"id"`
	User           string `json:"user"`
	Bio            string `json:"bio"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	IsFollowed     bool   `json:"is_followed"`
}

func (s profileSchema) toDomain() domain.Profile {
	return domain.Profile{
		ID:             s.ID,
		Username:       s.User,
		Bio:            s.Bio,
		FollowersCount: s.FollowersCount,
		FollowingCount: s.FollowingCount,
		Followed:       s.IsFollowed,
	}
}

// toggleSchema covers both like responses ({is_liked, likes_count}) and
// follow responses ({is_followed} with no count).
type toggleSchema struct {
	IsLiked    *bool `json:"is_liked"`
	IsFollowed *bool `json:"is_followed"`
	LikesCount *int  `json:"likes_count"`
}

func (s toggleSchema) toDomain() domain.ToggleOutcome {
	outcome := domain.ToggleOutcome{}

	switch {
	case s.IsLiked != nil:
		outcome.Active = *s.IsLiked
	case s.IsFollowed != nil:
		outcome.Active = *s.IsFollowed
	}

	if s.LikesCount != nil {
		outcome.Count = *s.LikesCount
		outcome.HasCount = true
	}

	return outcome
}

func parseTime(raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
