package feed

import (
	"testing"
	"time"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPostsListsEveryPost(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	output, err := RenderPosts([]domain.Post{
		{
			Title:         "Hello Go",
			Slug:          "hello-go",
			Author:        "alice",
			Category:      "Go",
			Status:        domain.PostPublished,
			CreatedAt:     now.Add(-2 * 24 * time.Hour),
			Likes:         domain.Relationship{Active: true, Count: 3},
			CommentsCount: 2,
			FirstComment: &domain.Comment{
				Author:    "bob",
				Body:      "Nice",
				CreatedAt: now.Add(-time.Hour),
				Likes:     domain.Relationship{Count: 1},
			},
		},
		{
			Title:     "Work in progress",
			Slug:      "wip",
			Author:    "alice",
			Status:    domain.PostDraft,
			CreatedAt: now.Add(-30 * time.Minute),
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "posts: 2")
	assert.Contains(t, output, "Hello Go")
	assert.Contains(t, output, "by alice in Go · 2 days ago")
	assert.Contains(t, output, "likes 3 (liked)")
	assert.Contains(t, output, "comments 2")
	assert.Contains(t, output, "bob · 1 hour ago · likes 1: Nice")
	assert.Contains(t, output, "[draft]")
	assert.Contains(t, output, "30 minutes ago")
}

func TestRenderPostsEmptyFeed(t *testing.T) {
	output, err := RenderPosts(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "posts: 0")
	assert.Contains(t, output, "No posts yet.")
}

func TestRenderPostDetailShowsBodyTagsAndComments(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	output, err := RenderPost(domain.Post{
		Title:     "Hello Go",
		Slug:      "hello-go",
		Author:    "alice",
		Category:  "Go",
		Content:   "Concurrency is not parallelism.",
		Tags:      []string{"go", "talks"},
		Status:    domain.PostPublished,
		CreatedAt: now.Add(-3 * time.Hour),
		Likes:     domain.Relationship{Count: 5},
	}, []domain.Comment{
		{Author: "bob", Body: "first", CreatedAt: now.Add(-2 * time.Hour)},
		{Author: "carol", Body: "second", CreatedAt: now.Add(-time.Hour), Likes: domain.Relationship{Active: true, Count: 2}},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Hello Go")
	assert.Contains(t, output, "#go #talks")
	assert.Contains(t, output, "Concurrency is not parallelism.")
	assert.Contains(t, output, "comments: 2")
	assert.Contains(t, output, "bob · 2 hours ago · likes 0: first")
	assert.Contains(t, output, "carol · 1 hour ago · likes 2 (liked): second")
}

func TestRenderPostWithoutCommentsShowsPlaceholder(t *testing.T) {
	output, err := RenderPost(domain.Post{Title: "Quiet", Slug: "quiet", Author: "alice"}, nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "comments: 0")
	assert.Contains(t, output, "No comments yet.")
}

func TestRenderCategoriesMarksFollowed(t *testing.T) {
	output, err := RenderCategories([]domain.Category{
		{Name: "Go", Slug: "go", Followed: true},
		{Name: "Databases", Slug: "databases"},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "categories: 2")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "(go)")
	assert.Contains(t, output, "[following]")
	assert.Contains(t, output, "Databases")
}

func TestRenderCreatorsShowsCountsAndBio(t *testing.T) {
	output, err := RenderCreators([]domain.Profile{
		{Username: "alice", Bio: "writes Go", FollowersCount: 10, FollowingCount: 4, Followed: true},
		{Username: "bob"},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "creators: 2")
	assert.Contains(t, output, "alice")
	assert.Contains(t, output, "followers 10 · following 4")
	assert.Contains(t, output, "writes Go")
	assert.Contains(t, output, "[following]")
	assert.Contains(t, output, "bob")
}

func TestFormatAgeBuckets(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "seconds ago", at: now.Add(-10 * time.Second), want: "just now"},
		{name: "one minute", at: now.Add(-90 * time.Second), want: "1 minute ago"},
		{name: "hours", at: now.Add(-5 * time.Hour), want: "5 hours ago"},
		{name: "days", at: now.Add(-3 * 24 * time.Hour), want: "3 days ago"},
		{name: "old posts use the date", at: now.Add(-90 * 24 * time.Hour), want: "16 May 2026"},
		{name: "zero time", at: time.Time{}, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAge(tt.at, now))
		})
	}
}
