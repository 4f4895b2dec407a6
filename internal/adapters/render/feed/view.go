package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func RenderPosts(posts []domain.Post, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Blogify"),
			s.header.Render(fmt.Sprintf("posts: %d", len(posts))),
		}

		if len(posts) == 0 {
			lines = append(lines, s.empty.Render("No posts yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, post := range posts {
			lines = append(lines, s.section.Render(renderPostCard(post, opts, s)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderPost(post domain.Post, comments []domain.Comment, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.postTitle.Render(post.Title),
			s.byline.Render(byline(post, opts)),
		}

		if len(post.Tags) > 0 {
			lines = append(lines, s.tag.Render(tagLine(post.Tags)))
		}

		if body := strings.TrimSpace(post.Content); body != "" {
			lines = append(lines, s.section.Render(s.body.Render(body)))
		}

		lines = append(lines, s.section.Render(statsLine(post, s)))

		lines = append(lines, s.section.Render(s.header.Render(fmt.Sprintf("comments: %d", len(comments)))))
		if len(comments) == 0 {
			lines = append(lines, s.empty.Render("No comments yet."))
		}
		for _, comment := range comments {
			lines = append(lines, renderComment(comment, opts, s))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderCategories(categories []domain.Category, _ RenderOptions) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Categories"),
			s.header.Render(fmt.Sprintf("categories: %d", len(categories))),
		}

		if len(categories) == 0 {
			lines = append(lines, s.empty.Render("No categories available."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, category := range categories {
			line := s.postTitle.Render(category.Name) + " " + s.byline.Render("("+category.Slug+")")
			if category.Followed {
				line += " " + s.active.Render("[following]")
			}
			lines = append(lines, line)
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderCreators(profiles []domain.Profile, _ RenderOptions) (string, error) {
	return run(func(s styles) string {
		lines := []string{
			s.title.Render("Creators"),
			s.header.Render(fmt.Sprintf("creators: %d", len(profiles))),
		}

		if len(profiles) == 0 {
			lines = append(lines, s.empty.Render("No creators available."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, profile := range profiles {
			lines = append(lines, s.section.Render(renderCreator(profile, s)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderProfile(profile domain.Profile, _ RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderCreator(profile, s)
	})
}

func renderPostCard(post domain.Post, opts RenderOptions, s styles) string {
	title := s.postTitle.Render(post.Title)
	if post.Status == domain.PostDraft {
		title += " " + s.draft.Render("[draft]")
	}

	parts := []string{
		title,
		s.byline.Render(byline(post, opts)),
		statsLine(post, s),
	}

	if post.FirstComment != nil {
		parts = append(parts, renderComment(*post.FirstComment, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderComment(comment domain.Comment, opts RenderOptions, s styles) string {
	heart := fmt.Sprintf("likes %d", comment.Likes.Count)
	if comment.Likes.Active {
		heart += " (liked)"
	}

	return s.comment.Render(fmt.Sprintf("%s · %s · %s: %s",
		comment.Author, formatAge(comment.CreatedAt, opts.Now), heart, comment.Body))
}

func renderCreator(profile domain.Profile, s styles) string {
	name := s.postTitle.Render(profile.Username)
	if profile.Followed {
		name += " " + s.active.Render("[following]")
	}

	parts := []string{
		name,
		s.stats.Render(fmt.Sprintf("followers %d · following %d", profile.FollowersCount, profile.FollowingCount)),
	}

	if bio := strings.TrimSpace(profile.Bio); bio != "" {
		parts = append(parts, s.body.Render(bio))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func byline(post domain.Post, opts RenderOptions) string {
	line := "by " + post.Author
	if post.Category != "" {
		line += " in " + post.Category
	}
	return line + " · " + formatAge(post.CreatedAt, opts.Now)
}

func statsLine(post domain.Post, s styles) string {
	likes := fmt.Sprintf("likes %d", post.Likes.Count)
	if post.Likes.Active {
		likes = s.active.Render(likes + " (liked)")
	} else {
		likes = s.stats.Render(likes)
	}

	return likes + s.stats.Render(fmt.Sprintf(" · comments %d · %s", post.CommentsCount, post.Slug))
}

func tagLine(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, "#"+tag)
	}
	return strings.Join(parts, " ")
}

func formatAge(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "unknown"
	}
	if now.IsZero() || createdAt.After(now) {
		return createdAt.Format("02 Jan 2006")
	}

	age := now.Sub(createdAt)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		minutes := int(age.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case age < 24*time.Hour:
		hours := int(age.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case age < 30*24*time.Hour:
		days := int(age.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return createdAt.Format("02 Jan 2006")
	}
}
