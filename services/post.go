package services

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Post is a single rendered blog post
type Post struct {
	Title      string
	Date       time.Time
	Tags       []string
	Draft      bool
	Slug       string
	SourcePath string
	Content    template.HTML
}

// Permalink returns the post's path relative to the site root
func (p *Post) Permalink() string {
	return "/posts/" + p.Slug + "/"
}

type frontmatter struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
	Draft bool     `yaml:"draft"`
	Slug  string   `yaml:"slug"`
}

var frontmatterDelimiter = []byte("---")

// splitFrontmatter separates an optional leading yaml frontmatter block
// (fenced by "---" lines) from the post body
func splitFrontmatter(data []byte) (head, body []byte, err error) {
	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // strip BOM
	if !bytes.HasPrefix(trimmed, frontmatterDelimiter) {
		return nil, trimmed, nil
	}

	rest := trimmed[len(frontmatterDelimiter):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		// A line starting with --- but not a frontmatter fence
		return nil, trimmed, nil
	}
	rest = rest[1:]

	end := bytes.Index(rest, []byte("\n---"))
	if end == -1 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}

	head = rest[:end]
	body = rest[end+len("\n---"):]
	body = bytes.TrimLeft(body, "\r\n")
	return head, body, nil
}

// dateLayouts are the date formats accepted in post frontmatter
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parsePostDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ParsePost parses a single Markdown or HTML post file into a Post.
// Any malformed frontmatter or unrenderable body is a hard error: the build
// aborts rather than publishing a partial site.
func ParsePost(path string, data []byte, md goldmark.Markdown) (*Post, error) {
	head, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}

	var fm frontmatter
	if len(head) > 0 {
		if err := yaml.Unmarshal(head, &fm); err != nil {
			return nil, fmt.Errorf("post %s: invalid frontmatter: %w", path, err)
		}
	}

	post := &Post{
		Title:      fm.Title,
		Tags:       fm.Tags,
		Draft:      fm.Draft,
		SourcePath: path,
	}

	if fm.Date != "" {
		date, err := parsePostDate(fm.Date)
		if err != nil {
			return nil, fmt.Errorf("post %s: %w", path, err)
		}
		post.Date = date
	}

	if post.Title == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		post.Title = strings.ReplaceAll(base, "-", " ")
	}

	if fm.Slug != "" {
		post.Slug = slug.Make(fm.Slug)
	} else {
		post.Slug = slug.Make(post.Title)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".md", ".markdown":
		var buf bytes.Buffer
		if err := md.Convert(body, &buf); err != nil {
			return nil, fmt.Errorf("post %s: markdown rendering failed: %w", path, err)
		}
		post.Content = template.HTML(buf.String())
	case ".html":
		post.Content = template.HTML(body)
	default:
		return nil, fmt.Errorf("post %s: unsupported extension %q", path, ext)
	}

	return post, nil
}
