package services

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// BuildIDFile is written into the output directory so the serving image
// carries the identifier of the build it was produced from.
const BuildIDFile = ".build-id"

// BuildService renders the blog source tree into a directory of static files
type BuildService struct {
	buildRepo BuildRepository
	git       GitExecutor
	config    *Config
	md        goldmark.Markdown
}

func NewBuildService(buildRepo BuildRepository, git GitExecutor, config *Config) *BuildService {
	return &BuildService{
		buildRepo: buildRepo,
		git:       git,
		config:    config,
		// Posts are the author's own content, so raw inline HTML is allowed
		md: goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe())),
	}
}

// BuildResult summarizes a completed site build
type BuildResult struct {
	OutputDir  string
	PageCount  int
	CommitHash *string
	Duration   time.Duration
}

// Build renders the whole site. Any unreadable or unparsable input aborts the
// build; a partial output directory is never reported as success.
func (s *BuildService) Build() (*BuildResult, error) {
	started := time.Now()

	site, err := LoadSiteConfig(s.config.SiteDir)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(s.config.SiteDir, site.OutputDir)

	build := NewBuild(outputDir)
	if s.git.IsRepository(s.config.SiteDir) {
		if hash, err := s.git.HeadCommit(s.config.SiteDir); err == nil {
			build.CommitHash = &hash
		} else {
			slog.Warn("Failed to read HEAD of site repository", "error", err)
		}
	}

	if err := s.buildRepo.Create(&build); err != nil {
		return nil, fmt.Errorf("recording build: %w", err)
	}

	result, err := s.render(site, outputDir, &build)
	if err != nil {
		build.Status = BuildStatusFailed
	} else {
		build.Status = BuildStatusCompleted
		build.PageCount = result.PageCount
	}
	if updateErr := s.buildRepo.Update(&build); updateErr != nil {
		slog.Error("Failed to update build record", "build_id", build.ID, "error", updateErr)
	}
	if err != nil {
		return nil, err
	}

	result.CommitHash = build.CommitHash
	result.Duration = time.Since(started)

	slog.Info("Site build completed",
		"output_dir", result.OutputDir,
		"pages", result.PageCount,
		"commit", build.CommitHashStr(),
		"duration", result.Duration)
	return result, nil
}

func (s *BuildService) render(site *SiteConfig, outputDir string, build *Build) (*BuildResult, error) {
	posts, err := s.loadPosts(filepath.Join(s.config.SiteDir, site.PostsDir))
	if err != nil {
		return nil, err
	}

	templates, err := s.loadTemplates()
	if err != nil {
		return nil, err
	}

	// Start from an empty output directory so removed posts disappear
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to clean output directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	pageCount := 0
	for _, post := range posts {
		if err := s.writePost(templates, site, post, outputDir); err != nil {
			return nil, err
		}
		pageCount++
	}

	if err := s.writeIndex(templates, site, posts, outputDir); err != nil {
		return nil, err
	}
	pageCount++

	if err := s.copyStatic(filepath.Join(s.config.SiteDir, site.StaticDir), outputDir); err != nil {
		return nil, err
	}

	if build.CommitHash != nil {
		idFile := filepath.Join(outputDir, BuildIDFile)
		if err := os.WriteFile(idFile, []byte(*build.CommitHash+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write build identifier: %w", err)
		}
	}

	return &BuildResult{OutputDir: outputDir, PageCount: pageCount}, nil
}

// History returns all recorded builds, newest first.
func (s *BuildService) History() ([]*Build, error) {
	return s.buildRepo.List()
}

// loadPosts parses all posts, drops drafts and sorts newest first
func (s *BuildService) loadPosts(postsDir string) ([]*Post, error) {
	entries, err := os.ReadDir(postsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts directory %s: %w", postsDir, err)
	}

	var posts []*Post
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".md", ".markdown", ".html":
		default:
			continue
		}

		path := filepath.Join(postsDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read post %s: %w", path, err)
		}

		post, err := ParsePost(path, data, s.md)
		if err != nil {
			return nil, err
		}
		if post.Draft {
			slog.Debug("Skipping draft post", "path", path)
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

// loadTemplates loads the site's own templates when present, otherwise the
// embedded defaults
func (s *BuildService) loadTemplates() (*template.Template, error) {
	userDir := filepath.Join(s.config.SiteDir, "templates")
	if info, err := os.Stat(userDir); err == nil && info.IsDir() {
		templates, err := template.ParseGlob(filepath.Join(userDir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse site templates: %w", err)
		}
		return templates, nil
	}

	templates, err := template.ParseFS(defaultTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse default templates: %w", err)
	}
	return templates, nil
}

type indexData struct {
	Site  *SiteConfig
	Posts []*Post
}

type postData struct {
	Site *SiteConfig
	Post *Post
}

func (s *BuildService) writeIndex(templates *template.Template, site *SiteConfig, posts []*Post, outputDir string) error {
	path := filepath.Join(outputDir, "index.html")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := templates.ExecuteTemplate(file, "index.html", indexData{Site: site, Posts: posts}); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

func (s *BuildService) writePost(templates *template.Template, site *SiteConfig, post *Post, outputDir string) error {
	postDir := filepath.Join(outputDir, "posts", post.Slug)
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", postDir, err)
	}

	path := filepath.Join(postDir, "index.html")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := templates.ExecuteTemplate(file, "post.html", postData{Site: site, Post: post}); err != nil {
		return fmt.Errorf("failed to render post %s: %w", post.SourcePath, err)
	}
	return nil
}

// copyStatic copies the static assets directory into the output directory.
// A missing static directory is not an error.
func (s *BuildService) copyStatic(staticDir, outputDir string) error {
	info, err := os.Stat(staticDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat static directory %s: %w", staticDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static path %s is not a directory", staticDir)
	}

	if err := os.CopyFS(outputDir, os.DirFS(staticDir)); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}
