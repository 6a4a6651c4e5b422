package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSiteFile(t *testing.T, siteDir, name, content string) {
	t.Helper()
	path := filepath.Join(siteDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestSite(t *testing.T) string {
	t.Helper()
	siteDir := t.TempDir()
	writeSiteFile(t, siteDir, SiteConfigFile, "title: Test Blog\nbase_url: https://example.com\n")
	writeSiteFile(t, siteDir, "posts/hello.md", `---
title: Hello World
date: 2026-02-01
---

First post body.
`)
	writeSiteFile(t, siteDir, "posts/second.md", `---
title: Second Post
date: 2026-02-10
---

Second post body.
`)
	writeSiteFile(t, siteDir, "static/style.css", "body { margin: 0; }\n")
	return siteDir
}

func newTestBuildService(siteDir string, git GitExecutor) (*BuildService, *MockBuildRepository) {
	buildRepo := &MockBuildRepository{}
	if git == nil {
		git = &MockGitExecutor{}
	}
	config := &Config{SiteDir: siteDir}
	return NewBuildService(buildRepo, git, config), buildRepo
}

func TestBuild_RendersSite(t *testing.T) {
	siteDir := newTestSite(t)
	service, buildRepo := newTestBuildService(siteDir, nil)

	result, err := service.Build()
	require.NoError(t, err)

	// Two posts plus the index
	assert.Equal(t, 3, result.PageCount)
	assert.Equal(t, filepath.Join(siteDir, "public"), result.OutputDir)

	index, err := os.ReadFile(filepath.Join(result.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Test Blog")
	assert.Contains(t, string(index), "/posts/hello-world/")
	assert.Contains(t, string(index), "/posts/second-post/")

	post, err := os.ReadFile(filepath.Join(result.OutputDir, "posts", "hello-world", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(post), "First post body.")

	style, err := os.ReadFile(filepath.Join(result.OutputDir, "style.css"))
	require.NoError(t, err)
	assert.Contains(t, string(style), "margin")

	require.Len(t, buildRepo.Builds, 1)
	assert.Equal(t, BuildStatusCompleted, buildRepo.Builds[0].Status)
	assert.Equal(t, 3, buildRepo.Builds[0].PageCount)
}

func TestBuild_IndexNewestFirst(t *testing.T) {
	siteDir := newTestSite(t)
	service, _ := newTestBuildService(siteDir, nil)

	result, err := service.Build()
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(result.OutputDir, "index.html"))
	require.NoError(t, err)

	content := string(index)
	assert.Less(t, strings.Index(content, "Second Post"), strings.Index(content, "Hello World"))
}

func TestBuild_SkipsDrafts(t *testing.T) {
	siteDir := newTestSite(t)
	writeSiteFile(t, siteDir, "posts/draft.md", "---\ntitle: Not Ready\ndraft: true\n---\nBody\n")
	service, _ := newTestBuildService(siteDir, nil)

	result, err := service.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, result.PageCount)
	_, statErr := os.Stat(filepath.Join(result.OutputDir, "posts", "not-ready"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuild_WritesBuildIdentifier(t *testing.T) {
	siteDir := newTestSite(t)
	git := &MockGitExecutor{
		IsRepositoryFunc: func(string) bool { return true },
		HeadCommitFunc:   func(string) (string, error) { return testBuildID, nil },
	}
	service, _ := newTestBuildService(siteDir, git)

	result, err := service.Build()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(result.OutputDir, BuildIDFile))
	require.NoError(t, err)
	assert.Equal(t, testBuildID+"\n", string(data))
	require.NotNil(t, result.CommitHash)
	assert.Equal(t, testBuildID, *result.CommitHash)
}

func TestBuild_NoRepositoryNoIdentifier(t *testing.T) {
	siteDir := newTestSite(t)
	service, _ := newTestBuildService(siteDir, nil)

	result, err := service.Build()
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(result.OutputDir, BuildIDFile))
	assert.True(t, os.IsNotExist(statErr))
	assert.Nil(t, result.CommitHash)
}

func TestBuild_RemovesStaleOutput(t *testing.T) {
	siteDir := newTestSite(t)
	writeSiteFile(t, siteDir, "public/posts/stale/index.html", "old\n")
	service, _ := newTestBuildService(siteDir, nil)

	result, err := service.Build()
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(result.OutputDir, "posts", "stale"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuild_BadPostFailsBuild(t *testing.T) {
	siteDir := newTestSite(t)
	writeSiteFile(t, siteDir, "posts/broken.md", "---\ntitle: [broken\n---\nBody\n")
	service, buildRepo := newTestBuildService(siteDir, nil)

	_, err := service.Build()
	require.Error(t, err)

	require.Len(t, buildRepo.Builds, 1)
	assert.Equal(t, BuildStatusFailed, buildRepo.Builds[0].Status)
}

func TestBuild_RefusesOutputDirAtSiteRoot(t *testing.T) {
	siteDir := newTestSite(t)
	writeSiteFile(t, siteDir, SiteConfigFile, "title: Test Blog\noutput_dir: .\n")
	service, buildRepo := newTestBuildService(siteDir, nil)

	_, err := service.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_dir")

	// The source tree is untouched
	_, statErr := os.Stat(filepath.Join(siteDir, "posts", "hello.md"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(siteDir, SiteConfigFile))
	assert.NoError(t, statErr)
	assert.Empty(t, buildRepo.Builds)
}

func TestBuild_MissingSiteConfig(t *testing.T) {
	service, buildRepo := newTestBuildService(t.TempDir(), nil)

	_, err := service.Build()
	require.Error(t, err)
	assert.Empty(t, buildRepo.Builds)
}

func TestBuild_UserTemplatesOverrideDefaults(t *testing.T) {
	siteDir := newTestSite(t)
	writeSiteFile(t, siteDir, "templates/layout.html",
		`{{define "header"}}CUSTOM HEADER{{end}}{{define "footer"}}{{end}}`)
	writeSiteFile(t, siteDir, "templates/index.html",
		`{{template "header" .}}{{range .Posts}}{{.Title}}{{end}}`)
	writeSiteFile(t, siteDir, "templates/post.html",
		`{{template "header" .}}{{.Post.Content}}`)
	service, _ := newTestBuildService(siteDir, nil)

	result, err := service.Build()
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(result.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "CUSTOM HEADER")
}
