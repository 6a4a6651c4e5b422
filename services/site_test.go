package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSiteConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SiteConfigFile), []byte(content), 0o644))
}

func TestLoadSiteConfig(t *testing.T) {
	dir := t.TempDir()
	writeSiteConfig(t, dir, `
title: My Blog
base_url: https://blog.example.com
author: Jane Doe
description: Notes on things
`)

	config, err := LoadSiteConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "My Blog", config.Title)
	assert.Equal(t, "https://blog.example.com", config.BaseURL)
	assert.Equal(t, "Jane Doe", config.Author)
	assert.Equal(t, "posts", config.PostsDir)
	assert.Equal(t, "static", config.StaticDir)
	assert.Equal(t, "public", config.OutputDir)
}

func TestLoadSiteConfig_CustomDirs(t *testing.T) {
	dir := t.TempDir()
	writeSiteConfig(t, dir, `
title: My Blog
posts_dir: content
static_dir: assets
output_dir: dist
`)

	config, err := LoadSiteConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "content", config.PostsDir)
	assert.Equal(t, "assets", config.StaticDir)
	assert.Equal(t, "dist", config.OutputDir)
}

func TestLoadSiteConfig_RejectsUnsafeOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
	}{
		{name: "site root", outputDir: "."},
		{name: "site root with trailing slash", outputDir: "./"},
		{name: "parent directory", outputDir: ".."},
		{name: "escapes via cleaning", outputDir: "dist/../.."},
		{name: "cleans to site root", outputDir: "dist/.."},
		{name: "absolute path", outputDir: "/tmp/out"},
		{name: "posts directory", outputDir: "posts"},
		{name: "static directory", outputDir: "static"},
		{name: "templates directory", outputDir: "templates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSiteConfig(t, dir, "title: My Blog\noutput_dir: \""+tt.outputDir+"\"\n")

			_, err := LoadSiteConfig(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "output_dir")
		})
	}
}

func TestLoadSiteConfig_NestedOutputDirAllowed(t *testing.T) {
	dir := t.TempDir()
	writeSiteConfig(t, dir, "title: My Blog\noutput_dir: build/site\n")

	config, err := LoadSiteConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "build/site", config.OutputDir)
}

func TestLoadSiteConfig_MissingTitle(t *testing.T) {
	dir := t.TempDir()
	writeSiteConfig(t, dir, "author: Jane Doe\n")

	_, err := LoadSiteConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestLoadSiteConfig_MissingFile(t *testing.T) {
	_, err := LoadSiteConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadSiteConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeSiteConfig(t, dir, "title: [unclosed\n")

	_, err := LoadSiteConfig(dir)
	assert.Error(t, err)
}
