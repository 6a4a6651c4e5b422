package services

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/client"
)

// siteRootInImage is where the web server in the image expects the site
const siteRootInImage = "/usr/share/nginx/html"

// ImageService packages the generated site into a serving container image.
// Content is baked in at build time; updating the site means rebuilding the
// image.
type ImageService struct {
	cli    *client.Client
	config *Config
}

func NewImageService(config *Config) (*ImageService, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &ImageService{
		cli:    cli,
		config: config,
	}, nil
}

// Close closes the Docker client
func (s *ImageService) Close() error {
	if s.cli != nil {
		return s.cli.Close()
	}
	return nil
}

// BuildImage builds the serving image from the generated static files and
// tags it with the build identifier. Any build step failure aborts with no
// image tagged.
func (s *ImageService) BuildImage(ctx context.Context, outputDir, buildID string) (string, error) {
	if buildID == "" {
		buildID = "latest"
	}
	ref := s.config.ImageRepository + ":" + buildID

	buildContext, err := createBuildContext(outputDir, s.config.BaseImage)
	if err != nil {
		return "", err
	}

	slog.Info("Building serving image", "ref", ref, "output_dir", outputDir)

	response, err := s.cli.ImageBuild(ctx, buildContext, build.ImageBuildOptions{
		Tags:           []string{ref},
		Remove:         true,
		ForceRemove:    true,
		SuppressOutput: false,
	})
	if err != nil {
		return "", fmt.Errorf("image build failed to start: %w", err)
	}
	defer response.Body.Close()

	if err := streamBuildOutput(response.Body); err != nil {
		return "", fmt.Errorf("image build failed: %w", err)
	}

	slog.Info("Serving image built", "ref", ref)
	return ref, nil
}

// streamBuildOutput consumes the daemon's JSON message stream, surfacing
// build step output and the first reported error
func streamBuildOutput(body io.Reader) error {
	type buildMessage struct {
		Stream string `json:"stream"`
		Error  string `json:"error"`
	}

	decoder := json.NewDecoder(body)
	for {
		var message buildMessage
		if err := decoder.Decode(&message); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode build output: %w", err)
		}
		if message.Error != "" {
			return fmt.Errorf("%s", message.Error)
		}
		if line := strings.TrimRight(message.Stream, "\n"); line != "" {
			slog.Info(line)
		}
	}
}

// GenerateDockerfile returns the build recipe for the serving image
func GenerateDockerfile(baseImage string) string {
	return fmt.Sprintf(`FROM %s
COPY nginx.conf /etc/nginx/conf.d/default.conf
COPY public/ %s/
EXPOSE 80
`, baseImage, siteRootInImage)
}

// GenerateNginxConfig returns the web server configuration for the image
func GenerateNginxConfig() string {
	return fmt.Sprintf(`server {
    listen 80;
    server_name _;
    root %s;
    index index.html;

    location / {
        try_files $uri $uri/ =404;
    }
}
`, siteRootInImage)
}

// createBuildContext assembles an in-memory tar archive containing the
// Dockerfile, the web server configuration and the generated site under
// public/
func createBuildContext(outputDir, baseImage string) (io.Reader, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	if err := addTarFile(tw, "Dockerfile", []byte(GenerateDockerfile(baseImage))); err != nil {
		return nil, err
	}
	if err := addTarFile(tw, "nginx.conf", []byte(GenerateNginxConfig())); err != nil {
		return nil, err
	}

	err := filepath.WalkDir(outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(outputDir, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		return addTarFile(tw, filepath.ToSlash(filepath.Join("public", rel)), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble build context: %w", err)
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize build context: %w", err)
	}
	return &buf, nil
}

func addTarFile(tw *tar.Writer, name string, data []byte) error {
	header := &tar.Header{
		Name: name,
		Mode: 0o644,
		Size: int64(len(data)),
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write tar header for %s: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("failed to write tar entry for %s: %w", name, err)
	}
	return nil
}
