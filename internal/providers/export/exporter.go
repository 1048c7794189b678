// Package export turns a rendered document into a shareable file.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/billkhata/billkhata/internal/config"
	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handle identifies an exported document on disk.
type Handle struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type Exporter interface {
	// Export writes the document under a name derived from label and returns
	// the handle. A failed export leaves no partial file behind.
	Export(ctx context.Context, label string, document string) (Handle, error)
}

type FileExporter struct {
	dir string
	log *zap.Logger
}

func NewFileExporter(cfg config.Config, log *zap.Logger) Exporter {
	return &FileExporter{
		dir: cfg.ShareDir,
		log: log.Named("export"),
	}
}

func (e *FileExporter) Export(ctx context.Context, label string, document string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Handle{}, fmt.Errorf("create share dir: %w", err)
	}

	id := ulid.Make().String()
	name := slug.Make(label)
	if name == "" {
		name = "invoice"
	}
	filename := name + "-" + strings.ToLower(id) + ".html"
	path := filepath.Join(e.dir, filename)

	// Write to a temp file first so a failure never leaves a partial
	// document under the final name.
	tmp, err := os.CreateTemp(e.dir, filename+".tmp")
	if err != nil {
		return Handle{}, err
	}
	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return Handle{}, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return Handle{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return Handle{}, err
	}

	e.log.Info("document exported", zap.String("id", id), zap.String("path", path))
	return Handle{ID: id, Filename: filename, Path: path}, nil
}

var Module = fx.Module("export",
	fx.Provide(NewFileExporter),
)
