// Package assets loads model and texture files off the window thread and
// caches their GPU resources once uploaded.
package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupported = errors.New("unsupported asset type")
	ErrEmpty       = errors.New("empty asset file")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindModel
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindTexture:
		return "texture"
	}
	return "unknown"
}

// KindOf picks the asset kind from the file extension.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj", ".gltf", ".glb", ".iqm", ".m3d":
		return KindModel
	case ".png", ".jpg", ".jpeg", ".bmp", ".tga", ".gif", ".hdr":
		return KindTexture
	}
	return KindUnknown
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Result is a finished background read. Data holds the file contents for
// textures only; models are loaded again by path on upload, so their read
// just checks the file. Err is a *LoadError when the read failed.
type Result struct {
	Name string
	Path string
	Kind Kind
	Size int
	Data []byte
	Err  error
}

type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads asset files in goroutines. It never touches the GPU.
type Loader struct {
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, readFile: os.ReadFile}
}

// Load starts reading path and returns a channel that receives exactly one
// Result. If ctx is cancelled first the Result carries ctx's error.
func (l *Loader) Load(ctx context.Context, name, path string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		r := l.read(name, path)
		if err := ctx.Err(); err != nil && r.Err == nil {
			r = Result{Name: name, Path: path, Kind: r.Kind, Err: &LoadError{Name: name, Path: path, Err: err}}
		}
		if r.Err != nil {
			l.logger.Error("asset load failed", "name", name, "file", path, "error", r.Err)
		} else {
			l.logger.Debug("asset read", "name", name, "file", path, "kind", r.Kind, "bytes", r.Size)
		}
		out <- r
	}()
	return out
}

func (l *Loader) read(name, path string) Result {
	r := Result{Name: name, Path: path, Kind: KindOf(path)}
	fail := func(err error) Result {
		r.Err = &LoadError{Name: name, Path: path, Err: err}
		return r
	}
	if r.Kind == KindUnknown {
		return fail(ErrUnsupported)
	}
	data, err := l.readFile(path)
	if err != nil {
		return fail(err)
	}
	if len(data) == 0 {
		return fail(ErrEmpty)
	}
	r.Size = len(data)
	if r.Kind == KindTexture {
		r.Data = data
	}
	return r
}
