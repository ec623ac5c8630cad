package assets

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager caches GPU resources by file path. Uploads must run on the window
// thread; the upload functions are injected so the cache can be exercised
// without a GL context.
type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D

	uploadModel   func(path string) (rl.Model, error)
	uploadTexture func(path string, data []byte) (rl.Texture2D, error)
	unloadModel   func(rl.Model)
	unloadTexture func(rl.Texture2D)
}

type ManagerOption func(*Manager)

// WithUploaders replaces the raylib upload calls.
func WithUploaders(model func(path string) (rl.Model, error), texture func(path string, data []byte) (rl.Texture2D, error)) ManagerOption {
	return func(m *Manager) {
		m.uploadModel = model
		m.uploadTexture = texture
	}
}

// WithUnloaders replaces the raylib unload calls.
func WithUnloaders(model func(rl.Model), texture func(rl.Texture2D)) ManagerOption {
	return func(m *Manager) {
		m.unloadModel = model
		m.unloadTexture = texture
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		models:        make(map[string]rl.Model),
		textures:      make(map[string]rl.Texture2D),
		uploadModel:   loadModel,
		uploadTexture: loadTexture,
		unloadModel:   rl.UnloadModel,
		unloadTexture: rl.UnloadTexture,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func loadModel(path string) (rl.Model, error) {
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return model, fmt.Errorf("no meshes in %s", path)
	}
	return model, nil
}

func loadTexture(path string, data []byte) (rl.Texture2D, error) {
	img := rl.LoadImageFromMemory(extension(path), data, int32(len(data)))
	if img == nil || img.Data == nil {
		return rl.Texture2D{}, fmt.Errorf("decode image %s", path)
	}
	defer rl.UnloadImage(img)
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return tex, fmt.Errorf("upload texture %s", path)
	}
	return tex, nil
}

// Upload moves a finished load onto the GPU and caches it. A failed load or
// upload comes back as a *LoadError. Uploading a cached path is a no-op.
func (m *Manager) Upload(r Result) error {
	if r.Err != nil {
		return r.Err
	}
	switch r.Kind {
	case KindModel:
		if _, ok := m.models[r.Path]; ok {
			return nil
		}
		model, err := m.uploadModel(r.Path)
		if err != nil {
			return &LoadError{Name: r.Name, Path: r.Path, Err: err}
		}
		m.models[r.Path] = model
	case KindTexture:
		if _, ok := m.textures[r.Path]; ok {
			return nil
		}
		tex, err := m.uploadTexture(r.Path, r.Data)
		if err != nil {
			return &LoadError{Name: r.Name, Path: r.Path, Err: err}
		}
		m.textures[r.Path] = tex
	default:
		return &LoadError{Name: r.Name, Path: r.Path, Err: ErrUnsupported}
	}
	return nil
}

func (m *Manager) Model(path string) (rl.Model, bool) {
	model, ok := m.models[path]
	return model, ok
}

func (m *Manager) Texture(path string) (rl.Texture2D, bool) {
	tex, ok := m.textures[path]
	return tex, ok
}

// Len returns the number of cached resources.
func (m *Manager) Len() int {
	return len(m.models) + len(m.textures)
}

func (m *Manager) Unload() {
	for _, model := range m.models {
		m.unloadModel(model)
	}
	for _, tex := range m.textures {
		m.unloadTexture(tex)
	}
	m.models = make(map[string]rl.Model)
	m.textures = make(map[string]rl.Texture2D)
}
