// Package session owns one viewer run: the scene, the panel, input, camera,
// assets and the window loop.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"diorama/internal/assets"
	"diorama/internal/camera"
	"diorama/internal/config"
	"diorama/internal/diorama"
	"diorama/internal/input"
	"diorama/internal/panel"
	"diorama/internal/render"
	"diorama/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// Frame is the per-tick context handed to Tick.
type Frame struct {
	Index     uint64
	DeltaTime float32
}

type Session struct {
	cfg    config.Config
	logger *slog.Logger

	Diorama  *diorama.Diorama
	Panel    *panel.Panel
	Animator panel.Animator
	Keyboard *input.Keyboard
	Camera   *camera.OrbitCamera
	Assets   *assets.Manager
	Loader   *assets.Loader
	UI       *ui.UI

	renderer *render.Renderer
	pending  map[string]<-chan assets.Result
	reloads  <-chan config.Config
	selected bool
	frames   uint64

	tickMs float64
	drawMs float64
}

type Option func(*Session)

// WithAssetManager replaces the GPU-backed asset cache.
func WithAssetManager(m *assets.Manager) Option {
	return func(s *Session) {
		s.Assets = m
	}
}

// WithConfigUpdates feeds reloaded configs into the session.
func WithConfigUpdates(ch <-chan config.Config) Option {
	return func(s *Session) {
		s.reloads = ch
	}
}

func New(cfg config.Config, logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		cfg:      cfg,
		logger:   logger,
		Keyboard: input.NewKeyboard(),
		Loader:   assets.NewLoader(logger),
		pending:  make(map[string]<-chan assets.Result),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Assets == nil {
		s.Assets = assets.NewManager()
	}

	speeds, err := animationParams(cfg.Animation)
	if err != nil {
		logger.Warn("using default animation speeds", "error", err)
		speeds = panel.DefaultAnimationParams()
	}
	s.Diorama = diorama.Build(&s.Keyboard.Flags, diorama.WithAssets(cfg.Assets))
	s.Panel = panel.New(s.Diorama.Root,
		panel.WithLogger(logger),
		panel.WithAnimationDefaults(speeds),
	)
	s.Camera = camera.New(diorama.CameraPosition, s.Diorama.CameraTarget)
	s.Camera.Fovy = diorama.CameraFovy
	s.UI = ui.New(s.Panel, logger)
	s.Keyboard.OverlaysToggled.AddListener(s.UI.ToggleOverlays)
	s.Diorama.Scene.Start()
	return s
}

// LoadAssets starts the background reads for every file the scene needs.
func (s *Session) LoadAssets(ctx context.Context) {
	for name, path := range s.Diorama.Assets() {
		if path == "" {
			continue
		}
		s.pending[name] = s.Loader.Load(ctx, name, path)
	}
}

// WatchConfig starts reloading path on change.
func (s *Session) WatchConfig(ctx context.Context, path string) error {
	ch, err := config.Watch(ctx, path, s.logger)
	if err != nil {
		return err
	}
	s.reloads = ch
	return nil
}

// Pending reports how many asset loads have not finished.
func (s *Session) Pending() int {
	return len(s.pending)
}

// Tick advances the scene by one frame. It touches no window state, so it is
// safe to drive from tests.
func (s *Session) Tick(f Frame) {
	start := time.Now()

	s.drainConfig()
	s.drainAssets()
	s.selectDefault()

	toggles := s.Panel.ToggleParams()
	anim := s.Panel.AnimationParams()

	s.Diorama.Scene.Update(f.DeltaTime)
	s.Panel.Apply()
	s.Diorama.ApplyToggles(toggles)
	s.Animator.Advance(anim)
	s.Diorama.ApplyAnimation(&s.Animator)

	s.tickMs = float64(time.Since(start).Microseconds()) / 1000.0
}

func (s *Session) drainConfig() {
	if s.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-s.reloads:
		if !ok {
			s.reloads = nil
			return
		}
		s.cfg = cfg
		speeds, err := animationParams(cfg.Animation)
		if err != nil {
			s.logger.Warn("reloaded animation speeds ignored", "error", err)
			return
		}
		s.Panel.EditAnimation(func(a *panel.AnimationParams) { *a = speeds })
		s.logger.Info("animation speeds reloaded",
			"orbit", speeds.OrbitSpeed, "rotational", speeds.RotationalSpeed)
	default:
	}
}

// animationParams maps the config section onto the panel bag by field name.
func animationParams(a config.Animation) (panel.AnimationParams, error) {
	var p panel.AnimationParams
	if err := copier.Copy(&p, &a); err != nil {
		return panel.DefaultAnimationParams(), fmt.Errorf("animation config: %w", err)
	}
	return p, nil
}

func (s *Session) drainAssets() {
	if len(s.pending) == 0 {
		return
	}
	defer func() {
		if len(s.pending) == 0 {
			s.logger.Info("assets settled", "cached", s.Assets.Len())
		}
	}()
	for name, ch := range s.pending {
		select {
		case r, ok := <-ch:
			delete(s.pending, name)
			if !ok {
				continue
			}
			s.finishLoad(r)
		default:
		}
	}
}

func (s *Session) finishLoad(r assets.Result) {
	if err := s.Assets.Upload(r); err != nil {
		s.logger.Error("asset unavailable", "name", r.Name, "file", r.Path, "error", err)
		return
	}
	n, err := s.Diorama.Attach(r)
	if err != nil {
		s.logger.Error("asset not attached", "name", r.Name, "error", err)
		return
	}
	if n != nil {
		s.logger.Info("asset attached", "name", n.Name, "file", r.Path)
	}
}

// selectDefault binds the configured object once every load has settled,
// falling back to the first selectable node.
func (s *Session) selectDefault() {
	if s.selected || len(s.pending) > 0 {
		return
	}
	s.selected = true
	if s.Panel.Selected() != nil {
		return
	}
	name := s.cfg.Scene.DefaultSelection
	if name != "" {
		err := s.Panel.Select(name)
		if err == nil {
			return
		}
		s.logger.Warn("default selection unavailable", "name", name, "error", err)
	}
	if err := s.Panel.SelectFirst(); err != nil {
		s.logger.Warn("nothing to select", "error", err)
	}
}

// Run opens the window and drives the frame loop until the window closes or
// ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	w := s.cfg.Window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open window %dx%d", w.Width, w.Height)
	}
	rl.SetTargetFPS(w.TargetFPS)
	ui.InitStyle()

	s.renderer = render.NewRenderer(s.Assets)
	defer s.Assets.Unload()
	defer s.renderer.Unload()

	s.LoadAssets(ctx)
	s.logger.Info("window open", "width", w.Width, "height", w.Height, "assets", s.Pending())

	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			s.logger.Info("stopping", "reason", err)
			return nil
		}
		dt := rl.GetFrameTime()

		s.Keyboard.Poll()
		layout := ui.ComputeLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		if !layout.Contains(rl.GetMousePosition()) {
			s.Camera.Update(dt)
		}

		s.frames++
		s.Tick(Frame{Index: s.frames, DeltaTime: dt})

		if rl.IsWindowResized() {
			s.logger.Debug("window resized", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())
			s.draw()
		}
		s.draw()
	}
	return nil
}

func (s *Session) draw() {
	start := time.Now()
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	s.renderer.Draw(s.Camera.GetRaylibCamera(), s.Diorama.Scene)
	s.UI.Draw(width, height)

	stats := ui.Stats{FPS: rl.GetFPS(), FrameTime: rl.GetFrameTime(), TickMs: s.tickMs, DrawMs: s.drawMs, Culled: s.renderer.Culled}
	if n := s.Panel.Selected(); n != nil {
		stats.Selected = n.Name
	}
	s.UI.DrawOverlays(height, stats)
	rl.EndDrawing()

	s.drawMs = float64(time.Since(start).Microseconds()) / 1000.0
}
