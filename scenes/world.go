package scenes

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/systems"
	"github.com/automoto/doomerang-physics/systems/factory"
	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs one level against the configured collision engine.
type SandboxScene struct {
	fsys fs.FS
	path string
	ecs  *ecs.ECS
}

// NewSandboxScene loads the level at path within fsys.
func NewSandboxScene(fsys fs.FS, path string) (*SandboxScene, error) {
	s := &SandboxScene{fsys: fsys, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path is the level file the scene was built from.
func (s *SandboxScene) Path() string { return s.path }

// Reload reads the level again and rebuilds the world from scratch. On
// error the running world is left untouched.
func (s *SandboxScene) Reload() error {
	m, err := tilemap.Load(s.fsys, s.path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", s.path, err)
	}
	s.build(m)
	return nil
}

func (s *SandboxScene) Update() {
	s.ecs.Update()
	s.applyRequests()
}

// applyRequests acts on what the systems asked of the scene this frame.
func (s *SandboxScene) applyRequests() {
	settings := systems.GetOrCreateSettings(s.ecs)
	if !settings.Rebuild {
		return
	}
	settings.Rebuild = false
	if err := s.Reload(); err != nil {
		log.Printf("[sandbox] %v", err)
	}
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.BackgroundColor)
	s.ecs.Draw(screen)
}

func (s *SandboxScene) build(m *tilemap.Map) {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Order matters: movement is decided before the collision step reads it.
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlatforms))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	// Carry the controls over so a key held across the rebuild does not
	// read as a fresh press.
	if s.ecs != nil {
		*systems.GetOrCreateInput(e) = *systems.GetOrCreateInput(s.ecs)
		*systems.GetOrCreatePause(e) = *systems.GetOrCreatePause(s.ecs)
	}

	space := components.Space.Get(factory.CreateSpace(e, m))
	if sys := space.System(); sys != nil && systems.GetOrCreatePause(e).IsPaused {
		sys.Pause()
	}
	factory.CreateLevel(e, m)
	n := factory.SpawnAll(e, m)
	log.Printf("[sandbox] level %s ready, %d entities spawned", m.Name, n)

	s.ecs = e
}
