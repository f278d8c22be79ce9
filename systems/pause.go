package systems

import (
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state. The custom engine is paused too so
// that colliders added or removed meanwhile still join or leave it.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	if !input.JustPressed(cfg.ActionPause) {
		return
	}
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused

	space, ok := GetSpace(ecs)
	if !ok {
		return
	}
	if sys := space.System(); sys != nil {
		if pause.IsPaused {
			sys.Pause()
		} else {
			sys.Resume()
		}
	}
}

func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BackgroundFill, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED  (Esc to resume)", w/2-70, h/2)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}
