package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/automoto/doomerang-physics/assets"
	"github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/scenes"
	"github.com/automoto/doomerang-physics/systems"
	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.SandboxScene
	// reload receives level files changed on disk.
	reload <-chan string
}

func (g *Game) Update() error {
	select {
	case changed, ok := <-g.reload:
		if !ok {
			g.reload = nil
			break
		}
		if filepath.Base(changed) != path.Base(g.scene.Path()) {
			break
		}
		log.Printf("[sandbox] %s changed, reloading", filepath.Base(changed))
		if err := g.scene.Reload(); err != nil {
			log.Printf("[sandbox] %v", err)
		}
	default:
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML file overriding the built-in settings")
		engine     = flag.String("engine", "", "collision engine: custom or native")
		simple     = flag.Bool("simple", false, "use the axis-separated static resolution")
		angle      = flag.Int("angle", 0, "world rotation in degrees (custom engine)")
		level      = flag.String("level", "", "level name, defaults to the configured start level")
		levelDir   = flag.String("dir", "", "read levels from this directory instead of the embedded ones")
		watch      = flag.Bool("watch", false, "reload the level when its file changes (needs -dir)")
	)
	flag.Parse()

	if *configPath != "" {
		dir, name := filepath.Split(*configPath)
		if dir == "" {
			dir = "."
		}
		if err := config.LoadFile(os.DirFS(dir), name); err != nil {
			log.Fatal(err)
		}
	}

	// Saved toggles win over the file; flags win over both.
	if err := systems.InitPersistence("doomerang-physics"); err == nil {
		if saved, err := systems.LoadSettings(); err == nil {
			systems.ApplySavedSettings(saved)
		}
	}
	applyFlags(*engine, *simple, *angle)

	fsys, dir := assets.Levels(), assets.LevelDir
	if *levelDir != "" {
		fsys, dir = os.DirFS(*levelDir), "."
	}
	name := config.Level.Start
	if *level != "" {
		name = *level
	}

	scene, err := scenes.NewSandboxScene(fsys, path.Join(dir, name+".tmx"))
	if err != nil {
		log.Fatal(err)
	}
	g := &Game{scene: scene}

	if *watch {
		if *levelDir == "" {
			log.Fatal("-watch needs -dir")
		}
		w, err := tilemap.NewWatcher(*levelDir)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		g.reload = w.Events
		go func() {
			for err := range w.Errors {
				log.Printf("[sandbox] watch: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("collision sandbox")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// applyFlags overlays the command line on the collision settings.
func applyFlags(engine string, simple bool, angle int) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "engine":
			config.Collision.Engine = engine
		case "simple":
			config.Collision.Simple = simple
		case "angle":
			config.Collision.Angle = angle
		}
	})
	if err := config.Collision.Validate(); err != nil {
		log.Fatal(err)
	}
}
