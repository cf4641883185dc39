// Interactive viewer: renders the scene incrementally inside an ebiten
// game loop, keeping the window responsive while scan lines stream in.
//
// Keys: R restarts the render, Escape quits.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/prenoma/go-whitted-raytracer/pkg/loaders"
	"github.com/prenoma/go-whitted-raytracer/pkg/renderer"
	"github.com/prenoma/go-whitted-raytracer/pkg/scene"
)

type Game struct {
	raytracer *renderer.Raytracer
	canvas    *renderer.ImageCanvas
	width     int
	height    int

	cursor int
	done   bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cursor = 0
		g.done = false
	}

	if !g.done {
		g.cursor, g.done = g.raytracer.RenderChunk(g.canvas, g.cursor)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.canvas.Image().Pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	scenePath := flag.String("scene", "", "Path to a JSON scene description (empty = built-in demo scene)")
	depth := flag.Int("depth", 10, "Maximum recursion depth")
	shadowSamples := flag.Int("shadow-samples", 1, "Shadow rays per light (1 = hard shadows)")
	budget := flag.Duration("budget", 16*time.Millisecond, "Render time budget per frame")
	flag.Parse()

	var s *scene.Scene
	if *scenePath != "" {
		loaded, err := loaders.LoadScene(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		s = loaded
	} else {
		s = scene.NewDefaultScene()
	}

	config := renderer.Config{
		MaxDepth:      *depth,
		ShadowSamples: *shadowSamples,
		TimeBudget:    *budget,
	}

	game := &Game{
		raytracer: renderer.NewRaytracer(s, config, renderer.NewDefaultLogger()),
		canvas:    renderer.NewImageCanvas(s.Width, s.Height),
		width:     s.Width,
		height:    s.Height,
	}

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("raytracer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
