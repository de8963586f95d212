// Command watchgl-demo runs a watch face on the terminal simulator:
// an analog dial drawn with polar lines, a digital readout rasterized
// from a basic font face, and a caption in the built-in placeholder
// font. Only components whose state changed are redrawn each tick.
//
// Configuration comes from the environment, optionally seeded from a
// .env file; see .env.example for the variables.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/watchgl"
	"github.com/gogpu/watchgl/font"
	"github.com/gogpu/watchgl/sim"
)

type config struct {
	width   int
	height  int
	format  watchgl.ColorFormat
	bg      watchgl.Color
	accent  watchgl.Color
	second  watchgl.Color
	marks   watchgl.Color
	title   string
	seconds bool
}

func loadConfig() config {
	_ = godotenv.Load()

	cfg := config{
		width:   envInt("WATCHGL_WIDTH", 240),
		height:  envInt("WATCHGL_HEIGHT", 240),
		format:  watchgl.RGB565,
		bg:      envColor("WATCHGL_BG", watchgl.Black),
		accent:  envColor("WATCHGL_ACCENT", watchgl.Cyan),
		second:  envColor("WATCHGL_SECOND_HAND", watchgl.Red),
		marks:   watchgl.RGB(128, 128, 128),
		title:   envString("WATCHGL_TITLE", "WATCHGL"),
		seconds: envBool("WATCHGL_SECONDS", true),
	}
	if strings.Contains(strings.ToLower(os.Getenv("WATCHGL_FORMAT")), "swap") {
		cfg.format = watchgl.RGB565Swapped
	}
	return cfg
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envColor(key string, def watchgl.Color) watchgl.Color {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return watchgl.Hex(v)
	}
	return def
}

func main() {
	cfg := loadConfig()

	if path := strings.TrimSpace(os.Getenv("WATCHGL_DEBUG")); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
		watchgl.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	spec, err := watchgl.NewDisplaySpec(cfg.width, cfg.height, cfg.format)
	if err != nil {
		log.Fatalf("display spec: %v", err)
	}
	if spec.TiledWidth < 8 || spec.TiledHeight < 8 {
		log.Fatalf("panel %dx%d too small for the watch face, need at least 128x128", cfg.width, cfg.height)
	}

	digitalFont, err := font.FromFace(basicfont.Face7x13)
	if err != nil {
		log.Fatalf("rasterize font: %v", err)
	}

	caption, err := newCaption(spec, cfg)
	if err != nil {
		log.Fatalf("caption: %v", err)
	}
	dial, err := newDial(spec, cfg)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	clock, err := newClock(spec, cfg, digitalFont)
	if err != nil {
		log.Fatalf("clock: %v", err)
	}

	scr, err := watchgl.NewScreen(cfg.bg, spec, caption, dial, clock)
	if err != nil {
		log.Fatalf("screen: %v", err)
	}

	d, err := sim.Open(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open terminal: %v\n", err)
		os.Exit(1)
	}
	defer d.Close()

	g := watchgl.NewGraphics(d, watchgl.WithFontSource(font.Fallback()))
	g.SetWindow(0, 0, spec.Width, spec.Height, 0)
	g.Fill(cfg.bg, 0, 0, spec.Width, spec.Height)

	updateClock(dial, clock, time.Now(), cfg)
	scr.DrawFull(g)
	d.Flush()

	run(d, g, scr, dial, clock, cfg)
}

// run ticks the clock and handles terminal events until quit.
func run(d *sim.Display, g *watchgl.Graphics, scr *watchgl.Screen, dial, clock *watchgl.Component, cfg config) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- d.Screen().PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				d.Sync()
			}

		case <-ticker.C:
			updateClock(dial, clock, time.Now(), cfg)
			if scr.Pending() {
				scr.DrawLazy(g)
				d.Flush()
			}
		}
	}
}

// updateClock pushes the current time into the component state. Values
// that did not change leave the components clean, so a tick between
// seconds draws nothing.
func updateClock(dial, clock *watchgl.Component, now time.Time, cfg config) {
	dial.SetVar("h", now.Hour())
	dial.SetVar("m", now.Minute())
	if cfg.seconds {
		dial.SetVar("s", now.Second())
	}

	layout := "15:04"
	if cfg.seconds {
		layout = "15:04:05"
	}
	clock.SetVar("time", now.Format(layout))
}

// newCaption builds the title bar across the top tile row.
func newCaption(spec *watchgl.DisplaySpec, cfg config) (*watchgl.Component, error) {
	w := (spec.TiledWidth - 2) * watchgl.TileSize
	return watchgl.NewComponent(watchgl.TileSize, 0, w, watchgl.TileSize,
		func(c *watchgl.Component, g *watchgl.Graphics) {
			_, _, cw, ch := c.Bounds()
			g.Fill(g.Background(), 0, 0, cw, ch)
			g.SetFontSource(font.Fallback())
			g.DrawStringAligned(cfg.marks, cfg.title, cw/2, 0, watchgl.AlignCenter)
		})
}

// newDial builds the analog face: twelve tick marks and up to three
// hands drawn as polar lines from the center.
func newDial(spec *watchgl.DisplaySpec, cfg config) (*watchgl.Component, error) {
	w := (spec.TiledWidth - 2) * watchgl.TileSize
	h := (spec.TiledHeight - 3) * watchgl.TileSize
	return watchgl.NewComponent(watchgl.TileSize, watchgl.TileSize, w, h,
		func(c *watchgl.Component, g *watchgl.Graphics) {
			_, _, cw, ch := c.Bounds()
			g.Fill(g.Background(), 0, 0, cw, ch)

			cx, cy := cw/2, ch/2
			r := cx
			if cy < r {
				r = cy
			}
			r -= 6

			for i := 0; i < 12; i++ {
				thickness := 1
				if i%3 == 0 {
					thickness = 3
				}
				g.DrawLinePolar(cfg.marks, cx, cy, i*30, r-8, r, thickness)
			}

			hh, _ := c.Var("h").(int)
			mm, _ := c.Var("m").(int)
			ss, _ := c.Var("s").(int)

			g.DrawLinePolar(cfg.accent, cx, cy, (hh%12)*30+mm/2, 0, r*55/100, 3)
			g.DrawLinePolar(cfg.accent, cx, cy, mm*6+ss/10, 0, r*80/100, 2)
			if cfg.seconds {
				g.DrawLinePolar(cfg.second, cx, cy, ss*6, 0, r*90/100, 1)
			}
		})
}

// newClock builds the digital readout under the dial.
func newClock(spec *watchgl.DisplaySpec, cfg config, face watchgl.FontSource) (*watchgl.Component, error) {
	x := (spec.TiledWidth - 6) / 2 * watchgl.TileSize
	y := (spec.TiledHeight - 2) * watchgl.TileSize
	return watchgl.NewComponent(x, y, 6*watchgl.TileSize, watchgl.TileSize,
		func(c *watchgl.Component, g *watchgl.Graphics) {
			_, _, cw, ch := c.Bounds()
			g.Fill(g.Background(), 0, 0, cw, ch)
			g.SetFontSource(face)
			t, _ := c.Var("time").(string)
			g.DrawStringAligned(cfg.accent, t, cw/2, 1, watchgl.AlignCenter)
		})
}
