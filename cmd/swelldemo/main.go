// Command swelldemo paints wave data into simulation grids and exports
// the result, demonstrating the swell library.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/oceanlod/swell"
	"github.com/oceanlod/swell/config"
	"github.com/oceanlod/swell/debugview"
)

func main() {
	var (
		cfgPath = flag.String("config", "swell.yaml", "config file (defaults used when missing)")
		output  = flag.String("output", "heights.png", "output PNG for the height snapshot")
		serve   = flag.Bool("serve", false, "serve the debug viewer instead of exiting")
		verbose = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		swell.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	heights := swell.New[float32](
		swell.WithResolution(cfg.Heights.Width, cfg.Heights.Height),
		swell.WithWorldSize(cfg.Heights.WorldX, cfg.Heights.WorldY),
		swell.WithCenter(mgl32.Vec2{cfg.Heights.CenterX, cfg.Heights.CenterY}),
	)
	flow := swell.New[mgl32.Vec2](
		swell.WithResolution(cfg.Flow.Width, cfg.Flow.Height),
		swell.WithWorldSize(cfg.Flow.WorldX, cfg.Flow.WorldY),
		swell.WithCenter(mgl32.Vec2{cfg.Flow.CenterX, cfg.Flow.CenterY}),
	)

	inputs := swell.NewInputs()
	inputs.Add(swell.KindHeight, 100, &swellCrest{center: mgl32.Vec2{-20, 10}, radius: 30, height: 2})
	inputs.Add(swell.KindHeight, 100, &swellCrest{center: mgl32.Vec2{25, -15}, radius: 20, height: 1.2})
	inputs.Add(swell.KindHeight, 50, &swellCrest{center: mgl32.Vec2{0, 0}, radius: 50, height: 0.5})
	inputs.Add(swell.KindFlow, 200, &eddy{center: mgl32.Vec2{0, 0}, radius: 40, speed: 1.5})

	drawFrame(inputs, heights, flow, 0)

	snap := swell.NewByteSnapshot(heights, swell.HeightRGBA(0, 3))
	if err := snap.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Height snapshot saved to %s (%dx%d)\n", *output, heights.Width(), heights.Height())

	if !*serve {
		return
	}

	viewer := debugview.New(cfg.Viewer.Addr, debugview.HeightFrame(heights),
		debugview.WithInterval(time.Duration(cfg.Viewer.IntervalMS)*time.Millisecond))

	go animate(inputs, heights, flow)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = viewer.Shutdown(shutdownCtx)
	}()

	log.Printf("Debug viewer on ws://%s/ws\n", cfg.Viewer.Addr)
	if err := viewer.Start(); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}

// drawFrame clears both grids and runs every registered input in order.
func drawFrame(inputs *swell.Inputs, heights *swell.Grid[float32], flow *swell.Grid[mgl32.Vec2], lod int) {
	heights.Clear(0)
	flow.Clear(mgl32.Vec2{})

	ctx := &swell.DrawContext{Lod: lod, Weight: 1, Heights: heights, Flow: flow}
	inputs.Draw(swell.KindHeight, ctx)
	inputs.Draw(swell.KindFlow, ctx)
}

// animate redraws the frame on a timer, bobbing the crests so the debug
// viewer shows movement.
func animate(inputs *swell.Inputs, heights *swell.Grid[float32], flow *swell.Grid[mgl32.Vec2]) {
	start := time.Now()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		t := time.Since(start).Seconds()
		for in := range inputs.ForKind(swell.KindHeight) {
			if crest, ok := in.(*swellCrest); ok {
				crest.phase = t
			}
		}
		drawFrame(inputs, heights, flow, 0)
	}
}

// swellCrest paints a single bobbing height bump.
type swellCrest struct {
	center mgl32.Vec2
	radius float32
	height float32
	phase  float64
}

func (c *swellCrest) Draw(ctx *swell.DrawContext) {
	if ctx.Heights == nil {
		return
	}
	h := c.height * float32(0.75+0.25*math.Sin(c.phase))
	ctx.Heights.Paint(c.center, c.radius, ctx.Weight, h, swell.BlendAdditive, false)
}

func (c *swellCrest) Wavelength() float32 { return c.radius * 2 }
func (c *swellCrest) Enabled() bool       { return true }

// eddy paints a circular current into the flow grid.
type eddy struct {
	center mgl32.Vec2
	radius float32
	speed  float32
}

func (e *eddy) Draw(ctx *swell.DrawContext) {
	if ctx.Flow == nil {
		return
	}
	// Eight tangential strokes around the eddy center approximate the
	// rotational field.
	const strokes = 8
	for i := 0; i < strokes; i++ {
		angle := 2 * math.Pi * float64(i) / strokes
		offset := mgl32.Vec2{
			e.radius * 0.6 * float32(math.Cos(angle)),
			e.radius * 0.6 * float32(math.Sin(angle)),
		}
		tangent := mgl32.Vec2{
			-e.speed * float32(math.Sin(angle)),
			e.speed * float32(math.Cos(angle)),
		}
		ctx.Flow.Paint(e.center.Add(offset), e.radius*0.5, ctx.Weight, tangent, swell.BlendFlow, false)
	}
}

func (e *eddy) Wavelength() float32 { return e.radius }
func (e *eddy) Enabled() bool       { return true }
