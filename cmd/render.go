package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/leomartinch/raytracer/renderer"
	"github.com/leomartinch/raytracer/scene"
	"github.com/leomartinch/raytracer/tracer"
	"github.com/leomartinch/raytracer/tracer/cpu"
	"github.com/leomartinch/raytracer/types"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	scheduler, err := blockScheduler(ctx.String("scheduler"))
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	opts.Progress = func(completedRows, totalRows int) {
		if bar == nil {
			bar = progressbar.Default(int64(totalRows), "Rendering Progress")
		}
		bar.Add(1)
	}

	// Create renderer
	r, err := renderer.NewDefault(sc, scheduler, cpuTracers(ctx.Int("workers")), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	buf, err := r.Render(renderCtx)
	if err != nil {
		return err
	}

	if err = buf.Save(ctx.String("out")); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Collect render options from the command flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	location, err := parseVec3(ctx.String("camera"))
	if err != nil {
		return renderer.Options{}, fmt.Errorf("invalid camera location: %w", err)
	}

	return renderer.Options{
		Camera: scene.CameraConfig{
			ImageWidth:      ctx.Float64("image-width"),
			ImageHeight:     ctx.Float64("image-height"),
			Resolution:      ctx.Int("resolution"),
			FOV:             ctx.Float64("fov"),
			Location:        location,
			Yaw:             ctx.Float64("yaw"),
			Pitch:           ctx.Float64("pitch"),
			SamplesPerPixel: ctx.Int("spp"),
			MaxBounces:      ctx.Int("bounces"),
		},
		Seed: int64(ctx.Int("seed")),
	}, nil
}

// Create one cpu tracer per worker. A non-positive count uses every
// available cpu.
func cpuTracers(count int) []tracer.Tracer {
	if count <= 0 {
		count = runtime.NumCPU()
	}

	tracers := make([]tracer.Tracer, count)
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%02d", idx))
	}
	return tracers
}

func blockScheduler(name string) (tracer.BlockScheduler, error) {
	switch name {
	case "naive":
		return tracer.NaiveScheduler(), nil
	case "perfect":
		return tracer.PerfectScheduler(), nil
	}
	return nil, fmt.Errorf("unknown block scheduler %q", name)
}

// Parse a vector given as "x,y,z".
func parseVec3(value string) (types.Vec3, error) {
	tokens := strings.Split(value, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, fmt.Errorf("expected 3 comma separated values; got %q", value)
	}

	var v [3]float64
	for idx, token := range tokens {
		f, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("could not parse component %d of %q: %w", idx, value, err)
		}
		v[idx] = f
	}
	return types.XYZ(v[0], v[1], v[2]), nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{fmt.Sprintf("%dx%d", stats.FrameW, stats.FrameH), fmt.Sprintf("%d spp", stats.SamplesPerPixel), "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

// Render flags. Every flag except config may also be supplied by the YAML
// file passed with --config; flags given on the command line win.
func renderFlags() []cli.Flag {
	return []cli.Flag{
		altsrc.NewFloat64Flag(cli.Float64Flag{
			Name:  "image-width",
			Value: 4,
			Usage: "image plane width in world units",
		}),
		altsrc.NewFloat64Flag(cli.Float64Flag{
			Name:  "image-height",
			Value: 3,
			Usage: "image plane height in world units",
		}),
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "resolution",
			Value: 100,
			Usage: "number of pixels across the image width",
		}),
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "spp",
			Value: 10,
			Usage: "samples per pixel",
		}),
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "bounces",
			Value: 3,
			Usage: "max number of bounces per path",
		}),
		altsrc.NewFloat64Flag(cli.Float64Flag{
			Name:  "fov",
			Value: 70,
			Usage: "vertical field of view in degrees",
		}),
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  "camera",
			Value: "0,-3,0",
			Usage: "camera location as x,y,z",
		}),
		altsrc.NewFloat64Flag(cli.Float64Flag{
			Name:  "yaw",
			Usage: "camera rotation about the world Z axis in degrees",
		}),
		altsrc.NewFloat64Flag(cli.Float64Flag{
			Name:  "pitch",
			Usage: "camera tilt about its horizontal axis in degrees",
		}),
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "workers",
			Usage: "number of cpu tracers; 0 uses every available cpu",
		}),
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "seed",
			Value: 1,
			Usage: "random seed",
		}),
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  "scheduler",
			Value: "naive",
			Usage: "block scheduler (naive or perfect)",
		}),
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  "out",
			Value: "render.ppm",
			Usage: "image filename for the rendered frame (.ppm or .png)",
		}),
	}
}

// Load flag values from the YAML file named by --config, if any.
func loadConfig(flags []cli.Flag) cli.BeforeFunc {
	load := altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))
	return func(ctx *cli.Context) error {
		if ctx.String("config") == "" {
			return nil
		}
		return load(ctx)
	}
}
