package main

import (
	"fmt"
	"os"

	"github.com/bloeys/texcube/assets"
	"github.com/bloeys/texcube/config"
	"github.com/bloeys/texcube/engine"
	"github.com/bloeys/texcube/gpu/gpugl"
	"github.com/bloeys/texcube/logging"
	"github.com/bloeys/texcube/meshes/asigload"
	"github.com/bloeys/texcube/renderer"
	"github.com/bloeys/texcube/res"
	"github.com/urfave/cli"
)

var logger = logging.New("texcube")

func main() {

	app := cli.NewApp()
	app.Name = "texcube"
	app.Usage = "render a lit, textured, rotating cube"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file",
		},
		cli.StringFlag{
			Name:  "texture",
			Usage: "name of the texture asset to apply",
		},
		cli.StringFlag{
			Name:  "mesh",
			Usage: "model file to render instead of the cube",
		},
		cli.StringFlag{
			Name:  "asset-dir",
			Usage: "directory searched for assets before the bundled ones",
		},
		cli.StringFlag{
			Name:  "timestep",
			Usage: "animation timestep, 'fixed' (1/preferred fps) or 'measured'",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {

	cfg := config.Default()
	if path := ctx.String("config"); path != "" {

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if v := ctx.String("texture"); v != "" {
		cfg.Assets.Texture = v
	}

	if v := ctx.String("mesh"); v != "" {
		cfg.Assets.Mesh = v
	}

	if v := ctx.String("asset-dir"); v != "" {
		cfg.Assets.Dir = v
	}

	if v := ctx.String("timestep"); v != "" {
		cfg.Render.Timestep = v
	}

	if ctx.Bool("v") {
		cfg.Log.Level = "info"
	}

	if ctx.Bool("vv") {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupLogging(cfg *config.Config) {

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.SetLevel(level)
}

func run(ctx *cli.Context) error {

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	timestep, err := renderer.ParseTimestep(cfg.Render.Timestep)
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.TextureName = cfg.Assets.Texture
	opts.TextureOptions.NoSrgba = cfg.Assets.NoSrgb
	opts.Timestep = timestep

	if cfg.Assets.Mesh != "" {

		geom, err := asigload.LoadGeometry(cfg.Assets.Mesh, asigload.DefaultPostProcessFlags)
		if err != nil {
			return fmt.Errorf("%w: %w", renderer.ErrAssetLoad, err)
		}

		opts.Geometry = geom
		opts.MeshName = cfg.Assets.Mesh
	}

	store := assets.LayeredStore{assets.NewFSStore(res.Textures, "textures")}
	if cfg.Assets.Dir != "" {
		store = append(assets.LayeredStore{assets.NewDirStore(cfg.Assets.Dir)}, store...)
	}

	surface := engine.SurfaceConfig{
		SampleCount:      cfg.Surface.SampleCount,
		ClearColor:       cfg.Surface.Clear(),
		ColorPixelFormat: cfg.Surface.ColorPixelFormat(),
		DepthPixelFormat: cfg.Surface.DepthPixelFormat(),
		PreferredFPS:     cfg.Window.PreferredFPS,
		VSync:            cfg.Window.VSync,
	}

	if err := engine.Init(surface); err != nil {
		return fmt.Errorf("failed to init SDL: %w", err)
	}
	defer engine.Shutdown()

	var flags engine.WindowFlags = engine.WindowFlags_ALLOW_HIGHDPI
	if cfg.Window.Resizable {
		flags |= engine.WindowFlags_RESIZABLE
	}

	win, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, flags, surface)
	if err != nil {
		return &renderer.InitError{Kind: renderer.ErrNoCompatibleDevice, Err: err}
	}
	defer win.Destroy()

	rend, err := renderer.New(win, gpugl.DefaultDevice, store, opts)
	if err != nil {
		return err
	}
	defer rend.Release()

	engine.Run(win, rend)
	return nil
}
