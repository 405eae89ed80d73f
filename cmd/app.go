package cmd

import "github.com/urfave/cli"

// App assembles the command line application.
func App() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	flags := append(renderFlags(), sceneFlags()...)
	configFlag := cli.StringFlag{
		Name:  "config",
		Usage: "load flag values from a YAML file",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render triangle mesh scenes using monte carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set the log level by name (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Build one of the built-in scenes, trace it using one cpu tracer per worker and
write the frame to a .ppm (P3) or .png file.

Flag defaults may be supplied by a YAML file passed with --config. Keys are the
flag names; values given on the command line take precedence.`,
			Flags:  append(flags, configFlag),
			Before: loadConfig(flags),
			Action: RenderFrame,
		},
		{
			Name:  "scene",
			Usage: "inspect the built-in scenes",
			Subcommands: []cli.Command{
				{
					Name:      "info",
					Usage:     "display object information for a scene",
					ArgsUsage: "[scene]",
					Flags:     sceneFlags(),
					Action:    ShowSceneInfo,
				},
				{
					Name:   "list",
					Usage:  "list the built-in scenes",
					Flags:  sceneFlags(),
					Action: ListScenes,
				},
			},
		},
		{
			Name:  "mesh",
			Usage: "inspect and convert mesh assets",
			Subcommands: []cli.Command{
				{
					Name:  "convert",
					Usage: "convert wavefront obj meshes to the json mesh format",
					Description: `
Parse the vertices and faces of wavefront obj files and write them to a json
mesh asset next to the source file (or into --out-dir). Quad faces are split
into two triangles.`,
					ArgsUsage: "mesh1.obj mesh2.obj ...",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "out-dir",
							Usage: "write converted meshes to this directory",
						},
					},
					Action: ConvertMesh,
				},
				{
					Name:      "info",
					Usage:     "display mesh asset information",
					ArgsUsage: "mesh1.json mesh2.obj ...",
					Action:    ShowMeshInfo,
				},
			},
		},
	}

	return app
}
