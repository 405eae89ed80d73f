package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/leomartinch/raytracer/asset/reader"
	"github.com/leomartinch/raytracer/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
)

// Build the scene selected by the --scene, --center-mesh and --assets flags.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	configs, err := scene.Preset(ctx.String("scene"), ctx.String("center-mesh"))
	if err != nil {
		return nil, err
	}

	logger.Noticef("building scene %q using assets from %s", ctx.String("scene"), ctx.String("assets"))
	lib := reader.NewLibrary(ctx.String("assets"))
	sc, err := scene.Build(configs, lib)
	if err != nil {
		return nil, err
	}

	logger.Infof("scene %q uses meshes: %s", ctx.String("scene"), strings.Join(lib.Names(), ", "))
	return sc, nil
}

// Display scene object info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() > 1 {
		return errors.New("expected at most one scene name argument")
	}
	if ctx.NArg() == 1 {
		if err := ctx.Set("scene", ctx.Args().First()); err != nil {
			return err
		}
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	bbox := sc.BBox()
	logger.Noticef("scene information (bbox %v - %v, center %v):\n%s", bbox.Min, bbox.Max, bbox.Center(), sc.Stats())
	return nil
}

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Objects", "Meshes"})
	for _, name := range scene.PresetNames() {
		configs, err := scene.Preset(name, ctx.String("center-mesh"))
		if err != nil {
			return err
		}

		meshes := make([]string, 0)
		seen := make(map[string]struct{})
		for _, cfg := range configs {
			if _, exists := seen[cfg.Mesh]; !exists {
				seen[cfg.Mesh] = struct{}{}
				meshes = append(meshes, cfg.Mesh)
			}
		}

		table.Append([]string{name, fmt.Sprintf("%d", len(configs)), fmt.Sprintf("%v", meshes)})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func sceneFlags() []cli.Flag {
	return []cli.Flag{
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  "scene",
			Value: "cornell",
			Usage: "name of the built-in scene to render",
		}),
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  "center-mesh",
			Value: scene.DefaultCenterMesh,
			Usage: "mesh placed in the middle of scenes that have a center object",
		}),
		altsrc.NewStringFlag(cli.StringFlag{
			Name:  "assets",
			Value: "assets",
			Usage: "directory or http(s) url prefix containing the mesh assets",
		}),
	}
}
