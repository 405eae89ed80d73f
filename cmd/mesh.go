package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leomartinch/raytracer/asset/reader"
	"github.com/leomartinch/raytracer/asset/writer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Convert wavefront obj meshes into the json mesh asset format.
func ConvertMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing mesh file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		meshFile := ctx.Args().Get(idx)
		if strings.ToLower(filepath.Ext(meshFile)) != ".obj" {
			logger.Warningf("skipping unsupported file %s", meshFile)
			continue
		}

		logger.Noticef("converting mesh: %s", meshFile)
		mesh, err := reader.ReadMesh(meshFile)
		if err != nil {
			return err
		}

		jsonFile := strings.TrimSuffix(meshFile, filepath.Ext(meshFile)) + ".json"
		if out := ctx.String("out-dir"); out != "" {
			jsonFile = filepath.Join(out, filepath.Base(jsonFile))
		}

		if err = writer.WriteMesh(mesh, jsonFile); err != nil {
			return err
		}
		logger.Noticef("wrote %d vertices and %d triangles to %s", len(mesh.Vertices), len(mesh.Triangles), jsonFile)
	}

	return nil
}

// Display mesh asset info.
func ShowMeshInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing mesh file argument")
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Mesh", "Vertices", "Triangles", "Min", "Max"})
	for idx := 0; idx < ctx.NArg(); idx++ {
		mesh, err := reader.ReadMesh(ctx.Args().Get(idx))
		if err != nil {
			return err
		}

		min, max := mesh.Bounds()
		table.Append([]string{
			ctx.Args().Get(idx),
			fmt.Sprintf("%d", len(mesh.Vertices)),
			fmt.Sprintf("%d", len(mesh.Triangles)),
			min.String(),
			max.String(),
		})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
