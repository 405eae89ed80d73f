package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Stats builds a tabular representation of the scene objects.
func (sc *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Mesh", "Vertices", "Triangles", "BBox min", "BBox max", "Color", "Albedo", "Roughness", "Emission", "Smooth"})

	totalVerts := 0
	for _, id := range sc.order {
		obj := sc.objects[id]
		mat := obj.Material
		totalVerts += len(obj.Vertices)
		table.Append([]string{
			id,
			obj.MeshName,
			fmt.Sprintf("%d", len(obj.Vertices)),
			fmt.Sprintf("%d", len(obj.Triangles)),
			obj.BBox.Min.String(),
			obj.BBox.Max.String(),
			mat.Color.String(),
			fmt.Sprintf("%.2f", mat.Albedo),
			fmt.Sprintf("%.2f", mat.Roughness),
			fmt.Sprintf("%.2f", mat.EmissionStrength),
			fmt.Sprintf("%t", mat.Smooth),
		})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d objects", sc.Len()), fmt.Sprintf("%d", totalVerts), fmt.Sprintf("%d", sc.TriangleCount()), "", "", "", "", "", "", ""})
	table.Render()
	return buf.String()
}
