package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftcad/draftcad/pkg/export"
	"github.com/draftcad/draftcad/pkg/project"
	"github.com/draftcad/draftcad/pkg/scene"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <drawing.json>",
	Short: "Export a drawing to SVG or DXF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := project.LoadFile(args[0])
		if err != nil {
			return err
		}
		scn := scene.New()
		for _, obj := range doc.Objects {
			scn.Add(obj)
		}

		write := func(out *os.File) error {
			switch strings.ToLower(exportFormat) {
			case "svg":
				return export.WriteSVG(out, scn, export.SVGOptions{Padding: 10})
			case "dxf":
				return export.WriteDXF(out, scn)
			default:
				return fmt.Errorf("unknown format %q (want svg or dxf)", exportFormat)
			}
		}

		if exportOut == "" {
			return write(os.Stdout)
		}
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "svg", "output format: svg or dxf")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
