package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftcad/draftcad/pkg/project"
	"github.com/draftcad/draftcad/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info <drawing.json>",
	Short: "Show drawing statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := project.LoadFile(args[0])
		if err != nil {
			return err
		}

		counts := map[string]int{}
		scn := scene.New()
		for _, obj := range doc.Objects {
			counts[obj.Kind()]++
			scn.Add(obj)
		}

		fmt.Printf("Objects: %d\n", len(doc.Objects))
		for _, kind := range []string{"line", "arc"} {
			if counts[kind] > 0 {
				fmt.Printf("  %s: %d\n", kind, counts[kind])
			}
		}
		bounds := scn.Bounds()
		if !bounds.IsEmpty() {
			fmt.Printf("Extent: %.3f x %.3f\n", bounds.Width(), bounds.Height())
			fmt.Printf("Center: (%.3f, %.3f)\n", bounds.Center().X, bounds.Center().Y)
		}
		fmt.Printf("View: pan (%.3f, %.3f) zoom %.3f rotation %.1f°\n",
			doc.View.PanX, doc.View.PanY, doc.View.Zoom, doc.View.Rotation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
