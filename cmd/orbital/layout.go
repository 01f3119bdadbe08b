package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/orbital/constant"
	"github.com/lixenwraith/orbital/vmath"
)

func newLayoutCmd(app *App) *cobra.Command {
	var (
		items    int
		radius   float64
		start    float64
		rotation float64
		arc      float64
		wide     bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print computed item positions",
		Long: `Print computed item positions relative to the anchor.

Without --items the active hubs of the catalog are placed using the config
radius, start angle and layout. Flags override individual values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			labels := []string{}
			if !cmd.Flags().Changed("items") {
				catalog, err := app.loadCatalog()
				if err != nil {
					return err
				}
				for _, h := range catalog.ActiveHubs() {
					labels = append(labels, h.Label)
				}
				items = len(labels)
			}
			if cmd.Flags().Changed("radius") {
				cfg.Radius = radius
			}
			if cmd.Flags().Changed("start") {
				cfg.StartAngle = start
			}
			switch {
			case cmd.Flags().Changed("arc"):
				cfg.Layout = constant.LayoutArc
				cfg.ArcRange = arc
			case wide:
				cfg.Layout = constant.LayoutArc
				cfg.ArcRange = constant.WideArcRange
			}

			var positions []vmath.Position
			if cfg.Layout == constant.LayoutArc {
				positions, err = vmath.Arc(items, cfg.Radius, cfg.StartAngle, cfg.ArcRange, rotation)
			} else {
				positions, err = vmath.Circle(items, cfg.Radius, cfg.StartAngle, rotation)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderLayout(positions, labels, cfg.Radius))
			return nil
		},
	}

	cmd.Flags().IntVar(&items, "items", 0, "number of items (default: active hubs in the catalog)")
	cmd.Flags().Float64Var(&radius, "radius", constant.DefaultRadius, "ring radius in pixels")
	cmd.Flags().Float64Var(&start, "start", constant.DefaultStartAngle, "start angle in degrees; -90 is up")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "rotation offset in degrees")
	cmd.Flags().Float64Var(&arc, "arc", 0, "arc range in degrees; switches to arc layout")
	cmd.Flags().BoolVar(&wide, "wide", false, "use the extended corner arc; --arc takes precedence")
	return cmd
}

func renderLayout(positions []vmath.Position, labels []string, radius float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d items, radius %g", len(positions), radius)))
	b.WriteByte('\n')
	b.WriteString(headerStyle.Render(
		cell(4).Render("#") + leftCell(12).Render("  label") +
			cell(9).Render("angle") + cell(10).Render("x") + cell(10).Render("y")))
	b.WriteByte('\n')

	for i, p := range positions {
		label := "-"
		if i < len(labels) {
			label = labels[i]
		}
		b.WriteString(cell(4).Render(fmt.Sprintf("%d", p.Index)))
		b.WriteString(leftCell(12).Render("  " + label))
		b.WriteString(cell(9).Render(fmt.Sprintf("%.2f", p.Angle)))
		b.WriteString(cell(10).Render(fmt.Sprintf("%.2f", p.X)))
		b.WriteString(cell(10).Render(fmt.Sprintf("%.2f", p.Y)))
		b.WriteByte('\n')
	}
	if len(positions) == 0 {
		b.WriteString(mutedStyle.Render("  (no items)"))
		b.WriteByte('\n')
	}
	return b.String()
}
