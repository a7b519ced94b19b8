package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/resonancex/internal/config"
	"github.com/san-kum/resonancex/internal/storage"
)

func runsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println(labelStyle.Render("no runs in " + dataDir))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHOST\tPLANETS\tDAYS\tSTEPS\tINTEGRATOR\tCHAIN\tENERGY DRIFT\tTIME")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\t%s\t%t\t%.2e\t%s\n",
					r.ID, r.Host, strings.Join(r.Planets, ","), r.Duration, r.Steps,
					r.Integrator, r.Chain, r.EnergyDrift, r.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
}

func plotCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "plot <run_id>",
		Short: "plot orbital radii of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			traj, err := st.LoadTrajectory(args[0])
			if err != nil {
				return err
			}

			series := make([][]float64, traj.NumPlanets())
			for i := range series {
				series[i] = make([]float64, len(traj.Positions))
				for k, snap := range traj.Positions {
					series[i][k] = snap[i].Norm()
				}
			}

			colors := []asciigraph.AnsiColor{
				asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green, asciigraph.Red,
				asciigraph.Magenta, asciigraph.Blue, asciigraph.White,
			}
			seriesColors := make([]asciigraph.AnsiColor, len(series))
			for i := range seriesColors {
				seriesColors[i] = colors[i%len(colors)]
			}

			fmt.Println(headerStyle.Render(meta.Host) + " " + labelStyle.Render(meta.ID))
			for i, name := range traj.Names {
				fmt.Printf("  %s %s\n", name, labelStyle.Render(fmt.Sprintf(
					"period %.4f d, spectral %.4f d", traj.Periods[i], traj.SpectralPeriod(i))))
			}
			fmt.Println()
			fmt.Println(asciigraph.PlotMany(series,
				asciigraph.Height(height),
				asciigraph.Width(width),
				asciigraph.SeriesColors(seriesColors...),
				asciigraph.Caption(fmt.Sprintf("heliocentric radius (AU) over %.0f days: %s",
					meta.Duration, strings.Join(traj.Names, " ")))))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 70, "plot width")
	cmd.Flags().IntVar(&height, "height", 15, "plot height")
	return cmd
}

func presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTOLERANCE\tMAX ORDER\tDAYS\tSTEPS\tCHAIN\tINTEGRATOR")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.3f\t%d\t%.0f\t%d\t%t\t%s\n",
					name, p.Tolerance, p.MaxOrder, p.Simulation.DurationDays,
					p.Simulation.Steps, p.Simulation.ResonantChain, p.Simulation.Integrator)
			}
			return w.Flush()
		},
	}
}
