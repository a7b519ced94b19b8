package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/resonancex/internal/catalog"
	"github.com/san-kum/resonancex/internal/export"
	"github.com/san-kum/resonancex/internal/orbits"
	"github.com/san-kum/resonancex/internal/physics"
	"github.com/san-kum/resonancex/internal/resonance"
	"github.com/san-kum/resonancex/internal/storage"
	"github.com/san-kum/resonancex/internal/trappist"
	"github.com/san-kum/resonancex/internal/units"
	"github.com/san-kum/resonancex/internal/viz"
)

func simulateCommand() *cobra.Command {
	var (
		planets    []string
		duration   float64
		steps      int
		chain      bool
		integrator string
		save       bool
		svgPath    string
		jsonPath   string
		live       bool
		lyapunov   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <catalog> <host>",
		Short: "integrate a catalog system on circular starting orbits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("time") {
				cfg.Simulation.DurationDays = duration
			}
			if flags.Changed("steps") {
				cfg.Simulation.Steps = steps
			}
			if flags.Changed("chain") {
				cfg.Simulation.ResonantChain = chain
			}
			if flags.Changed("integrator") {
				cfg.Simulation.Integrator = integrator
			}

			rows, err := openCatalog(args[:1])
			if err != nil {
				return err
			}
			host := args[1]
			sys, ok := catalog.Find(rows, host, cfg.Simulation.StarMass)
			if !ok {
				return fmt.Errorf("host %q not found or has no valid periods", host)
			}
			sys = sys.Subset(planets)

			p := cfg.Params(sys.Periods(), sys.Masses())
			p.Names = sys.Letters()

			start := time.Now()
			traj, err := orbits.Simulate(p)
			if err != nil {
				return err
			}
			slog.Debug("simulation done", "host", host, "planets", len(p.Periods), "steps", p.Steps, "elapsed", time.Since(start))

			printTrajectory(host, sys, traj)

			if lyapunov {
				lambda, err := orbits.Lyapunov(p, orbits.DefaultPerturbation)
				if err != nil {
					return err
				}
				verdict := okStyle.Render("regular")
				if lambda*p.DurationDays > 10 {
					verdict = warnStyle.Render("chaotic")
				}
				fmt.Printf("%s %s %s\n", labelStyle.Render("lyapunov:"),
					valueStyle.Render(fmt.Sprintf("%.3e /day", lambda)), verdict)
			}

			if save {
				st := storage.New(dataDir)
				if err := st.Init(); err != nil {
					return err
				}
				runID, err := st.Save(host, cfg.Simulation.Integrator, traj)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", okStyle.Render("saved run"), runID)
			}
			if svgPath != "" {
				if err := writeFile(svgPath, []byte(export.TrajectorySVG(traj, 800, 800))); err != nil {
					return err
				}
			}
			if jsonPath != "" {
				if err := writeJSON(jsonPath, traj); err != nil {
					return err
				}
			}
			if live {
				return viz.Run(viz.NewViewer(host, traj))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&planets, "planets", nil, "planet letters to include (default all)")
	cmd.Flags().Float64Var(&duration, "time", 300, "duration in days")
	cmd.Flags().IntVar(&steps, "steps", 1000, "number of fixed steps")
	cmd.Flags().BoolVar(&chain, "chain", false, "lock detected resonances into an exact chain")
	cmd.Flags().StringVar(&integrator, "integrator", orbits.DefaultIntegrator, "integrator")
	cmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an svg of the orbits")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the trajectory as json (- for stdout)")
	cmd.Flags().BoolVar(&live, "live", false, "animate in the terminal")
	cmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate the largest lyapunov exponent")
	return cmd
}

func printTrajectory(host string, sys catalog.System, traj *orbits.Trajectory) {
	fmt.Println(headerStyle.Render(strings.ToUpper(host)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tPERIOD (d)\tSIM PERIOD (d)\tMEASURED (d)\tKEPLER (d)\tMASS (Msun)\tA (AU)")
	for i, name := range traj.Names {
		a := units.SemiMajorAxis(traj.Periods[i], traj.StarMass+traj.Masses[i])
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.3e\t%.4f\n",
			name, sys.Planets[i].PeriodDays, traj.Periods[i], traj.MeasuredPeriod(i), traj.KeplerPeriod(i), traj.Masses[i], a)
	}
	w.Flush()
	fmt.Println()

	if traj.Chain != nil {
		fmt.Println(headerStyle.Render("CHAIN") + " " + labelStyle.Render("dominant "+traj.Chain.Dominant.Ratio()))
		for _, l := range traj.Chain.Links {
			pair := traj.Names[l.Inner] + "-" + traj.Names[l.Outer]
			if l.Locked {
				fmt.Printf("  %s %s\n", pair, valueStyle.Render(fmt.Sprintf("%d:%d", l.P, l.Q)))
			} else {
				fmt.Printf("  %s %s\n", pair, labelStyle.Render("free"))
			}
		}
		fmt.Println()
	} else {
		if cfg.Simulation.ResonantChain {
			fmt.Println(warnStyle.Render("no resonant pairs; using default initial conditions"))
		}
		printPairs(cfg.Detector().Detect(sys.Periods()))
	}

	fmt.Printf("%s %s\n", labelStyle.Render("energy drift:"), valueStyle.Render(fmt.Sprintf("%.3e", traj.EnergyDrift)))
	fmt.Printf("%s %s\n", labelStyle.Render("momentum drift:"), valueStyle.Render(fmt.Sprintf("%.3e", traj.MomentumDrift)))
	fmt.Printf("%s %s\n", labelStyle.Render("max excursion:"), valueStyle.Render(fmt.Sprintf("%.3e", traj.MaxExcursion)))
}

func printPairs(matches []resonance.Match) {
	fmt.Println(headerStyle.Render("RESONANCES"))
	if len(matches) == 0 {
		fmt.Println(labelStyle.Render("  none within tolerance"))
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range matches {
		fmt.Fprintf(w, "  %.4f\t%.4f\t%s\t%.4f\n", m.PeriodA, m.PeriodB, m.Ratio(), m.Deviation())
	}
	w.Flush()
	fmt.Println()
}

func writeJSON(path string, traj *orbits.Trajectory) error {
	if path == "-" {
		return export.TrajectoryJSON(os.Stdout, traj)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.TrajectoryJSON(f, traj); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", okStyle.Render("wrote"), path)
	return nil
}

func trappistCommand() *cobra.Command {
	var (
		live    bool
		svgPath string
	)

	cmd := &cobra.Command{
		Use:   "trappist",
		Short: "simulate TRAPPIST-1 from literature values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if live {
				return viz.Run(viz.NewLoader("TRAPPIST-1", func() (viz.Source, error) {
					sol, err := trappist.Integrate(trappist.Duration, trappist.Tolerance)
					if err != nil {
						return nil, err
					}
					return sol, nil
				}))
			}

			start := time.Now()
			sol, masses, periods := trappist.Simulate()
			slog.Debug("trappist integrated", "steps", sol.Steps(), "elapsed", time.Since(start))

			end, err := sol.Positions(sol.Span())
			if err != nil {
				return err
			}

			fmt.Println(headerStyle.Render("TRAPPIST-1"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLANET\tPERIOD (d)\tMASS (Mearth)\tA (AU)\tr(end) (AU)")
			for i, pl := range trappist.Planets() {
				a := units.SemiMajorAxis(periods[i], trappist.StarMass+masses[i])
				fmt.Fprintf(w, "%s\t%.6f\t%.3f\t%.5f\t%.5f\n", pl.Name, periods[i], pl.MassEarth, a, end[i].Norm())
			}
			w.Flush()
			fmt.Println()

			ch := cfg.Detector().Chain(periods)
			labels := sol.Labels()
			fmt.Println(headerStyle.Render("CHAIN"))
			for _, l := range ch.Links {
				pair := labels[l.Inner] + "-" + labels[l.Outer]
				if l.Locked {
					fmt.Printf("  %s %s\n", pair, valueStyle.Render(fmt.Sprintf("%d:%d", l.P, l.Q)))
				} else {
					fmt.Printf("  %s %s\n", pair, labelStyle.Render("free"))
				}
			}
			fmt.Printf("\n%s %s\n", labelStyle.Render("accepted steps:"), valueStyle.Render(fmt.Sprint(sol.Steps())))

			if svgPath != "" {
				tracks, err := sample(sol, 2000)
				if err != nil {
					return err
				}
				if err := writeFile(svgPath, []byte(export.TracksSVG(tracks, labels, 800, 800))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "animate in the terminal")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an svg of the orbits")
	return cmd
}

// sample evaluates src at n+1 evenly spaced times and returns one track per
// planet.
func sample(src viz.Source, n int) ([][]physics.Vec2, error) {
	tracks := make([][]physics.Vec2, len(src.Labels()))
	for k := 0; k <= n; k++ {
		pos, err := src.Frame(src.Span() * float64(k) / float64(n))
		if err != nil {
			return nil, err
		}
		for i, p := range pos {
			tracks[i] = append(tracks[i], p)
		}
	}
	return tracks, nil
}
