package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/resonancex/internal/catalog"
	"github.com/san-kum/resonancex/internal/export"
	"github.com/san-kum/resonancex/internal/resonance"
)

func summaryCommand() *cobra.Command {
	var plot bool

	cmd := &cobra.Command{
		Use:   "summary [catalog]",
		Short: "dataset overview and discovery insights",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := openCatalog(args)
			if err != nil {
				return err
			}
			st := catalog.Summarize(rows)

			fmt.Println(headerStyle.Render("CATALOG"))
			fmt.Printf("%s %s\n", labelStyle.Render("planets:"), valueStyle.Render(fmt.Sprint(st.Planets)))
			fmt.Printf("%s %s\n", labelStyle.Render("systems:"), valueStyle.Render(fmt.Sprint(st.Systems)))
			fmt.Printf("%s %s\n\n", labelStyle.Render("multi-planet:"), valueStyle.Render(fmt.Sprint(len(catalog.ValidSystems(rows)))))

			if len(st.Methods) > 0 {
				fmt.Println(headerStyle.Render("DISCOVERY METHODS"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, m := range st.Methods {
					fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", m.Key, m.Count, 100*float64(m.Count)/float64(st.Planets))
				}
				w.Flush()
				fmt.Println()
			}

			if len(st.Years) > 0 {
				first, last := st.Years[0], st.Years[len(st.Years)-1]
				peak := first
				for _, y := range st.Years {
					if y.Count > peak.Count {
						peak = y
					}
				}
				fmt.Println(headerStyle.Render("DISCOVERIES"))
				fmt.Printf("%s %d-%d\n", labelStyle.Render("years:"), first.Year, last.Year)
				fmt.Printf("%s %d (%d planets)\n", labelStyle.Render("peak year:"), peak.Year, peak.Count)

				if plot && len(st.Years) > 1 {
					series := make([]float64, 0, last.Year-first.Year+1)
					k := 0
					for y := first.Year; y <= last.Year; y++ {
						v := 0.0
						if st.Years[k].Year == y {
							v = float64(st.Years[k].Count)
							k++
						}
						series = append(series, v)
					}
					fmt.Println()
					fmt.Println(asciigraph.Plot(series,
						asciigraph.Height(10),
						asciigraph.Width(60),
						asciigraph.Caption(fmt.Sprintf("discoveries per year, %d-%d", first.Year, last.Year))))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plot, "plot", false, "plot discoveries per year")
	return cmd
}

func rowsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rows [catalog]",
		Short: "preview catalog rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := openCatalog(args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "HOST\tLETTER\tPERIOD (d)\tMASS (Mjup)\tMETHOD\tYEAR")
			for i, r := range rows {
				if limit > 0 && i >= limit {
					break
				}
				year := "-"
				if r.DiscoveryYear > 0 {
					year = fmt.Sprint(r.DiscoveryYear)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Host, r.Letter, cell(r.PeriodDays, "%.4f"), cell(r.MassJup, "%.4f"), r.DiscoveryMethod, year)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if limit > 0 && len(rows) > limit {
				fmt.Println(labelStyle.Render(fmt.Sprintf("%d of %d rows (--limit 0 for all)", limit, len(rows))))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "rows to print (0 for all)")
	return cmd
}

// cell formats v, or "-" when the value is missing.
func cell(v float64, format string) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

func detectCommand() *cobra.Command {
	var (
		tolerance float64
		maxOrder  int
		top       int
		limit     int
		plot      bool
		xlsx      string
	)

	cmd := &cobra.Command{
		Use:   "detect [catalog]",
		Short: "find near-integer period ratios inside each system",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("tolerance") {
				cfg.Tolerance = tolerance
			}
			if cmd.Flags().Changed("max-order") {
				cfg.MaxOrder = maxOrder
			}

			rows, err := openCatalog(args)
			if err != nil {
				return err
			}

			matches, err := cfg.Detector().DetectInSystems(rows)
			if err != nil {
				return err
			}
			summary := resonance.Summarize(matches, top)
			slog.Debug("detection done", "pairs", summary.Pairs, "systems", summary.Systems)

			fmt.Println(headerStyle.Render("RESONANCES"))
			fmt.Printf("%s %s\n", labelStyle.Render("tolerance:"), valueStyle.Render(fmt.Sprintf("%.3f", cfg.Tolerance)))
			fmt.Printf("%s %s\n", labelStyle.Render("resonant pairs:"), valueStyle.Render(fmt.Sprint(summary.Pairs)))
			fmt.Printf("%s %s\n\n", labelStyle.Render("systems:"), valueStyle.Render(fmt.Sprint(summary.Systems)))

			if len(matches) == 0 {
				fmt.Println(warnStyle.Render("no resonances found"))
				return nil
			}

			fmt.Println(headerStyle.Render("TOP SYSTEMS"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, s := range summary.Top {
				fmt.Fprintf(w, "%s\t%d\n", s.System, s.Pairs)
			}
			w.Flush()
			fmt.Println()

			fmt.Println(headerStyle.Render("PAIRS"))
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SYSTEM\tPERIOD A\tPERIOD B\tRATIO\tDEVIATION")
			for i, m := range matches {
				if limit > 0 && i >= limit {
					fmt.Fprintf(w, "...\t%d more\t\t\t\n", len(matches)-limit)
					break
				}
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%s\t%.4f\n", m.System, m.PeriodA, m.PeriodB, m.Ratio(), m.Deviation())
			}
			w.Flush()

			hist := resonance.Histogram(matches)
			if plot && len(hist) > 1 {
				counts := make([]float64, len(hist))
				caption := "pairs per ratio:"
				for i, rc := range hist {
					counts[i] = float64(rc.Count)
					caption += " " + rc.Ratio
				}
				fmt.Println()
				fmt.Println(asciigraph.Plot(counts,
					asciigraph.Height(8),
					asciigraph.Width(len(counts)*4),
					asciigraph.Caption(caption)))
			}

			if xlsx != "" {
				if err := export.WriteResonanceWorkbook(xlsx, matches, summary); err != nil {
					return err
				}
				fmt.Printf("\n%s %s\n", okStyle.Render("wrote"), xlsx)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.05, "relative tolerance")
	cmd.Flags().IntVar(&maxOrder, "max-order", resonance.DefaultMaxOrder, "largest numerator/denominator tried")
	cmd.Flags().IntVar(&top, "top", 10, "systems to rank")
	cmd.Flags().IntVar(&limit, "limit", 50, "pairs to print (0 for all)")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the ratio histogram")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "write an xlsx workbook")
	return cmd
}

func openCatalog(args []string) ([]catalog.Row, error) {
	path, err := catalogPath(args)
	if err != nil {
		return nil, err
	}
	rows, err := catalog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	slog.Debug("catalog loaded", "path", path, "rows", len(rows))
	return rows, nil
}
