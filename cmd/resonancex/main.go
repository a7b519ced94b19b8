package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/resonancex/internal/config"
	"github.com/san-kum/resonancex/internal/storage"
)

const defaultConfigFile = ".resonancex.yaml"

var (
	configFile string
	dataDir    string
	preset     string
	verbose    bool

	env = viper.New()
	cfg *config.Config
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "resonancex",
		Short:         "orbital resonance explorer for exoplanet systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, default ./"+defaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", storage.DefaultDir, "data directory for saved runs")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	_ = env.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	env.SetEnvPrefix("RESONANCEX")
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	env.AutomaticEnv()

	rootCmd.AddCommand(
		summaryCommand(),
		rowsCommand(),
		detectCommand(),
		simulateCommand(),
		trappistCommand(),
		runsCommand(),
		plotCommand(),
		presetsCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig layers, lowest first: defaults or preset, config file,
// RESONANCEX_* environment. Command flags are applied by each command.
func loadConfig() error {
	cfg = config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	path := configFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.LoadOver(path, cfg)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		slog.Debug("config loaded", "path", path, "preset", preset)
	}

	applyEnv(cfg)
	dataDir = env.GetString("data")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.Debug("config ready",
		"tolerance", cfg.Tolerance,
		"max_order", cfg.MaxOrder,
		"integrator", cfg.Simulation.Integrator,
		"data", dataDir)
	return nil
}

func applyEnv(c *config.Config) {
	if env.IsSet("tolerance") {
		c.Tolerance = env.GetFloat64("tolerance")
	}
	if env.IsSet("max_order") {
		c.MaxOrder = env.GetInt("max_order")
	}
	if env.IsSet("catalog") {
		c.Catalog = env.GetString("catalog")
	}
	if env.IsSet("simulation.duration_days") {
		c.Simulation.DurationDays = env.GetFloat64("simulation.duration_days")
	}
	if env.IsSet("simulation.steps") {
		c.Simulation.Steps = env.GetInt("simulation.steps")
	}
	if env.IsSet("simulation.resonant_chain") {
		c.Simulation.ResonantChain = env.GetBool("simulation.resonant_chain")
	}
	if env.IsSet("simulation.star_mass") {
		c.Simulation.StarMass = env.GetFloat64("simulation.star_mass")
	}
	if env.IsSet("simulation.integrator") {
		c.Simulation.Integrator = env.GetString("simulation.integrator")
	}
}

func catalogPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Catalog == "" {
		return "", errors.New("no catalog given and none configured")
	}
	return cfg.Catalog, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", okStyle.Render("wrote"), path)
	return nil
}
