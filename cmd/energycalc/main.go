package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/gui"
	"github.com/san-kum/energycalc/internal/menu"
	"github.com/san-kum/energycalc/internal/report"
	"github.com/san-kum/energycalc/internal/scenario"
	"github.com/san-kum/energycalc/internal/tui"
)

var (
	configFile string
	envFile    string
	// calculation inputs
	mass     float64
	velocity float64
	height   float64
	gravity  float64
	preset   string
	asJSON   bool
	// plot
	samples int
	width   int
	rows    int
	// serve
	addr        string
	root        string
	openBrowser bool
)

func main() {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "energycalc",
		Short:         "kinetic and potential energy calculator (SI units)",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to the text menu when no command given
		RunE: runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with ENERGYCALC_* overrides")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "interactive text menu",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "tabbed form interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "desktop window with the same forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	kineticCmd := &cobra.Command{
		Use:   "kinetic",
		Short: "kinetic energy: 0.5 * m * v^2",
		Args:  cobra.NoArgs,
		RunE:  runKinetic,
	}
	kineticCmd.Flags().Float64Var(&mass, "mass", 0, "mass (kg)")
	kineticCmd.Flags().Float64Var(&velocity, "velocity", 0, "velocity (m/s)")
	kineticCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	markRequired(kineticCmd, "mass", "velocity")

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "gravitational potential energy: m * g * h",
		Args:  cobra.NoArgs,
		RunE:  runPotential,
	}
	potentialCmd.Flags().Float64Var(&mass, "mass", 0, "mass (kg)")
	potentialCmd.Flags().Float64Var(&height, "height", 0, "height (m)")
	addGravityFlags(potentialCmd)
	potentialCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	markRequired(potentialCmd, "mass", "height")

	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "total mechanical energy: KE + PE",
		Args:  cobra.NoArgs,
		RunE:  runTotal,
	}
	totalCmd.Flags().Float64Var(&mass, "mass", 0, "mass (kg)")
	totalCmd.Flags().Float64Var(&velocity, "velocity", 0, "velocity (m/s)")
	totalCmd.Flags().Float64Var(&height, "height", 0, "height (m)")
	addGravityFlags(totalCmd)
	totalCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	markRequired(totalCmd, "mass", "velocity", "height")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot energy exchange of a body dropped from rest",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&mass, "mass", 1, "mass (kg)")
	plotCmd.Flags().Float64Var(&height, "height", 20, "drop height (m)")
	addGravityFlags(plotCmd)
	plotCmd.Flags().IntVar(&samples, "samples", 60, "number of sample points")
	plotCmd.Flags().IntVar(&width, "width", 0, "chart width")
	plotCmd.Flags().IntVar(&rows, "rows", 0, "chart height")

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "print worked examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return scenario.RenderAll(cmd.OutOrStdout(), report.New(cfg.Precision))
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list gravity presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBODY\tGRAVITY")
			for _, p := range config.Presets {
				fmt.Fprintf(w, "%s\t%s\t%s m/s²\n", p.Name, p.Label, report.Input(p.Gravity))
			}
			return w.Flush()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the browser front end",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&root, "root", config.DefaultRoot, "directory to serve")
	serveCmd.Flags().BoolVar(&openBrowser, "open", false, "open the front end in the default browser")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "energycalc.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(menuCmd, tuiCmd, guiCmd, kineticCmd, potentialCmd, totalCmd, plotCmd, examplesCmd, presetsCmd, serveCmd, configCmd)
	return rootCmd
}

func addGravityFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "gravitational acceleration (m/s^2), default from config")
	cmd.Flags().StringVar(&preset, "preset", "", "gravity preset (earth, moon, mars, jupiter)")
	cmd.MarkFlagsMutuallyExclusive("gravity", "preset")
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		_ = cmd.MarkFlagRequired(n)
	}
}

// loadConfig applies config file, then environment. Flags are applied by
// each command on top.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.LoadEnv(envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, log.Logger)
	return m.Run(cmd.Context())
}
