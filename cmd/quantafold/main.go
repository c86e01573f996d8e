package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/quarklab/quantafold/internal/circuit"
	"github.com/quarklab/quantafold/internal/config"
	"github.com/quarklab/quantafold/internal/menu"
	"github.com/quarklab/quantafold/internal/session"
	"github.com/quarklab/quantafold/internal/tui"
)

var (
	qubits       int
	complexGates bool
	shots        int
	seed         int64
	tensorSize   int
	lambda       float64
	preset       string
	configFile   string
	noGraphics   bool
)

// main registers commands and flags; with no subcommand the interactive
// menu starts. The process exits nonzero only on command errors, never from
// inside a session.
func main() {
	rootCmd := &cobra.Command{
		Use:   "quantafold",
		Short: "quantum toy models of protein conformational dynamics",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New(os.Stdout, graphicsEnabled())
			return menu.New(os.Stdin, os.Stdout, sess).Run(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noGraphics, "no-graphics", false, "disable terminal plots")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "build a protein circuit and simulate it",
		RunE:  runOnce,
	}
	runCmd.Flags().IntVar(&qubits, "qubits", config.DefaultQubits, "number of qubits (2-10)")
	runCmd.Flags().BoolVar(&complexGates, "complex", true, "apply complex interactions")
	runCmd.Flags().IntVar(&shots, "shots", config.DefaultShots, "number of shots")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "sampling seed (0 = random)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	operatorCmd := &cobra.Command{
		Use:   "operator",
		Short: "build a polarity-tensor hamiltonian and analyze it",
		RunE:  runOperator,
	}
	operatorCmd.Flags().IntVar(&tensorSize, "size", config.DefaultTensorSize, "tensor size (n+1)")
	operatorCmd.Flags().Float64Var(&lambda, "lambda", config.DefaultLambda, "coupling scalar")
	operatorCmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	operatorCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a circuit run gate by gate",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&qubits, "qubits", config.DefaultQubits, "number of qubits (2-10)")
	liveCmd.Flags().BoolVar(&complexGates, "complex", true, "apply complex interactions")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available run presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s qubits=%d shots=%d tensor=%d lambda=%g\n",
					name, p.Qubits, p.Shots, p.TensorSize, p.Lambda)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, operatorCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func graphicsEnabled() bool {
	return !noGraphics && isatty.IsTerminal(os.Stdout.Fd())
}

// resolveConfig layers preset, config file, and explicit flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("qubits") {
		cfg.Qubits = qubits
	}
	if cmd.Flags().Changed("complex") {
		cfg.Complex = complexGates
	}
	if cmd.Flags().Changed("shots") {
		cfg.Shots = shots
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("size") {
		cfg.TensorSize = tensorSize
	}
	if cmd.Flags().Changed("lambda") {
		cfg.Lambda = lambda
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sess := session.New(os.Stdout, graphicsEnabled())
	sess.Seed = cfg.Seed

	if err := sess.CreateCircuit(cfg.Qubits, cfg.Complex); err != nil {
		return err
	}
	if _, err := sess.Simulate(cmd.Context(), cfg.Shots); err != nil {
		return err
	}
	fmt.Println()
	return sess.VisualizeResults()
}

func runOperator(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sess := session.New(os.Stdout, graphicsEnabled())
	if err := sess.BuildOperator(cfg.TensorSize, cfg.Lambda); err != nil {
		return err
	}
	return sess.AnalyzeOperator()
}

func runLive(cmd *cobra.Command, args []string) error {
	c, err := circuit.Protein(qubits, complexGates)
	if err != nil {
		return err
	}
	return tui.Run(c)
}
