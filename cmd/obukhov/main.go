// Command obukhov generates Monin-Obukhov stability reference tables and
// inverts Richardson numbers from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/alexshd/obukhov"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logZOverZ0 float64
		debug      bool
		par        obukhov.Params
	)

	cmd := &cobra.Command{
		Use:           "obukhov",
		Short:         "Monin-Obukhov stability parameter tables and inversions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level: level,
			})))

			par = obukhov.DefaultParams()
			if configPath != "" {
				loaded, err := obukhov.LoadParams(configPath)
				if err != nil {
					return err
				}
				par = loaded
				slog.Debug("loaded params", "path", configPath)
			}
			if cmd.Flags().Changed("log-z-over-z0") {
				par.LogZOverZ0 = logZOverZ0
			}
			return par.Validate()
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with numerical parameter overrides")
	cmd.PersistentFlags().Float64Var(&logZOverZ0, "log-z-over-z0", 0, "ln(z/z0) for the bulk Richardson formula")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	cmd.AddCommand(
		newProfilesCmd(),
		newTableCmd(&par),
		newInvertCmd(&par),
		newChartCmd(&par),
	)
	return cmd
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List registered stability profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCITATION\tUNSTABLE (a_m a_h)\tSTABLE (b_m b_h c_m c_h)")
			for _, name := range obukhov.ProfileNames() {
				p, err := obukhov.GetProfile(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%g %g\t%g %g %g %g\n",
					p.Name, p.Citation,
					p.Unstable.AM, p.Unstable.AH,
					p.Stable.BM, p.Stable.BH, p.Stable.CM, p.Stable.CH)
			}
			return tw.Flush()
		},
	}
}

func newTableCmd(par *obukhov.Params) *cobra.Command {
	var (
		profileName string
		regimeName  string
		outPath     string
		precision   int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Sweep a ζ grid and print or export the reference table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, regime, err := resolve(profileName, regimeName)
			if err != nil {
				return err
			}

			rows := obukhov.Sweep(p, regime, *par)

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := obukhov.WriteCSV(f, rows, precision); err != nil {
					return err
				}
				slog.Info("table written", "profile", p.Name, "regime", regime.String(), "path", outPath)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "zeta\tphi_m\tphi_h\tri_g\tri_b\t")
			for row := range rows {
				fmt.Fprintf(tw, "%.*f\t%.*f\t%.*f\t%.*f\t%.*f\t\n",
					precision, row.Zeta,
					precision, row.PhiM,
					precision, row.PhiH,
					precision, row.RiG,
					precision, row.RiB)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "BD71", "stability profile")
	cmd.Flags().StringVar(&regimeName, "regime", "full", "zeta regime: unstable, stable or full")
	cmd.Flags().StringVar(&outPath, "out", "", "write CSV to this path instead of printing")
	cmd.Flags().IntVar(&precision, "precision", 6, "decimal places")
	return cmd
}

func newInvertCmd(par *obukhov.Params) *cobra.Command {
	var (
		profileName string
		targetRaw   string
		guessRaw    string
		bulk        bool
	)

	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert a Richardson number back to ζ",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := obukhov.GetProfile(profileName)
			if err != nil {
				return err
			}
			target, err := obukhov.ParseValue(targetRaw)
			if err != nil {
				return fmt.Errorf("target: %w", err)
			}

			// Default guess sits on the target's side of neutral; the
			// forward maps are only branch-wise monotone.
			guess := 0.1
			if target < 0 {
				guess = -0.1
			}
			if guessRaw != "" {
				if guess, err = obukhov.ParseValue(guessRaw); err != nil {
					return fmt.Errorf("guess: %w", err)
				}
			}

			var sol obukhov.Solution
			if bulk {
				sol = obukhov.ZetaFromRiB(target, p, guess, *par)
			} else {
				sol = obukhov.ZetaFromRiG(target, p, guess, *par)
			}

			if sol.Status != obukhov.Converged {
				slog.Warn("low-confidence inversion",
					"status", sol.Status.String(),
					"iterations", sol.Iterations,
					"residual", sol.Residual)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "zeta = %.10f (%s, %d iterations, residual %.3g)\n",
				sol.Zeta, sol.Status, sol.Iterations, sol.Residual)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "BD71", "stability profile")
	cmd.Flags().StringVar(&targetRaw, "target", "", "Richardson number to invert")
	cmd.Flags().StringVar(&guessRaw, "guess", "", "initial ζ guess (default ±0.1 by target sign)")
	cmd.Flags().BoolVar(&bulk, "bulk", false, "invert bulk Ri_b instead of gradient Ri_g")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newChartCmd(par *obukhov.Params) *cobra.Command {
	var (
		profileName string
		regimeName  string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render φ_m, φ_h and Ri_g against ζ as a PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			p, regime, err := resolve(profileName, regimeName)
			if err != nil {
				return err
			}

			rows := obukhov.SweepRows(p, regime, *par)
			zetas := make([]float64, len(rows))
			phiM := make([]float64, len(rows))
			phiH := make([]float64, len(rows))
			riG := make([]float64, len(rows))
			for i, row := range rows {
				zetas[i] = row.Zeta
				phiM[i] = row.PhiM
				phiH[i] = row.PhiH
				riG[i] = row.RiG
			}

			graph := chart.Chart{
				Title: fmt.Sprintf("%s stability functions (%s)", p.Name, regime),
				XAxis: chart.XAxis{Name: "zeta = z/L"},
				Series: []chart.Series{
					chart.ContinuousSeries{Name: "phi_m", XValues: zetas, YValues: phiM},
					chart.ContinuousSeries{Name: "phi_h", XValues: zetas, YValues: phiH},
					chart.ContinuousSeries{Name: "ri_g", XValues: zetas, YValues: riG},
				},
			}
			graph.Elements = []chart.Renderable{chart.Legend(&graph)}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := graph.Render(chart.PNG, f); err != nil {
				return fmt.Errorf("rendering chart: %w", err)
			}
			slog.Info("chart written", "profile", p.Name, "regime", regime.String(), "path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "BD71", "stability profile")
	cmd.Flags().StringVar(&regimeName, "regime", "full", "zeta regime: unstable, stable or full")
	cmd.Flags().StringVar(&outPath, "out", "obukhov.png", "output PNG path")
	return cmd
}

func resolve(profileName, regimeName string) (obukhov.Profile, obukhov.Regime, error) {
	p, err := obukhov.GetProfile(profileName)
	if err != nil {
		return obukhov.Profile{}, 0, err
	}
	regime, err := obukhov.ParseRegime(regimeName)
	if err != nil {
		return obukhov.Profile{}, 0, err
	}
	return p, regime, nil
}
