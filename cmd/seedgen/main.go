package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fjc-seed/internal/attorney"
	"github.com/fjc-seed/internal/config"
	"github.com/fjc-seed/internal/court"
	"github.com/fjc-seed/internal/etl"
	"github.com/fjc-seed/internal/export"
	import_pkg "github.com/fjc-seed/internal/import"
	"github.com/fjc-seed/internal/logging"
	"github.com/fjc-seed/internal/normalize"
)

var (
	// Settings and logger shared by all subcommands, set before each run
	cfg    config.Config
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	var debugFlag bool

	rootCmd := &cobra.Command{
		Use:   "seedgen",
		Short: "Judicial directory seed migration generator",
		Long: `Builds a guarded PostgreSQL seed migration of district courts, judges
and fixture attorneys from the federal judicial biographical extracts`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debugFlag
			}

			l, err := logging.New(cfg.Debug, cfg.LogEncoding)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(createGenerateCmd())
	rootCmd.AddCommand(createResolveCmd())

	return rootCmd
}

// createGenerateCmd creates the generate subcommand
func createGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [judges.csv] [magistrates.json] [output.sql]",
		Short: "Generate the seed migration",
		Long: `Reads the biographical directory CSV and the magistrate JSON extract,
merges them and writes the seed migration to the output path`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], args[1], args[2])
		},
	}
}

func runGenerate(cmd *cobra.Command, judgesPath, magistratesPath, outputPath string) error {
	out := cmd.OutOrStdout()

	resolver, err := loadResolver()
	if err != nil {
		return err
	}

	fixture, err := attorney.DefaultFixture()
	if err != nil {
		return fmt.Errorf("failed to load attorney fixture: %w", err)
	}

	pipeline := etl.NewPipeline(resolver, normalize.DefaultRules(), fixture, logger)

	fmt.Fprintf(out, "Parsing CSV judges from %s...\n", judgesPath)
	rows, err := import_pkg.NewCSVImporter(logger).ImportJudges(judgesPath)
	if err != nil {
		return fmt.Errorf("failed to read judges: %w", err)
	}
	tabular := pipeline.NormalizeTabular(rows)
	fmt.Fprintf(out, "  Found %d active district court judges\n", len(tabular))

	fmt.Fprintf(out, "Parsing magistrate judges from %s...\n", magistratesPath)
	entries, err := import_pkg.ImportMagistrates(magistratesPath)
	if err != nil {
		return fmt.Errorf("failed to read magistrates: %w", err)
	}
	hierarchical := pipeline.NormalizeHierarchical(entries)
	fmt.Fprintf(out, "  Found %d active magistrate judges\n", len(hierarchical))

	fmt.Fprintf(out, "Total judges: %d\n", len(tabular)+len(hierarchical))
	result := pipeline.Assemble(tabular, hierarchical)
	fmt.Fprintf(out, "After dedup: %d unique judges\n", len(result.Judges))
	fmt.Fprintf(out, "Courts: %d districts\n", result.Registry.Len())
	fmt.Fprintf(out, "Generating attorneys...\n")
	fmt.Fprintf(out, "  Generated %d attorneys\n", len(result.Attorneys))

	migration := result.Migration(filepath.Base(judgesPath), filepath.Base(magistratesPath))
	sql := migration.Render()
	if err := export.WriteFileAtomic(outputPath, []byte(sql)); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nMigration written to %s\n", outputPath)
	fmt.Fprintf(out, "  %d judges + %d attorneys across %d courts\n",
		len(result.Judges), len(result.Attorneys), result.Registry.Len())
	fmt.Fprintf(out, "  File size: %s\n", sizeKB(len(sql)))

	return nil
}

// createResolveCmd creates a diagnostic command printing court ids for names
func createResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [court name]...",
		Short: "Resolve court names to short ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := loadResolver()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range args {
				if id, ok := resolver.Resolve(name); ok {
					fmt.Fprintf(out, "%s\t%s\n", id, name)
				} else {
					fmt.Fprintf(out, "-\t%s\n", name)
				}
			}
			return nil
		},
	}
}

// sizeKB renders a byte count in whole kilobytes, rounding half to even
func sizeKB(n int) string {
	return fmt.Sprintf("%.0f KB", float64(n)/1024)
}

func loadResolver() (*court.Resolver, error) {
	tables, err := court.LoadTablesFile(cfg.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load court tables: %w", err)
	}
	if cfg.TablesPath != "" {
		logger.Debug("Loaded court tables", zap.String("path", cfg.TablesPath))
	}
	return court.NewResolver(tables), nil
}
