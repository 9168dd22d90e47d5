// Package cli provides the command-line interface for tokenise.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokenise/internal/config"
	"github.com/jmylchreest/tokenise/internal/naming"
	"github.com/jmylchreest/tokenise/internal/version"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose    bool
	quiet      bool
	pattern    patternValue
	prefix     string
	collection string
	store      string
	figmaToken string
	cacheDir   string
	noCache    bool
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the tokenise command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{pattern: patternValue(naming.DefaultPattern)}

	rootCmd := &cobra.Command{
		Use:   "tokenise",
		Short: "Turn the colours of a design into named tokens",
		Long: `tokenise extracts the solid fill, stroke and text colours used in a design
document, deduplicates them and gives each a deterministic token name
following a naming convention (material, tailwind, antd, wcag or custom).

Named colours can be written as a JSON token file or exported as colour
variables into a variable store.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-error output")
	pf.VarP(&flags.pattern, "pattern", "p", "naming pattern ("+patternList()+")")
	pf.StringVar(&flags.prefix, "prefix", "", "token prefix for the custom pattern (default \"color\")")
	pf.StringVar(&flags.collection, "collection", "", "variable collection name (default \"Color Tokens\")")
	pf.StringVar(&flags.store, "store", "", "variable store: memory, file:<path> or plugin:<path> (default \"memory\")")
	pf.StringVar(&flags.figmaToken, "figma-token", "", "Figma access token (default $FIGMA_TOKEN)")
	pf.StringVar(&flags.cacheDir, "cache-dir", "", "cache directory for remote documents")
	pf.BoolVar(&flags.noCache, "no-cache", false, "do not read or write cached remote documents")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newExtractCommand(flags))
	rootCmd.AddCommand(newRenameCommand(flags))
	rootCmd.AddCommand(newExportCommand(flags))
	rootCmd.AddCommand(newServeCommand(flags))

	return rootCmd
}

// resolveConfig layers flags over the environment over defaults.
func resolveConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg := config.Default().WithEnv()

	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}
	if changed("pattern") {
		cfg.Pattern = flags.pattern.Pattern()
	}
	if changed("prefix") {
		cfg.CustomPrefix = flags.prefix
	}
	if changed("collection") {
		cfg.Collection = flags.collection
	}
	if changed("store") {
		cfg.Store = flags.store
	}
	if changed("figma-token") {
		cfg.FigmaToken = flags.figmaToken
	}
	if changed("cache-dir") {
		cfg.CacheDir = flags.cacheDir
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns the command logger writing to the command's stderr.
func newLogger(cmd *cobra.Command, flags *globalFlags) hclog.Logger {
	level := hclog.Info
	switch {
	case flags.verbose:
		level = hclog.Debug
	case flags.quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tokenise",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// status prints a progress message to stderr unless quiet.
func status(cmd *cobra.Command, flags *globalFlags, format string, args ...any) {
	if flags.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Token files are meant to be shared
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readInput reads path, or the command's stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path) // #nosec G304 - Input path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
