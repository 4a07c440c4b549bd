package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hikari-no-yume/dream-sparer/pkg/config"
	"github.com/hikari-no-yume/dream-sparer/pkg/dump"
	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
)

var (
	cfgFile  string
	logLevel string

	// cfg is loaded once before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dream-sparer",
	Short: "Read and extract chunks from RIFX/XFIR movie files",
	Long: `dream-sparer reads RIFX/XFIR container files (Macromedia Director
movies and relatives), lists their chunk tree, and extracts chunk payloads.

Both byte-order variants are handled: 'RIFX' (big-endian) and 'XFIR'
(little-endian, with chunk tags stored in reversed spelling).`,
	Version:       "2.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(lvl)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/dream-sparer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}

// openMovie parses the file and announces its detected variant.
func openMovie(path string) (*riff.File, error) {
	f, err := riff.Open(path)
	if err != nil {
		return nil, err
	}

	order := "big-endian"
	if f.Reversed() {
		order = "little-endian"
	}
	log.Info().
		Str("file", path).
		Str("byte_order", order).
		Str("kind", f.DisplayTag(f.Kind())).
		Uint32("declared_size", f.DeclaredSize()).
		Int("file_size", f.Len()).
		Msg("opened movie")
	return f, nil
}

// addSpellings registers a user-supplied tag under every spelling it can
// appear as in this file: reversed-tag files may hold either form.
func addSpellings(f *riff.File, raw string, add func(riff.FourCC)) error {
	tag, err := riff.ParseFourCC(raw)
	if err != nil {
		return fmt.Errorf("invalid chunk type %q: %w", raw, err)
	}
	add(tag)
	if f.Reversed() {
		add(tag.Reversed())
	}
	return nil
}

// newSelector builds a selector from repeated type/index flags plus the
// configured quiet types.
func newSelector(f *riff.File, tags []string, indices []uint, quiet []string) (*dump.Selector, error) {
	s := dump.NewSelector()
	for _, raw := range tags {
		if err := addSpellings(f, raw, s.AddTag); err != nil {
			return nil, err
		}
	}
	for _, i := range indices {
		s.AddIndex(uint32(i))
	}
	for _, raw := range append(append([]string{}, quiet...), cfg.QuietTypes...) {
		if err := addSpellings(f, raw, s.Silence); err != nil {
			return nil, err
		}
	}
	return s, nil
}
