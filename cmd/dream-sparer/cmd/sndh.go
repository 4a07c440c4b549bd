package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hikari-no-yume/dream-sparer/pkg/dump"
	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
	"github.com/hikari-no-yume/dream-sparer/pkg/sndh"
)

var sndhOutput string

// sndhCmd represents the sndh command.
var sndhCmd = &cobra.Command{
	Use:   "sndh <file>",
	Short: "Translate Director sound headers into ffmpeg arguments",
	Long: `Decode every 'sndH' sound clip header in a Director movie and write
one INDEX-OFFSET-sndH.txt file per clip containing the ffmpeg raw-input
arguments for the matching 'sndS' sample data.

Supports 8-bit unsigned and 16-, 24- and 32-bit signed PCM. Translation is
generous: suspicious headers produce warnings, not failures, and nothing
guarantees the result is correct.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0])
		if err != nil {
			return err
		}

		outDir := sndhOutput
		if outDir == "" {
			outDir = cfg.OutputDir
		}
		writer, err := dump.NewWriter(outDir)
		if err != nil {
			return err
		}

		var translated int
		w := f.Walk()
		for w.Next() {
			c := w.Chunk()
			if !f.Matches(c.Tag, riff.TagSndH) {
				continue
			}

			h, err := sndh.Decode(c.Payload)
			if err != nil {
				log.Warn().Uint32("index", c.Index).Int("offset", c.Offset).Err(err).
					Msg("ignoring undecodable sound header")
				continue
			}
			for _, warning := range h.Check() {
				log.Warn().Uint32("index", c.Index).Int("offset", c.Offset).
					Msg("sound header: " + warning)
			}

			args, err := h.FFmpegArgs()
			if err != nil {
				log.Warn().Uint32("index", c.Index).Int("offset", c.Offset).Err(err).
					Msg("ignoring untranslatable sound header")
				continue
			}

			name, err := writer.WriteText(c, "sndH", args)
			if err != nil {
				return err
			}
			log.Info().Uint32("index", c.Index).Str("path", name).Str("args", args).
				Msg("translated sound header")
			translated++
		}
		if err := w.Err(); err != nil {
			return fmt.Errorf("stopped after translating %d sound headers: %w", translated, err)
		}

		fmt.Printf("translated %d sound headers\n", translated)
		return nil
	},
}

func init() {
	sndhCmd.Flags().StringVarP(&sndhOutput, "output", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(sndhCmd)
}
