package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listQuiet []string

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List every chunk in a movie file",
	Long: `List every chunk in a movie file, one line per chunk, indented by
nesting depth.

Example:
  dream-sparer list movie.dir --quiet-all free --quiet-all junk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openMovie(args[0])
		if err != nil {
			return err
		}

		sel, err := newSelector(f, nil, nil, listQuiet)
		if err != nil {
			return err
		}

		var listed, total int
		w := f.Walk()
		for w.Next() {
			c := w.Chunk()
			total++
			if sel.Quiet(c) {
				continue
			}
			listed++
			indent := strings.Repeat("  ", c.Depth-1)
			fmt.Printf("%s#%d %s, %d bytes at offset %d\n",
				indent, c.Index, f.DisplayTag(c.Tag), c.Length, c.Offset)
		}
		if err := w.Err(); err != nil {
			return fmt.Errorf("stopped after %d chunks: %w", total, err)
		}

		fmt.Printf("%d chunks (%d listed), no structural problems\n", total, listed)
		return nil
	},
}

func init() {
	listCmd.Flags().StringArrayVar(&listQuiet, "quiet-all", nil, "don't list chunks of this type (repeatable)")
	rootCmd.AddCommand(listCmd)
}
