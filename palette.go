package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [name]",
	Short: "List palettes or print one as TOML",
	Long: `Without arguments, list the registered palette names.

With a name, print that palette in the TOML format read by theme.day_file
and theme.night_file. The output reflects any palette files already set in
the config, so it is a starting point for a custom look:

  clockface palette night > ~/.config/clockface/night.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writePalette(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

// writePalette lists palette names, or encodes the named palette.
func writePalette(w io.Writer, args []string) error {
	names := theme.Names()
	if len(args) == 0 {
		_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
		return err
	}

	name := strings.ToLower(args[0])
	if !slices.Contains(names, name) {
		return fmt.Errorf("palette: unknown palette %q (have %s)", args[0], strings.Join(names, ", "))
	}
	data, err := theme.SaveToTOML(theme.Get(name))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
