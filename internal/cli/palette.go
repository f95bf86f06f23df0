package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stagetimer/internal/appearance"
	"github.com/opencode-ai/stagetimer/internal/tui/components"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List background swatches",
	Long:  "List the background swatches. The number is the key that picks the swatch while the color picker is open.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writePalette(cmd.OutOrStdout(), appearance.Palette, GetConfig().Appearance.Color)
	},
}

func writePalette(out io.Writer, palette []appearance.Swatch, configured string) error {
	rows := make([][]string, 0, len(palette))
	for i, s := range palette {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Name,
			s.Background,
			s.Text,
			formatSwatchKind(s.Dark()),
			appearance.LogoFor(s).Asset(),
			formatYesNo(strings.EqualFold(s.Name, configured)),
		})
	}
	if err := writeTable(out, []string{"key", "name", "background", "text", "kind", "logo", "initial"}, rows); err != nil {
		return err
	}

	if colorEnabled() {
		chips := make([]string, 0, len(palette))
		for i, s := range palette {
			chips = append(chips, components.RenderSwatch(s, i, strings.EqualFold(s.Name, configured)))
		}
		fmt.Fprintf(out, "\n%s\n", strings.Join(chips, " "))
	}
	return nil
}
