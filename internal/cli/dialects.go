package cli

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomatlex/internal/logging"
	"github.com/yaklabco/gomatlex/pkg/dialect"
	"github.com/yaklabco/gomatlex/pkg/matlex"
	"github.com/yaklabco/gomatlex/pkg/words"
)

type dialectsFlags struct {
	format string
}

const formatJSON = "json"

// dialectInfo represents a dialect in JSON output.
type dialectInfo struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	Keywords   int      `json:"keywords"`
	Commands   int      `json:"commands"`
	Functions  int      `json:"functions"`
}

func newDialectsCommand() *cobra.Command {
	flags := &dialectsFlags{}

	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects",
		Long: `List the supported dialects with their file extensions and the
size of their embedded keyword tables.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			infos := collectDialectInfo()

			if flags.format == formatJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			logger := logging.NewInteractive()
			for _, info := range infos {
				logger.Info(info.Name,
					"extensions", strings.Join(info.Extensions, " "),
					"keywords", info.Keywords,
					"commands", info.Commands,
					"functions", info.Functions,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func collectDialectInfo() []dialectInfo {
	dialects := matlex.Dialects()
	infos := make([]dialectInfo, 0, len(dialects))
	for _, d := range dialects {
		tables := words.Tables(d)
		infos = append(infos, dialectInfo{
			Name:       d.String(),
			Extensions: dialect.ExtensionsFor(d),
			Keywords:   tables.Keywords.Len(),
			Commands:   tables.Commands.Len(),
			Functions:  tables.Function1.Len() + tables.Function2.Len(),
		})
	}
	return infos
}
