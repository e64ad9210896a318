package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/docstruct/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docstruct",
	Short: "Extract the template structure of Word documents as JSON",
	Long: `Docstruct opens an OOXML word-processing package (.docx) and
reconstructs its page-oriented template structure: page size and
margins, paragraphs with styled text runs, tables with merged cells,
and images with position and size. The structure is written as a JSON
document suitable for downstream template-filling tooling.

Legacy binary .doc files are not converted; save them as .docx first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.docstruct/config.yaml)",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(versionCmd)
}
