package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/docstruct"
)

var (
	extractOutput string
	extractStdout bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.docx>",
	Short: "Extract a document's template structure to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		extractor := docstruct.Open(input)

		if extractStdout {
			structure, err := extractor.Structure()
			if err != nil {
				logger.Error("extraction failed", "file", input, "error", err)
				return err
			}
			return docstruct.WriteJSON(os.Stdout, structure)
		}

		output := extractOutput
		if output == "" {
			// Pin one clock read so the filename timestamp and the
			// JSON's extractedAt agree.
			now := time.Now()
			extractor.Now(func() time.Time { return now })
			output = filepath.Join(cfg.OutputDir, docstruct.DefaultOutputName(now))
		}

		path, err := extractor.Save(output)
		if err != nil {
			logger.Error("extraction failed", "file", input, "error", err)
			return err
		}

		logger.Info("template structure saved", "file", input, "output", path)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(
		&extractOutput, "output", "o", "", "output JSON path (default: timestamped name in the output directory)",
	)
	extractCmd.Flags().BoolVar(
		&extractStdout, "stdout", false, "write JSON to stdout instead of a file",
	)
}
