package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/docstruct/docx"

	// Decoders for pixel-dimension probing of extracted parts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imagesDir string

var imagesCmd = &cobra.Command{
	Use:   "images <file.docx>",
	Short: "Extract embedded images referenced from the document body",
	Long: `Images resolves every picture referenced from the document body,
writes the binary parts to a directory, and reports each image's
content type, declared size in inches, and decoded pixel dimensions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		r, err := docx.Open(input)
		if err != nil {
			logger.Error("open failed", "file", input, "error", err)
			return err
		}
		defer r.Close()

		dir := imagesDir
		if dir == "" {
			dir = cfg.ImageDir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		count := 0
		seen := make(map[string]bool)
		for _, page := range r.Pages() {
			for _, img := range page.Images() {
				if seen[img.Path] {
					continue
				}
				seen[img.Path] = true

				data, err := r.PartBytes(img.Path)
				if err != nil {
					logger.Warn("image part unreadable", "part", img.Path, "error", err)
					continue
				}

				out := filepath.Join(dir, filepath.Base(img.Path))
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}

				attrs := []any{
					"part", img.Path,
					"output", out,
					"contentType", img.ContentType,
					"width", img.Width,
					"height", img.Height,
				}
				if c, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
					attrs = append(attrs, "pixels", fmt.Sprintf("%dx%d", c.Width, c.Height), "format", format)
				}
				logger.Info("image extracted", attrs...)
				count++
			}
		}

		logger.Info("done", "file", input, "images", count, "dir", dir)
		return nil
	},
}

func init() {
	imagesCmd.Flags().StringVarP(
		&imagesDir, "dir", "d", "", "directory for extracted images (default: configured image directory)",
	)
}
