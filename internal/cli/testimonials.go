package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yildizm/testimonialhero/internal/formatter"
	"github.com/yildizm/testimonialhero/internal/testimonial"
	"github.com/yildizm/testimonialhero/internal/ui"
)

var (
	listFormat     string
	listOutputFile string
)

func newTestimonialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "testimonials",
		Aliases: []string{"list"},
		Short:   "Print the dashboard testimonials",
		Long: `Print the testimonials the dashboard shows, with a rating summary.

The source is taken from the configuration: the built-in sample data or a
YAML fixture file (testimonials.source: file).

Examples:
  testimonialhero testimonials
  testimonialhero testimonials -o json
  testimonialhero testimonials -o csv --output-file testimonials.csv`,
		Args: cobra.NoArgs,
		RunE: runTestimonials,
	}

	cmd.Flags().StringVarP(&listFormat, "output", "o", "text", "output format ("+strings.Join(formatter.Formats, ", ")+")")
	cmd.Flags().StringVar(&listOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runTestimonials(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	source, _, err := openSource(cfg.Testimonials)
	if err != nil {
		return err
	}
	records, err := source.List()
	if err != nil {
		return fmt.Errorf("failed to list testimonials: %w", err)
	}

	now, err := testimonial.ClockAt(cfg.Testimonials.ReferenceDate)
	if err != nil {
		return err
	}

	f, err := formatter.New(listFormat, listOutputFile == "" && !ui.IsColorDisabled())
	if err != nil {
		return err
	}
	output, err := f.Format(formatter.NewReport(records, now()))
	if err != nil {
		return fmt.Errorf("failed to format testimonials: %w", err)
	}

	getLogger().Debug("listed testimonials",
		zap.Int("count", len(records)),
		zap.String("format", listFormat))

	if listOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}
	if err := writeOutputBytesToFile(output, listOutputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Output saved to: %s\n", listOutputFile)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && verbose {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
