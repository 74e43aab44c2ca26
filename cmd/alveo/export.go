package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"alveocli/internal/config"
	"alveocli/internal/dataprocessing"
	"alveocli/internal/exporter"
	"alveocli/internal/files"
	"alveocli/internal/infrastructure"
	"alveocli/internal/validation"
	"alveocli/pkg/contracts/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [instrument files...]",
	Short: "Export instrument files as one formatted worksheet",
	Long: `Export parses each input file in order, verifies the batch shares a
single column layout, and writes the measurements to a workbook at the
output path. Input order determines row order in the worksheet.

Inputs are the file arguments, or every matching file of --input-dir in
name order when no files are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := infrastructure.GetLogger()

		output, _ := cmd.Flags().GetString("output")
		sheet, _ := cmd.Flags().GetString("sheet")
		inputDir, _ := cmd.Flags().GetString("input-dir")
		pattern, _ := cmd.Flags().GetString("pattern")
		if sheet == "" {
			sheet = store.SheetName
		}
		if pattern == "" {
			pattern = appConfig.Export.InputPattern
		}

		inputs := args
		if len(inputs) == 0 {
			if inputDir == "" {
				return fmt.Errorf("no input files: pass instrument files as arguments or use --input-dir")
			}
			discovered, err := files.NewDiscovery(pattern).FindInstrumentFiles(inputDir)
			if err != nil {
				return err
			}
			for _, f := range discovered {
				inputs = append(inputs, f.Path)
			}
		}

		validator := validation.NewFileValidator(logger)
		if err := validator.ValidateInputFiles(inputs); err != nil {
			return err
		}
		if err := validator.ValidateOutputPath(output); err != nil {
			return err
		}

		if err := runExport(inputs, output, sheet, store, logger); err != nil {
			return describeExportError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d file(s) to %s\n", len(inputs), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output workbook path (.xlsx)")
	exportCmd.Flags().String("sheet", "", "worksheet name (default: sheet_name from the config store)")
	exportCmd.Flags().String("input-dir", "", "directory to scan for instrument files when no file arguments are given")
	exportCmd.Flags().String("pattern", "", "file name pattern for --input-dir (default: input_pattern from config)")
	exportCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(exportCmd)
}

// runExport drives the pipeline for one batch: parse every input in
// order, align the batch, lay it out as a worksheet, and save the
// workbook. Nothing is written unless the whole batch aligns.
func runExport(inputs []string, outputPath, sheetName string, store config.Store, logger *slog.Logger) error {
	records := make([]domain.TestData, 0, len(inputs))
	for _, path := range inputs {
		rawText, err := files.ReadText(path)
		if err != nil {
			return err
		}

		record, err := dataprocessing.Parse(path, rawText, store)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		logger.Info("Parsed instrument file",
			slog.String("path", path),
			slog.String("test_name", record.TestName),
			slog.Int("row_count", len(record.Rows)))
		records = append(records, record)
	}

	batch, err := dataprocessing.Align(records)
	if err != nil {
		return err
	}

	wb := exporter.NewWorkbook()
	if err := wb.Export(batch, sheetName); err != nil {
		return err
	}
	if err := wb.Close(outputPath); err != nil {
		return err
	}

	logger.Info("Export complete",
		slog.String("output", outputPath),
		slog.String("sheet", sheetName),
		slog.Int("record_count", len(records)))
	return nil
}

// describeExportError turns the pipeline's typed errors into messages
// that tell the user what to fix, without losing the original error.
func describeExportError(err error) error {
	var markerErr *dataprocessing.MarkerNotFoundError
	if errors.As(err, &markerErr) {
		return fmt.Errorf("%w (check the read_start_header setting against the instrument output)", err)
	}

	var rowErr *dataprocessing.MalformedRowError
	if errors.As(err, &rowErr) {
		return fmt.Errorf("%w (the file was not exported; fix or exclude it and retry)", err)
	}

	var schemaErr *dataprocessing.SchemaMismatchError
	if errors.As(err, &schemaErr) {
		return fmt.Errorf("%w (no worksheet was written; all files in a batch must report the same measurements in the same order)", err)
	}

	return err
}
