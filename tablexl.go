// Package tablexl converts HTML table documents into XLSX spreadsheets,
// preserving merged cells (colspan/rowspan), per-cell styling, and computed
// column widths and row heights.
//
// Basic usage:
//
//	buf, err := tablexl.ConvertToBuffer(htmlText, nil)
//	if err != nil {
//	    // handle error
//	}
//
// Writing to disk, with banner titles:
//
//	title := &model.TitleConfig{NumOfRows: 1, Titles: []string{"Q3 Report"}}
//	path, err := tablexl.ConvertToFile(htmlText, "report.xlsx", title)
//
// Very large tables (above 10,000 rows) are assembled through a
// bounded-memory reduced-fidelity path automatically. For incremental
// input, see [StreamProcessor].
//
// For advanced use cases the lower-level htmldoc, tables, and xlsx
// packages are also available.
package tablexl

import (
	"bytes"
	"fmt"

	"github.com/tsawler/tablexl/htmldoc"
	"github.com/tsawler/tablexl/model"
	"github.com/tsawler/tablexl/tables"
	"github.com/tsawler/tablexl/xlsx"
)

// Result is the outcome of a conversion: a file path when an output path
// was supplied, otherwise an in-memory workbook buffer.
type Result struct {
	Path   string
	Buffer *bytes.Buffer
}

// Convert converts the first HTML table of htmlText into a workbook. When
// outputPath is non-empty the workbook is saved there and Result.Path is
// set; otherwise Result.Buffer holds the serialized workbook.
//
// It fails with a descriptive error when no table element is present
// (htmldoc.ErrNoTable remains matchable through the wrap) or when a
// collaborator call fails. Any error means no valid output was produced.
func Convert(htmlText string, title *model.TitleConfig, outputPath string) (Result, error) {
	data, err := htmldoc.Parse(htmlText)
	if err != nil {
		return Result{}, fmt.Errorf("converting HTML to Excel: %w", err)
	}
	return convertData(data, title, outputPath, xlsx.DefaultSheetName)
}

// ConvertToFile converts htmlText and saves the workbook at outputPath,
// returning the path.
func ConvertToFile(htmlText, outputPath string, title *model.TitleConfig) (string, error) {
	res, err := Convert(htmlText, title, outputPath)
	if err != nil {
		return "", err
	}
	return res.Path, nil
}

// ConvertToBuffer converts htmlText and returns the workbook as an
// in-memory buffer.
func ConvertToBuffer(htmlText string, title *model.TitleConfig) (*bytes.Buffer, error) {
	res, err := Convert(htmlText, title, "")
	if err != nil {
		return nil, err
	}
	return res.Buffer, nil
}

// ConvertStream converts one large HTML document in chunked fashion,
// firing opts.OnChunk at every ChunkSize-row boundary and opts.OnComplete
// when the workbook has been produced. Failures are routed to opts.OnError
// before being returned.
func ConvertStream(htmlText, outputPath string, opts StreamOptions) (Result, error) {
	opts = opts.withDefaults()

	data, err := htmldoc.Parse(htmlText)
	if err != nil {
		return Result{}, routeError(opts, fmt.Errorf("converting HTML to Excel: %w", err))
	}

	if opts.OnChunk != nil {
		for n := opts.ChunkSize; n <= len(data.Rows); n += opts.ChunkSize {
			opts.OnChunk(n/opts.ChunkSize, n)
		}
	}

	res, err := convertData(data, nil, outputPath, opts.SheetName)
	if err != nil {
		return Result{}, routeError(opts, err)
	}
	if opts.OnComplete != nil {
		opts.OnComplete(len(data.Rows), res.Path)
	}
	return res, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	buf := tablexl.Must(tablexl.ConvertToBuffer(htmlText, nil))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// convertData runs the shared grid-layout-and-assembly pipeline.
func convertData(data *model.TableData, title *model.TitleConfig, outputPath, sheetName string) (Result, error) {
	grid := tables.Layout(data)

	f, err := xlsx.Write(grid, title, sheetName)
	if err != nil {
		return Result{}, fmt.Errorf("converting HTML to Excel: %w", err)
	}
	defer f.Close()

	if outputPath != "" {
		if err := f.SaveAs(outputPath); err != nil {
			return Result{}, fmt.Errorf("converting HTML to Excel: saving %s: %w", outputPath, err)
		}
		return Result{Path: outputPath}, nil
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Result{}, fmt.Errorf("converting HTML to Excel: %w", err)
	}
	return Result{Buffer: buf}, nil
}

func routeError(opts StreamOptions, err error) error {
	if opts.OnError != nil {
		opts.OnError(err)
	}
	return err
}
