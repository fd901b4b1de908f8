package tablexl

import (
	"errors"
	"fmt"

	"github.com/tsawler/tablexl/htmldoc"
	"github.com/tsawler/tablexl/model"
)

// Errors enforcing the streaming processor's header-first invariant.
var (
	// ErrHeaderNotProcessed is returned when rows are written before the
	// header fragment.
	ErrHeaderNotProcessed = errors.New("header must be processed first")

	// ErrNoHeaderData is returned when Finalize is called without any
	// header having been written.
	ErrNoHeaderData = errors.New("no header data processed")
)

// StreamProcessor accumulates an HTML table incrementally: one header
// fragment, then any number of row or row-group fragments, until Finalize
// runs the grid-layout-and-assembly pipeline over everything accumulated.
//
// A processor is single-writer: its methods must not be called
// concurrently. Each processor is good for one conversion; after Finalize
// it cannot be reused.
type StreamProcessor struct {
	outputPath string
	opts       StreamOptions

	headerDone  bool
	rows        []model.Row
	maxCols     int
	rowCount    int
	chunkNumber int
	finalized   bool
}

// NewStreamProcessor creates a processor. When outputPath is non-empty,
// Finalize saves the workbook there; otherwise it returns a buffer.
func NewStreamProcessor(outputPath string, opts StreamOptions) *StreamProcessor {
	return &StreamProcessor{
		outputPath: outputPath,
		opts:       opts.withDefaults(),
	}
}

// WriteHeader accepts the table's header fragment (one or more tr
// elements). It must be called exactly once, before any rows.
func (p *StreamProcessor) WriteHeader(fragment string) error {
	if p.headerDone {
		return p.fail(errors.New("header already processed"))
	}

	rows, err := htmldoc.ParseRows(fragment)
	if err != nil {
		return p.fail(fmt.Errorf("parsing header fragment: %w", err))
	}

	p.accumulate(rows)
	p.headerDone = true
	return nil
}

// WriteRow accepts a fragment holding a single table row.
func (p *StreamProcessor) WriteRow(fragment string) error {
	return p.writeRows(fragment)
}

// WriteChunk accepts a fragment holding any number of table rows.
func (p *StreamProcessor) WriteChunk(fragment string) error {
	return p.writeRows(fragment)
}

func (p *StreamProcessor) writeRows(fragment string) error {
	if !p.headerDone {
		return p.fail(ErrHeaderNotProcessed)
	}

	rows, err := htmldoc.ParseRows(fragment)
	if err != nil {
		return p.fail(fmt.Errorf("parsing row fragment: %w", err))
	}

	p.accumulate(rows)
	p.rowCount += len(rows)

	if p.opts.OnChunk != nil {
		for p.rowCount >= (p.chunkNumber+1)*p.opts.ChunkSize {
			p.chunkNumber++
			p.opts.OnChunk(p.chunkNumber, p.rowCount)
		}
	}
	return nil
}

// Finalize runs the conversion over every accumulated row and returns the
// output path or buffer. The failure is routed to OnError before being
// returned; on success OnComplete fires with the processed row count.
func (p *StreamProcessor) Finalize() (Result, error) {
	if !p.headerDone {
		return Result{}, p.fail(ErrNoHeaderData)
	}
	if p.finalized {
		return Result{}, p.fail(errors.New("stream already finalized"))
	}
	p.finalized = true

	data := &model.TableData{Rows: p.rows, MaxCols: p.maxCols}
	res, err := convertData(data, nil, p.outputPath, p.opts.SheetName)
	if err != nil {
		return Result{}, p.fail(err)
	}

	if p.opts.OnComplete != nil {
		p.opts.OnComplete(p.rowCount, res.Path)
	}
	return res, nil
}

// ProcessedRows returns the number of data rows accumulated so far. Header
// rows are not counted.
func (p *StreamProcessor) ProcessedRows() int {
	return p.rowCount
}

func (p *StreamProcessor) accumulate(rows []model.Row) {
	p.rows = append(p.rows, rows...)
	for _, row := range rows {
		if w := htmldoc.EffectiveWidth(row); w > p.maxCols {
			p.maxCols = w
		}
	}
}

func (p *StreamProcessor) fail(err error) error {
	if p.opts.OnError != nil {
		p.opts.OnError(err)
	}
	return err
}
