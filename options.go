package tablexl

import "github.com/tsawler/tablexl/xlsx"

// DefaultChunkSize is the number of accumulated rows between progress
// callbacks when none is configured.
const DefaultChunkSize = 1000

// StreamOptions configures chunked and streaming conversions.
//
// All fields are optional. Callbacks are invoked synchronously from the
// goroutine driving the conversion.
type StreamOptions struct {
	// ChunkSize is the number of accumulated rows between OnChunk calls.
	// Defaults to DefaultChunkSize.
	ChunkSize int

	// SheetName names the output worksheet. Defaults to "Sheet1".
	SheetName string

	// OnChunk is called after every ChunkSize accumulated rows with the
	// 1-based chunk index and the total rows accumulated so far.
	OnChunk func(chunkIndex, totalRows int)

	// OnComplete is called once the workbook has been produced, with the
	// total row count and the output path (empty for buffer output).
	OnComplete func(totalRows int, outputPath string)

	// OnError receives any failure before it is returned to the caller.
	OnError func(err error)
}

// withDefaults fills unset options.
func (o StreamOptions) withDefaults() StreamOptions {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.SheetName == "" {
		o.SheetName = xlsx.DefaultSheetName
	}
	return o
}
