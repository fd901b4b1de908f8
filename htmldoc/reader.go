// Package htmldoc provides HTML table document parsing.
package htmldoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/tsawler/tablexl/model"
)

// ErrNoTable is returned when the input contains no table element.
var ErrNoTable = errors.New("no table found in HTML")

// Reader provides access to the tables of one HTML document.
type Reader struct {
	doc *goquery.Document
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader. The input charset is sniffed
// and decoded to UTF-8 before parsing.
func OpenReader(r io.Reader) (*Reader, error) {
	decoded, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return &Reader{doc: doc}, nil
}

// Parse transcribes the first table of the given HTML text. It fails with
// ErrNoTable when no table element is present.
func Parse(htmlText string) (*model.TableData, error) {
	r, err := OpenReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}
	return r.Table()
}

// Table locates the first table element in the document and transcribes it.
//
// The transcription is 1:1 with the authored markup: each tr becomes a Row
// listing only the cells it authors, and no span resolution is performed.
// MaxCols is the maximum colspan-expanded cell count seen across rows.
func (r *Reader) Table() (*model.TableData, error) {
	table := r.doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	rows := transcribeRows(table)
	data := &model.TableData{Rows: rows}
	for _, row := range rows {
		if w := effectiveWidth(row); w > data.MaxCols {
			data.MaxCols = w
		}
	}
	return data, nil
}

// ParseRows transcribes the tr elements of an HTML fragment. The fragment
// may be bare tr markup or a complete table; either way the rows are
// returned in document order. An empty fragment yields no rows.
func ParseRows(fragment string) ([]model.Row, error) {
	// Bare tr/td markup is foster-parented out of existence unless it sits
	// inside a table element.
	if !strings.Contains(strings.ToLower(fragment), "<table") {
		fragment = "<table>" + fragment + "</table>"
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML fragment: %w", err)
	}

	return transcribeRows(doc.Selection), nil
}

// EffectiveWidth returns the colspan-expanded cell count of a row.
func EffectiveWidth(row model.Row) int {
	return effectiveWidth(row)
}

func transcribeRows(root *goquery.Selection) []model.Row {
	var rows []model.Row
	root.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row model.Row
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row.Cells = append(row.Cells, transcribeCell(cell))
		})
		if len(row.Cells) > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}

func transcribeCell(cell *goquery.Selection) model.Cell {
	return model.Cell{
		Text:     strings.TrimSpace(cell.Text()),
		ColSpan:  spanAttr(cell, "colspan"),
		RowSpan:  spanAttr(cell, "rowspan"),
		IsHeader: goquery.NodeName(cell) == "th",
		Style:    ParseStyle(cell.AttrOr("style", ""), cell.AttrOr("class", "")),
	}
}

// spanAttr reads a colspan/rowspan attribute. Absent, non-numeric, and
// non-positive values all normalize to 1.
func spanAttr(cell *goquery.Selection, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell.AttrOr(name, "1")))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func effectiveWidth(row model.Row) int {
	w := 0
	for _, c := range row.Cells {
		w += c.ColSpan
	}
	return w
}
