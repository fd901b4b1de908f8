package tablexl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/tablexl/htmldoc"
	"github.com/tsawler/tablexl/model"
)

const simpleTable = `<table><tr><th>Name</th><th>Age</th></tr><tr><td>John</td><td>30</td></tr></table>`

func TestConvertToBuffer_Simple(t *testing.T) {
	buf, err := ConvertToBuffer(simpleTable, nil)
	if err != nil {
		t.Fatalf("ConvertToBuffer() failed: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows() failed: %v", err)
	}
	want := [][]string{{"Name", "Age"}, {"John", "30"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}

	merges, _ := f.GetMergeCells("Sheet1")
	if len(merges) != 0 {
		t.Errorf("merges = %d, want 0", len(merges))
	}
}

func TestConvertToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	got, err := ConvertToFile(simpleTable, path, nil)
	if err != nil {
		t.Fatalf("ConvertToFile() failed: %v", err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestConvert_NoTable(t *testing.T) {
	_, err := Convert("<p>nothing tabular</p>", nil, "")
	if err == nil {
		t.Fatal("Convert() expected error for input without a table")
	}
	if !errors.Is(err, htmldoc.ErrNoTable) {
		t.Errorf("error = %v, want ErrNoTable in chain", err)
	}
	if !strings.Contains(err.Error(), "converting HTML to Excel") {
		t.Errorf("error %q should carry conversion context", err)
	}
}

func TestConvert_Idempotent(t *testing.T) {
	html := `<table>
		<tr><th colspan="2">Summary</th></tr>
		<tr><td style="color: #FF0000">a</td><td>b</td></tr>
	</table>`

	read := func() ([][]string, []excelize.MergeCell) {
		buf, err := ConvertToBuffer(html, nil)
		if err != nil {
			t.Fatalf("ConvertToBuffer() failed: %v", err)
		}
		f, err := excelize.OpenReader(buf)
		if err != nil {
			t.Fatalf("OpenReader() failed: %v", err)
		}
		defer f.Close()
		rows, _ := f.GetRows("Sheet1")
		merges, _ := f.GetMergeCells("Sheet1")
		return rows, merges
	}

	rows1, merges1 := read()
	rows2, merges2 := read()
	if !reflect.DeepEqual(rows1, rows2) {
		t.Errorf("cell content differs between runs: %v vs %v", rows1, rows2)
	}
	if !reflect.DeepEqual(merges1, merges2) {
		t.Errorf("merge lists differ between runs: %v vs %v", merges1, merges2)
	}
}

func TestConvert_WithTitle(t *testing.T) {
	title := &model.TitleConfig{NumOfRows: 1, Titles: []string{"People"}}

	buf, err := ConvertToBuffer(simpleTable, title)
	if err != nil {
		t.Fatalf("ConvertToBuffer() failed: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer f.Close()

	a1, _ := f.GetCellValue("Sheet1", "A1")
	if a1 != "People" {
		t.Errorf("A1 = %q, want 'People'", a1)
	}
	a2, _ := f.GetCellValue("Sheet1", "A2")
	if a2 != "Name" {
		t.Errorf("A2 = %q, want 'Name' (table shifted below banner)", a2)
	}
}

func TestConvertStream_Callbacks(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<table><tr><th>n</th></tr>")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "<tr><td>%d</td></tr>", i)
	}
	sb.WriteString("</table>")

	var chunks [][2]int
	var completed bool
	var completedRows int

	res, err := ConvertStream(sb.String(), "", StreamOptions{
		ChunkSize: 10,
		OnChunk:   func(idx, total int) { chunks = append(chunks, [2]int{idx, total}) },
		OnComplete: func(total int, path string) {
			completed = true
			completedRows = total
		},
	})
	if err != nil {
		t.Fatalf("ConvertStream() failed: %v", err)
	}
	if res.Buffer == nil {
		t.Fatal("ConvertStream() without path should return a buffer")
	}

	want := [][2]int{{1, 10}, {2, 20}}
	if !reflect.DeepEqual(chunks, want) {
		t.Errorf("chunk callbacks = %v, want %v", chunks, want)
	}
	if !completed || completedRows != 26 {
		t.Errorf("OnComplete fired=%v rows=%d, want true/26", completed, completedRows)
	}
}

func TestConvertStream_ErrorRouted(t *testing.T) {
	var routed error
	_, err := ConvertStream("<div>no table</div>", "", StreamOptions{
		OnError: func(e error) { routed = e },
	})
	if err == nil {
		t.Fatal("ConvertStream() expected error")
	}
	if routed == nil || !errors.Is(routed, htmldoc.ErrNoTable) {
		t.Errorf("OnError received %v, want the returned ErrNoTable", routed)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must() = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
