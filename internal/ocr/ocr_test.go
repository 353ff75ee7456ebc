package ocr

import (
	"os"
	"path/filepath"
	"testing"
)

func box(left, top, right, bottom int) *Box {
	return &Box{Left: left, Top: top, Right: right, Bottom: bottom}
}

func TestMergeRowsTwoColumnLayout(t *testing.T) {
	// A photographed two-column menu: the recognizer emits the name
	// and the price as separate lines sharing a visual row.
	lines := []Line{
		{Text: "Chianti Classico Riserva 2018", Box: box(10, 100, 400, 130)},
		{Text: "$75", Box: box(500, 102, 560, 128)},
		{Text: "Barolo Monfortino 2016", Box: box(10, 160, 380, 190)},
		{Text: "$210", Box: box(500, 162, 570, 188)},
	}

	merged := MergeRows(lines)
	if len(merged) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(merged), merged)
	}
	if merged[0].Text != "Chianti Classico Riserva 2018 $75" {
		t.Fatalf("unexpected first row: %q", merged[0].Text)
	}
	if merged[1].Text != "Barolo Monfortino 2016 $210" {
		t.Fatalf("unexpected second row: %q", merged[1].Text)
	}
}

func TestMergeRowsOrdersLeftToRight(t *testing.T) {
	lines := []Line{
		{Text: "$45", Box: box(500, 100, 560, 130)},
		{Text: "Malbec 2020", Box: box(10, 100, 200, 130)},
	}
	merged := MergeRows(lines)
	if len(merged) != 1 || merged[0].Text != "Malbec 2020 $45" {
		t.Fatalf("unexpected merge: %+v", merged)
	}
	if merged[0].Box.Left != 10 || merged[0].Box.Right != 560 {
		t.Fatalf("unexpected merged box: %+v", *merged[0].Box)
	}
}

func TestMergeRowsOverlapThreshold(t *testing.T) {
	// 30px lines overlapping by 10px: below half the line height,
	// so they stay separate rows.
	lines := []Line{
		{Text: "Sancerre", Box: box(10, 100, 200, 130)},
		{Text: "$60", Box: box(500, 120, 560, 150)},
	}
	merged := MergeRows(lines)
	if len(merged) != 2 {
		t.Fatalf("expected 2 rows, got %+v", merged)
	}
}

func TestMergeRowsKeepsBoxlessLines(t *testing.T) {
	lines := []Line{
		{Text: "RED WINES"},
		{Text: "Rioja Reserva", Box: box(10, 100, 300, 130)},
	}
	merged := MergeRows(lines)
	if len(merged) != 2 || merged[0].Text != "RED WINES" {
		t.Fatalf("unexpected rows: %+v", merged)
	}
}

func TestResultTextPrefersMergedRows(t *testing.T) {
	r := Result{
		FullText: "Chianti 2018\n$75",
		Lines: []Line{
			{Text: "Chianti 2018", Box: box(10, 100, 300, 130)},
			{Text: "$75", Box: box(400, 100, 460, 130)},
		},
		ImageWidth:  1000,
		ImageHeight: 1400,
	}
	if got := r.Text(); got != "Chianti 2018 $75" {
		t.Fatalf("unexpected text: %q", got)
	}

	plain := Result{FullText: "Chianti 2018\n$75"}
	if got := plain.Text(); got != "Chianti 2018\n$75" {
		t.Fatalf("unexpected fallback text: %q", got)
	}
}

func TestSplitLinesKeepsInteriorBlanks(t *testing.T) {
	got := splitLines("\r\nChianti 2018\r\n\r\n$75\r\n\r\n")
	want := []string{"Chianti 2018", "", "$75"}
	if len(got) != len(want) {
		t.Fatalf("unexpected lines: %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestParseHTMLTable(t *testing.T) {
	html := `<html><body><table>
		<tr><th>Wine</th><th>Bottle</th></tr>
		<tr><td>Chianti Classico Riserva 2018</td><td>$75</td></tr>
		<tr><td>Cloudy Bay Sauvignon Blanc</td><td>$58</td></tr>
	</table></body></html>`

	lines, err := ExtractLines("html", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	if lines[1] != "Chianti Classico Riserva 2018 $75" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestParseHTMLListItems(t *testing.T) {
	html := `<html><body>
		<h2>Red Wines</h2>
		<ul><li>Rioja Reserva 2017 $48</li><li>Malbec 2020 $42</li></ul>
	</body></html>`

	lines, err := ExtractLines("html", html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 || lines[0] != "Red Wines" || lines[2] != "Malbec 2020 $42" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestExtractLinesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.txt")
	if err := os.WriteFile(path, []byte("RED WINES\nChianti 2018 $75\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	lines, err := ExtractLinesFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[1] != "Chianti 2018 $75" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestExtractLinesUnsupportedType(t *testing.T) {
	if _, err := ExtractLines("docx", "whatever"); err == nil {
		t.Fatal("expected error for unsupported input type")
	}
}
