package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
)

func readDef(t *testing.T, src string) *Definition {
	t.Helper()
	def, err := ReadDefinition(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadDefinition error: %v", err)
	}
	return def
}

func buildDoc(t *testing.T, def *Definition, ds Dataset) string {
	t.Helper()
	c, err := def.Build(ds)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	snap, err := c.Finalize()
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	return snap.String()
}

func TestDefinitionInlineRows(t *testing.T) {
	def := readDef(t, `
background_color = "#333"

[[axis]]
dim = 0
name = "X"

[[series]]
name = "s"
rows = [[1, 2]]
`)
	got := buildDoc(t, def, nil)
	want := `{"backgroundColor":"#333","parallelAxis":[{"dim":0,"name":"X"}],"series":[{"type":"parallel","name":"s","data":[[1,2]]}]}`
	if got != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestDefinitionPresence(t *testing.T) {
	def := readDef(t, `
[legend]
show = false

[tooltip]

[[axis]]
dim = 0
inverse = false
`)
	got := buildDoc(t, def, nil)
	want := `{"legend":{"show":false},"tooltip":{},"parallelAxis":[{"dim":0,"inverse":false}]}`
	if got != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestDefinitionMixedInlineRow(t *testing.T) {
	def := readDef(t, `
[[axis]]
dim = 0

[[axis]]
dim = 1
type = "category"
data = ["low", "high"]

[[series]]
type = "parallel"
rows = [[0.5, "high"]]
`)
	got := buildDoc(t, def, nil)
	if !strings.Contains(got, `"data":[[0.5,"high"]]`) {
		t.Errorf("document = %s", got)
	}
}

func TestDefinitionUnknownKey(t *testing.T) {
	_, err := ReadDefinition(strings.NewReader(`
[[axis]]
dim = 0
nmae = "typo"
`))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("error = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(err.Error(), "nmae") {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestDefinitionMalformed(t *testing.T) {
	_, err := ReadDefinition(strings.NewReader(`name = `))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestDefinitionBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{
			name: "unknown axis type",
			src:  "[[axis]]\ndim = 0\ntype = \"log\"\n",
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "unknown default axis type",
			src:  "[parallel.axis_default]\ntype = \"time\"\n",
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "unknown series type",
			src:  "[[series]]\ntype = \"pie\"\n",
			code: errors.ErrCodeUnsupported,
		},
		{
			name: "missing dataset key",
			src:  "[[series]]\ndata = \"beijing\"\n",
			code: errors.ErrCodeNotFound,
		},
		{
			name: "path-like dataset key",
			src:  "[[series]]\ndata = \"../secret\"\n",
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "both row sources",
			src:  "[[series]]\ndata = \"a\"\nrows = [[1]]\n",
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "boolean in inline row",
			src:  "[[series]]\nrows = [[1, true]]\n",
			code: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := readDef(t, tt.src)
			_, err := def.Build(Dataset{"a": nil})
			if !errors.Is(err, tt.code) {
				t.Errorf("Build error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDefinitionLeavesInvariantsToFinalize(t *testing.T) {
	def := readDef(t, `
[[axis]]
dim = 0

[[axis]]
dim = 0

[visual_map]
min = 150
max = 0
`)
	c, err := def.Build(nil)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	_, err = c.Finalize()
	ve, ok := errors.AsValidation(err)
	if !ok {
		t.Fatalf("Finalize error = %v, want validation error", err)
	}
	if !ve.Has(errors.ErrCodeDuplicateAxisDimension) || !ve.Has(errors.ErrCodeInvalidRange) {
		t.Errorf("violations = %v", ve)
	}
}

func TestReadDataset(t *testing.T) {
	ds, err := ReadDataset(strings.NewReader(`{
		"guangzhou": [[1, 26, 37, 27, 1.163, 27, 13, "优"]],
		"beijing": [[1, 55, 9, 56, 0.46, 18, 6, "良"], [2, 25, 11, 21, 0.65, 34, 9, "优"]]
	}`))
	if err != nil {
		t.Fatalf("ReadDataset error: %v", err)
	}

	if got := strings.Join(ds.Keys(), ","); got != "beijing,guangzhou" {
		t.Errorf("Keys() = %s", got)
	}
	if ds.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", ds.RowCount())
	}

	row := ds["guangzhou"][0]
	if f, _ := row[4].Float(); f != 1.163 {
		t.Errorf("row[4] = %v, want 1.163", f)
	}
	if s, ok := row[7].Str(); !ok || s != "优" {
		t.Errorf("row[7] = %v, want text 优", row[7])
	}
}

func TestReadDatasetErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not an object", `[[1, 2]]`},
		{"null element", `{"a": [[1, null]]}`},
		{"boolean element", `{"a": [[true]]}`},
		{"nested array", `{"a": [[[1]]]}`},
		{"bad key", `{"a/b": [[1]]}`},
		{"truncated", `{"a": [[1,`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadDataset(strings.NewReader(tt.src)); err == nil {
				t.Error("ReadDataset should fail")
			}
		})
	}
}

func TestReadRows(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(`[[1, "a"], [2.5, "b"]]`))
	if err != nil {
		t.Fatalf("ReadRows error: %v", err)
	}
	if len(rows) != 2 || len(rows[1]) != 2 {
		t.Fatalf("rows = %v", rows)
	}
	if f, _ := rows[1][0].Float(); f != 2.5 {
		t.Errorf("rows[1][0] = %v", f)
	}
}

func TestLoadExampleAQI(t *testing.T) {
	def, err := LoadDefinition(filepath.Join("..", "..", "examples", "aqi", "chart.toml"))
	if err != nil {
		t.Fatalf("LoadDefinition error: %v", err)
	}
	if def.Name != "aqi" {
		t.Errorf("Name = %q", def.Name)
	}
	if !strings.HasSuffix(def.DataPath(), filepath.Join("examples", "aqi", "data.json")) {
		t.Errorf("DataPath() = %s", def.DataPath())
	}

	ds, err := LoadDataset(def.DataPath())
	if err != nil {
		t.Fatalf("LoadDataset error: %v", err)
	}
	c, err := def.Build(ds)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	snap, err := c.Finalize()
	if err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if snap.AxisCount() != 8 || snap.SeriesCount() != 3 || snap.RowCount() != 93 {
		t.Errorf("counts = %d axes, %d series, %d rows", snap.AxisCount(), snap.SeriesCount(), snap.RowCount())
	}
	doc := snap.String()
	for _, want := range []string{
		`{"backgroundColor":"#333","legend":{"bottom":"30","itemGap":20,"textStyle":{"color":"#fff","fontSize":14},"data":["Beijing","Shanghai","Guangzhou"]}`,
		`"parallel":{"left":"5%","right":"18%","bottom":"100","parallelAxisDefault":{"type":"value","name":"AQI指数","nameLocation":"end","nameGap":20,"nameTextStyle":{"color":"#fff","fontSize":12},"axisTick":{"lineStyle":{"color":"#777"}},"axisLabel":{"color":"#fff"},"splitLine":{"show":false}}}`,
		`{"type":"parallel","name":"Guangzhou","lineStyle":{"width":1,"opacity":0.5},"data":[[1,26,37,27,1.163,27,13,"优"]`,
		`[31,118,50,0,1.383,76,11,"轻度污染"]]}]}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %s", want)
		}
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadDefinition(filepath.Join(dir, "nope.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadDefinition error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := LoadDataset(filepath.Join(dir, "nope.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadDataset error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := LoadDefinition(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("LoadDefinition(\"\") error = %v, want INVALID_PATH", err)
	}
}

func TestWriteDocument(t *testing.T) {
	snap, err := chart.New().BackgroundColor("#333").Finalize()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteDocument(&buf, snap, false); err != nil {
		t.Fatalf("WriteDocument error: %v", err)
	}
	if buf.String() != "{\"backgroundColor\":\"#333\"}\n" {
		t.Errorf("compact = %q", buf.String())
	}

	buf.Reset()
	if err := WriteDocument(&buf, snap, true); err != nil {
		t.Fatalf("WriteDocument error: %v", err)
	}
	if buf.String() != "{\n  \"backgroundColor\": \"#333\"\n}\n" {
		t.Errorf("indented = %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportDocument(snap, path, false); err != nil {
		t.Fatalf("ExportDocument error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\"backgroundColor\":\"#333\"}\n" {
		t.Errorf("file = %q", data)
	}
}
