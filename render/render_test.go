package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/docdelta/docdelta"
	"github.com/docdelta/docdelta/ir"
)

func sampleResult() *docdelta.Result {
	changes := []docdelta.Change{
		{Kind: docdelta.Unchanged, OldPath: docdelta.Path{"1"}, NewPath: docdelta.Path{"1"}},
		{Kind: docdelta.Moved, OldPath: docdelta.Path{"2"}, NewPath: docdelta.Path{"9"}},
		{Kind: docdelta.Added, NewPath: docdelta.Path{"3"}, NewBody: "fresh"},
		{
			Kind:     docdelta.TitleChanged,
			OldPath:  docdelta.Path{"1"},
			NewPath:  docdelta.Path{"1"},
			OldTitle: "One",
			NewTitle: "Uno",
		},
	}
	return &docdelta.Result{
		Changes: changes,
		Diagnostics: []docdelta.Diagnostic{
			{Path: "items", Message: "ambiguous identity"},
		},
		Counts: docdelta.Tally(changes),
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"> MOVED 2 -> 9",
		"+ ADDED 3",
		"~ TITLE_CHANGED 1",
		`title "One" -> "Uno"`,
		"! items: ambiguous identity",
		"added 1, removed 0, modified 1, moved 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "UNCHANGED") {
		t.Errorf("unchanged record shown by default:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color emitted without WithColor:\n%s", out)
	}
}

func TestTextUnchanged(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleResult(), WithUnchanged(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "= UNCHANGED 1") {
		t.Errorf("unchanged record not shown:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	var rep struct {
		Changes []map[string]any `json:"changes"`
		Counts  map[string]int   `json:"counts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if len(rep.Changes) != 3 {
		t.Fatalf("changes = %d, want 3", len(rep.Changes))
	}
	if rep.Changes[0]["kind"] != "MOVED" || rep.Changes[0]["new_path"] != "9" {
		t.Errorf("first change = %v", rep.Changes[0])
	}
	if _, ok := rep.Changes[1]["old_path"]; ok {
		t.Errorf("addition carries an old path: %v", rep.Changes[1])
	}
	if rep.Counts["moved"] != 1 || rep.Counts["added"] != 1 {
		t.Errorf("counts = %v", rep.Counts)
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "kind: MOVED") || !strings.Contains(out, "message: ambiguous identity") {
		t.Errorf("yaml output:\n%s", out)
	}
}

func TestMergePatch(t *testing.T) {
	old := ir.FromEntries([]ir.Entry{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromInt(2)},
	})
	new := ir.FromEntries([]ir.Entry{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "c", Val: ir.FromInt(3)},
	})
	var buf bytes.Buffer
	if err := MergePatch(&buf, old, new); err != nil {
		t.Fatal(err)
	}
	var patch map[string]any
	if err := json.Unmarshal(buf.Bytes(), &patch); err != nil {
		t.Fatal(err)
	}
	if v, ok := patch["b"]; !ok || v != nil {
		t.Errorf("b not deleted: %v", patch)
	}
	if v, ok := patch["c"].(float64); !ok || v != 3 {
		t.Errorf("c = %v", patch["c"])
	}
	if _, ok := patch["a"]; ok {
		t.Errorf("unchanged key in patch: %v", patch)
	}
}
