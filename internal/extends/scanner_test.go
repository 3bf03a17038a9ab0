package extends

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/conflink-labs/conflink/internal/document"
)

func TestScanJSONScalar(t *testing.T) {
	content := "{\n  \"extends\": \"./base.json\"\n}\n"

	refs := Scan([]byte(content))
	want := []Reference{{
		Value: "./base.json",
		Range: document.Range{
			Start: document.Position{Line: 1, Character: 14},
			End:   document.Position{Line: 1, Character: 25},
		},
	}}

	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanYAMLScalar(t *testing.T) {
	content := "extends: ../shared/base\nstrict: true\n"

	refs := Scan([]byte(content))
	want := []Reference{{
		Value: "../shared/base",
		Range: document.Range{
			Start: document.Position{Line: 0, Character: 9},
			End:   document.Position{Line: 0, Character: 23},
		},
	}}

	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanSequence(t *testing.T) {
	content := `{"extends": ["./a.json", "some-pkg/strict"]}`

	refs := Scan([]byte(content))
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2", len(refs))
	}
	if refs[0].Value != "./a.json" || refs[1].Value != "some-pkg/strict" {
		t.Errorf("values = %q, %q", refs[0].Value, refs[1].Value)
	}
	// Both items sit on line 0; the second starts after the first.
	if !refs[0].Range.End.Before(refs[1].Range.Start) {
		t.Errorf("ranges out of order: %v then %v", refs[0].Range, refs[1].Range)
	}
}

func TestScanIgnoresNestedExtends(t *testing.T) {
	content := `{"options": {"extends": "./inner.json"}, "extends": "./outer.json"}`

	refs := Scan([]byte(content))
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1", len(refs))
	}
	if refs[0].Value != "./outer.json" {
		t.Errorf("Value = %q, want ./outer.json", refs[0].Value)
	}
}

func TestScanEmptyValue(t *testing.T) {
	if refs := Scan([]byte(`{"extends": ""}`)); len(refs) != 0 {
		t.Errorf("empty value produced %d references", len(refs))
	}
}

func TestScanNoExtends(t *testing.T) {
	if refs := Scan([]byte(`{"strict": true}`)); len(refs) != 0 {
		t.Errorf("got %d references, want 0", len(refs))
	}
}

func TestScanUnparseable(t *testing.T) {
	if refs := Scan([]byte(`{"extends": `)); len(refs) != 0 {
		t.Errorf("unparseable content produced %d references", len(refs))
	}
}

func TestScanNonMappingDocument(t *testing.T) {
	if refs := Scan([]byte(`["extends"]`)); len(refs) != 0 {
		t.Errorf("non-mapping document produced %d references", len(refs))
	}
}
