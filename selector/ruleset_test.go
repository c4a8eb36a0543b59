package selector_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/selector"
)

func writeRuleset(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ruleset: %v", err)
	}
	return fname
}

func TestRuleset_Build(t *testing.T) {
	fname := writeRuleset(t, `
selectors:
  - name: panel
    element: div
    id: main
    classes: [container, draggable]
  - name: data
    element: table
    id: data
  - name: pair
    combine:
      left: panel
      combinator: "+"
      right: data
`)

	rs, err := selector.LoadRuleset(fname)
	if err != nil {
		t.Fatalf("failed to load ruleset: %v", err)
	}

	out, err := rs.Build(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rendered selectors, got %d", len(out))
	}

	expected := map[string]string{
		"panel": "div#main.container.draggable",
		"data":  "table#data",
		"pair":  "div#main.container.draggable + table#data",
	}
	for i, name := range []string{"panel", "data", "pair"} {
		if out[i].Name != name {
			t.Errorf("expected selector %d to be '%s', got '%s'", i, name, out[i].Name)
		}
		if out[i].Text != expected[name] {
			t.Errorf("selector '%s': expected %q, got %q", name, expected[name], out[i].Text)
		}
	}
}

func TestRuleset_BuildAllCategories(t *testing.T) {
	fname := writeRuleset(t, `
selectors:
  - name: full
    element: a
    id: top
    classes: [menu]
    attributes: [href]
    pseudo_classes: [visited]
    pseudo_element: before
`)

	rs, err := selector.LoadRuleset(fname)
	if err != nil {
		t.Fatalf("failed to load ruleset: %v", err)
	}
	out, err := rs.Build(nil)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if len(out) != 1 || out[0].Text != "a#top.menu[href]:visited::before" {
		t.Fatalf("unexpected build result: %+v", out)
	}
}

func TestRuleset_BuildAccumulatesErrors(t *testing.T) {
	fname := writeRuleset(t, `
selectors:
  - name: good
    element: p
  - name: empty
  - name: dangling
    combine:
      left: good
      combinator: "~"
      right: missing
  - name: alsogood
    element: td
    pseudo_classes: [first-child]
`)

	rs, err := selector.LoadRuleset(fname)
	if err != nil {
		t.Fatalf("failed to load ruleset: %v", err)
	}

	out, err := rs.Build(zap.NewNop())
	if err == nil {
		t.Fatal("expected accumulated errors")
	}
	if errs := multierr.Errors(err); len(errs) != 2 {
		t.Fatalf("expected 2 accumulated errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(err.Error(), "empty") || !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should name both failed definitions: %v", err)
	}

	// Good definitions still render.
	if len(out) != 2 {
		t.Fatalf("expected 2 rendered selectors, got %d", len(out))
	}
	if out[0].Text != "p" || out[1].Text != "td:first-child" {
		t.Errorf("unexpected rendered selectors: %+v", out)
	}
}

func TestRuleset_ForwardReferenceFails(t *testing.T) {
	fname := writeRuleset(t, `
selectors:
  - name: pair
    combine:
      left: later
      combinator: ">"
      right: later
  - name: later
    element: ul
`)

	rs, err := selector.LoadRuleset(fname)
	if err != nil {
		t.Fatalf("failed to load ruleset: %v", err)
	}
	out, err := rs.Build(zap.NewNop())
	if err == nil {
		t.Fatal("expected error for forward reference")
	}
	if len(out) != 1 || out[0].Name != "later" {
		t.Fatalf("expected only 'later' to render, got %+v", out)
	}
}

func TestLoadRuleset_Missing(t *testing.T) {
	if _, err := selector.LoadRuleset(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing ruleset file")
	}
}

func TestLoadRuleset_Malformed(t *testing.T) {
	fname := writeRuleset(t, "selectors: [broken")
	if _, err := selector.LoadRuleset(fname); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
