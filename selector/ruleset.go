package selector

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// CombineDef joins two previously defined selectors by name.
type CombineDef struct {
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Definition describes a single selector to build. Either the part fields
// or Combine is used; when Combine is set the part fields are ignored.
// Part fields are applied in category order, so a definition by itself can
// never trip the order check.
type Definition struct {
	Name          string      `yaml:"name"`
	Element       string      `yaml:"element,omitempty"`
	ID            string      `yaml:"id,omitempty"`
	Classes       []string    `yaml:"classes,omitempty"`
	Attributes    []string    `yaml:"attributes,omitempty"`
	PseudoClasses []string    `yaml:"pseudo_classes,omitempty"`
	PseudoElement string      `yaml:"pseudo_element,omitempty"`
	Combine       *CombineDef `yaml:"combine,omitempty"`
}

// Rendered is a named selector produced from a Definition.
type Rendered struct {
	Name string
	Text string
}

// Ruleset is an ordered list of selector definitions. A combination may
// reference any definition that appears before it.
type Ruleset struct {
	Selectors []Definition `yaml:"selectors"`
}

// LoadRuleset reads a YAML ruleset file.
func LoadRuleset(fname string) (*Ruleset, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to read ruleset '%s': %w", fname, err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("unable to parse ruleset '%s': %w", fname, err)
	}
	return &rs, nil
}

// Build renders every definition in file order. Failed definitions are
// skipped with their errors accumulated, good ones still render. The
// returned error combines one entry per failed definition.
func (rs *Ruleset) Build(log *zap.Logger) ([]Rendered, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("ruleset")

	var (
		out  []Rendered
		errs error
	)
	byName := make(map[string]string, len(rs.Selectors))

	for i, def := range rs.Selectors {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("selector-%d", i+1)
		}
		text, err := buildDefinition(def, byName)
		if err != nil {
			log.Warn("Skipping selector definition", zap.String("name", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("definition '%s': %w", name, err))
			continue
		}
		byName[name] = text
		out = append(out, Rendered{Name: name, Text: text})
		log.Debug("Built selector", zap.String("name", name), zap.String("text", text))
	}
	return out, errs
}

func buildDefinition(def Definition, byName map[string]string) (string, error) {
	if def.Combine != nil {
		left, ok := byName[def.Combine.Left]
		if !ok {
			return "", fmt.Errorf("unknown selector reference '%s'", def.Combine.Left)
		}
		right, ok := byName[def.Combine.Right]
		if !ok {
			return "", fmt.Errorf("unknown selector reference '%s'", def.Combine.Right)
		}
		// Referenced selectors are already rendered - re-wrap the text in
		// fresh builders (Element embeds its value verbatim) so the join
		// goes through the same Combine path as direct API use.
		return Combine(Element(left), def.Combine.Combinator, Element(right)).Render()
	}

	b := new(Builder)
	if def.Element != "" {
		b.Element(def.Element)
	}
	if def.ID != "" {
		b.ID(def.ID)
	}
	for _, c := range def.Classes {
		b.Class(c)
	}
	for _, a := range def.Attributes {
		b.Attr(a)
	}
	for _, pc := range def.PseudoClasses {
		b.PseudoClass(pc)
	}
	if def.PseudoElement != "" {
		b.PseudoElement(def.PseudoElement)
	}

	text, err := b.Render()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("definition produces an empty selector")
	}
	return text, nil
}
