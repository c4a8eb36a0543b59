package selector

import "strings"

type part struct {
	cat  Category
	frag string
}

// Builder accumulates selector parts in call order and renders them into a
// single selector string. A builder holds either plain parts or the result
// of a Combine, never meaningfully both - Render prefers parts when both
// are present.
//
// Chains cannot raise failures mid-call, so the builder records the first
// one instead: Err exposes it and Render returns it. Builders are created
// through the package-level facade functions and are not safe for
// concurrent use.
type Builder struct {
	parts    []part
	combined []string

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	err error
}

// Element appends a type selector with the value embedded verbatim.
// Permitted at most once per builder.
func (b *Builder) Element(value string) *Builder {
	if b.hasElement {
		b.fail(&DuplicatePartError{Category: CategoryElement})
		return b
	}
	b.hasElement = true
	b.append(CategoryElement, value)
	return b
}

// ID appends an id selector (#value). Permitted at most once per builder.
func (b *Builder) ID(value string) *Builder {
	if b.hasID {
		b.fail(&DuplicatePartError{Category: CategoryId})
		return b
	}
	b.hasID = true
	b.append(CategoryId, "#"+value)
	return b
}

// Class appends a class selector (.value). Repeatable.
func (b *Builder) Class(value string) *Builder {
	b.append(CategoryClass, "."+value)
	return b
}

// Attr appends an attribute selector ([value]). The value is embedded
// between the brackets exactly as given, quoting included. Repeatable.
func (b *Builder) Attr(value string) *Builder {
	b.append(CategoryAttribute, "["+value+"]")
	return b
}

// PseudoClass appends a pseudo-class selector (:value). Repeatable.
func (b *Builder) PseudoClass(value string) *Builder {
	b.append(CategoryPseudoClass, ":"+value)
	return b
}

// PseudoElement appends a pseudo-element selector (::value). Permitted at
// most once per builder.
//
// Unlike the other appends this one does not re-check part order, so a
// sequence ending in a pseudo-element is only validated up to its previous
// ordered append.
func (b *Builder) PseudoElement(value string) *Builder {
	if b.hasPseudoElement {
		b.fail(&DuplicatePartError{Category: CategoryPseudoElement})
		return b
	}
	b.hasPseudoElement = true
	b.parts = append(b.parts, part{cat: CategoryPseudoElement, frag: "::" + value})
	return b
}

// Combine renders left and right and joins them with the combinator padded
// by a single space on each side. The combinator is embedded verbatim and
// never validated; a plain " " combinator therefore produces a
// triple-space join. Failures of either side carry over into this builder.
func (b *Builder) Combine(left *Builder, combinator string, right *Builder) *Builder {
	lt, err := left.Render()
	if err != nil {
		b.fail(err)
	}
	rt, err := right.Render()
	if err != nil {
		b.fail(err)
	}
	b.combined = append(b.combined, lt, " "+combinator+" ", rt)
	return b
}

// Err returns the first failure recorded by the chain, if any. Render
// reports the same failure and clears it.
func (b *Builder) Err() error {
	return b.err
}

// Render produces the selector text and resets the builder's part and
// combination sequences (the singleton markers survive, a rendered builder
// still refuses a second element/id/pseudo-element). An untouched builder
// renders to an empty string with no error.
//
// Rendering is not blocked by an ordering failure: the returned text
// includes the offending part, alongside the recorded error.
func (b *Builder) Render() (string, error) {
	var sb strings.Builder
	if len(b.parts) > 0 {
		for _, p := range b.parts {
			sb.WriteString(p.frag)
		}
	} else {
		for _, s := range b.combined {
			sb.WriteString(s)
		}
	}
	err := b.err
	b.parts = nil
	b.combined = nil
	b.err = nil
	return sb.String(), err
}

// append adds the part and retroactively validates category order over the
// whole sequence. The offending part stays in place on violation, only the
// error is recorded.
func (b *Builder) append(cat Category, frag string) {
	b.parts = append(b.parts, part{cat: cat, frag: frag})
	for i := 1; i < len(b.parts); i++ {
		for j := range i {
			if b.parts[j].cat > b.parts[i].cat {
				b.fail(&OrderError{Earlier: b.parts[j].cat, Appended: b.parts[i].cat})
				return
			}
		}
	}
}

// fail keeps the first failure of the chain.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
