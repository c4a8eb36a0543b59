package selector

// The facade is the intended public surface: each entry point allocates a
// fresh Builder and forwards the first call into it, the rest of the chain
// continues on the returned instance.

// Element starts a selector chain with a type part.
func Element(value string) *Builder { return new(Builder).Element(value) }

// ID starts a selector chain with an id part.
func ID(value string) *Builder { return new(Builder).ID(value) }

// Class starts a selector chain with a class part.
func Class(value string) *Builder { return new(Builder).Class(value) }

// Attr starts a selector chain with an attribute part.
func Attr(value string) *Builder { return new(Builder).Attr(value) }

// PseudoClass starts a selector chain with a pseudo-class part.
func PseudoClass(value string) *Builder { return new(Builder).PseudoClass(value) }

// PseudoElement starts a selector chain with a pseudo-element part.
func PseudoElement(value string) *Builder { return new(Builder).PseudoElement(value) }

// Combine starts a selector chain joining two built selectors with a
// combinator.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return new(Builder).Combine(left, combinator, right)
}
