// Package selector builds CSS selector strings from ordered parts and
// combinator chains. It renders text only: selectors are never parsed,
// matched against a document or checked for valid value syntax.
package selector

// Category of a selector part. Declaration order is the required order of
// parts within a compound selector and must not change.
// ENUM(element, id, class, attribute, pseudoClass, pseudoElement)
type Category int
