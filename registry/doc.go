// Package registry provides the ordered registration containers behind
// deterministic per-frame draw sequencing: a sorted multimap that keeps
// duplicate keys in insertion order, and a lazily populated per-category
// registry of those multimaps with a single reset lifecycle.
//
// The containers are generic and carry no rendering semantics; the root
// swell package layers the ocean-input vocabulary on top.
//
// Nothing in this package is safe for concurrent use.
package registry
