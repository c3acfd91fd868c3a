// Package dump renders nested values as indented log lines.
//
// Values are modelled as a closed set of node kinds: Leaf for scalars,
// *Mapping for ordered key/value collections, and *Sequence for indexed
// collections. Walk visits a node graph depth-first and emits one Line per
// node; composite children get a one-line header followed by their own
// children one level deeper.
//
// A composite reached again while it is still being walked is reported with a
// single sentinel line rather than expanded, so self-referential graphs
// terminate. Identity, not equality, decides: the same subtree reached through
// two unrelated paths is dumped twice.
//
// FromValue, FromJSON, and FromYAML build node graphs from Go values and
// documents. There is no depth cap; callers dumping unbounded structures must
// bound them first.
package dump
