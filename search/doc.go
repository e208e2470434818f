// Package search implements the bidirectional best-first search engine
// that plans a conversion chain: given a starting (key, variations) and a
// target (key, variations), it finds the cheapest sequence of edges from
// a core.Graph that connects them, honoring an exclusion set of edges to
// skip.
//
// The search runs two Dijkstra-style frontiers at once — one walking
// forward from key_in along edges' VarsIn/VarsOut, one walking backward
// from key_out — each a container/heap priority queue of State values
// ordered by (cost ascending, variations-consumed descending,
// variations-added descending). Whichever frontier is smaller is
// advanced first, so neither side starves; a meet-in-the-middle check at
// every expansion lets the two searches splice into a single path the
// moment they touch the same edge from both directions.
package search
