// Package core defines the edge store that backs a typeflow conversion
// graph: the immutable Edge record, the ordered VariationSet, and the
// two-index Graph (by key_in, by key_out) that the search package walks.
//
// Edges are added once via Graph.AddEdge and shared by reference for the
// lifetime of the Graph — the search engine never mutates them. All
// mutation is protected by a sync.RWMutex, so a Graph may be read (i.e.
// searched) concurrently from many goroutines as long as no writer runs
// at the same time; see lvlath/core's muVert/muEdgeAdj split-lock
// convention, which this package follows with a single lock since there
// is only one mutable structure (the edge indices) rather than separate
// vertex and edge tables.
package core
