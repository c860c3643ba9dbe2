// Package geom defines the mesh data model for lodconv.
// A Model is a flat list of vertices plus a flat list of faces that
// reference vertices by id, together with the per-face geometry
// queries (normal, z-range, projected area) the pipeline is built on.
package geom
