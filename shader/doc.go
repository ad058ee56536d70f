// Package shader holds the two programs a carousel draws with.
//
// Each program exists twice: as WGSL source for GPU hosts (embedded and
// compiled to SPIR-V with naga on first use) and as a CPU evaluation used by
// the software renderer. Both follow the same conventions: plane geometry is
// the unit quad centred on the origin, and uv has its origin at the
// bottom-left corner with v pointing up.
package shader
