// Package compose implements the pixel-level compositing and transform
// operations of the meme engine: alpha-threshold overlay, circular masking,
// boundary-aware cropping, scatter rotation, and edge feathering.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Placements may be
// negative or extend past a canvas edge; FitWithinBounds exists to resolve
// them into in-bounds crops before compositing.
//
// # Ownership
//
// Every operation is a synchronous transformation over buffers the caller
// exclusively owns. Composite and MaskToCircle mutate their target in
// place; FitWithinBounds, Rotate and Feather allocate new buffers. Nothing
// is retained across calls, so concurrent use is safe as long as each call
// works on its own buffers.
//
// # Error Handling
//
// Composite returns a DimensionError when the overlay would not fit at the
// requested position; it never writes out of bounds and never truncates
// silently. The remaining operations have no failure modes for finite
// inputs: a placement entirely outside the canvas yields a zero-size crop,
// not an error.
package compose
