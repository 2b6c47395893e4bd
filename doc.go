// Package flowfield places evenly spaced streamlines in a 2D direction field.
// It was designed to drive generative line drawings, but the geometry and
// spatial indexing it is built on are general enough for other uses.
//
// # Fields and samples
//
// A [FieldFunc] maps a position to an angle. A [FlowField] evaluates such a
// function over a rectangular domain and stores the resulting [Sample] values,
// indexed by a uniform grid so that the samples near a position can be found
// in constant time for bounded densities. See [FlowField.ClosestSampleWithinRadius].
//
// [GridField] is a field function defined by a coarse grid of angles, blended
// along the shorter arc with [AngleLerp].
//
// # Streamlines
//
// [Sampler] fills a flow field with streamlines. It starts at the center of
// the domain, grows a line forward and backward along the field, and then
// looks for the next seed beside the samples placed so far, keeping new
// samples at least [Config.DTest] away from every other line. Sampling ends
// when [Config.MaxLineCount] lines were placed or when no seed position is
// left. [SampleFlowField] runs a sampler to completion.
//
// The sampler advances one state transition per [Sampler.Step], so callers
// can interleave sampling with rendering and stop at any point.
// [Sampler.Streamlines] locates each committed line among the samples, and
// [Streamline.Curve] turns it into a polyline for export.
//
// # Geometry
//
// The package includes the primitives the sampler is built on: [Point],
// [Vec2], [Affine], [MBR], [Ray], [Line], [Circle] and [Size]. [Curve] is a
// polyline with Douglas-Peucker simplification ([Curve.Subsample]),
// Chaikin smoothing, arc length resampling and Catmull-Rom spline resampling
// ([CatmullRom]). [BinaryHeap] is a generic priority queue.
//
// # Coordinates
//
// Coordinates follow the usual raster convention: x grows to the right and y
// grows downward, so positive angles turn clockwise on screen.
package flowfield
