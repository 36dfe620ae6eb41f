// Package keentools is a home for geometry nodes that plug into a 3D
// compositing host. Its centrepiece is PCAGeo: a blender that fits a
// principal component model over same-topology meshes and emits the mean
// mesh plus one "extreme" mesh per dominant component.
//
// What's inside:
//
//	• Numeric core: a row-major Dense, centering, Gram and covariance, Jacobi and gonum eigensolvers
//	• PCA: fit with a deterministic sign convention, rank cut-off, proportions, component selection
//	• Host contract: inputs, geometry lists, objects, rolling hash, knobs, error channel
//	• Reference host: in-memory meshes with an xxhash rolling hash, used by tests and the CLI
//	• CLI: blend and inspect Wavefront OBJ files
//
// Everything is organized under these subpackages:
//
//	matrix/       - Dense, validators, statistics, Jacobi + gonum eigen bridge
//	pca/          - Fit, Model, Solver, SelectCount
//	host/         - interfaces the node consumes from its host; 4×4 transform helpers
//	host/memhost/ - in-memory host implementation
//	pcageo/       - the PCAGeo node: collect, fit, select, write, validate/engine
//	meshio/       - OBJ reader and writer
//	cmd/pcageo/   - command-line front end
//
// Quick example: two triangles differing in one vertex blend into a mean
// with that vertex half-way, plus one extreme one standard deviation along
// the only component.
//
//	go run ./cmd/pcageo blend --out out/ a.obj b.obj
package keentools
