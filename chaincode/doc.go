// Package chaincode extracts and manipulates Freeman chain codes: the
// boundary representation of a single connected 2-D labelled object as a
// starting lattice vertex plus a sequence of directional steps.
//
// What:
//
//   - Connectivity selects 4- or 8-connected neighbour walks, generalizing
//     the teacher's gridgraph.Connectivity enum and neighbour-offset table
//     from an undirected grid adjacency to a directed boundary-following walk.
//   - ChainCode holds the extracted code sequence and exposes the
//     sub-operations that build everything downstream needs: 4→8 connectivity
//     conversion, the pixel-centre offset chain, the pixel-edge-midpoint
//     polygon, perimeter-length approximation, Feret diameters via discrete
//     chain rotation, bending energy, and boundary radius statistics.
//   - GetImageChainCodes/GetSingleChainCode drive the raster scan that finds
//     each object's boundary start pixel and walks it.
package chaincode
