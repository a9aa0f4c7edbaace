// Package surface estimates the surface area of a 3-D labelled object from
// local 2x2x2 neighbourhood configurations: each voxel's six axis-neighbours
// are encoded as a 6-bit mask, classified by a fixed 64-entry table into one
// of 10 surface types, and each type contributes a fixed area weight.
package surface
