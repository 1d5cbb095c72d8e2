package common

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// All matrices in this package are 4x4 flat slices stored in row-major order, matching the
// transpose flag used when the transform uniform is uploaded. mgl32 stores matrices column-major,
// so every builder transposes on the way out.

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	ident := mgl32.Ident4()
	copy(m[:16], ident[:])
}

// Rotation fills m with a rotation about the Z axis. The upper-left 2x2 block holds
// (cos, -sin / sin, cos); the remaining diagonal entries stay at 1.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
//   - angleDegrees: rotation angle in degrees
func Rotation(m []float32, angleDegrees float32) {
	r := mgl32.HomogRotate3DZ(mgl32.DegToRad(angleDegrees)).Transpose()
	copy(m[:16], r[:])
}

// Translation fills m with a translation on the X and Y axes.
// The offsets land at indices 3 and 7 (last column of a row-major affine transform).
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
//   - x: translation along the X axis
//   - y: translation along the Y axis
func Translation(m []float32, x, y float32) {
	t := mgl32.Translate3D(x, y, 0).Transpose()
	copy(m[:16], t[:])
}

// Scaling fills m with a scale on the X and Y axes.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
//   - sx: scale factor along the X axis
//   - sy: scale factor along the Y axis
func Scaling(m []float32, sx, sy float32) {
	s := mgl32.Scale3D(sx, sy, 1)
	copy(m[:16], s[:])
}

// Mul4 multiplies two row-major 4x4 matrices and stores the result in out.
// Result: out = a * b. out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	// A row-major buffer read as column-major is the transpose, and (AB)^T = B^T A^T.
	product := toMat4(b).Mul4(toMat4(a))
	copy(out[:16], product[:])
}

// toMat4 copies the first 16 elements of m into an mgl32.Mat4 without reinterpreting the order.
func toMat4(m []float32) mgl32.Mat4 {
	var out mgl32.Mat4
	copy(out[:], m[:16])
	return out
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
