package tables

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Vec3 is a row vector of three components, typically an XYZ or linear RGB
// triple.
type Vec3 [3]float64

// Matrix3 is a 3x3 matrix applied to row vectors from the right: v' = v·M.
// Every matrix stored in Tables follows this convention, so the XYZ→RGB
// matrix of a working space is the transpose of the column-vector form
// usually printed in references.
type Matrix3 [3][3]float64

func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns the row vector v·m.
func (v Vec3) Mul(m Matrix3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[1][0] + v[2]*m[2][0],
		v[0]*m[0][1] + v[1]*m[1][1] + v[2]*m[2][1],
		v[0]*m[0][2] + v[1]*m[1][2] + v[2]*m[2][2],
	}
}

// Multiply returns the matrix product m·o. Applying the result to a row
// vector is the same as applying m and then o.
func (m *Matrix3) Multiply(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m *Matrix3) Transposed() (ans Matrix3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[j][i]
		}
	}
	return
}

func (m *Matrix3) IsIdentity() bool {
	return *m == Identity()
}

func (m *Matrix3) Equals(o *Matrix3, threshold float64) bool {
	for i := range 3 {
		for j := range 3 {
			if math.Abs(m[i][j]-o[i][j]) > threshold {
				return false
			}
		}
	}
	return true
}

func (mat *Matrix3) Inverted() (ans Matrix3, err error) {
	det := mat[0][0]*(mat[1][1]*mat[2][2]-mat[1][2]*mat[2][1]) -
		mat[0][1]*(mat[1][0]*mat[2][2]-mat[1][2]*mat[2][0]) +
		mat[0][2]*(mat[1][0]*mat[2][1]-mat[1][1]*mat[2][0])

	if det == 0 {
		return ans, fmt.Errorf("matrix is singular and cannot be inverted")
	}
	invDet := 1 / det
	adj := Matrix3{
		{
			(mat[1][1]*mat[2][2] - mat[1][2]*mat[2][1]),
			(mat[0][2]*mat[2][1] - mat[0][1]*mat[2][2]),
			(mat[0][1]*mat[1][2] - mat[0][2]*mat[1][1]),
		},
		{
			(mat[1][2]*mat[2][0] - mat[1][0]*mat[2][2]),
			(mat[0][0]*mat[2][2] - mat[0][2]*mat[2][0]),
			(mat[0][2]*mat[1][0] - mat[0][0]*mat[1][2]),
		},
		{
			(mat[1][0]*mat[2][1] - mat[1][1]*mat[2][0]),
			(mat[0][1]*mat[2][0] - mat[0][0]*mat[2][1]),
			(mat[0][0]*mat[1][1] - mat[0][1]*mat[1][0]),
		},
	}
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = invDet * adj[i][j]
		}
	}
	return
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%v %v %v]", m[0], m[1], m[2])
}

// adaptation_matrix builds the row-vector matrix that re-expresses XYZ
// measured under src_white as if measured under dst_white, using the given
// cone response matrix (in column-vector form).
func adaptation_matrix(cone Matrix3, src_white, dst_white Vec3) (Matrix3, error) {
	inv, err := cone.Inverted()
	if err != nil {
		return Matrix3{}, err
	}
	ct := cone.Transposed()
	src := src_white.Mul(ct)
	dst := dst_white.Mul(ct)
	diag := Matrix3{
		{dst[0] / src[0], 0, 0},
		{0, dst[1] / src[1], 0},
		{0, 0, dst[2] / src[2]},
	}
	// column form: inv · diag · cone
	tmp := diag.Multiply(cone)
	col := inv.Multiply(tmp)
	return col.Transposed(), nil
}
