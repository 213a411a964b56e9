package core

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/orreryworks/solarsim/units"
)

// r1 is the rotation matrix about the first axis.
func r1(θ float64) *mat.Dense {
	s, c := math.Sincos(θ)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

// r3 is the rotation matrix about the third axis.
func r3(θ float64) *mat.Dense {
	s, c := math.Sincos(θ)
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

// perifocalToFocus composes the 3-1-3 Euler sequence that carries perifocal
// coordinates into the focus frame: R3(-Ω)·R1(-i)·R3(-ω). Elements are fixed,
// so the composition is built once per orbit and reused for every query.
func perifocalToFocus(i, node, peri units.Angle) *mat.Dense {
	var tmp, out mat.Dense
	tmp.Mul(r1(-i.Radians()), r3(-peri.Radians()))
	out.Mul(r3(-node.Radians()), &tmp)
	return mat.DenseCopyOf(&out)
}

// rotate applies a 3x3 rotation matrix to a vector.
func rotate(m *mat.Dense, v Vec3) Vec3 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}
