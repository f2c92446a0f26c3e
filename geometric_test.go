package zmat

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAtoms(Te *testing.T, coords ...[3]float64) *Molecule {
	Te.Helper()
	mol := NewMolecule("test")
	for _, c := range coords {
		a, err := NewAtom(6, c[0], c[1], c[2])
		require.NoError(Te, err)
		mol.Atoms = append(mol.Atoms, a)
	}
	return mol
}

func TestNewAtom(Te *testing.T) {
	a, err := NewAtom(8, 1, 2, 3)
	require.NoError(Te, err)
	assert.True(Te, a.Valid())
	assert.Equal(Te, "O", a.Symbol)
	_, err = NewAtom(-1, 0, 0, 0)
	assert.True(Te, errors.Is(err, ErrInvalidTag))
	assert.False(Te, (&Atom{Tag: InvalidTag}).Valid())
}

func TestDistance(Te *testing.T) {
	mol := mustAtoms(Te, [3]float64{1, 2, 3}, [3]float64{4, 6, 3}, [3]float64{-1.5, 0.25, 7})
	assert.Equal(Te, 5.0, Distance(mol.Atom(0), mol.Atom(1)))
	for i := 0; i < mol.Len(); i++ {
		assert.Equal(Te, 0.0, Distance(mol.Atom(i), mol.Atom(i)))
		for j := 0; j < mol.Len(); j++ {
			assert.Equal(Te, Distance(mol.Atom(i), mol.Atom(j)), Distance(mol.Atom(j), mol.Atom(i)))
		}
	}
}

func TestDisplacement(Te *testing.T) {
	mol := mustAtoms(Te, [3]float64{1, 2, 3}, [3]float64{4, 6, 3})
	d := Displacement(mol.Atom(0), mol.Atom(1))
	assert.Equal(Te, []float64{3, 4, 0}, d.RawRowView(0))
	back := Displacement(mol.Atom(1), mol.Atom(0))
	assert.Equal(Te, []float64{-3, -4, 0}, back.RawRowView(0))
}

func TestAngleAt(Te *testing.T) {
	mol := mustAtoms(Te, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{2, 0, 0}, [3]float64{0, 0, 0})
	right, err := AngleAt(mol, 1, 0, 2)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Pi/2, right, 1e-12)

	straight, err := AngleAt(mol, 0, 1, 3)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Pi, straight, 1e-12)

	//atoms 0 and 4 coincide
	_, err = AngleAt(mol, 1, 0, 4)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
	_, err = AngleAt(mol, 1, 0, 5)
	assert.True(Te, errors.Is(err, ErrIndexOutOfRange))
}

func TestOutOfPlane(Te *testing.T) {
	//i, j, k, l
	mol := mustAtoms(Te, [3]float64{1, 0, 1}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 1, 0})
	oop, err := OutOfPlane(mol, 0, 1, 2, 3)
	require.NoError(Te, err)
	assert.InDelta(Te, 1/math.Sqrt2, oop, 1e-12)
	assert.InDelta(Te, math.Pi/4, math.Asin(oop), 1e-12)
	swapped, err := OutOfPlane(mol, 0, 3, 2, 1)
	require.NoError(Te, err)
	assert.InDelta(Te, -oop, swapped, 1e-12)

	flat := mustAtoms(Te, [3]float64{1, 1, 0}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 1, 0}, [3]float64{3.5, -2, 0})
	for _, q := range [][4]int{{0, 1, 2, 3}, {4, 1, 2, 3}, {2, 0, 1, 4}, {3, 4, 0, 2}} {
		v, err := OutOfPlane(flat, q[0], q[1], q[2], q[3])
		require.NoError(Te, err, "quadruple %v", q)
		assert.Equal(Te, 0.0, math.Abs(v), "quadruple %v", q)
	}
}

func TestOutOfPlaneDegenerate(Te *testing.T) {
	mol := mustAtoms(Te, [3]float64{0, 0, 1}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{-1, 0, 0}, [3]float64{0, 0, 0})
	//j, k, l colinear
	_, err := OutOfPlane(mol, 0, 1, 2, 3)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
	//k and l coincide
	_, err = OutOfPlane(mol, 0, 1, 2, 4)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
	//i and k coincide
	mol2 := mustAtoms(Te, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 1, 0})
	_, err = OutOfPlane(mol2, 0, 1, 2, 3)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
	_, err = OutOfPlane(mol2, 0, 1, 2, -1)
	assert.True(Te, errors.Is(err, ErrIndexOutOfRange))
}

func TestOutOfPlaneNearlyColinear(Te *testing.T) {
	for _, c := range []struct {
		offset float64
		degen  bool
	}{{1e-10, true}, {5e-13, true}, {1e-6, false}, {1e-4, false}} {
		//i, j, k, l. The angle j-k-l is pi minus about c.offset.
		mol := mustAtoms(Te, [3]float64{0, 0, 1}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{-1, c.offset, 0})
		v, err := OutOfPlane(mol, 0, 1, 2, 3)
		if c.degen {
			assert.True(Te, errors.Is(err, ErrDegenerateGeometry), "offset %g", c.offset)
			continue
		}
		require.NoError(Te, err, "offset %g", c.offset)
		//i is perpendicular to the plane, however thin the angle.
		assert.InDelta(Te, 1, v, 1e-12, "offset %g", c.offset)
	}
}

func TestDihedral(Te *testing.T) {
	mol := mustAtoms(Te, [3]float64{0, 1, 0}, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, -1, 0}, [3]float64{1, 0, 1}, [3]float64{2, 0, 0})
	cis, err := Dihedral(mol, 0, 1, 2, 3)
	require.NoError(Te, err)
	assert.InDelta(Te, 0, cis, 1e-12)
	trans, err := Dihedral(mol, 0, 1, 2, 4)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Pi, math.Abs(trans), 1e-12)
	perp, err := Dihedral(mol, 0, 1, 2, 5)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Pi/2, perp, 1e-12)
	_, err = Dihedral(mol, 0, 1, 2, 6)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
}

func TestParseQuadruple(Te *testing.T) {
	q, err := ParseQuadruple("0, 3,2 1")
	require.NoError(Te, err)
	assert.Equal(Te, [4]int{0, 3, 2, 1}, q)
	_, err = ParseQuadruple("0,1,2")
	assert.True(Te, errors.Is(err, ErrMalformedRecord))
	_, err = ParseQuadruple("0,1,2,x")
	assert.True(Te, errors.Is(err, ErrMalformedRecord))
}
