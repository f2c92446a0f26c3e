package zmat

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//randomMolecule returns a molecule with n atoms at random positions
//inside a 10x10x10 box.
func randomMolecule(Te *testing.T, n int, seed int64) *Molecule {
	Te.Helper()
	r := rand.New(rand.NewSource(seed))
	mol := NewMolecule("random")
	for i := 0; i < n; i++ {
		a, err := NewAtom(r.Intn(20), 10*r.Float64(), 10*r.Float64(), 10*r.Float64())
		require.NoError(Te, err)
		mol.Atoms = append(mol.Atoms, a)
	}
	return mol
}

func TestBondLengths(Te *testing.T) {
	for _, n := range []int{2, 3, 7, 20} {
		mol := randomMolecule(Te, n, int64(n))
		lengths, err := BondLengths(mol)
		require.NoError(Te, err)
		r, c := lengths.Dims()
		require.Equal(Te, n, r)
		require.Equal(Te, n, c)
		for i := 0; i < n; i++ {
			assert.Equal(Te, 0.0, lengths.At(i, i))
			for j := 0; j < n; j++ {
				assert.Equal(Te, lengths.At(i, j), lengths.At(j, i))
				assert.Equal(Te, Distance(mol.Atom(i), mol.Atom(j)), lengths.At(i, j))
			}
		}
		again, err := BondLengths(mol)
		require.NoError(Te, err)
		assert.True(Te, mat.Equal(lengths, again))
	}
	l, err := BondLength(mustAtoms(Te, [3]float64{0, 0, 0}, [3]float64{0, 3, 4}), 0, 1)
	require.NoError(Te, err)
	assert.Equal(Te, 5.0, l)
}

func TestInsufficientAtoms(Te *testing.T) {
	one := mustAtoms(Te, [3]float64{0, 0, 0})
	_, err := BondLengths(one)
	assert.True(Te, errors.Is(err, ErrInsufficientAtoms))
	_, err = BondLengths(NewMolecule("empty"))
	assert.True(Te, errors.Is(err, ErrInsufficientAtoms))

	two := mustAtoms(Te, [3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	_, err = BondLengths(two)
	assert.NoError(Te, err)
	_, err = BondAngles(two)
	assert.True(Te, errors.Is(err, ErrInsufficientAtoms))
	_, err = BondAnglesConc(context.Background(), two, 2)
	assert.True(Te, errors.Is(err, ErrInsufficientAtoms))
}

func TestNumTriples(Te *testing.T) {
	for n, expected := range map[int]int{0: 0, 2: 0, 3: 1, 4: 4, 5: 10, 10: 120, 20: 1140} {
		assert.Equal(Te, expected, NumTriples(n), "n=%d", n)
	}
}

func TestBondAngles(Te *testing.T) {
	for _, n := range []int{3, 4, 9, 15} {
		mol := randomMolecule(Te, n, int64(100+n))
		angles, err := BondAngles(mol)
		require.NoError(Te, err)
		require.Len(Te, angles, NumTriples(n))
		seen := make(map[[3]int]bool)
		for pos, a := range angles {
			require.True(Te, a.K < a.J && a.J < a.I, "%v", a)
			assert.Equal(Te, pos, tripleIndex(a.I, a.J, a.K))
			assert.False(Te, seen[[3]int{a.K, a.J, a.I}], "triple repeated: %v", a)
			seen[[3]int{a.K, a.J, a.I}] = true
			assert.True(Te, a.Angle >= 0 && a.Angle <= math.Pi, "angle out of range: %v", a)
			at, err := AngleAt(mol, a.I, a.J, a.K)
			require.NoError(Te, err)
			assert.Equal(Te, at, a.Angle)
		}
		again, err := BondAngles(mol)
		require.NoError(Te, err)
		assert.Equal(Te, angles, again)
	}
}

func TestBondAnglesOrder(Te *testing.T) {
	mol := randomMolecule(Te, 4, 3)
	angles, err := BondAngles(mol)
	require.NoError(Te, err)
	expected := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for i, a := range angles {
		assert.Equal(Te, expected[i], [3]int{a.K, a.J, a.I})
	}
}

func TestBondAnglesKnown(Te *testing.T) {
	colinear := mustAtoms(Te, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{2, 0, 0})
	angles, err := BondAngles(colinear)
	require.NoError(Te, err)
	require.Len(Te, angles, 1)
	assert.Equal(Te, [3]int{0, 1, 2}, [3]int{angles[0].K, angles[0].J, angles[0].I})
	assert.InDelta(Te, math.Pi, angles[0].Angle, 1e-12)

	//the vertex is the middle atom by index.
	right := mustAtoms(Te, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 1, 0})
	angles, err = BondAngles(right)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Pi/2, angles[0].Angle, 1e-12)

	degenerate := mustAtoms(Te, [3]float64{1, 0, 0}, [3]float64{0, 0, 0}, [3]float64{0, 1, 0}, [3]float64{1, 0, 0})
	_, err = BondAngles(degenerate)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
	_, err = BondAnglesConc(context.Background(), degenerate, 3)
	assert.True(Te, errors.Is(err, ErrDegenerateGeometry))
}

func TestBondAnglesConc(Te *testing.T) {
	mol := randomMolecule(Te, 25, 42)
	angles, err := BondAngles(mol)
	require.NoError(Te, err)
	for _, workers := range []int{0, 1, 3, 8, 40} {
		conc, err := BondAnglesConc(context.Background(), mol, workers)
		require.NoError(Te, err)
		assert.Equal(Te, angles, conc, "workers=%d", workers)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = BondAnglesConc(ctx, mol, 2)
	assert.True(Te, errors.Is(err, context.Canceled))
}
