package zjson

import (
	"bufio"
	"bytes"
	"math"
	"testing"

	"github.com/pkg/errors"
	zmat "github.com/rmera/gozmat"
	"github.com/rmera/gozmat/histo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func water(Te *testing.T) *zmat.Molecule {
	Te.Helper()
	o, err := zmat.NewAtom(8, 0, 0, 0)
	require.NoError(Te, err)
	h1, err := zmat.NewAtom(1, 1, 0, 0)
	require.NoError(Te, err)
	h2, err := zmat.NewAtom(1, 0, 1, 0)
	require.NoError(Te, err)
	return zmat.NewMolecule("water", o, h1, h2)
}

func TestReport(Te *testing.T) {
	mol := water(Te)
	lengths, err := zmat.BondLengths(mol)
	require.NoError(Te, err)
	angles, err := zmat.BondAngles(mol)
	require.NoError(Te, err)
	R := NewReport("water.xyz", mol, true)
	R.SetBondLengths(lengths)
	R.SetBondAngles(angles)
	R.AddOutOfPlane(0, 1, 2, 0, 0)
	R.AngleHisto = histo.FromAngles(angles, 4, true)
	var buf bytes.Buffer
	require.NoError(Te, R.Send(&buf))
	assert.Contains(Te, buf.String(), `"Symbol":"O"`)
	assert.Contains(Te, buf.String(), `"AngleHisto"`)
	assert.NotContains(Te, buf.String(), `"Errors"`)

	D, err := DecodeReport(bufio.NewReader(&buf))
	require.NoError(Te, err)
	assert.Equal(Te, "water.xyz", D.File)
	assert.Equal(Te, "water", D.Name)
	assert.Equal(Te, 3, D.Natoms)
	require.Len(Te, D.Atoms, 3)
	assert.Equal(Te, []float64{0, 1, 0}, D.Atoms[2].Coords)
	require.Len(Te, D.BondLengths, 3)
	assert.InDelta(Te, math.Sqrt2, D.BondLengths[1][2], 1e-12)
	assert.Equal(Te, D.BondLengths[1][2], D.BondLengths[2][1])
	require.Len(Te, D.BondAngles, 1)
	assert.Equal(Te, Angle{K: 0, J: 1, I: 2, Angle: D.BondAngles[0].Angle}, *D.BondAngles[0])
	assert.InDelta(Te, 45, D.BondAngles[0].Angle, 1e-9)
	require.Len(Te, D.OutOfPlane, 1)
	assert.Equal(Te, 0.0, D.OutOfPlane[0].Angle)
	require.NotNil(Te, D.AngleHisto)
	assert.Equal(Te, R.AngleHisto.View(), D.AngleHisto.View())
	assert.Equal(Te, R.AngleHisto.CopyDividers(), D.AngleHisto.CopyDividers())
	assert.Nil(Te, D.LengthHisto)
}

func TestReportRadians(Te *testing.T) {
	mol := water(Te)
	angles, err := zmat.BondAngles(mol)
	require.NoError(Te, err)
	R := NewReport("water.xyz", mol, false)
	R.SetBondAngles(angles)
	assert.InDelta(Te, math.Pi/4, R.BondAngles[0].Angle, 1e-12)
	R.AddOutOfPlane(0, 1, 2, 3, 1)
	assert.InDelta(Te, math.Pi/2, R.OutOfPlane[0].Angle, 1e-12)
}

func TestErrors(Te *testing.T) {
	R := NewReport("missing.dat", nil, false)
	assert.Equal(Te, 0, R.Natoms)
	mol := zmat.NewMolecule("two", water(Te).Atoms[:2]...)
	_, err := zmat.BondAngles(mol)
	require.Error(Te, err)
	R.AddError("angles", err)
	R.AddError("read", errors.New("file not found"))
	require.Len(Te, R.Errors, 2)
	assert.True(Te, R.Errors[0].InAngles)
	assert.Equal(Te, "InsufficientAtoms", R.Errors[0].Kind)
	assert.Equal(Te, err.Error(), R.Errors[0].Error())
	assert.True(Te, R.Errors[1].InRead)
	assert.Equal(Te, "", R.Errors[1].Kind)

	var buf bytes.Buffer
	require.NoError(Te, R.Send(&buf))
	D, err := DecodeReport(bufio.NewReader(&buf))
	require.NoError(Te, err)
	require.Len(Te, D.Errors, 2)
	assert.Equal(Te, "InsufficientAtoms", D.Errors[0].Kind)
	assert.Equal(Te, "missing.dat", D.File)
}

func TestKind(Te *testing.T) {
	mol := water(Te)
	_, err := zmat.AngleAt(mol, 0, 1, 7)
	require.Error(Te, err)
	assert.Equal(Te, "IndexOutOfRange", Kind(err))
	assert.Equal(Te, "RecordCountMismatch", Kind(errors.Wrap(zmat.ErrRecordCountMismatch, "file.dat")))
}
