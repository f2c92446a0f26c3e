package zplot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	zmat "github.com/rmera/gozmat"
	"github.com/rmera/gozmat/histo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testHisto() *histo.Data {
	angles := []zmat.BondAngle{{Angle: 0.2}, {Angle: math.Pi / 2}, {Angle: math.Pi / 2}, {Angle: 2}}
	return histo.FromAngles(angles, 12, true)
}

func TestHistoPlot(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "angles")
	require.NoError(Te, AngleHistoPlot(testHisto(), "test", true, name))
	data, err := os.ReadFile(name + ".png")
	require.NoError(Te, err)
	assert.True(Te, bytes.HasPrefix(data, pngMagic))

	lengths := histo.NewData(histo.Dividers(0, 3, 3), []float64{0.5, 1.5, 1.6, 2.9})
	lengths.Normalize()
	name = filepath.Join(dir, "lengths.png")
	require.NoError(Te, LengthHistoPlot(lengths, "test", name))
	_, err = os.Stat(name)
	require.NoError(Te, err)
}

func TestWriteHistoPlot(Te *testing.T) {
	var buf bytes.Buffer
	require.NoError(Te, WriteHistoPlot(&buf, testHisto(), "angles", "deg"))
	assert.True(Te, bytes.HasPrefix(buf.Bytes(), pngMagic))
	assert.Error(Te, WriteHistoPlot(&buf, nil, "nothing", ""))
}

func TestLabels(Te *testing.T) {
	assert.Equal(Te, []string{"0.5", "1.5", "2.5"}, labels([]float64{0, 1, 2, 3}))
	l := labels(histo.Dividers(0, 180, 36))
	require.Len(Te, l, 36)
	assert.Equal(Te, "2.5", l[0])
	assert.Equal(Te, "", l[1])
	assert.Equal(Te, "22.5", l[4])
}
