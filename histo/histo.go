//Package histo builds histograms from the internal geometry of
//molecules, i.e. the distribution of bond lengths or bond angles.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	zmat "github.com/rmera/gozmat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//jsonData is the serialized form of Data.
type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

//UnmarshalJSON sets D from its JSON form, as produced by MarshalJSON.
func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return errors.Errorf("goZmat/Histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of thext
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))

}

//NewData returns a new histogram from the dividers and rawdata given
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. Values outside the dividers are ignored.
//Panics if there are less than 2 dividers or they are not sorted.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("goZmat/Histo.NewData: at least 2 sorted dividers are needed")
	}
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d

}

//Dividers returns bins+1 evenly spaced dividers from lo to hi.
func Dividers(lo, hi float64, bins int) []float64 {
	if bins < 1 || hi <= lo {
		panic("goZmat/Histo.Dividers: at least 1 bin, and hi > lo, are needed")
	}
	return floats.Span(make([]float64, bins+1), lo, hi)
}

//Adds the given data point(s) to the histogram
func (M *Data) AddData(point ...float64) {
	var norma bool
	if M.normalized {
		norma = true
		M.UnNormalize()
	}
	for _, v := range point {
		for j, w := range M.dividers {
			//Values that are larger than the last divider are just omitted.
			if j == len(M.dividers)-1 {
				break
			}
			if w <= v && v < M.dividers[j+1] {
				M.histo[j]++
				M.total++
				break
			}
		}
	}
	//if it was normalized, we should return it to that state
	if norma {
		M.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of data points in the histogram.
func (D *Data) Total() int {
	return D.total
}

//CopyDividers copies the dividers of the histogram in dest, if given and
//large enough, or in a new slice, which is returned.
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Copy copies the values of the histogram in dest, if given and
//large enough, or in a new slice, which is returned.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the values of the histogram. Changes to the returned slice
//will be reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with that of a new one,
//with the given dividers and data. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histograms just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:maxi]
	D.dividers = dividers
	D.normalized = false
	D.total = len(data) //as this could have been modified
	D.histo = stat.Histogram(nil, dividers, data, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d

}

//FromAngles returns a histogram with bins bins, evenly spaced from 0 to 180 degrees,
//of the given angles. If degrees is false, the bins go from 0 to pi and the histogram
//is in radians.
func FromAngles(angles []zmat.BondAngle, bins int, degrees bool) *Data {
	top := math.Pi
	factor := 1.0
	if degrees {
		top = 180
		factor = zmat.Rad2Deg
	}
	raw := make([]float64, len(angles))
	for i, v := range angles {
		raw[i] = v.Angle * factor
	}
	return NewData(Dividers(0, widen(top), bins), raw)
}

//FromLengths returns a histogram with bins bins, evenly spaced from 0 to the
//largest distance, of the off-diagonal elements of the bond lengths matrix lengths.
//Each pair of atoms is counted once.
func FromLengths(lengths mat.Symmetric, bins int) *Data {
	n := lengths.SymmetricDim()
	raw := make([]float64, 0, n*(n-1)/2)
	top := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v := lengths.At(i, j)
			raw = append(raw, v)
			top = math.Max(top, v)
		}
	}
	if top == 0 {
		top = 1
	}
	return NewData(Dividers(0, widen(top), bins), raw)
}

//widen moves the upper limit of a histogram slightly up, so a value
//equal to the limit, give or take rounding, still falls in the last bin.
func widen(top float64) float64 {
	return top * (1 + 1e-9)
}
