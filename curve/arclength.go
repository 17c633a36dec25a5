package curve

import (
	"sort"

	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/vmath"
)

// arcTable holds cumulative chord lengths at evenly spaced parameters
type arcTable struct {
	lengths []float64
}

func buildArcTable(eval func(float64) vmath.Vec3) arcTable {
	n := parameter.ArcLengthDivisions
	lengths := make([]float64, n+1)
	prev := eval(0)
	for i := 1; i <= n; i++ {
		cur := eval(float64(i) / float64(n))
		lengths[i] = lengths[i-1] + vmath.Distance(prev, cur)
		prev = cur
	}
	return arcTable{lengths: lengths}
}

func (a arcTable) total() float64 {
	if len(a.lengths) == 0 {
		return 0
	}
	return a.lengths[len(a.lengths)-1]
}

// uToT maps normalized arc length to the raw curve parameter
func (a arcTable) uToT(u float64) float64 {
	total := a.total()
	if total <= 0 {
		return u
	}
	div := float64(len(a.lengths) - 1)
	target := u * total

	i := sort.SearchFloat64s(a.lengths, target)
	if i >= len(a.lengths) {
		return 1
	}
	if a.lengths[i] == target || i == 0 {
		return float64(i) / div
	}

	before := a.lengths[i-1]
	seg := a.lengths[i] - before
	if seg <= 0 {
		return float64(i) / div
	}
	return (float64(i-1) + (target-before)/seg) / div
}
