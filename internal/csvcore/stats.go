package csvcore

// Statistics engine (§4.8): per-column aggregates chosen by inferred type,
// computed in parallel over columns via the shared worker pool.

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ColumnStats is the aggregate record for one column, with fields left
// zero-valued when the column's type doesn't produce them.
type ColumnStats struct {
	Name         string
	Type         ColumnType
	Count        int
	ContainsNull bool
	Unique       int
	Min          string
	Max          string
	Sum          string
	Mean         float64
	Median       float64
	Stdev        float64
	MaxPrecision int
	Longest      int
	Freq         []FreqEntry
}

// FreqEntry is one row of a column's frequency table.
type FreqEntry struct {
	Value string
	Count int
}

// StatsOptions configures the engine.
type StatsOptions struct {
	FreqCount int // top-K frequency rows per column; 0 disables
	Only      string
}

// ComputeStats runs the aggregator for every column of t in parallel,
// returning results in column order (§5, "Parallel stat results are
// re-ordered to match input column order before emission").
func ComputeStats(t *Table, opts StatsOptions) []ColumnStats {
	metas := t.InferTypes()
	cols := t.Transpose()
	results := make([]ColumnStats, len(cols))

	RunPool(len(cols), func(i int) {
		results[i] = computeColumnStats(t.Header[i], cols[i], metas[i], opts)
	})
	return results
}

func computeColumnStats(name string, cells []*TypedCell, meta ColumnMeta, opts StatsOptions) ColumnStats {
	stats := ColumnStats{Name: name, Type: meta.Type, Count: len(cells), ContainsNull: meta.ContainsNull, MaxPrecision: meta.MaxPrecision}

	values := make([]string, 0, len(cells))
	seen := map[string]bool{}
	unique := 0
	for _, c := range cells {
		if c.IsNull() {
			continue
		}
		values = append(values, c.field.Value)
		if !seen[c.field.Value] {
			seen[c.field.Value] = true
			unique++
		}
	}
	stats.Unique = unique

	switch meta.Type {
	case TypeNumber:
		nums := make([]float64, 0, len(cells))
		for _, c := range cells {
			if c.IsNull() {
				continue
			}
			n := c.Num()
			if n.Kind == Finite {
				f, _ := n.Value.Float64()
				nums = append(nums, f)
			}
		}
		fillNumericStats(&stats, nums)
	case TypeTimedelta:
		durs := make([]float64, 0, len(cells))
		for _, c := range cells {
			if c.IsNull() {
				continue
			}
			td, ok := c.TimedeltaTuple()
			if ok {
				durs = append(durs, td.Duration().Seconds())
			}
		}
		fillNumericStats(&stats, durs)
	case TypeDate, TypeDateTime:
		fillOrderedStats(&stats, cells, meta.Type)
	case TypeText:
		longest := 0
		for _, v := range values {
			if n := len([]rune(v)); n > longest {
				longest = n
			}
		}
		stats.Longest = longest
	}

	if opts.FreqCount > 0 {
		stats.Freq = frequencyTable(values, meta.ContainsNull, countNulls(cells), opts.FreqCount)
	}
	return stats
}

func countNulls(cells []*TypedCell) int {
	n := 0
	for _, c := range cells {
		if c.IsNull() {
			n++
		}
	}
	return n
}

func fillNumericStats(stats *ColumnStats, nums []float64) {
	if len(nums) == 0 {
		return
	}
	sort.Float64s(nums)
	stats.Min = formatFloat(nums[0])
	stats.Max = formatFloat(nums[len(nums)-1])

	sum := 0.0
	for _, v := range nums {
		sum += v
	}
	stats.Sum = formatFloat(sum)
	stats.Mean = sum / float64(len(nums))
	stats.Median = median(nums)
	stats.Stdev = welfordStdev(nums)
}

// median assumes nums is sorted.
func median(nums []float64) float64 {
	n := len(nums)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return nums[n/2]
	}
	return (nums[n/2-1] + nums[n/2]) / 2
}

// welfordStdev computes the sample standard deviation via Welford's online
// algorithm (§4.8).
func welfordStdev(nums []float64) float64 {
	if len(nums) < 2 {
		return 0
	}
	mean, m2 := 0.0, 0.0
	for i, x := range nums {
		n := float64(i + 1)
		delta := x - mean
		mean += delta / n
		delta2 := x - mean
		m2 += delta * delta2
	}
	return math.Sqrt(m2 / float64(len(nums)-1))
}

// formatFloat renders f the way the engine's min/max/sum text fields are
// reported: shortest round-tripping decimal form, no scientific notation
// for ordinary magnitudes, always carrying a decimal point so an integral
// value like 2 still reads as the number type's "2.0", not a bare integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func fillOrderedStats(stats *ColumnStats, cells []*TypedCell, t ColumnType) {
	var minV, maxV string
	first := true
	for _, c := range cells {
		if c.IsNull() {
			continue
		}
		var v string
		if t == TypeDate {
			d, ok := c.Date()
			if !ok {
				continue
			}
			v = d.Format(DateLayout)
		} else {
			d, ok := c.DateTime()
			if !ok {
				continue
			}
			v = d.Format(DateTimeLayout)
		}
		if first || v < minV {
			minV = v
		}
		if first || v > maxV {
			maxV = v
		}
		first = false
	}
	stats.Min, stats.Max = minV, maxV
}

// frequencyTable implements the most-common-value ordering and None
// interleaving documented in SPEC_FULL.md §5.1, reverse-engineered from
// the original csvstat.cpp's mcv helper.
func frequencyTable(values []string, containsNull bool, nullCount int, freqCount int) []FreqEntry {
	type entry struct {
		value      string
		count      int
		firstIndex int
	}
	order := map[string]int{}
	counts := map[string]int{}
	var keys []string
	for i, v := range values {
		if _, ok := order[v]; !ok {
			order[v] = i
			keys = append(keys, v)
		}
		counts[v]++
	}

	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{value: k, count: counts[k], firstIndex: order[k]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].firstIndex < entries[j].firstIndex
	})

	if !containsNull {
		out := make([]FreqEntry, 0, freqCount)
		for _, e := range entries {
			if len(out) >= freqCount {
				break
			}
			out = append(out, FreqEntry{Value: e.value, Count: e.count})
		}
		return out
	}

	if len(entries) == 0 {
		return []FreqEntry{{Value: "None", Count: nullCount}}
	}

	var out []FreqEntry
	emittedNone := false
	for _, e := range entries {
		if len(out) >= freqCount {
			break
		}
		if !emittedNone && e.count < nullCount {
			out = append(out, FreqEntry{Value: "None", Count: nullCount})
			emittedNone = true
			if len(out) >= freqCount {
				break
			}
		}
		out = append(out, FreqEntry{Value: e.value, Count: e.count})
	}
	if !emittedNone && len(out) < freqCount {
		out = append(out, FreqEntry{Value: "None", Count: nullCount})
	}
	return out
}
