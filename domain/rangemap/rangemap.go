// Package rangemap maps integer intervals through chains of piecewise-linear
// conversion tables.
//
// A Table is a set of non-overlapping ConversionRanges; values outside every
// range map to themselves. Mapping an interval splits it at range boundaries so
// that every input value lands in exactly one output interval. A point is an
// interval of length one, so point lookups and interval mapping share one path.
package rangemap

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrOverlappingRanges indicates two ranges of one table cover the same source value.
var ErrOverlappingRanges = errors.New("conversion ranges overlap")

// ErrEmptyRange indicates a conversion range with a non-positive length.
var ErrEmptyRange = errors.New("conversion range must have a positive length")

// ErrBrokenChain indicates consecutive pipeline stages whose categories do not line up.
var ErrBrokenChain = errors.New("pipeline stages do not chain")

// Interval covers [Start, Start+Length).
type Interval struct {
	Start  int
	Length int
}

// Point returns the interval holding only v.
func Point(v int) Interval {
	return Interval{Start: v, Length: 1}
}

// End returns the inclusive last value.
func (i Interval) End() int { return i.Start + i.Length - 1 }

// Empty reports whether the interval covers nothing.
func (i Interval) Empty() bool { return i.Length <= 0 }

// Contains reports whether v lies inside the interval.
func (i Interval) Contains(v int) bool {
	return !i.Empty() && v >= i.Start && v <= i.End()
}

// ConversionRange maps [sourceStart, sourceStart+length) onto
// [destStart, destStart+length) by a constant offset.
type ConversionRange struct {
	destStart   int
	sourceStart int
	length      int
}

// NewConversionRange creates a ConversionRange. Arguments follow the almanac
// line order: destination start, source start, length.
func NewConversionRange(destStart, sourceStart, length int) ConversionRange {
	return ConversionRange{destStart: destStart, sourceStart: sourceStart, length: length}
}

// DestStart returns the value SourceStart maps to.
func (r ConversionRange) DestStart() int { return r.destStart }

// SourceStart returns the inclusive lower bound in source space.
func (r ConversionRange) SourceStart() int { return r.sourceStart }

// Length returns the number of covered values.
func (r ConversionRange) Length() int { return r.length }

// SourceEnd returns the inclusive upper bound in source space.
func (r ConversionRange) SourceEnd() int { return r.sourceStart + r.length - 1 }

// Offset returns destStart - sourceStart.
func (r ConversionRange) Offset() int { return r.destStart - r.sourceStart }

// Source returns the covered source interval.
func (r ConversionRange) Source() Interval {
	return Interval{Start: r.sourceStart, Length: r.length}
}

// Table is one named stage of a pipeline, e.g. seed-to-soil.
type Table struct {
	from   string
	to     string
	ranges []ConversionRange
}

// NewTable validates the ranges and returns a Table sorted by source start.
func NewTable(from, to string, ranges []ConversionRange) (Table, error) {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b ConversionRange) int {
		return cmp.Compare(a.sourceStart, b.sourceStart)
	})
	for i, r := range sorted {
		if r.length <= 0 {
			return Table{}, fmt.Errorf("%w: %s-to-%s source %d length %d", ErrEmptyRange, from, to, r.sourceStart, r.length)
		}
		if i > 0 && sorted[i-1].SourceEnd() >= r.sourceStart {
			return Table{}, fmt.Errorf("%w: %s-to-%s sources %d and %d", ErrOverlappingRanges, from, to, sorted[i-1].sourceStart, r.sourceStart)
		}
	}
	return Table{from: from, to: to, ranges: sorted}, nil
}

// From returns the source category name.
func (t Table) From() string { return t.from }

// To returns the destination category name.
func (t Table) To() string { return t.to }

// Ranges returns the conversion ranges sorted by source start.
func (t Table) Ranges() []ConversionRange { return slices.Clone(t.ranges) }

// overlapping returns the ranges that intersect in, in source order.
func (t Table) overlapping(in Interval) []ConversionRange {
	// First range whose end reaches the interval start. Ranges are sorted and
	// disjoint, so their ends are sorted too.
	lo := sort.Search(len(t.ranges), func(i int) bool {
		return t.ranges[i].SourceEnd() >= in.Start
	})
	hi := lo
	for hi < len(t.ranges) && t.ranges[hi].sourceStart <= in.End() {
		hi++
	}
	return t.ranges[lo:hi]
}

// MapInterval maps every value of in through the table. The output intervals
// are ordered by their source position and their lengths sum to in.Length.
func (t Table) MapInterval(in Interval) []Interval {
	if in.Empty() {
		return nil
	}

	var out []Interval
	pos := in.Start
	for _, r := range t.overlapping(in) {
		start := max(r.sourceStart, in.Start)
		end := min(r.SourceEnd(), in.End())
		if start > pos {
			out = append(out, Interval{Start: pos, Length: start - pos})
		}
		out = append(out, Interval{Start: start + r.Offset(), Length: end - start + 1})
		pos = end + 1
	}
	if pos <= in.End() {
		out = append(out, Interval{Start: pos, Length: in.End() - pos + 1})
	}
	return out
}

// MapPoint maps a single value through the table.
func (t Table) MapPoint(v int) int {
	return t.MapInterval(Point(v))[0].Start
}

// Pipeline is an ordered chain of tables.
type Pipeline struct {
	stages []Table
}

// NewPipeline chains the tables in order. Each stage must consume the
// category the previous stage produces.
func NewPipeline(stages ...Table) (Pipeline, error) {
	for i := 1; i < len(stages); i++ {
		if stages[i-1].to != stages[i].from {
			return Pipeline{}, fmt.Errorf("%w: %s-to-%s followed by %s-to-%s",
				ErrBrokenChain, stages[i-1].from, stages[i-1].to, stages[i].from, stages[i].to)
		}
	}
	return Pipeline{stages: slices.Clone(stages)}, nil
}

// Stages returns the tables in order.
func (p Pipeline) Stages() []Table { return slices.Clone(p.stages) }

// MapPoint pushes v through every stage.
func (p Pipeline) MapPoint(v int) int {
	for _, t := range p.stages {
		v = t.MapPoint(v)
	}
	return v
}

// MapIntervals pushes a set of intervals through every stage. Each stage maps
// the full output set of the previous one, so a single interval may fan out.
func (p Pipeline) MapIntervals(in []Interval) []Interval {
	work := slices.Clone(in)
	for _, t := range p.stages {
		next := make([]Interval, 0, len(work))
		for _, iv := range work {
			next = append(next, t.MapInterval(iv)...)
		}
		work = next
	}
	return work
}

// MinStart returns the smallest start among non-empty intervals.
func MinStart(intervals []Interval) (int, bool) {
	found := false
	best := 0
	for _, iv := range intervals {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < best {
			best = iv.Start
			found = true
		}
	}
	return best, found
}

// TotalLength sums the lengths of the intervals.
func TotalLength(intervals []Interval) int {
	total := 0
	for _, iv := range intervals {
		if !iv.Empty() {
			total += iv.Length
		}
	}
	return total
}
