package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

type Dated interface {
	RecordDate() time.Time
}

// Weekly records carry the program week they were logged in.
type Weekly interface {
	Dated
	RecordWeek() int
}

type Monthly interface {
	Dated
	RecordMonth() string
}

// Bucket is one group of records sharing a key.
// Key holds the week for week buckets and the starting week for blocks,
// Label holds the month for month buckets.
type Bucket[T any] struct {
	Key     int
	Label   string
	Records []T
}

// GroupByWeek buckets records by exact week number, ascending.
// Records keep their input order inside a bucket.
func GroupByWeek[T Weekly](records []T) []Bucket[T] {
	index := make(map[int]int)
	var buckets []Bucket[T]
	for _, r := range records {
		week := r.RecordWeek()
		i, ok := index[week]
		if !ok {
			i = len(buckets)
			index[week] = i
			buckets = append(buckets, Bucket[T]{Key: week})
		}
		buckets[i].Records = append(buckets[i].Records, r)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// GroupByMonth buckets records by month label. Buckets are ordered by the
// date of their earliest record.
func GroupByMonth[T Monthly](records []T) []Bucket[T] {
	index := make(map[string]int)
	var buckets []Bucket[T]
	var earliest []time.Time
	for _, r := range records {
		month := r.RecordMonth()
		i, ok := index[month]
		if !ok {
			i = len(buckets)
			index[month] = i
			buckets = append(buckets, Bucket[T]{Label: month})
			earliest = append(earliest, r.RecordDate())
		}
		if r.RecordDate().Before(earliest[i]) {
			earliest[i] = r.RecordDate()
		}
		buckets[i].Records = append(buckets[i].Records, r)
	}

	order := make([]int, len(buckets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return earliest[order[i]].Before(earliest[order[j]])
	})

	sorted := make([]Bucket[T], len(buckets))
	for i, o := range order {
		sorted[i] = buckets[o]
	}
	return sorted
}

// GroupByBlock sorts records by date and splits them into consecutive blocks
// spanning fewer than size weeks. A record at least size weeks past the
// current block's starting week opens a new block, so the last block may be
// shorter than the rest.
func GroupByBlock[T Weekly](records []T, size int) []Bucket[T] {
	if len(records) == 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}

	sorted := sortByDate(records)
	var blocks []Bucket[T]
	current := Bucket[T]{Key: sorted[0].RecordWeek()}
	for _, r := range sorted {
		if r.RecordWeek()-current.Key >= size && len(current.Records) > 0 {
			blocks = append(blocks, current)
			current = Bucket[T]{Key: r.RecordWeek()}
		}
		current.Records = append(current.Records, r)
	}
	return append(blocks, current)
}

// sortByDate returns a date-ascending copy, leaving the caller's slice untouched.
func sortByDate[T Dated](records []T) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordDate().Before(sorted[j].RecordDate())
	})
	return sorted
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round(v float64, places int) float64 {
	r, err := stats.Round(v, places)
	if err != nil {
		return v
	}
	return r
}

func ptr(v float64) *float64 {
	return &v
}
