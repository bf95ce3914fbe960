package recommend

import (
	"sort"
	"sync/atomic"
	"time"

	"gulhajiPlaza/domain"
)

// Bounds is the observed (min, max) for one feature across a snapshot.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SnapshotItem is one laptop's static attributes frozen into a snapshot.
// Price and stock are deliberately absent; those are read live.
type SnapshotItem struct {
	LaptopID  uint64
	Brand     string
	ModelName string
	GPUClass  string
	Features  FeatureVector
}

// Snapshot is an immutable, versioned view of the catalog used for
// normalization. A new generation fully replaces the old one via an
// atomic pointer swap; a snapshot is never mutated in place.
type Snapshot struct {
	Generation uint64
	BuiltAt    time.Time
	Items      []SnapshotItem
	Bounds     map[string]Bounds
	Medians    map[string]float64
}

// generation is process-wide and monotonic across rebuilds.
var generation atomic.Uint64

// nowFunc is a seam for staleness tests.
var nowFunc = time.Now

// BuildSnapshot computes feature vectors, per-feature bounds and medians
// for the given catalog. Pure apart from the generation counter.
func BuildSnapshot(laptops []domain.Laptop) (*Snapshot, error) {
	if len(laptops) == 0 {
		return nil, ErrEmptyCatalog
	}

	items := make([]SnapshotItem, 0, len(laptops))
	for _, l := range laptops {
		items = append(items, SnapshotItem{
			LaptopID:  l.ID,
			Brand:     l.Brand,
			ModelName: l.ModelName,
			GPUClass:  l.GPUType,
			Features:  buildFeatureVector(l),
		})
	}

	bounds := make(map[string]Bounds, len(snapshotFeatures))
	medians := make(map[string]float64, len(snapshotFeatures))

	for _, feat := range snapshotFeatures {
		values := make([]float64, 0, len(items))
		for _, item := range items {
			values = append(values, item.Features[feat])
		}

		sort.Float64s(values)
		bounds[feat] = Bounds{Min: values[0], Max: values[len(values)-1]}
		medians[feat] = median(values)
	}

	return &Snapshot{
		Generation: generation.Add(1),
		BuiltAt:    time.Now(),
		Items:      items,
		Bounds:     bounds,
		Medians:    medians,
	}, nil
}

// Normalize scales a raw value into [0,1] using the snapshot bounds for the
// feature, clamped against values that drifted after the snapshot was built.
// Zero-width bounds map every value to 1.0.
func (s *Snapshot) Normalize(feature string, value float64) float64 {
	b, ok := s.Bounds[feature]
	if !ok {
		return 0
	}
	if b.Max == b.Min {
		return 1.0
	}
	return clamp01((value - b.Min) / (b.Max - b.Min))
}

// LaptopIDs returns the ids of all items, in snapshot order.
func (s *Snapshot) LaptopIDs() []uint64 {
	ids := make([]uint64, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.LaptopID)
	}
	return ids
}

func (s *Snapshot) staleAt(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.BuiltAt) > maxAge
}

// median of an already-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}

// SnapshotHolder publishes the current snapshot to concurrent readers.
// Rebuilds construct a full snapshot off to the side and swap the pointer;
// in-flight requests keep reading the generation they started with.
type SnapshotHolder struct {
	current atomic.Pointer[Snapshot]
}

func NewSnapshotHolder() *SnapshotHolder {
	return &SnapshotHolder{}
}

// Current returns the latest snapshot, or nil when none was built yet.
func (h *SnapshotHolder) Current() *Snapshot {
	return h.current.Load()
}

// Replace atomically publishes a new snapshot generation.
func (h *SnapshotHolder) Replace(s *Snapshot) {
	h.current.Store(s)
}
