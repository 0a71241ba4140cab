package grid

import (
	"sort"
	"time"

	"github.com/venuedeck/venuedeck/pkg/models"
)

// Placement is the computed visual geometry of one event within its day
// column. Column/ColumnCount pack overlapping events side by side; Top
// and Height are pixels; Late marks an event clipped by the bottom of
// the grid, whose end label should render as "Late".
type Placement struct {
	Column      int
	ColumnCount int
	Top         float32
	Height      float32
	Late        bool
}

// WidthFraction returns the block width as a fraction of the column.
func (p Placement) WidthFraction() float32 {
	return 1 / float32(p.ColumnCount)
}

// LeftFraction returns the block's left edge as a fraction of the column.
func (p Placement) LeftFraction() float32 {
	return float32(p.Column) / float32(p.ColumnCount)
}

// Layout assigns a Placement to every event, computed independently per
// visual-day bucket. Column assignment is deterministic across
// recomputation: the order key is (start ascending, id ascending), so
// columns do not jitter when unrelated edits trigger a relayout.
//
// Quadratic per bucket, which is fine at per-day venue scale.
func (c Config) Layout(events []models.Event) map[string]Placement {
	placements := make(map[string]Placement, len(events))

	buckets := make(map[time.Time][]models.Event)
	for _, ev := range events {
		key := c.VisualDate(ev.Start)
		buckets[key] = append(buckets[key], ev)
	}

	for _, bucket := range buckets {
		// Stable traversal order inside a bucket.
		sort.Slice(bucket, func(i, j int) bool {
			if !bucket[i].Start.Equal(bucket[j].Start) {
				return bucket[i].Start.Before(bucket[j].Start)
			}
			return bucket[i].ID < bucket[j].ID
		})

		for i, ev := range bucket {
			column := 0
			overlaps := 0
			for j, other := range bucket {
				if i == j {
					continue
				}
				if !intervalsIntersect(ev, other) {
					continue
				}
				overlaps++
				if j < i {
					column++
				}
			}

			top := c.OffsetForMinutes(c.EffectiveMinutes(ev.Start))
			height := float32(ev.Duration().Minutes()) / 60 * c.PixelsPerHour
			late := false
			if total := c.TotalHeight(); top+height > total {
				height = total - top
				if height < 0 {
					height = 0
				}
				late = true
			}

			placements[ev.ID] = Placement{
				Column:      column,
				ColumnCount: overlaps + 1,
				Top:         top,
				Height:      height,
				Late:        late,
			}
		}
	}

	return placements
}

// intervalsIntersect reports whether two [start, end) intervals overlap.
func intervalsIntersect(a, b models.Event) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
