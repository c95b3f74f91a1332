package schedule

import "fmt"

const (
	// MinEventHeight is the vertical floor, in pixel units, for very
	// short events so they stay legible.
	MinEventHeight = 32.0

	// MarkerRadius is half the size of the point marker used for
	// reminders.
	MarkerRadius = 6.0
)

// Band is the computed vertical placement of one item. Height is 0 for
// reminders, which render as fixed-size markers rather than blocks.
// Lane is 0 unless the caller opted into AssignLanes: the default layout
// keeps every item in the same full-width column and later items simply
// stack on top in insertion order.
type Band struct {
	Event  Event
	Top    float64
	Height float64
	Lane   int
}

// Layout maps the store's items to render bands. The now function is
// injectable for tests and defaults to the real clock.
type Layout struct {
	store *Store
	now   func() int
}

func NewLayout(store *Store) *Layout {
	return &Layout{store: store, now: NowMinutes}
}

// SetNowFunc overrides the clock sample used for the current-time
// indicator.
func (l *Layout) SetNowFunc(now func() int) {
	l.now = now
}

// Bands computes one band per stored item at the given scale,
// pixelsPerMinute = hourHeight/60. Items are returned in store order so
// the renderer's z-order matches insertion order. A malformed time on any
// item aborts with the underlying *ParseError.
func (l *Layout) Bands(pixelsPerMinute float64) ([]Band, error) {
	events := l.store.List()
	bands := make([]Band, 0, len(events))

	for _, event := range events {
		band, err := bandFor(event, pixelsPerMinute)
		if err != nil {
			return nil, err
		}
		bands = append(bands, band)
	}

	return bands, nil
}

// CurrentTimeOffset returns the vertical position of the now indicator.
// Consumers use it both for the marker itself and for the initial
// scroll-into-view offset.
func (l *Layout) CurrentTimeOffset(pixelsPerMinute float64) float64 {
	return MinutesToPixels(l.now(), pixelsPerMinute)
}

func bandFor(event Event, pixelsPerMinute float64) (Band, error) {
	start, err := TimeToMinutes(event.StartTime)
	if err != nil {
		return Band{}, fmt.Errorf("event %q start: %w", event.Title, err)
	}

	if event.IsReminder() {
		// Zero-duration marker anchored at the start time; EndTime is
		// retained on the record but plays no part here.
		return Band{
			Event: event,
			Top:   MinutesToPixels(start, pixelsPerMinute) - MarkerRadius,
		}, nil
	}

	end, err := TimeToMinutes(event.EndTime)
	if err != nil {
		return Band{}, fmt.Errorf("event %q end: %w", event.Title, err)
	}

	height := MinutesToPixels(end-start, pixelsPerMinute)
	if height < MinEventHeight {
		height = MinEventHeight
	}

	return Band{
		Event:  event,
		Top:    MinutesToPixels(start, pixelsPerMinute),
		Height: height,
	}, nil
}

// AssignLanes is an opt-in refinement over the default single-column
// stacking: overlapping events are pushed into the first free horizontal
// lane, greedily in band order. Reminders keep lane 0; they stack without
// collision avoidance. The input slice is returned with lanes filled in.
func AssignLanes(bands []Band) []Band {
	type span struct {
		start, end int
	}
	laneSpans := make(map[int][]span)

	for i, band := range bands {
		if band.Event.IsReminder() {
			continue
		}

		start, err := TimeToMinutes(band.Event.StartTime)
		if err != nil {
			continue
		}
		end, err := TimeToMinutes(band.Event.EndTime)
		if err != nil {
			continue
		}
		if end <= start {
			// Inverted ranges pass through layout uncorrected; treat
			// them as instants for lane purposes.
			end = start + 1
		}

		lane := 0
		for {
			free := true
			for _, sp := range laneSpans[lane] {
				if start < sp.end && sp.start < end {
					free = false
					break
				}
			}
			if free {
				break
			}
			lane++
		}

		laneSpans[lane] = append(laneSpans[lane], span{start: start, end: end})
		bands[i].Lane = lane
	}

	return bands
}
