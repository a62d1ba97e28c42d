package convert

import (
	"log/slog"
	"sort"

	"github.com/sekaitools/chartconv/internal/chart"
	"github.com/sekaitools/chartconv/internal/level"
)

// Option configures a conversion.
type Option func(*converter)

// WithLogger sets the logger used for per-phase debug output. The default
// logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *converter) {
		c.log = log
	}
}

type converter struct {
	log *slog.Logger
}

// Convert turns a raw extended chart into an ordered, linked level.
//
// The builder sequence is fixed: BPM markers, timescale groups, notes with
// their slide connectors and sim lines, then guides. Timescale groups come
// before notes and guides because both resolve group references against the
// group map. The merged list is then stably sorted by beat with the
// initialization entity pinned first, and the final linking pass points
// every connector head's Next at its tail.
//
// Conversion is all-or-nothing: any integrity error returns with no partial
// output. The global playback offset passes through unchanged.
func Convert(data chart.LevelData, opts ...Option) (level.LevelData, error) {
	c := &converter{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}

	x := NewIndex(data.Entities)
	c.log.Debug("indexed chart",
		"entities", x.Len(),
		"notes", len(x.Notes()),
		"slide_bodies", len(x.ActiveConnectors()))

	bpmEntities, err := buildBpmChanges(x)
	if err != nil {
		return level.LevelData{}, err
	}
	groups, timescaleEntities, err := buildTimescaleGroups(x)
	if err != nil {
		return level.LevelData{}, err
	}
	noteEntities, err := buildNotes(x, groups)
	if err != nil {
		return level.LevelData{}, err
	}
	guideEntities, err := buildGuides(x, groups)
	if err != nil {
		return level.LevelData{}, err
	}
	c.log.Debug("built entities",
		"bpm", len(bpmEntities),
		"timescale", len(timescaleEntities),
		"note", len(noteEntities),
		"guide", len(guideEntities))

	entities := make([]level.Entity, 0,
		1+len(bpmEntities)+len(timescaleEntities)+len(noteEntities)+len(guideEntities))
	entities = append(entities, &level.Initialization{})
	entities = append(entities, bpmEntities...)
	entities = append(entities, timescaleEntities...)
	entities = append(entities, noteEntities...)
	entities = append(entities, guideEntities...)

	sortEntities(entities)
	linkSlideNotes(entities)

	return level.LevelData{
		BGMOffset: data.BGMOffset,
		Entities:  entities,
	}, nil
}

// sortEntities stably orders the merged list: initialization first, then
// non-decreasing beat with beatless entities at -1. Stability preserves the
// builder emit order among equal beats, which keeps conversion
// deterministic.
func sortEntities(entities []level.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		_, aInit := a.(*level.Initialization)
		_, bInit := b.(*level.Initialization)
		if aInit != bInit {
			return aInit
		}
		return a.SortBeat() < b.SortBeat()
	})
}

// linkSlideNotes points every connector head's Next at the connector tail,
// unconditionally overwriting any prior value. The pass applies uniformly
// to all connectors - guide connectors are structurally identical and their
// anchors simply gain a Next link the renderer never reads. Running the
// pass twice yields the same assignments as running it once.
func linkSlideNotes(entities []level.Entity) {
	for _, e := range entities {
		connector, ok := e.(*level.Connector)
		if !ok {
			continue
		}
		connector.Head.Next = connector.Tail
	}
}
