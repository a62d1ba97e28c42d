package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekaitools/chartconv/internal/level"
	"github.com/sekaitools/chartconv/internal/testutil"
)

func guideAnchors(entities []level.Entity) []*level.Note {
	var anchors []*level.Note
	for _, e := range entities {
		if n, ok := e.(*level.Note); ok && n.Kind == level.NoteAnchor {
			anchors = append(anchors, n)
		}
	}
	return anchors
}

func TestBuildGuides_SingleGuide(t *testing.T) {
	data := testutil.Chart(0,
		testutil.Guide(
			testutil.GuidePoint{Beat: 0, Lane: -2, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 0, Lane: -2, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 2, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 2, Size: 1, Group: -1},
			1, 0, 2,
		),
	)
	entities, err := buildGuides(NewIndex(data.Entities), nil)
	require.NoError(t, err)

	// start/head coincide and tail/end coincide: two anchors plus the
	// connector.
	require.Len(t, entities, 3)
	anchors := guideAnchors(entities)
	require.Len(t, anchors, 2)

	startAnchor, endAnchor := anchors[0], anchors[1]
	assert.Equal(t, level.ConnectorGuideGreen, startAnchor.SegmentKind, "color from the start point")
	assert.Equal(t, 1.0, startAnchor.SegmentAlpha, "fade 0 starts opaque")
	assert.Equal(t, level.EaseInQuad, startAnchor.ConnectorEase, "ease from the head point")

	assert.Equal(t, 0.0, endAnchor.SegmentAlpha, "fade 0 ends transparent")
	assert.Equal(t, level.ConnectorGuideNeutral, endAnchor.SegmentKind, "unset kind defaults to neutral")
	assert.Equal(t, level.EaseLinear, endAnchor.ConnectorEase, "unset ease defaults to linear")

	connector, ok := entities[2].(*level.Connector)
	require.True(t, ok)
	assert.Same(t, startAnchor, connector.Head)
	assert.Same(t, endAnchor, connector.Tail)
	assert.Same(t, startAnchor, connector.SegmentHead)
	assert.Same(t, endAnchor, connector.SegmentTail)
	assert.Nil(t, connector.ActiveHead, "guide connectors are passive")
	assert.Nil(t, connector.ActiveTail)
}

func TestBuildGuides_CoincidingStartAndHeadShareOneAnchor(t *testing.T) {
	// The start point carries segment attributes and the head point the
	// ease; when they coincide the single anchor carries both.
	data := testutil.Chart(0,
		testutil.Guide(
			testutil.GuidePoint{Beat: 2, Lane: 0, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 2, Lane: 0, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 6, Lane: 0, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 6, Lane: 0, Size: 1, Group: -1},
			2, 1, 3,
		),
	)
	entities, err := buildGuides(NewIndex(data.Entities), nil)
	require.NoError(t, err)

	anchors := guideAnchors(entities)
	require.Len(t, anchors, 2, "exactly one anchor at each coinciding key")

	merged := anchors[0]
	assert.Equal(t, 2.0, merged.Beat)
	assert.Equal(t, level.ConnectorGuideBlue, merged.SegmentKind)
	assert.Equal(t, 1.0, merged.SegmentAlpha)
	assert.Equal(t, level.EaseInOutQuad, merged.ConnectorEase)
}

func TestBuildGuides_SharedAnchorsAcrossGuides(t *testing.T) {
	// Two guides passing through the same control point fold onto one
	// anchor, each contributing its own attribute subset.
	shared := testutil.GuidePoint{Beat: 4, Lane: 0, Size: 2, Group: -1}
	data := testutil.Chart(0,
		testutil.Guide(
			testutil.GuidePoint{Beat: 0, Lane: 0, Size: 2, Group: -1},
			testutil.GuidePoint{Beat: 0, Lane: 0, Size: 2, Group: -1},
			shared, shared,
			0, 1, 1,
		),
		testutil.Guide(
			shared, shared,
			testutil.GuidePoint{Beat: 8, Lane: 0, Size: 2, Group: -1},
			testutil.GuidePoint{Beat: 8, Lane: 0, Size: 2, Group: -1},
			0, 1, 1,
		),
	)
	entities, err := buildGuides(NewIndex(data.Entities), nil)
	require.NoError(t, err)

	anchors := guideAnchors(entities)
	require.Len(t, anchors, 3, "the shared point appears once")

	var at4 []*level.Note
	for _, a := range anchors {
		if a.Beat == 4 {
			at4 = append(at4, a)
		}
	}
	require.Len(t, at4, 1)
	// First guide's end alpha and second guide's kind/alpha/ease all
	// accumulated on the one anchor.
	assert.Equal(t, level.ConnectorGuideRed, at4[0].SegmentKind)
	assert.Equal(t, 1.0, at4[0].SegmentAlpha)
	assert.Equal(t, level.EaseLinear, at4[0].ConnectorEase)
}

func TestBuildGuides_ConflictingAttributeSplitsAnchor(t *testing.T) {
	// A second guide contributing a different already-set attribute must
	// produce a new anchor, never mutate the first.
	sharedA := testutil.GuidePoint{Beat: 0, Lane: 0, Size: 1, Group: -1}
	data := testutil.Chart(0,
		testutil.Guide(
			sharedA,
			testutil.GuidePoint{Beat: 0, Lane: 3, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 3, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 0, Size: 1, Group: -1},
			0, 1, 1,
		),
		testutil.Guide(
			sharedA,
			testutil.GuidePoint{Beat: 0, Lane: 3, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 3, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 0, Size: 1, Group: -1},
			0, 1, 2,
		),
	)
	entities, err := buildGuides(NewIndex(data.Entities), nil)
	require.NoError(t, err)

	var atShared []*level.Note
	for _, a := range guideAnchors(entities) {
		if a.Beat == 0 && a.Lane == 0 {
			atShared = append(atShared, a)
		}
	}
	require.Len(t, atShared, 2, "conflicting kinds produce two anchors at the same coordinates")
	assert.Equal(t, level.ConnectorGuideRed, atShared[0].SegmentKind)
	assert.Equal(t, level.ConnectorGuideGreen, atShared[1].SegmentKind)
}

func TestBuildGuides_TimescaleGroupPartOfKey(t *testing.T) {
	group := &level.TimescaleGroup{}
	groups := map[int]*level.TimescaleGroup{0: group}

	point := testutil.GuidePoint{Beat: 0, Lane: 0, Size: 1, Group: 0}
	pointNoGroup := testutil.GuidePoint{Beat: 0, Lane: 0, Size: 1, Group: -1}
	data := testutil.Chart(0,
		testutil.Guide(point, point,
			testutil.GuidePoint{Beat: 4, Lane: 0, Size: 1, Group: 0},
			testutil.GuidePoint{Beat: 4, Lane: 0, Size: 1, Group: 0},
			0, 1, 0),
		testutil.Guide(pointNoGroup, pointNoGroup,
			testutil.GuidePoint{Beat: 4, Lane: 0, Size: 1, Group: -1},
			testutil.GuidePoint{Beat: 4, Lane: 0, Size: 1, Group: -1},
			0, 1, 0),
	)
	entities, err := buildGuides(NewIndex(data.Entities), groups)
	require.NoError(t, err)

	var atZero []*level.Note
	for _, a := range guideAnchors(entities) {
		if a.Beat == 0 {
			atZero = append(atZero, a)
		}
	}
	require.Len(t, atZero, 2, "different timescale groups never share an anchor")
	assert.Same(t, group, atZero[0].TimescaleGroup)
	assert.Nil(t, atZero[1].TimescaleGroup)
}

func TestBuildGuides_MissingControlPointField(t *testing.T) {
	g := testutil.Guide(
		testutil.GuidePoint{Beat: 0, Size: 1, Group: -1},
		testutil.GuidePoint{Beat: 0, Size: 1, Group: -1},
		testutil.GuidePoint{Beat: 4, Size: 1, Group: -1},
		testutil.GuidePoint{Beat: 4, Size: 1, Group: -1},
		0, 1, 0)
	delete(g.Data, "headLane")

	data := testutil.Chart(0, g)
	_, err := buildGuides(NewIndex(data.Entities), nil)
	require.Error(t, err)
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodeMissingField, ie.Code)
	assert.Equal(t, "headLane", ie.Field)
}

func TestBuildGuides_BadCodes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		field string
		value int
	}{
		{"bad ease", "ease", 9},
		{"bad fade", "fade", 3},
		{"bad color", "color", 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := testutil.Guide(
				testutil.GuidePoint{Beat: 0, Size: 1, Group: -1},
				testutil.GuidePoint{Beat: 0, Size: 1, Group: -1},
				testutil.GuidePoint{Beat: 4, Size: 1, Group: -1},
				testutil.GuidePoint{Beat: 4, Size: 1, Group: -1},
				0, 1, 0)
			g.Data[tc.field] = float64(tc.value)

			data := testutil.Chart(0, g)
			_, err := buildGuides(NewIndex(data.Entities), nil)
			require.Error(t, err)
			var ie *IntegrityError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, ErrCodeBadCode, ie.Code)
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}
