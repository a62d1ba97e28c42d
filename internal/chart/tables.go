package chart

import "github.com/sekaitools/chartconv/internal/level"

// Fixed code tables of the interchange format. Each is a total function
// over its closed domain; a code outside the domain reports !ok and is an
// integrity error at the call site, never a default.

var directions = map[int]level.FlickDirection{
	-1: level.DirectionUpLeft,
	0:  level.DirectionUpOmni,
	1:  level.DirectionUpRight,
}

var eases = map[int]level.EaseType{
	-2: level.EaseOutInQuad,
	-1: level.EaseOutQuad,
	0:  level.EaseLinear,
	1:  level.EaseInQuad,
	2:  level.EaseInOutQuad,
}

// fadeAlphas maps a fade mode to the (start, end) endpoints of the guide's
// start-to-end opacity ramp.
var fadeAlphas = map[int][2]float64{
	0: {1, 0},
	1: {1, 1},
	2: {0, 1},
}

var guideKinds = map[int]level.ConnectorKind{
	0: level.ConnectorGuideNeutral,
	1: level.ConnectorGuideRed,
	2: level.ConnectorGuideGreen,
	3: level.ConnectorGuideBlue,
	4: level.ConnectorGuideYellow,
	5: level.ConnectorGuidePurple,
	6: level.ConnectorGuideCyan,
	7: level.ConnectorGuideBlack,
}

// Direction maps a raw direction code (-1, 0, 1) to a flick direction.
func Direction(code int) (level.FlickDirection, bool) {
	d, ok := directions[code]
	return d, ok
}

// Ease maps a raw ease code (-2..2) to an ease type.
func Ease(code int) (level.EaseType, bool) {
	e, ok := eases[code]
	return e, ok
}

// FadeAlphas maps a raw fade code (0..2) to start and end segment alphas.
func FadeAlphas(code int) (start, end float64, ok bool) {
	a, ok := fadeAlphas[code]
	return a[0], a[1], ok
}

// GuideKind maps a raw color code (0..7) to a guide segment kind.
func GuideKind(code int) (level.ConnectorKind, bool) {
	k, ok := guideKinds[code]
	return k, ok
}
