package catalog

import "golang.org/x/image/font"

// slantDistance ranks slant agreement. An exact match is best, any
// non-upright face is an acceptable stand-in for another non-upright
// request (oblique serves italic and vice versa), everything else is a
// real mismatch.
func slantDistance(want, have font.Style) int {
	switch {
	case want == have:
		return 0
	case want != font.StyleNormal && have != font.StyleNormal:
		return 1
	default:
		return 2
	}
}

// weightDistance is the absolute difference on the x/image weight
// scale, which runs from WeightThin (-3) to WeightBlack (5).
func weightDistance(want, have font.Weight) int {
	d := int(want) - int(have)
	if d < 0 {
		d = -d
	}
	return d
}

// styleScore ranks how well an entry serves a requested style. Lower is
// better. Slant outranks weight: the factor of 16 exceeds the widest
// possible weight gap, so a face with the right slant always beats a
// face with the right weight.
func styleScore(style font.Style, weight font.Weight, e Entry) int {
	return slantDistance(style, e.Style)*16 + weightDistance(weight, e.Weight)
}

// normality scores an entry against a plain upright regular request,
// for ordering a family's faces most-usable first.
func normality(e Entry) int {
	return styleScore(font.StyleNormal, font.WeightNormal, e)
}
