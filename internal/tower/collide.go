package tower

import "github.com/vovakirdan/tower-climber/internal/core"

// resolveHorizontal pushes body out of every overlapping solid along X.
// The sign of velX picks the face: moving right clamps the right edge to the
// solid's left edge and vice versa. Returns true if anything was touched.
func resolveHorizontal(body *core.Body, velX float64, solids [][]Static) bool {
	if velX == 0 {
		return false
	}
	hit := false
	for _, group := range solids {
		for _, s := range group {
			if !body.Rect().Intersects(s.Rect) {
				continue
			}
			hit = true
			if velX > 0 {
				body.SetRight(s.Rect.X)
			} else {
				body.SetLeft(s.Rect.Right())
			}
		}
	}
	return hit
}

// resolveVertical pushes body out of every overlapping solid along Y.
// Falling lands the body (onGround, velY = 0); rising into a ceiling zeroes velY.
// A falling body whose bottom edge sits exactly on a solid's top also lands,
// otherwise flooring the sub-pixel position would drop resting contact every
// other tick.
func resolveVertical(body *core.Body, velY *float64, onGround *bool, solids [][]Static) {
	for _, group := range solids {
		for _, s := range group {
			r := body.Rect()
			if !r.Intersects(s.Rect) && !(*velY > 0 && restsOn(r, s.Rect)) {
				continue
			}
			switch {
			case *velY > 0:
				body.SetBottom(s.Rect.Y)
				*velY = 0
				*onGround = true
			case *velY < 0:
				body.SetTop(s.Rect.Bottom())
				*velY = 0
			}
		}
	}
}

// restsOn reports whether r stands exactly on top of s.
func restsOn(r, s core.Rect) bool {
	return r.Bottom() == s.Y && r.X < s.Right() && s.X < r.Right()
}

// clampToScreen keeps body inside [0, width] horizontally and reports which
// side was hit: -1 left, +1 right, 0 none.
func clampToScreen(body *core.Body, width int) int {
	r := body.Rect()
	switch {
	case r.X < 0:
		body.SetLeft(0)
		return -1
	case r.Right() > width:
		body.SetRight(width)
		return 1
	}
	return 0
}
