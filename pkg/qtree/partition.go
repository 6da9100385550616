package qtree

import "quadimg/internal/models"

// Partition splits r into at most four child rectangles indexed by quadrant.
// Odd leftover columns go to the west half and odd leftover rows to the north
// half. A one pixel wide rectangle only gets NW/SW children, a one pixel tall
// rectangle only NW/NE. present[q] reports whether quadrant q is populated.
func Partition(r Rect) (rects [4]Rect, present [4]bool) {
	w, h := r.Width(), r.Height()
	if w == 1 && h == 1 {
		return rects, present
	}

	ul, lr := r.UpperLeft, r.LowerRight
	westW := (w + 1) / 2
	northH := (h + 1) / 2

	switch {
	case w == 1:
		rects[models.NorthWest] = NewRect(ul, Point{ul.X, ul.Y + northH - 1})
		rects[models.SouthWest] = NewRect(Point{ul.X, ul.Y + northH}, lr)
		present[models.NorthWest] = true
		present[models.SouthWest] = true

	case h == 1:
		rects[models.NorthWest] = NewRect(ul, Point{ul.X + westW - 1, ul.Y})
		rects[models.NorthEast] = NewRect(Point{ul.X + westW, ul.Y}, lr)
		present[models.NorthWest] = true
		present[models.NorthEast] = true

	default:
		midX := ul.X + westW
		midY := ul.Y + northH
		rects[models.NorthWest] = NewRect(ul, Point{midX - 1, midY - 1})
		rects[models.NorthEast] = NewRect(Point{midX, ul.Y}, Point{lr.X, midY - 1})
		rects[models.SouthWest] = NewRect(Point{ul.X, midY}, Point{midX - 1, lr.Y})
		rects[models.SouthEast] = NewRect(Point{midX, midY}, lr)
		present = [4]bool{true, true, true, true}
	}
	return rects, present
}
