// Package layout orders detected text boxes into reading order.
//
// OCR detectors return text boxes in model-internal order (usually by
// detection score). Reading order is rows top-to-bottom, boxes
// left-to-right within a row; two boxes share a row when their vertical
// extents overlap by at least half of the smaller box height.
package layout

import "sort"

// Box is an axis-aligned text box in pixel coordinates.
// (X1, Y1) is the top-left corner, (X2, Y2) the bottom-right.
type Box struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Height returns the box height in pixels.
func (b Box) Height() int { return b.Y2 - b.Y1 }

// sameRow reports whether two boxes belong to the same text row.
func sameRow(a, b Box) bool {
	top := max(a.Y1, b.Y1)
	bottom := min(a.Y2, b.Y2)
	overlap := bottom - top
	if overlap <= 0 {
		return false
	}

	minH := min(a.Height(), b.Height())
	if minH <= 0 {
		return false
	}
	return overlap*2 >= minH
}

// ReadingOrder groups boxes into rows and orders them for reading.
//
// Returns rows top-to-bottom; within each row, boxes are ordered
// left-to-right. The input slice is not modified. An empty input returns
// nil.
func ReadingOrder(boxes []Box) [][]Box {
	if len(boxes) == 0 {
		return nil
	}

	sorted := append([]Box{}, boxes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y1 != sorted[j].Y1 {
			return sorted[i].Y1 < sorted[j].Y1
		}
		return sorted[i].X1 < sorted[j].X1
	})

	var rows [][]Box
	for _, b := range sorted {
		placed := false
		// Boxes arrive in top-edge order, so only the last row can match.
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			if sameRow(last[0], b) {
				rows[len(rows)-1] = append(last, b)
				placed = true
			}
		}
		if !placed {
			rows = append(rows, []Box{b})
		}
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X1 < row[j].X1
		})
	}

	return rows
}
