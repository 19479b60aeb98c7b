package layout

import (
	"reflect"
	"testing"
)

func TestReadingOrder_Empty(t *testing.T) {
	if got := ReadingOrder(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestReadingOrder_SingleBox(t *testing.T) {
	boxes := []Box{{X1: 10, Y1: 10, X2: 100, Y2: 40}}

	rows := ReadingOrder(boxes)
	if len(rows) != 1 || len(rows[0]) != 1 {
		t.Fatalf("expected one row with one box, got %v", rows)
	}
}

func TestReadingOrder_ThreeBands(t *testing.T) {
	// Three horizontal text bands given in shuffled order.
	top := Box{X1: 10, Y1: 10, X2: 200, Y2: 40}
	middle := Box{X1: 10, Y1: 60, X2: 200, Y2: 90}
	bottom := Box{X1: 10, Y1: 110, X2: 200, Y2: 140}

	rows := ReadingOrder([]Box{bottom, top, middle})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := []Box{top, middle, bottom}
	for i, row := range rows {
		if len(row) != 1 {
			t.Fatalf("row %d: expected 1 box, got %d", i, len(row))
		}
		if row[0] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, row[0], want[i])
		}
	}
}

func TestReadingOrder_LeftToRightWithinRow(t *testing.T) {
	left := Box{X1: 10, Y1: 20, X2: 80, Y2: 50}
	right := Box{X1: 120, Y1: 22, X2: 200, Y2: 52}

	rows := ReadingOrder([]Box{right, left})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row for vertically aligned boxes, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []Box{left, right}) {
		t.Errorf("row order: got %v, want left then right", rows[0])
	}
}

func TestReadingOrder_SlightMisalignment(t *testing.T) {
	// Boxes on the same visual line rarely share exact Y coordinates.
	a := Box{X1: 10, Y1: 20, X2: 80, Y2: 50}
	b := Box{X1: 100, Y1: 28, X2: 180, Y2: 58}

	rows := ReadingOrder([]Box{b, a})
	if len(rows) != 1 {
		t.Fatalf("slightly misaligned boxes should share a row, got %d rows", len(rows))
	}
}

func TestReadingOrder_NoRowForDisjointBoxes(t *testing.T) {
	a := Box{X1: 10, Y1: 10, X2: 80, Y2: 30}
	b := Box{X1: 10, Y1: 35, X2: 80, Y2: 55}

	rows := ReadingOrder([]Box{a, b})
	if len(rows) != 2 {
		t.Fatalf("vertically disjoint boxes should not share a row, got %d rows", len(rows))
	}
}

func TestReadingOrder_DoesNotModifyInput(t *testing.T) {
	boxes := []Box{
		{X1: 10, Y1: 100, X2: 80, Y2: 130},
		{X1: 10, Y1: 10, X2: 80, Y2: 40},
	}
	orig := append([]Box{}, boxes...)

	ReadingOrder(boxes)
	if !reflect.DeepEqual(boxes, orig) {
		t.Error("ReadingOrder modified its input slice")
	}
}

func TestBoxHeight(t *testing.T) {
	b := Box{X1: 0, Y1: 10, X2: 50, Y2: 35}
	if b.Height() != 25 {
		t.Errorf("Height = %d, want 25", b.Height())
	}
}
