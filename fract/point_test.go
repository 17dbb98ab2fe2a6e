package fract

import "testing"

func TestPoint(t *testing.T) {
	point := UnitsToPoint(64, 31)
	imgPt := point.ImagePoint()
	if imgPt.X != 1 || imgPt.Y != 0 {
		t.Fatalf("expected (X: 1, Y: 0), got %v", imgPt)
	}
	point = point.AddUnits(0, 1)
	if point.String() != "(1, 0.5)" {
		t.Fatalf("expected (1, 0.5), got %s", point.String())
	}
	x, y := point.ToFloat64s()
	if x != 1 || y != 0.5 {
		t.Fatalf("expected (1, 0.5), got (%f, %f)", x, y)
	}

	if !point.In(UnitsToRect(0, 0, 65, 33)) {
		t.Fatalf("expected point inside rect")
	}
	if point.In(UnitsToRect(0, 0, 64, 32)) {
		t.Fatalf("expected point outside rect (max is excluded)")
	}
}

func TestRect(t *testing.T) {
	rect := UnitsToRect(0, 0, 65, 127)
	if rect.Width() != 65 || rect.Height() != 127 {
		t.Fatalf("unexpected dims (%d, %d)", rect.Width(), rect.Height())
	}
	if rect.IntWidth() != 2 || rect.IntHeight() != 2 {
		t.Fatalf("unexpected int dims (%d, %d)", rect.IntWidth(), rect.IntHeight())
	}

	imgRect := rect.ImageRect()
	if imgRect.Min.X != 0 || imgRect.Min.Y != 0 || imgRect.Max.X != 2 || imgRect.Max.Y != 2 {
		t.Fatalf("unexpected image rect %v", imgRect)
	}

	rect = rect.AddPoint(IntsToPoint(1, 2))
	if rect.Min.X != 64 || rect.Min.Y != 128 || rect.Max.X != 129 || rect.Max.Y != 255 {
		t.Fatalf("unexpected displaced rect %v", rect)
	}

	if rect.Empty() {
		t.Fatalf("expected non-empty rect")
	}
	if !UnitsToRect(10, 10, 10, 90).Empty() {
		t.Fatalf("expected empty rect")
	}
	if !IntsToRect(5, 5, 4, 9).Empty() {
		t.Fatalf("expected empty rect")
	}
}
