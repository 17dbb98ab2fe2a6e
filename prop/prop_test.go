package prop

import "testing"
import "image/color"

func TestBool(t *testing.T) {
	b := NewBool(false)
	if b.Get() { t.Fatal("expected false") }
	if !b.Visible() { t.Fatal("expected visible by default") }

	fired := 0
	b.OnChange(func(bool) { fired += 1 })
	b.Set(true)
	if !b.Get() { t.Fatal("expected true") }
	if fired != 1 { t.Fatalf("expected 1 callback, got %d", fired) }

	b.Set(true) // no-op, must not fire
	if fired != 1 { t.Fatalf("expected 1 callback, got %d", fired) }

	b.Hide()
	if b.Visible() { t.Fatal("expected hidden") }
	b.Show()
	if !b.Visible() { t.Fatal("expected visible") }
}

func TestIntRange(t *testing.T) {
	i := NewInt(5)
	fired := 0
	var last int
	i.OnChange(func(value int) { fired += 1; last = value })

	i.Set(7)
	if i.Get() != 7 || fired != 1 { t.Fatal("plain set failed") }

	i.SetRange(0, 10)
	if fired != 1 { t.Fatal("in-range value must not re-fire") }

	i.Set(-3)
	if i.Get() != 0 || last != 0 { t.Fatalf("expected clamp to 0, got %d", i.Get()) }
	i.Set(25)
	if i.Get() != 10 { t.Fatalf("expected clamp to 10, got %d", i.Get()) }

	i.Set(25) // clamps to the same value, no callback
	firedBefore := fired
	i.Set(10)
	if fired != firedBefore { t.Fatal("clamped no-op must not fire") }

	// current value outside a new range is re-clamped immediately
	i.SetRange(0, 4)
	if i.Get() != 4 { t.Fatalf("expected re-clamp to 4, got %d", i.Get()) }
}

func TestFloatRange(t *testing.T) {
	f := NewFloat(0.8)
	f.SetRange(0, 1)
	f.Set(1.7)
	if f.Get() != 1 { t.Fatalf("expected clamp to 1, got %f", f.Get()) }
	f.Set(-0.5)
	if f.Get() != 0 { t.Fatalf("expected clamp to 0, got %f", f.Get()) }
}

func TestColor(t *testing.T) {
	c := NewColor(color.RGBA{ R: 25, G: 255, B: 240, A: 255 })
	fired := 0
	c.OnChange(func(color.RGBA) { fired += 1 })

	c.Set(color.RGBA{ R: 25, G: 255, B: 240, A: 255 }) // same value
	if fired != 0 { t.Fatal("no-op set must not fire") }

	c.Set(color.RGBA{ R: 0, G: 0, B: 0, A: 255 })
	if fired != 1 { t.Fatalf("expected 1 callback, got %d", fired) }
	if c.Get().R != 0 { t.Fatal("unexpected value") }
}

func TestEnum(t *testing.T) {
	e := NewEnum(0)
	if _, ok := e.Value(); ok { t.Fatal("expected invalid value without options") }

	e.SetOptions([]string{"Alpha", "Beta", "Gamma"})
	value, ok := e.Value()
	if !ok || value != "Alpha" { t.Fatalf("expected Alpha, got %q (%t)", value, ok) }

	fired := 0
	e.OnChange(func(int) { fired += 1 })
	e.Set(2)
	if fired != 1 { t.Fatalf("expected 1 callback, got %d", fired) }
	value, ok = e.Value()
	if !ok || value != "Gamma" { t.Fatalf("expected Gamma, got %q (%t)", value, ok) }

	// out-of-range selections are storable but invalid
	e.Set(9)
	if _, ok := e.Value(); ok { t.Fatal("expected invalid value") }
	if fired != 2 { t.Fatalf("expected 2 callbacks, got %d", fired) }

	index, ok := e.IndexOf("Beta")
	if !ok || index != 1 { t.Fatalf("expected (1, true), got (%d, %t)", index, ok) }
	if _, ok := e.IndexOf("Delta"); ok { t.Fatal("expected not found") }
}
