package fract

// A 26.6 fixed point value: 26 bits for the integer part, 6 bits
// for the fractional part. In other words, a Unit stores 64ths;
// var pixels Unit = 64 means 1 pixel, and 96 means 1.5 pixels.
type Unit int32

// Relevant bounds and values for [Unit].
const (
	One     Unit = 64 // fract.One.ToIntFloor() == 1
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	MaxInt  int  = +33554431
	MinInt  int  = -33554432
	MaxFloat64 float64 = +33554431.984375
	MinFloat64 float64 = -33554432
)

// Fast conversion from int to [Unit]. If the value falls outside
// [MinInt, MaxInt], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest [Unit], rounding up in case of
// ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Unit {
	approx := Unit(value*64)
	fp64 := approx.ToFloat64()
	if fp64 == value { return approx }
	if fp64 > value {
		approx -= 1
		fp64 = approx.ToFloat64()
	}
	if value - fp64 >= 1.0/128.0 { approx += 1 }
	return approx
}

// Returns whether the Unit has no fractional part.
func (self Unit) IsWhole() bool { return self & 0x3F == 0 }

// Returns only the fractional part of the Unit.
func (self Unit) Fract() Unit { return self % 64 }

// Like [Unit.Fract](), but always returning a non-negative value.
// For example, -0.25 fract-shifts to +0.75.
func (self Unit) FractShift() Unit { return self & 0x3F }

// Fixed point multiplication, rounding half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }
func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int { return self.ToIntHalfUp() }

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int { return (int(self) +  0) >> 6 }
func (self Unit) ToIntCeil()  int { return (int(self) + 63) >> 6 }
func (self Unit) ToIntHalfUp() int { return (int(self) + 32) >> 6 }

// Unit-space rounding counterparts.
func (self Unit) Floor() Unit { return self & ^Unit(0x3F) }
func (self Unit) Ceil()  Unit { return (self + 0x3F).Floor() }
func (self Unit) HalfUp() Unit { return (self + 32).Floor() }
