package ordering

import "math"

const (
	sign8  = 1 << 7
	sign16 = 1 << 15
	sign32 = 1 << 31
	sign64 = uint64(1) << 63

	// magnitude bits of the float encodings
	rest32 = uint32(1)<<31 - 1
	rest64 = uint64(1)<<63 - 1
)

// Uint8 is the null transform for uint8 keys.
type Uint8 struct{}

func (Uint8) Width() int              { return 1 }
func (Uint8) Apply(k uint8) uint64    { return uint64(k) }
func (Uint8) Restore(rk uint64) uint8 { return uint8(rk) }

// Uint16 is the null transform for uint16 keys.
type Uint16 struct{}

func (Uint16) Width() int               { return 2 }
func (Uint16) Apply(k uint16) uint64    { return uint64(k) }
func (Uint16) Restore(rk uint64) uint16 { return uint16(rk) }

// Uint32 is the null transform for uint32 keys.
type Uint32 struct{}

func (Uint32) Width() int               { return 4 }
func (Uint32) Apply(k uint32) uint64    { return uint64(k) }
func (Uint32) Restore(rk uint64) uint32 { return uint32(rk) }

// Uint64 is the null transform for uint64 keys.
type Uint64 struct{}

func (Uint64) Width() int               { return 8 }
func (Uint64) Apply(k uint64) uint64    { return k }
func (Uint64) Restore(rk uint64) uint64 { return rk }

// Int8 orders int8 keys by flipping the sign bit.
type Int8 struct{}

func (Int8) Width() int             { return 1 }
func (Int8) Apply(k int8) uint64    { return uint64(uint8(k) ^ sign8) }
func (Int8) Restore(rk uint64) int8 { return int8(uint8(rk) ^ sign8) }

// Int16 orders int16 keys by flipping the sign bit.
type Int16 struct{}

func (Int16) Width() int              { return 2 }
func (Int16) Apply(k int16) uint64    { return uint64(uint16(k) ^ sign16) }
func (Int16) Restore(rk uint64) int16 { return int16(uint16(rk) ^ sign16) }

// Int32 orders int32 keys by flipping the sign bit.
type Int32 struct{}

func (Int32) Width() int              { return 4 }
func (Int32) Apply(k int32) uint64    { return uint64(uint32(k) ^ sign32) }
func (Int32) Restore(rk uint64) int32 { return int32(uint32(rk) ^ sign32) }

// Int64 orders int64 keys by flipping the sign bit.
type Int64 struct{}

func (Int64) Width() int              { return 8 }
func (Int64) Apply(k int64) uint64    { return uint64(k) ^ sign64 }
func (Int64) Restore(rk uint64) int64 { return int64(rk ^ sign64) }

// Float32 orders float32 keys under IEEE-754 ordering; see the package
// documentation for the construction and the NaN caveat.
type Float32 struct{}

func (Float32) Width() int { return 4 }

func (Float32) Apply(k float32) uint64 {
	if k == 0 {
		k = 0 // collapse -0.0 into +0.0
	}
	rk := math.Float32bits(k) ^ sign32
	if rk&sign32 == 0 {
		rk ^= rest32
	}
	return uint64(rk)
}

func (Float32) Restore(rk uint64) float32 {
	r := uint32(rk) ^ sign32
	if r&sign32 != 0 {
		r ^= rest32
	}
	return math.Float32frombits(r)
}

// Float64 orders float64 keys under IEEE-754 ordering; see the package
// documentation for the construction and the NaN caveat.
type Float64 struct{}

func (Float64) Width() int { return 8 }

func (Float64) Apply(k float64) uint64 {
	if k == 0 {
		k = 0 // collapse -0.0 into +0.0
	}
	rk := math.Float64bits(k) ^ sign64
	if rk&sign64 == 0 {
		rk ^= rest64
	}
	return rk
}

func (Float64) Restore(rk uint64) float64 {
	rk ^= sign64
	if rk&sign64 != 0 {
		rk ^= rest64
	}
	return math.Float64frombits(rk)
}
