package radixmap

import (
	"testing"
)

func TestDigit(t *testing.T) {
	tests := []struct {
		name string
		rk   uint64
		q    int
		want int
	}{
		{"leaf digit", 0x1234, 0, 4},
		{"second digit", 0x1234, 1, 3},
		{"top digit width2", 0x1234, 3, 1},
		{"beyond width is zero", 0x1234, 7, 0},
		{"top digit width8", 0xF000000000000000, 15, 0xF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := digit(tt.rk, tt.q); got != tt.want {
				t.Errorf("digit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuartetIncr(t *testing.T) {
	tests := []struct {
		name     string
		rk       uint64
		q        int
		n        int
		want     uint64
		wantStop int
		wantOver bool
	}{
		{"no carry", 0x0005, 0, 4, 0x0006, 0, false},
		{"carry one level", 0x000F, 0, 4, 0x0010, 1, false},
		{"carry across byte", 0x00FF, 0, 4, 0x0100, 2, false},
		{"carry to top", 0x0FFF, 0, 4, 0x1000, 3, false},
		{"overflow", 0xFFFF, 0, 4, 0, 4, true},
		{"reset below stop", 0x0505, 2, 4, 0x0600, 2, false},
		{"carry resets below", 0x0F05, 2, 4, 0x1000, 3, false},
		{"width8 overflow", ^uint64(0), 0, 16, 0, 16, true},
		{"width8 carry", 0x00000000FFFFFFFF, 0, 16, 0x0000000100000000, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stop, over := quartetIncr(tt.rk, tt.q, tt.n)
			if got != tt.want || stop != tt.wantStop || over != tt.wantOver {
				t.Errorf("quartetIncr() = (%#x, %v, %v), want (%#x, %v, %v)",
					got, stop, over, tt.want, tt.wantStop, tt.wantOver)
			}
		})
	}
}

func TestQuartetDecr(t *testing.T) {
	tests := []struct {
		name      string
		rk        uint64
		q         int
		n         int
		want      uint64
		wantStop  int
		wantUnder bool
	}{
		{"no borrow", 0x0005, 0, 4, 0x0004, 0, false},
		{"borrow one level", 0x0010, 0, 4, 0x000F, 1, false},
		{"borrow across byte", 0x0100, 0, 4, 0x00FF, 2, false},
		{"borrow from top", 0x1000, 0, 4, 0x0FFF, 3, false},
		{"underflow", 0x0000, 0, 4, 0, 4, true},
		{"fill below stop", 0x0505, 2, 4, 0x04FF, 2, false},
		{"borrow past zero digits", 0x0005, 2, 4, 0, 4, true},
		{"width8 borrow", 0x0000000100000000, 0, 16, 0x00000000FFFFFFFF, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stop, under := quartetDecr(tt.rk, tt.q, tt.n)
			if got != tt.want || stop != tt.wantStop || under != tt.wantUnder {
				t.Errorf("quartetDecr() = (%#x, %v, %v), want (%#x, %v, %v)",
					got, stop, under, tt.want, tt.wantStop, tt.wantUnder)
			}
		})
	}
}

func TestQuartetIncrDecrRoundTrip(t *testing.T) {
	// Stepping a key forward then backward at the leaf digit returns to
	// the same key for every key of a 1-byte space.
	for rk := uint64(0); rk <= 0xFF; rk++ {
		fwd, _, over := quartetIncr(rk, 0, 2)
		if over {
			continue
		}
		back, _, under := quartetDecr(fwd, 0, 2)
		if under || back != rk {
			t.Fatalf("round trip at %#x: got %#x (under=%v)", rk, back, under)
		}
	}
}

func TestMaxRadix(t *testing.T) {
	tests := []struct {
		width int
		want  uint64
	}{
		{1, 0xFF},
		{2, 0xFFFF},
		{4, 0xFFFFFFFF},
		{8, ^uint64(0)},
	}
	for _, tt := range tests {
		if got := maxRadix(tt.width); got != tt.want {
			t.Errorf("maxRadix(%d) = %#x, want %#x", tt.width, got, tt.want)
		}
	}
}
