package bitutil

import "testing"

func TestIsPowerOf2(t *testing.T) {
	cases := map[uint]bool{0: false, 1: true, 2: true, 3: false, 4: true, 1023: false, 1024: true}
	for in, want := range cases {
		if got := IsPowerOf2(in); got != want {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[uint]uint{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 16: 16, 17: 32}
	for in, want := range cases {
		if got := NextPowerOf2(in); got != want {
			t.Errorf("NextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFloorLog2(t *testing.T) {
	cases := map[uint]int{0: -1, 1: 0, 2: 1, 3: 1, 4: 2, 1023: 9, 1024: 10}
	for in, want := range cases {
		if got := FloorLog2(in); got != want {
			t.Errorf("FloorLog2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestModulusPow2(t *testing.T) {
	for x := uint(0); x < 40; x++ {
		if got, want := ModulusPow2(x, 8), x%8; got != want {
			t.Errorf("ModulusPow2(%d, 8) = %d, want %d", x, got, want)
		}
	}
}
