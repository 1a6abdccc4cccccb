package bitutil

import "testing"

func TestSetGetUnset(t *testing.T) {
	ba := NewBitArray(130)
	for _, i := range []int{0, 1, 63, 64, 65, 129} {
		if ba.Get(i) {
			t.Errorf("bit %d set in fresh array", i)
		}
		ba.Set(i)
		if !ba.Get(i) {
			t.Errorf("bit %d not set after Set", i)
		}
	}
	ba.Unset(64)
	if ba.Get(64) {
		t.Error("bit 64 still set after Unset")
	}
	if !ba.Get(63) || !ba.Get(65) {
		t.Error("Unset disturbed neighboring bits")
	}
}

func TestEqual(t *testing.T) {
	a := NewBitArray(70)
	b := NewBitArray(70)
	a.Set(3)
	b.Set(3)
	if !a.Equal(b) {
		t.Error("identical arrays reported unequal")
	}
	b.Set(69)
	if a.Equal(b) {
		t.Error("different arrays reported equal")
	}
	if a.Equal(NewBitArray(71)) {
		t.Error("arrays of different sizes reported equal")
	}
}

func TestString(t *testing.T) {
	ba := NewBitArray(5)
	ba.Set(0)
	ba.Set(3)
	if got := ba.String(); got != "X..X." {
		t.Errorf("got %q, want %q", got, "X..X.")
	}
}
