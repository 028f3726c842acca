package input

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		raw      int
		hor      int
		jump     int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0},
		{3, 1, 1},
		{4, -1, 0},
		{5, -1, 1},
	}
	for _, c := range cases {
		hor, jump := Decode(c.raw)
		if hor != c.hor || jump != c.jump {
			t.Errorf("Decode(%d) = (%d,%d), want (%d,%d)", c.raw, hor, jump, c.hor, c.jump)
		}
	}
}

func TestDecodeMasksOutOfRangeInput(t *testing.T) {
	hor, jump := Decode(8)
	if hor != HOR[0] || jump != JUMP[0] {
		t.Fatalf("Decode(8) should wrap to index 0, got (%d,%d)", hor, jump)
	}
}
