package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitHorizontal(t *testing.T) {
	got := Split(Horizontal, Rect{Width: 100, Height: 10}, 0,
		Length{Value: 30}, Fill{Weight: 1})
	want := []Rect{
		{X: 0, Y: 0, Width: 30, Height: 10},
		{X: 30, Y: 0, Width: 70, Height: 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitVerticalWeights(t *testing.T) {
	got := Split(Vertical, Rect{X: 2, Y: 1, Width: 40, Height: 31}, 1,
		Fill{Weight: 1}, Fill{Weight: 2})
	// 30 usable rows after the gap, shared 1:2.
	want := []Rect{
		{X: 2, Y: 1, Width: 40, Height: 10},
		{X: 2, Y: 12, Width: 40, Height: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitMinGrows(t *testing.T) {
	got := Split(Horizontal, Rect{Width: 80, Height: 5}, 1, Min{Value: 20}, Length{Value: 28})
	if got[0].Width != 51 || got[1].Width != 28 || got[1].X != 52 {
		t.Errorf("Split() = %+v, want face 51 wide and calendar at x=52", got)
	}
}

func TestSplitTruncatesOverflow(t *testing.T) {
	got := Split(Horizontal, Rect{Width: 40, Height: 5}, 0, Length{Value: 30}, Length{Value: 30})
	if got[0].Width != 30 || got[1].Width != 10 {
		t.Errorf("widths = %d,%d, want 30,10", got[0].Width, got[1].Width)
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split(Horizontal, Rect{Width: 10, Height: 10}, 0); got != nil {
		t.Errorf("Split() with no constraints = %v, want nil", got)
	}
}

func TestRectInner(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 4}.Inner(1)
	if r != (Rect{X: 1, Y: 1, Width: 8, Height: 2}) {
		t.Errorf("Inner(1) = %+v", r)
	}
	if !(Rect{Width: 3, Height: 3}).Inner(2).Empty() {
		t.Error("Inner(2) of 3x3 should be empty")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"Horizontal", ModeHorizontal, false},
		{"stacked", ModeVertical, false},
		{"diagonal", ModeAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDashboard(t *testing.T) {
	area := Rect{Width: 100, Height: 30}

	face, cal, dir := Dashboard(area, ModeAuto, 40, 30, 9)
	if dir != Horizontal {
		t.Fatalf("dir = %v, want horizontal for a wide window", dir)
	}
	if face.Width != 69 || cal.Width != 30 || cal.X != 70 {
		t.Errorf("face=%+v cal=%+v", face, cal)
	}

	face, cal, dir = Dashboard(Rect{Width: 60, Height: 30}, ModeAuto, 40, 30, 9)
	if dir != Vertical {
		t.Fatalf("dir = %v, want vertical for a narrow window", dir)
	}
	if face.Height != 21 || cal.Height != 9 || cal.Y != 21 {
		t.Errorf("face=%+v cal=%+v", face, cal)
	}

	_, _, dir = Dashboard(area, ModeVertical, 40, 30, 9)
	if dir != Vertical {
		t.Errorf("forced vertical: dir = %v", dir)
	}
}
