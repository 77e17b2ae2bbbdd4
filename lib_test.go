package dpiprobe

import "testing"

func TestSystemLoaderMissingLibrary(t *testing.T) {
	l := SystemLoader()
	h, err := l.Open("dpiprobe-no-such-library")
	if err == nil {
		l.Close(h)
		t.Fatal("opened a library that does not exist")
	}
	if h != 0 {
		t.Errorf("handle = %#x, want 0", h)
	}
}

func TestSystemLoaderCloseZero(t *testing.T) {
	if err := SystemLoader().Close(0); err != nil {
		t.Errorf("Close(0) = %v", err)
	}
}

func TestLibraryLoaded(t *testing.T) {
	lib := newLibrary("shcore", "ShCore.dll")
	if lib.Loaded() {
		t.Fatal("new library reports loaded")
	}
	lib.handle = 0x20
	if !lib.Loaded() {
		t.Fatal("library with handle reports not loaded")
	}
}

func TestPointPack(t *testing.T) {
	tests := []struct {
		p    Point
		want uint64
	}{
		{Point{}, 0},
		{Point{X: 1, Y: 2}, 0x0000000200000001},
		{Point{X: -1, Y: 2}, 0x00000002FFFFFFFF},
		{Point{X: 5, Y: -1}, 0xFFFFFFFF00000005},
	}
	for _, tt := range tests {
		if got := tt.p.pack(); got != tt.want {
			t.Errorf("%+v.pack() = %#x, want %#x", tt.p, got, tt.want)
		}
	}
}
