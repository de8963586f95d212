package watchgl

import "testing"

// packBits builds a 1-bit plane from rows of '0'/'1' cells, LSB-first
// within each byte, rows padded to a byte boundary.
func packBits(t *testing.T, width int, rows []string) []byte {
	t.Helper()
	stride := (width + 7) / 8
	out := make([]byte, stride*len(rows))
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d has %d cells, want %d", y, len(row), width)
		}
		for x, ch := range row {
			if ch == '1' {
				out[y*stride+x/8] |= 1 << (x % 8)
			}
		}
	}
	return out
}

// wantPixels maps the same rows to the encoded palette values the
// stream should emit.
func wantPixels(format ColorFormat, rows []string, bg, fg Color) []uint16 {
	var out []uint16
	for _, row := range rows {
		for _, ch := range row {
			if ch == '1' {
				out = append(out, format.Encode(fg))
			} else {
				out = append(out, format.Encode(bg))
			}
		}
	}
	return out
}

func mustMono(t *testing.T, format ColorFormat, width int, rows []string) *MonoStream {
	t.Helper()
	s, err := NewMonoStream(format, packBits(t, width, rows), width, len(rows))
	if err != nil {
		t.Fatalf("NewMonoStream failed: %v", err)
	}
	return s
}

func TestMonoStreamDecode(t *testing.T) {
	tests := []struct {
		name  string
		width int
		rows  []string
	}{
		{"narrow rows", 5, []string{"10101", "01110", "11111"}},
		{"single byte rows", 8, []string{"10000001", "01111110"}},
		{"partial trailing byte", 12, []string{"111111111111", "000000000000", "101010101010"}},
		{"two full bytes", 16, []string{"1111111100000000", "0000000011111111"}},
		{"one pixel", 1, []string{"1", "0", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustMono(t, RGB565, tt.width, tt.rows)
			want := wantPixels(RGB565, tt.rows, Black, DefaultTextColor)
			got := readAll(t, s)
			if len(got) != len(want) {
				t.Fatalf("decoded %d pixels, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("pixel %d = %#04x, want %#04x", i, got[i], want[i])
				}
			}
		})
	}
}

// TestMonoStreamSkipMatchesRead checks that skipping steps the bit
// cursor exactly like reading, for skips landing mid-byte, at row
// boundaries and past them.
func TestMonoStreamSkipMatchesRead(t *testing.T) {
	rows := []string{"1100110011", "0011001100", "1010101010"}
	ref := wantPixels(RGB565, rows, Black, DefaultTextColor)
	for _, skip := range []int{1, 4, 9, 10, 11, 16, 25, 29} {
		s := mustMono(t, RGB565, 10, rows)
		s.Skip(skip)
		if got, want := s.Remaining(), 30-skip; got != want {
			t.Fatalf("skip %d: Remaining() = %d, want %d", skip, got, want)
		}
		got := readAll(t, s)
		for i := range got {
			if got[i] != ref[skip+i] {
				t.Errorf("skip %d: pixel %d = %#04x, want %#04x", skip, i, got[i], ref[skip+i])
			}
		}
	}
}

func TestMonoStreamResetRepeats(t *testing.T) {
	s := mustMono(t, RGB565, 5, []string{"10110", "01001", "11100"})
	first := readAll(t, s)
	s.Reset()
	if got := s.Remaining(); got != 15 {
		t.Fatalf("Remaining() after Reset = %d, want 15", got)
	}
	second := readAll(t, s)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pixel %d after Reset = %#04x, want %#04x", i, second[i], first[i])
		}
	}
}

func TestMonoStreamPalette(t *testing.T) {
	s := mustMono(t, RGB565, 2, []string{"10"})
	s.SetColor(0, Red)
	s.SetColor(1, Blue)
	got := readAll(t, s)
	if got[0] != RGB565.Encode(Blue) {
		t.Errorf("set bit = %#04x, want foreground %#04x", got[0], RGB565.Encode(Blue))
	}
	if got[1] != RGB565.Encode(Red) {
		t.Errorf("cleared bit = %#04x, want background %#04x", got[1], RGB565.Encode(Red))
	}
}

func TestMonoStreamSwappedFormat(t *testing.T) {
	s := mustMono(t, RGB565Swapped, 2, []string{"10"})
	s.SetColor(0, Green)
	s.SetColor(1, Red)
	got := readAll(t, s)
	if want := RGB565Swapped.Encode(Red); got[0] != want {
		t.Errorf("set bit = %#04x, want %#04x", got[0], want)
	}
	if want := RGB565Swapped.Encode(Green); got[1] != want {
		t.Errorf("cleared bit = %#04x, want %#04x", got[1], want)
	}
}

func TestMonoStreamSetColorPanics(t *testing.T) {
	s := mustMono(t, RGB565, 2, []string{"10"})
	for _, n := range []int{-1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetColor(%d) did not panic", n)
				}
			}()
			s.SetColor(n, Red)
		}()
	}
}

func TestMonoStreamRetarget(t *testing.T) {
	s := mustMono(t, RGB565, 8, []string{"11111111"})
	s.SetColor(1, Cyan)
	if err := s.Retarget(packBits(t, 3, []string{"101", "010"}), 3, 2); err != nil {
		t.Fatalf("Retarget failed: %v", err)
	}
	if got := s.Width(); got != 3 {
		t.Errorf("Width() = %d, want 3", got)
	}
	want := wantPixels(RGB565, []string{"101", "010"}, Black, Cyan)
	got := readAll(t, s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %#04x, want %#04x", i, got[i], want[i])
		}
	}
}

func TestMonoStreamRetargetRejects(t *testing.T) {
	s := mustMono(t, RGB565, 8, []string{"11111111"})
	tests := []struct {
		name   string
		bits   []byte
		width  int
		height int
	}{
		{"zero width", make([]byte, 8), 0, 4},
		{"negative height", make([]byte, 8), 4, -1},
		{"plane too short", make([]byte, 3), 8, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Retarget(tt.bits, tt.width, tt.height); err == nil {
				t.Errorf("Retarget(%d, %d) succeeded, want error", tt.width, tt.height)
			}
		})
	}
}

func TestMonoStreamShortRead(t *testing.T) {
	s := mustMono(t, RGB565, 4, []string{"1111"})
	buf := make([]byte, 200)
	if got := s.Read(buf, 100, 0); got != 4 {
		t.Errorf("Read(100) = %d, want 4", got)
	}
	if got := s.Read(buf, 1, 0); got != 0 {
		t.Errorf("Read(1) when exhausted = %d, want 0", got)
	}
}
