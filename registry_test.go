package palette

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry[RGBA] {
	t.Helper()
	r := NewRegistry[RGBA]()
	r.Register("grays", mustNew(t, []RGBA{Black, White},
		WithCategory("sequential"), WithNotes("black to white ramp")))
	r.Register("heat", mustNew(t, []RGBA{Black, Red, Yellow, White},
		WithCategory("sequential"), WithNotes("thermal imaging")))
	r.Register("ice", mustNew(t, []RGBA{White, Cyan, Blue},
		WithCategory("diverging"), WithNotes("cold Blues")))
	return r
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry[RGBA]()
	s := mustNew(t, []RGBA{Black, White})

	if overwrote := r.Register("grays", s); overwrote {
		t.Error("Register() first insert reported overwrite")
	}
	if overwrote := r.Register("grays", s.Reverse()); !overwrote {
		t.Error("Register() second insert did not report overwrite")
	}

	// Last writer wins.
	got, ok := r.Lookup("grays")
	if !ok {
		t.Fatal("Lookup() after overwrite = not found")
	}
	if got.At(0) != White {
		t.Errorf("Lookup() returned the old entry after overwrite")
	}
}

func TestRegistry_Register_WarnsOnOverwrite(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	r := NewRegistry[RGBA]()
	s := mustNew(t, []RGBA{Black, White})

	r.Register("grays", s)
	if buf.Len() != 0 {
		t.Errorf("Register() first insert logged: %q", buf.String())
	}

	r.Register("grays", s)
	out := buf.String()
	if !strings.Contains(out, "overwritten") || !strings.Contains(out, "grays") {
		t.Errorf("Register() overwrite log = %q, want overwrite warning naming the scheme", out)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry(t)

	s, ok := r.Lookup("heat")
	if !ok {
		t.Fatal("Lookup(heat) = not found")
	}
	if s.Len() != 4 {
		t.Errorf("Lookup(heat).Len() = %d, want 4", s.Len())
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) = found, want not found")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := newTestRegistry(t)

	got := r.Names()
	want := []string{"grays", "heat", "ice"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q (sorted)", i, got[i], want[i])
		}
	}

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistry_Find(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"by name", "heat", []string{"heat"}},
		{"by category", "sequential", []string{"grays", "heat"}},
		{"by notes", "thermal", []string{"heat"}},
		{"case insensitive", "BLUES", []string{"ice"}},
		{"substring across fields", "ra", []string{"grays"}},
		{"no match", "plasma", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Find(tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("Find(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Find(%q)[%d] = %q, want %q", tt.pattern, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := newTestRegistry(t)
	s := mustNew(t, []RGBA{Black, White})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("scheme-%d", i), s)
		}(i)
		go func() {
			defer wg.Done()
			r.Lookup("heat")
			r.Find("sequential")
		}()
	}
	wg.Wait()

	if r.Len() != 11 {
		t.Errorf("Len() after concurrent registration = %d, want 11", r.Len())
	}
}
