package queue

import (
	"fmt"
	"testing"

	"github.com/llehouerou/wavetube/internal/catalog"
)

func tracks(ids ...string) []catalog.Track {
	out := make([]catalog.Track, len(ids))
	for i, id := range ids {
		out[i] = catalog.Track{ID: id, Title: "Track " + id}
	}
	return out
}

func ptr(t catalog.Track) *catalog.Track { return &t }

func idOf(t *catalog.Track) string {
	if t == nil {
		return "<nil>"
	}
	return t.ID
}

func TestIndexOf(t *testing.T) {
	abc := tracks("A", "B", "C")
	tests := []struct {
		id   string
		want int
	}{
		{"A", 0},
		{"C", 2},
		{"Z", NotFound},
		{"", NotFound},
	}
	for _, tt := range tests {
		if got := IndexOf(abc, tt.id); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestResolveNext_Sequential(t *testing.T) {
	abc := tracks("A", "B", "C")

	res := ResolveNext(abc, ptr(abc[1]), false, RepeatNone, nil)

	if idOf(res.Track) != "C" {
		t.Errorf("ResolveNext(B) = %s, want C", idOf(res.Track))
	}
	if res.Reload {
		t.Error("Reload = true, want false for a different track")
	}
}

func TestResolveNext_WrapsAtEndWithRepeatNone(t *testing.T) {
	abc := tracks("A", "B", "C")

	res := ResolveNext(abc, ptr(abc[2]), false, RepeatNone, nil)

	if idOf(res.Track) != "A" {
		t.Errorf("ResolveNext(C) = %s, want A (wrap)", idOf(res.Track))
	}
}

func TestResolveNext_SingleTrackRepeatAll(t *testing.T) {
	a := tracks("A")

	res := ResolveNext(a, ptr(a[0]), false, RepeatAll, nil)

	if idOf(res.Track) != "A" {
		t.Fatalf("ResolveNext = %s, want A", idOf(res.Track))
	}
	if !res.Reload {
		t.Error("Reload = false, want true when wrapping onto the current track")
	}
}

func TestResolveNext_RepeatOne(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		t.Run(fmt.Sprintf("catalog of %d", n), func(t *testing.T) {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("t%d", i)
			}
			cat := tracks(ids...)
			current := catalog.Track{ID: "current"}

			for _, shuffle := range []bool{false, true} {
				res := ResolveNext(cat, &current, shuffle, RepeatOne, func(int) int { return 0 })
				if idOf(res.Track) != "current" {
					t.Errorf("shuffle=%v: ResolveNext = %s, want current", shuffle, idOf(res.Track))
				}
				if !res.Reload {
					t.Errorf("shuffle=%v: Reload = false, want true", shuffle)
				}
			}
		})
	}
}

func TestResolveNext_EmptyCatalog(t *testing.T) {
	res := ResolveNext(nil, &catalog.Track{ID: "A"}, false, RepeatAll, nil)

	if res.Track != nil {
		t.Errorf("ResolveNext on empty catalog = %s, want nil", idOf(res.Track))
	}
}

func TestResolveNext_NoCurrentStartsAtFirst(t *testing.T) {
	res := ResolveNext(tracks("A", "B"), nil, false, RepeatNone, nil)

	if idOf(res.Track) != "A" {
		t.Errorf("ResolveNext(nil) = %s, want A", idOf(res.Track))
	}
}

func TestResolveNext_CurrentMissingFromReplacedCatalog(t *testing.T) {
	gone := catalog.Track{ID: "old"}

	res := ResolveNext(tracks("X", "Y"), &gone, false, RepeatNone, nil)

	if idOf(res.Track) != "X" {
		t.Errorf("ResolveNext(missing) = %s, want X", idOf(res.Track))
	}
}

func TestResolveNext_ShuffleUsesPicker(t *testing.T) {
	abc := tracks("A", "B", "C")
	var gotN int

	res := ResolveNext(abc, ptr(abc[0]), true, RepeatAll, func(n int) int {
		gotN = n
		return 2
	})

	if gotN != 3 {
		t.Errorf("picker called with n=%d, want 3", gotN)
	}
	if idOf(res.Track) != "C" {
		t.Errorf("ResolveNext(shuffle) = %s, want C", idOf(res.Track))
	}
}

func TestResolveNext_ShuffleMayRepeatCurrent(t *testing.T) {
	abc := tracks("A", "B", "C")

	res := ResolveNext(abc, ptr(abc[1]), true, RepeatNone, func(int) int { return 1 })

	if idOf(res.Track) != "B" || !res.Reload {
		t.Errorf("ResolveNext = %s reload=%v, want B reload=true", idOf(res.Track), res.Reload)
	}
}

func TestResolveNext_ShufflePickerOutOfRange(t *testing.T) {
	res := ResolveNext(tracks("A", "B"), nil, true, RepeatNone, func(int) int { return 9 })

	if idOf(res.Track) != "A" {
		t.Errorf("ResolveNext = %s, want A for an out-of-range pick", idOf(res.Track))
	}
}

func TestResolveNext_CycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 6; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("t%d", i)
		}
		cat := tracks(ids...)
		for start := range cat {
			current := ptr(cat[start])
			for range n {
				current = ResolveNext(cat, current, false, RepeatNone, nil).Track
			}
			if current.ID != cat[start].ID {
				t.Errorf("n=%d start=%d: after %d steps got %s", n, start, n, current.ID)
			}
		}
	}
}

func TestResolvePrev(t *testing.T) {
	abc := tracks("A", "B", "C")
	tests := []struct {
		name    string
		current *catalog.Track
		want    string
	}{
		{"middle", ptr(abc[1]), "A"},
		{"first wraps to last", ptr(abc[0]), "C"},
		{"missing resolves to last", &catalog.Track{ID: "gone"}, "C"},
		{"no current resolves to last", nil, "C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePrev(abc, tt.current); idOf(got) != tt.want {
				t.Errorf("ResolvePrev = %s, want %s", idOf(got), tt.want)
			}
		})
	}
}

func TestResolvePrev_Empty(t *testing.T) {
	if got := ResolvePrev(nil, &catalog.Track{ID: "A"}); got != nil {
		t.Errorf("ResolvePrev(empty) = %s, want nil", got.ID)
	}
}

func TestResolvePrev_InvertsResolveNext(t *testing.T) {
	for n := 2; n <= 5; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("t%d", i)
		}
		cat := tracks(ids...)
		for i := range cat {
			next := ResolveNext(cat, ptr(cat[i]), false, RepeatNone, nil).Track
			if back := ResolvePrev(cat, next); idOf(back) != cat[i].ID {
				t.Errorf("n=%d: prev(next(%s)) = %s", n, cat[i].ID, idOf(back))
			}
		}
	}
}

func TestResolve_ReturnsCopies(t *testing.T) {
	cat := tracks("A", "B")

	res := ResolveNext(cat, nil, false, RepeatNone, nil)
	res.Track.Title = "mutated"

	if cat[0].Title != "Track A" {
		t.Error("ResolveNext returned a pointer into the catalog")
	}
}
