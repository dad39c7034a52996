package gridview

import (
	"testing"

	"github.com/murkandloam/the-gloaming-sub002/internal/gridpreset"
	"github.com/murkandloam/the-gloaming-sub002/internal/ui/testutil"
)

func newSortHarness(pills []gridpreset.SortPill) (*SortPopup, *testutil.PopupHarness) {
	p := NewSortPopup()
	p.Show(pills, 80, 24)
	return p, testutil.NewPopupHarness(p)
}

func applySort(t *testing.T, h *testutil.PopupHarness) SortApplied {
	t.Helper()
	cmd := h.SendEnter()
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg := testutil.ExecuteCmd(cmd)
	act, ok := msg.(SortActionMsg)
	if !ok {
		t.Fatalf("expected SortActionMsg, got %T", msg)
	}
	applied, ok := act.(SortApplied)
	if !ok {
		t.Fatalf("expected SortApplied, got %T", act)
	}
	return applied
}

func TestSortPopup_TogglePill(t *testing.T) {
	_, h := newSortHarness(nil)

	// Cursor starts on Artist; space adds an ascending pill
	h.SendKey(" ")
	applied := applySort(t, h)

	if len(applied.Pills) != 1 {
		t.Fatalf("got %d pills, want 1", len(applied.Pills))
	}
	if applied.Pills[0].Field != gridpreset.SortFieldArtist {
		t.Errorf("field = %v, want artist", applied.Pills[0].Field)
	}
	if applied.Pills[0].Direction != gridpreset.Asc {
		t.Errorf("direction = %v, want asc", applied.Pills[0].Direction)
	}
}

func TestSortPopup_ToggleRemovesExistingPill(t *testing.T) {
	_, h := newSortHarness([]gridpreset.SortPill{
		{Field: gridpreset.SortFieldArtist, Direction: gridpreset.Asc},
	})

	h.SendKey(" ")
	applied := applySort(t, h)

	if len(applied.Pills) != 0 {
		t.Errorf("got %d pills, want 0", len(applied.Pills))
	}
}

func TestSortPopup_PillCapEnforced(t *testing.T) {
	_, h := newSortHarness([]gridpreset.SortPill{
		{Field: gridpreset.SortFieldArtist},
		{Field: gridpreset.SortFieldTitle},
		{Field: gridpreset.SortFieldReleaseDate},
	})

	// Try to add a fourth pill
	h.SendDown()
	h.SendDown()
	h.SendDown() // Date Added
	h.SendKey(" ")
	applied := applySort(t, h)

	if len(applied.Pills) != gridpreset.MaxSortPills {
		t.Errorf("got %d pills, want %d", len(applied.Pills), gridpreset.MaxSortPills)
	}
}

func TestSortPopup_SetDirection(t *testing.T) {
	_, h := newSortHarness([]gridpreset.SortPill{
		{Field: gridpreset.SortFieldArtist, Direction: gridpreset.Asc},
	})

	h.SendKey("d")
	applied := applySort(t, h)

	if applied.Pills[0].Direction != gridpreset.Desc {
		t.Errorf("direction = %v, want desc", applied.Pills[0].Direction)
	}
}

func TestSortPopup_Reorder(t *testing.T) {
	_, h := newSortHarness([]gridpreset.SortPill{
		{Field: gridpreset.SortFieldArtist, Direction: gridpreset.Asc},
		{Field: gridpreset.SortFieldTitle, Direction: gridpreset.Asc},
	})

	// Cursor on Artist, push it down below Title
	h.SendKey("J")
	applied := applySort(t, h)

	if applied.Pills[0].Field != gridpreset.SortFieldTitle {
		t.Errorf("first pill = %v, want title", applied.Pills[0].Field)
	}
	if applied.Pills[1].Field != gridpreset.SortFieldArtist {
		t.Errorf("second pill = %v, want artist", applied.Pills[1].Field)
	}
}

func TestSortPopup_EscapeCancels(t *testing.T) {
	p, h := newSortHarness([]gridpreset.SortPill{
		{Field: gridpreset.SortFieldArtist, Direction: gridpreset.Asc},
	})

	h.SendKey(" ") // remove the pill
	cmd := h.SendEscape()
	msg := testutil.ExecuteCmd(cmd)
	act, ok := msg.(SortActionMsg)
	if !ok {
		t.Fatalf("expected SortActionMsg, got %T", msg)
	}
	if _, ok := act.(SortCanceled); !ok {
		t.Fatalf("expected SortCanceled, got %T", act)
	}
	if p.Active() {
		t.Error("popup still active after escape")
	}
}

func TestSortPopup_ViewShowsOrderAndDirection(t *testing.T) {
	_, h := newSortHarness([]gridpreset.SortPill{
		{Field: gridpreset.SortFieldTitle, Direction: gridpreset.Desc},
		{Field: gridpreset.SortFieldArtist, Direction: gridpreset.Asc},
	})

	if err := h.AssertViewContains("[1]"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewContains("[2]"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewContains("Sort by: Title desc, Artist asc"); err != "" {
		t.Error(err)
	}
}
