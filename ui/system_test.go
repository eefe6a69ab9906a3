package ui

import "testing"

func newTestPanel() *PanelSystem {
	return NewPanelSystem(nil, func() (int, int) { return 1920, 1080 }, nil)
}

func TestPanelIsCentered(t *testing.T) {
	p := newTestPanel()
	x, y, w, h := p.Bounds()
	if x != 635 || y != 265 || w != PanelWidth || h != PanelHeight {
		t.Fatalf("Bounds = %v,%v %vx%v", x, y, w, h)
	}
	if !p.IsMouseOver(960, 540) || p.IsMouseOver(10, 10) {
		t.Error("IsMouseOver disagrees with Bounds")
	}
}

func TestClickRoutesToControls(t *testing.T) {
	p := newTestPanel()
	var dec, inc, saved int
	p.AddRow("Length", func() string { return "8" }, func() { dec++ }, func() { inc++ })
	p.AddRow("Preset", func() string { return "x" }, nil, nil)
	p.AddAction("Save", func() { saved++ })
	p.layout()

	r := p.Rows[0]
	if !p.Click(int(r.dec.X)+2, int(r.dec.Y)+2) {
		t.Fatal("click on - missed")
	}
	if !p.Click(int(r.inc.X)+2, int(r.inc.Y)+2) {
		t.Fatal("click on + missed")
	}
	a := p.Actions[0]
	p.Click(int(a.X)+5, int(a.Y)+5)
	if dec != 1 || inc != 1 || saved != 1 {
		t.Fatalf("dec=%d inc=%d saved=%d", dec, inc, saved)
	}

	if p.Click(0, 0) {
		t.Error("click outside the panel hit a control")
	}

	p.Entry.Open("Name:", "", nil)
	p.Click(int(a.X)+5, int(a.Y)+5)
	if saved != 1 {
		t.Error("click went through while the entry was open")
	}
}

func TestTextEntry(t *testing.T) {
	var e TextEntry
	var got []string
	e.Type([]rune("ignored"))
	if e.Text != "" {
		t.Fatal("inactive entry accepted input")
	}

	e.Open("Name:", "ab", func(s string) { got = append(got, s) })
	e.Type([]rune("c\td"))
	e.Backspace()
	e.Type([]rune("é"))
	if e.Text != "abcé" {
		t.Fatalf("Text = %q", e.Text)
	}
	e.Commit()
	if e.Active() || len(got) != 1 || got[0] != "abcé" {
		t.Fatalf("after commit: active=%v got=%v", e.Active(), got)
	}

	e.Open("Name:", "", func(s string) { got = append(got, s) })
	e.Cancel()
	e.Commit()
	if len(got) != 1 {
		t.Fatalf("cancelled entry committed: %v", got)
	}
}

func TestStatusLine(t *testing.T) {
	var s StatusLine
	s.Error("name already exists")
	if !s.IsError || s.Text == "" {
		t.Fatalf("status = %+v", s)
	}
	s.Info("saved")
	if s.IsError {
		t.Error("Info kept the error flag")
	}
	s.Clear()
	if s.Text != "" {
		t.Error("Clear left text")
	}
}
