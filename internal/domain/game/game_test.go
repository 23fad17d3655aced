package game

import "testing"

func TestRecordPlayer(t *testing.T) {
	var r Record
	r.Player(Black).Nick = "black"
	r.Player(White).Rank = "3D"
	if r.Black.Nick != "black" || r.White.Rank != "3D" {
		t.Errorf("Player did not return the per-colour fields: %+v", r)
	}
}

func TestPlayerColor(t *testing.T) {
	if Black.SgfColor() != "B" || White.SgfColor() != "W" {
		t.Errorf("SgfColor: %q %q", Black.SgfColor(), White.SgfColor())
	}
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Error("Opponent did not swap colours")
	}
}
