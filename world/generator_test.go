package world

import (
	"testing"

	"github.com/lixenwraith/freefall/parameter"
	"github.com/lixenwraith/freefall/vmath"
)

func TestGeneratorMonotonicIDsAndHeights(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(77))
	if g.Frontier() != parameter.ObstacleFirstFrontier {
		t.Fatalf("Expected initial frontier %v, got %v", parameter.ObstacleFirstFrontier, g.Frontier())
	}

	prevY := g.Frontier()
	for i := uint64(1); i <= 500; i++ {
		o := g.Next(testWidth)
		if o.ID() != i {
			t.Fatalf("Expected id %d, got %d", i, o.ID())
		}
		if o.Y() <= prevY {
			t.Fatalf("Expected strictly increasing Y, got %v after %v", o.Y(), prevY)
		}
		if o.Y() != g.Frontier() {
			t.Fatalf("Expected obstacle at the frontier %v, got %v", g.Frontier(), o.Y())
		}
		prevY = o.Y()
	}
}

func TestGeneratorReadsWidthAtConstruction(t *testing.T) {
	g := NewGenerator(vmath.NewFastRand(5))
	narrow := g.Next(500)
	if _, maxX := narrow.Span(); maxX > 500+1e-9 {
		t.Errorf("Expected obstacle inside 500 wide viewport, span ends at %v", maxX)
	}
}

func TestVisibleBand(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"inside", 1200, true},
		{"just above margin", 1000 - 30 - 100 + 1, true},
		{"above margin", 1000 - 30 - 100, false},
		{"just below margin", 1000 + 720 + 99, true},
		{"below margin", 1000 + 720 + 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.y, 30, 1000, 720, 100); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
