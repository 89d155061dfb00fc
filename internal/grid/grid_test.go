package grid

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	g := New(4, 3)
	g.Set(1, 1, TilePath)

	c := g.Clone()
	c.Set(1, 1, TileEmpty)

	if g.At(1, 1) != TilePath {
		t.Fatalf("mutating the clone changed the original")
	}
	if c.Width != g.Width || c.Height != g.Height {
		t.Fatalf("clone dimensions differ: %dx%d vs %dx%d", c.Width, c.Height, g.Width, g.Height)
	}
}

func TestOrthogonalFilledCountsNeighbors(t *testing.T) {
	g := New(5, 5)
	g.Set(2, 1, TilePath)
	g.Set(1, 2, TileRegion)
	g.Set(2, 3, TileRegionOuter)

	if n := g.OrthogonalFilled(2, 2); n != 3 {
		t.Fatalf("expected 3 filled neighbors, got %d", n)
	}
	if n := g.OrthogonalFilled(0, 0); n != 0 {
		t.Fatalf("expected 0 filled neighbors at corner, got %d", n)
	}
}

func TestComponentsLabelsSeparateStructures(t *testing.T) {
	g := New(8, 4)
	g.Set(1, 1, TilePath)
	g.Set(2, 1, TilePath)
	g.Set(5, 1, TilePath)
	g.Set(5, 2, TilePath)

	labels, count := g.Components()
	if count != 2 {
		t.Fatalf("expected 2 components, got %d", count)
	}
	if labels[g.Index(1, 1)] != labels[g.Index(2, 1)] {
		t.Fatalf("adjacent cells got different labels")
	}
	if labels[g.Index(1, 1)] == labels[g.Index(5, 1)] {
		t.Fatalf("separate structures share a label")
	}
	if labels[g.Index(0, 0)] != -1 {
		t.Fatalf("empty cell should be unlabeled, got %d", labels[g.Index(0, 0)])
	}
}

func TestDiagonalCellsAreSeparateComponents(t *testing.T) {
	g := New(4, 4)
	g.Set(1, 1, TilePath)
	g.Set(2, 2, TilePath)

	_, count := g.Components()
	if count != 2 {
		t.Fatalf("diagonal contact must not join components, got %d", count)
	}
}
