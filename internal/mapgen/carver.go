package mapgen

import (
	"container/heap"
	"math/rand"
	"sort"

	"github.com/Ko-stant/levelgen-engine/internal/grid"
)

// Corridor shaping costs. A step costs carveStepCost, minus straightBonus
// when it continues the previous direction and minus reuseBonus when it
// lands on an existing corridor cell. The heuristic is scaled by the
// cheapest possible step so it never overestimates.
const (
	carveStepCost = 10
	straightBonus = 3
	reuseBonus    = 6
	minStepCost   = carveStepCost - straightBonus - reuseBonus
)

// allowAllRegions lifts the foreign-footprint restriction for a search.
const allowAllRegions = -2

// waypointMargin inflates the source/target bounding box when drawing
// intermediate waypoints.
const waypointMargin = 2

type pathNode struct {
	pos   grid.Point
	g     int
	f     int
	dir   grid.Point
	order int
	index int
}

type nodeQueue []*pathNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].order < q[j].order
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	n := *q
	node := x.(*pathNode)
	node.index = len(n)
	*q = append(n, node)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

// carver paints corridors between regions. All randomness (waypoint
// selection) comes from the injected rng; frontier ties break on insertion
// order, so a fixed seed reproduces identical corridors.
type carver struct {
	g       *grid.Grid
	regions []grid.Region
	owner   []int
	rng     *rand.Rand
}

func newCarver(g *grid.Grid, regions []grid.Region, rng *rand.Rand) *carver {
	owner := make([]int, len(g.Tiles))
	for i := range owner {
		owner[i] = -1
	}
	for _, r := range regions {
		for _, p := range r.Cells {
			owner[g.Index(p.X, p.Y)] = r.Index
		}
	}
	return &carver{g: g, regions: regions, owner: owner, rng: rng}
}

// carveAll runs the scheduled edges in order and returns the edges for
// which no admissible route existed. Those are skipped, not fatal; the
// reconnect stage retries them with a direct route.
func (c *carver) carveAll(edges []grid.Edge) []grid.Edge {
	var unroutable []grid.Edge
	for _, e := range edges {
		if !c.carveEdge(e) {
			unroutable = append(unroutable, e)
		}
	}
	return unroutable
}

func (c *carver) carveEdge(e grid.Edge) bool {
	src := c.regions[e.A].Center
	dst := c.regions[e.B].Center

	route := make([]grid.Point, 0, 6)
	route = append(route, src)
	route = append(route, c.waypoints(src, dst)...)
	route = append(route, dst)

	var cells []grid.Point
	for i := 1; i < len(route); i++ {
		seg := c.search(route[i-1], route[i], e.A, e.B, 0)
		if seg == nil {
			return false
		}
		cells = append(cells, seg...)
	}
	c.paint(cells)
	return true
}

// connect carves a direct corridor between two points, optionally bounded
// to a search radius around the start. Used by the dead-end stages.
func (c *carver) connect(from, to grid.Point, regionA, regionB, radius int) bool {
	seg := c.search(from, to, regionA, regionB, radius)
	if seg == nil {
		return false
	}
	c.paint(seg)
	return true
}

func (c *carver) paint(cells []grid.Point) {
	for _, p := range cells {
		if c.g.At(p.X, p.Y) == grid.TileEmpty {
			c.g.Set(p.X, p.Y, grid.TilePath)
		}
	}
}

// waypoints draws 2-4 intermediate points inside the inflated bounding box
// of the endpoints, ordered by distance from the source. Straight
// source-to-target corridors look artificial; detouring through waypoints
// keeps routes organic.
func (c *carver) waypoints(a, b grid.Point) []grid.Point {
	want := 2 + c.rng.Intn(3)

	minX := max(0, min(a.X, b.X)-waypointMargin)
	maxX := min(c.g.Width-1, max(a.X, b.X)+waypointMargin)
	minY := max(0, min(a.Y, b.Y)-waypointMargin)
	maxY := min(c.g.Height-1, max(a.Y, b.Y)+waypointMargin)

	pts := make([]grid.Point, 0, want)
	for tries := want * 8; tries > 0 && len(pts) < want; tries-- {
		p := grid.Point{
			X: minX + c.rng.Intn(maxX-minX+1),
			Y: minY + c.rng.Intn(maxY-minY+1),
		}
		if c.owner[c.g.Index(p.X, p.Y)] != -1 {
			continue
		}
		pts = append(pts, p)
	}

	sort.SliceStable(pts, func(i, j int) bool {
		return a.ManhattanTo(pts[i]) < a.ManhattanTo(pts[j])
	})
	return pts
}

func (c *carver) allowed(idx, regionA, regionB int) bool {
	if regionA == allowAllRegions {
		return true
	}
	o := c.owner[idx]
	return o == -1 || o == regionA || o == regionB
}

// search is the A* core. State is the cell position; the arrival direction
// rides along on each node to price the straightness bonus. Expansion is
// capped so the search terminates even on adversarial layouts. Returns the
// cell sequence from start to goal, or nil when no admissible route exists.
func (c *carver) search(start, goal grid.Point, regionA, regionB, radius int) []grid.Point {
	if start == goal {
		return []grid.Point{start}
	}

	open := &nodeQueue{}
	heap.Init(open)

	gScore := make(map[grid.Point]int)
	cameFrom := make(map[grid.Point]grid.Point)

	h := func(p grid.Point) int { return p.ManhattanTo(goal) * minStepCost }

	order := 0
	gScore[start] = 0
	heap.Push(open, &pathNode{pos: start, g: 0, f: h(start)})

	expansions := 0
	limit := c.g.Width * c.g.Height * 8

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if cur.pos == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		if best, ok := gScore[cur.pos]; ok && cur.g > best {
			continue // superseded entry
		}
		expansions++
		if expansions > limit {
			break
		}

		for _, d := range grid.Orthogonal() {
			np := grid.Point{X: cur.pos.X + d.X, Y: cur.pos.Y + d.Y}
			if !c.g.InBounds(np.X, np.Y) {
				continue
			}
			if radius > 0 && start.ManhattanTo(np) > radius {
				continue
			}
			if !c.allowed(c.g.Index(np.X, np.Y), regionA, regionB) {
				continue
			}

			step := carveStepCost
			if d == cur.dir {
				step -= straightBonus
			}
			if c.g.At(np.X, np.Y) == grid.TilePath {
				step -= reuseBonus
			}

			ng := cur.g + step
			if old, ok := gScore[np]; ok && ng >= old {
				continue
			}
			gScore[np] = ng
			cameFrom[np] = cur.pos
			order++
			heap.Push(open, &pathNode{pos: np, g: ng, f: ng + h(np), dir: d, order: order})
		}
	}

	return nil
}

func reconstructPath(cameFrom map[grid.Point]grid.Point, start, goal grid.Point) []grid.Point {
	var path []grid.Point
	for cur := goal; ; {
		path = append(path, cur)
		if cur == start {
			break
		}
		cur = cameFrom[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
