package core

import (
	"sort"
)

// leafThreshold is the largest shape count stored directly in a leaf
const leafThreshold = 8

// BVHNode is one node of a bounding volume hierarchy. Leaves carry
// shapes; internal nodes carry children.
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape
}

// BVH groups many occluders behind a single nearest-hit query
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is not
// reordered.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	owned := make([]Shape, len(shapes))
	copy(owned, shapes)

	return &BVH{Root: buildBVH(owned)}
}

// buildBVH splits at the median of the longest axis until leaves are small
func buildBVH(shapes []Shape) *BVHNode {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: box, Shapes: shapes}
	}

	sortShapesByAxis(shapes, box.LongestAxis())
	mid := len(shapes) / 2

	return &BVHNode{
		BoundingBox: box,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Center().axis(axis) < shapes[j].BoundingBox().Center().axis(axis)
	})
}

// Hit returns the closest intersection with any shape in the hierarchy
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.hit(ray, tMin, tMax)
}

// BoundingBox returns the bounds of every shape in the hierarchy
func (bvh *BVH) BoundingBox() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.BoundingBox
}

func (node *BVHNode) hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closest *HitRecord
	closestSoFar := tMax

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if rec, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closestSoFar = rec.T
				closest = rec
			}
		}
		return closest, closest != nil
	}

	for _, child := range [2]*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if rec, ok := child.hit(ray, tMin, closestSoFar); ok {
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, closest != nil
}

// bvhStats summarizes tree shape for tests
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	totalShapes int
}

func (bvh *BVH) getStats() bvhStats {
	var stats bvhStats
	if bvh.Root != nil {
		bvh.Root.collectStats(0, &stats)
	}
	return stats
}

func (node *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	stats.maxDepth = max(stats.maxDepth, depth)

	if node.Shapes != nil {
		stats.leafNodes++
		stats.totalShapes += len(node.Shapes)
		return
	}
	if node.Left != nil {
		node.Left.collectStats(depth+1, stats)
	}
	if node.Right != nil {
		node.Right.collectStats(depth+1, stats)
	}
}
