package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of a bounding volume hierarchy. Both children are always set;
// a node built from a single object holds it on both sides.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a hierarchy over objects by median split along the longest axis.
// The input slice is copied and left untouched. It panics if objects is empty.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("bvh: cannot build a hierarchy from zero objects")
	}

	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// NewBVHFromList builds a hierarchy over the objects of list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVHNode(list.Objects)
}

func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB()
	for _, object := range objects {
		bbox = bbox.Union(object.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		node.Left, node.Right = objects[0], objects[1]
	default:
		axis := bbox.LongestAxis()
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].BoundingBox().AxisInterval(axis).Min < objects[j].BoundingBox().AxisInterval(axis).Min
		})

		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	return node
}

// Hit tests the right child across rayT, then the left child with the interval
// cut off at the right child's hit, and returns the closer of the two
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	hitRight, okRight := n.Right.Hit(ray, rayT)

	leftT := rayT
	if okRight {
		leftT.Max = hitRight.T
	}

	if hitLeft, okLeft := n.Left.Hit(ray, leftT); okLeft {
		return hitLeft, true
	}
	return hitRight, okRight
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int // leaf objects reached, counting an aliased single child once
	MaxDepth    int
	AvgDepth    float64 // average depth of leaf objects
	TotalShapes int
}

// Stats walks the hierarchy and reports its size and depth
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	stats.TotalShapes = stats.LeafNodes

	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
			continue
		}
		stats.LeafNodes++
		stats.AvgDepth += float64(depth + 1)
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
