package geometry

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/Eearslya/Rake/pkg/core"
)

// Errors raised during BVH construction.
var (
	// ErrEmptyScene is returned when constructing a BVH over zero hittables
	ErrEmptyScene = errors.New("cannot construct a BVH with 0 objects")
	// ErrMissingBounds is returned when a hittable refuses to report bounds
	ErrMissingBounds = errors.New("failed to get bounds for BVH node")
)

// BVHNode is an interior node of the bounding volume hierarchy. Both
// children point at the same hittable when the node was built over a
// single object; traversal tolerates the duplicate.
type BVHNode struct {
	left   core.Hittable
	right  core.Hittable
	bounds core.AABB
}

// NewBVHNode recursively builds a BVH over the given hittables by
// sorting on a uniformly random axis and splitting at the median. The
// input slice is not modified.
func NewBVHNode(objects []core.Hittable, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	sorted := make([]core.Hittable, len(objects))
	copy(sorted, objects)

	return buildBVH(sorted, random)
}

// NewBVHFromList builds a BVH over the objects of a hittable list
func NewBVHFromList(list *HittableList, random *rand.Rand) (*BVHNode, error) {
	return NewBVHNode(list.Objects, random)
}

// buildBVH builds a node over objects, which it is free to reorder
func buildBVH(objects []core.Hittable, random *rand.Rand) (*BVHNode, error) {
	node := &BVHNode{}
	axis := core.RandomInt(0, 2, random)

	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		keyA, okA := boundsKey(objects[0], axis)
		keyB, okB := boundsKey(objects[1], axis)
		if !okA || !okB {
			return nil, ErrMissingBounds
		}
		if keyA < keyB {
			node.left, node.right = objects[0], objects[1]
		} else {
			node.left, node.right = objects[1], objects[0]
		}
	default:
		// Precompute sort keys so a missing bounds fails the build
		// instead of panicking mid-sort
		keys := make([]float64, len(objects))
		for i, object := range objects {
			key, ok := boundsKey(object, axis)
			if !ok {
				return nil, ErrMissingBounds
			}
			keys[i] = key
		}

		sort.Sort(&byAxisMin{objects: objects, keys: keys})

		mid := len(objects) / 2
		left, err := buildBVH(objects[:mid], random)
		if err != nil {
			return nil, err
		}
		right, err := buildBVH(objects[mid:], random)
		if err != nil {
			return nil, err
		}
		node.left, node.right = left, right
	}

	boundsLeft, okLeft := node.left.Bounds()
	boundsRight, okRight := node.right.Bounds()
	if !okLeft || !okRight {
		return nil, ErrMissingBounds
	}
	node.bounds = boundsLeft.Union(boundsRight)

	return node, nil
}

// boundsKey returns the minimum corner of an object's bounds on an axis
func boundsKey(object core.Hittable, axis int) (float64, bool) {
	bounds, ok := object.Bounds()
	if !ok {
		return 0, false
	}
	return bounds.Min.Component(axis), true
}

// byAxisMin sorts objects and their precomputed keys together
type byAxisMin struct {
	objects []core.Hittable
	keys    []float64
}

func (s *byAxisMin) Len() int           { return len(s.objects) }
func (s *byAxisMin) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s *byAxisMin) Swap(i, j int) {
	s.objects[i], s.objects[j] = s.objects[j], s.objects[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// Bounds returns the node's cached bounding box
func (n *BVHNode) Bounds() (core.AABB, bool) {
	return n.bounds, true
}

// Hit tests the ray against the subtree. The right child searches the
// interval tightened by a left-child hit, so on return rec holds the
// closest hit in the subtree.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	if !n.bounds.Hit(ray, tMin, tMax) {
		return false
	}

	hitLeft := n.left.Hit(ray, tMin, tMax, rec)
	rightMax := tMax
	if hitLeft {
		rightMax = rec.Distance
	}
	hitRight := n.right.Hit(ray, tMin, rightMax, rec)

	return hitLeft || hitRight
}
