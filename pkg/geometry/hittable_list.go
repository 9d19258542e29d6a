package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// HittableList is an ordered collection of objects searched linearly
type HittableList struct {
	Objects []Hittable
	targets []pdf.Target // objects that can be importance sampled
	bbox    core.AABB
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB()}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends object and grows the list's bounding box
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
	if target, ok := object.(pdf.Target); ok {
		l.targets = append(l.targets, target)
	}
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects, shrinking the search interval as hits are found
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages the densities of the objects that can be sampled
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.targets) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.targets))
	sum := 0.0
	for _, target := range l.targets {
		sum += weight * target.PDFValue(origin, direction)
	}
	return sum
}

// Random picks one sampleable object uniformly and returns a direction toward it
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.targets) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := min(int(sampler.Get1D()*float64(len(l.targets))), len(l.targets)-1)
	return l.targets[index].Random(origin, sampler)
}
