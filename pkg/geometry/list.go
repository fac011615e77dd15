package geometry

import (
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
)

// HittableList is an ordered collection of hittables searched as a whole.
// Membership order does not affect which hit is returned.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list containing the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit finds the closest intersection across all members. Each member is
// queried with the upper bound tightened to the best hit so far, so farther
// intersections are rejected early and the final record is the global closest.
func (l *HittableList) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	search := t

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, search); isHit {
			closest = hit
			search = search.CapAt(hit.T)
		}
	}

	return closest, closest != nil
}
