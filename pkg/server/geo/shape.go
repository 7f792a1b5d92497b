package geo

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x float64, y float64) *Point {
	return &Point{
		X: x,
		Y: y,
	}
}

type Shape interface {
	CollidesWith(other Shape) bool
}

type Circle struct {
	C *Point
	R float64
}

func NewCircle(c *Point, r float64) *Circle {
	return &Circle{
		C: c,
		R: r,
	}
}

// CollidesWith only knows rectangles; the body is the one circle in play.
func (c *Circle) CollidesWith(other Shape) bool {
	if r, ok := other.(*Rect); ok {
		return checkCircleRectCollision(c, r)
	}
	return false
}

// ContainsPoint reports whether p lies strictly inside the circle.
func (c *Circle) ContainsPoint(p *Point) bool {
	return DistanceSquared(c.C, p) < c.R*c.R
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x float64, y float64, w float64, h float64) *Rect {
	return &Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r *Rect) CollidesWith(other Shape) bool {
	if c, ok := other.(*Circle); ok {
		return checkCircleRectCollision(c, r)
	}
	return false
}

// ClosestPoint returns the point of the rectangle nearest to p.
func (r *Rect) ClosestPoint(p *Point) *Point {
	return NewPoint(
		math.Max(r.X, math.Min(p.X, r.X+r.W)),
		math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	)
}

// checkCircleRectCollision clamps the circle centre into the rectangle and
// compares the squared distance to that point with r^2.
func checkCircleRectCollision(c *Circle, r *Rect) bool {
	closest := r.ClosestPoint(c.C)
	return DistanceSquared(c.C, closest) < c.R*c.R
}

func Distance(a *Point, b *Point) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared avoids the sqrt when only comparing distances.
func DistanceSquared(a *Point, b *Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

func toVec(p *Point) *mat.VecDense {
	return mat.NewVecDense(2, []float64{p.X, p.Y})
}

func fromVec(v *mat.VecDense) *Point {
	return NewPoint(v.AtVec(0), v.AtVec(1))
}

// Sub returns a - b.
func Sub(a *Point, b *Point) *Point {
	var d mat.VecDense
	d.SubVec(toVec(a), toVec(b))
	return fromVec(&d)
}

// Scale returns p * k.
func Scale(p *Point, k float64) *Point {
	var s mat.VecDense
	s.ScaleVec(k, toVec(p))
	return fromVec(&s)
}

// ClampToRadius returns p, pulled back onto the circle of radius maxDist
// around center if it lies further away.
func ClampToRadius(center *Point, p *Point, maxDist float64) *Point {
	var d mat.VecDense
	d.SubVec(toVec(p), toVec(center))
	dist := mat.Norm(&d, 2)
	if dist <= maxDist {
		return NewPoint(p.X, p.Y)
	}
	d.ScaleVec(maxDist/dist, &d)
	d.AddVec(&d, toVec(center))
	return fromVec(&d)
}
