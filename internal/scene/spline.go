package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CatmullRom samples a uniform Catmull-Rom spline through points, returning
// samples+1 points from the first control point to the last. The end
// segments use mirrored phantom points so the curve passes through every
// control point.
func CatmullRom(points []mgl64.Vec3, samples int) []mgl64.Vec3 {
	switch {
	case len(points) == 0:
		return nil
	case len(points) == 1 || samples < 1:
		return []mgl64.Vec3{points[0]}
	}

	n := len(points)
	at := func(i int) mgl64.Vec3 {
		switch {
		case i < 0:
			return points[0].Mul(2).Sub(points[1])
		case i >= n:
			return points[n-1].Mul(2).Sub(points[n-2])
		}
		return points[i]
	}

	out := make([]mgl64.Vec3, 0, samples+1)
	segs := float64(n - 1)
	for s := 0; s <= samples; s++ {
		u := float64(s) / float64(samples) * segs
		i := int(u)
		if i >= n-1 {
			i = n - 2
		}
		t := u - float64(i)
		out = append(out, catmullRom(at(i-1), at(i), at(i+1), at(i+2), t))
	}
	return out
}

func catmullRom(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	t2, t3 := t*t, t*t*t
	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(t)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(t3)
	return a.Add(b).Add(c).Add(d).Mul(0.5)
}
