package motion

// Path computes a value along a sequence of control points. t is the
// eased progress in [0, 1]; pts holds the start value, the waypoints and
// the end value for a single channel, in order. Custom paths must return
// pts[0] at t=0 and pts[len-1] at t=1 exactly.
type Path func(t float64, pts []float64) float64

// PathLinear interpolates straight segments between consecutive points.
func PathLinear(t float64, pts []float64) float64 {
	n := len(pts)
	if t <= 0 || n == 1 {
		return pts[0]
	}
	if t >= 1 {
		return pts[n-1]
	}
	segs := float64(n - 1)
	pos := t * segs
	seg := int(pos)
	if seg >= n-1 {
		seg = n - 2
	}
	local := pos - float64(seg)
	return pts[seg] + local*(pts[seg+1]-pts[seg])
}

// PathCatmullRom interpolates a Catmull-Rom spline through the points,
// duplicating the first and last points for the end tangents.
func PathCatmullRom(t float64, pts []float64) float64 {
	n := len(pts)
	if t <= 0 || n == 1 {
		return pts[0]
	}
	if t >= 1 {
		return pts[n-1]
	}
	segs := float64(n - 1)
	pos := t * segs
	seg := int(pos)
	if seg >= n-1 {
		seg = n - 2
	}
	local := pos - float64(seg)
	p1 := pts[seg]
	p2 := pts[seg+1]
	p0 := p1
	if seg > 0 {
		p0 = pts[seg-1]
	}
	p3 := p2
	if seg+2 < n {
		p3 = pts[seg+2]
	}
	return catmullRom(local, p0, p1, p2, p3)
}

func catmullRom(t, p0, p1, p2, p3 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}
