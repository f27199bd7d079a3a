package gfx

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localTransform returns [a, b, c, d, tx, ty] for Scale -> Translate(X, Y).
// Layers never rotate, so b and c stay zero.
func localTransform(l *Layer) [6]float64 {
	return [6]float64{l.ScaleX, 0, 0, l.ScaleY, l.X, l.Y}
}

// multiplyAffine returns parent * child.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine returns the inverse of m, or the identity if m is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes world transforms and alphas for l and its
// subtree. A recomputed parent forces its children to recompute.
func updateWorldTransform(l *Layer, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := l.transformDirty || parentRecomputed
	if recompute {
		l.worldTransform = multiplyAffine(parentTransform, localTransform(l))
		l.worldAlpha = parentAlpha * l.Alpha
		l.transformDirty = false
	}
	for _, child := range l.children {
		updateWorldTransform(child, l.worldTransform, l.worldAlpha, recompute)
	}
}

// SetTranslation sets the layer's local X and Y and marks it dirty.
func (l *Layer) SetTranslation(x, y float64) {
	l.X = x
	l.Y = y
	l.transformDirty = true
}

// Translation returns the layer's local position.
func (l *Layer) Translation() Point {
	return Point{l.X, l.Y}
}

// SetScale sets ScaleX and ScaleY and marks the layer dirty.
func (l *Layer) SetScale(sx, sy float64) {
	l.ScaleX = sx
	l.ScaleY = sy
	l.transformDirty = true
}

// SetAlpha sets the layer's alpha and marks it dirty.
func (l *Layer) SetAlpha(a float64) {
	l.Alpha = a
	l.transformDirty = true
}

// MarkDirty forces recomputation of the world transform on the next frame.
func (l *Layer) MarkDirty() {
	l.transformDirty = true
}

// WorldToLocal converts a world-space point into this layer's space. The
// result reflects the transforms computed by the last Stage.Update.
func (l *Layer) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(l.worldTransform), wx, wy)
}

// LocalToWorld converts a local point into world space.
func (l *Layer) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(l.worldTransform, lx, ly)
}
