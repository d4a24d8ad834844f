package tweeny

import "github.com/RedMeansWar/Tweeny/ease"

// Vec2 is a 2D vector value type for position, offset, and size tweens.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the linear interpolation between v and to at t. The method
// expression Vec2.Lerp satisfies BlendFunc[Vec2].
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
	}
}

// Vec3 is a 3D vector value type.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp returns the linear interpolation between v and to at t.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
		Z: Lerp(v.Z, to.Z, t),
	}
}

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Lerp returns the per-component linear interpolation between c and to at t.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: Lerp(c.R, to.R, t),
		G: Lerp(c.G, to.G, t),
		B: Lerp(c.B, to.B, t),
		A: Lerp(c.A, to.A, t),
	}
}

// NewFloat64 creates and starts a scalar tween from one value to another
// over the given duration in seconds, shaped by fn.
func NewFloat64(from, to, duration float64, fn ease.TweenFunc) (*Tween[float64], error) {
	return startPreset(Lerp, from, to, duration, fn)
}

// NewVec2 creates and starts a 2D vector tween.
func NewVec2(from, to Vec2, duration float64, fn ease.TweenFunc) (*Tween[Vec2], error) {
	return startPreset(Vec2.Lerp, from, to, duration, fn)
}

// NewVec3 creates and starts a 3D vector tween.
func NewVec3(from, to Vec3, duration float64, fn ease.TweenFunc) (*Tween[Vec3], error) {
	return startPreset(Vec3.Lerp, from, to, duration, fn)
}

// NewColor creates and starts a color tween interpolating all four
// components.
func NewColor(from, to Color, duration float64, fn ease.TweenFunc) (*Tween[Color], error) {
	return startPreset(Color.Lerp, from, to, duration, fn)
}

func startPreset[T any](blend BlendFunc[T], from, to T, duration float64, fn ease.TweenFunc) (*Tween[T], error) {
	tw, err := New(blend)
	if err != nil {
		return nil, err
	}
	tw.SetEase(fn)
	if err := tw.Start(from, to, duration); err != nil {
		return nil, err
	}
	return tw, nil
}
