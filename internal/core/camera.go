package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective look-at camera supplied by the host each frame.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // degrees
	Near     float32
	Far      float32
	Aspect   float32
}

// NewCamera returns a camera looking from position at target with a 35°
// vertical field of view.
func NewCamera(position, target mgl32.Vec3, aspect float32) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		Position: position,
		Target:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     35,
		Near:     0.1,
		Far:      100,
		Aspect:   aspect,
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Forward returns the normalized viewing direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the camera's normalized right axis in world space.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// UpAxis returns the camera's orthonormal up axis in world space.
func (c *Camera) UpAxis() mgl32.Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestT returns the ray parameter of the point on the infinite line
// closest to p.
func (r Ray) ClosestT(p mgl32.Vec3) float32 {
	return p.Sub(r.Origin).Dot(r.Direction)
}

// DistanceToLine returns the perpendicular distance from p to the ray's line.
func (r Ray) DistanceToLine(p mgl32.Vec3) float32 {
	return p.Sub(r.At(r.ClosestT(p))).Len()
}

// RayFromNDC unprojects normalized device coordinates (x right, y up, both in
// [-1, 1]) into a world-space ray.
func (c *Camera) RayFromNDC(x, y float32) Ray {
	inv := c.ViewProjection().Inv()

	nearWorld := inv.Mul4x1(mgl32.Vec4{x, y, -1, 1})
	farWorld := inv.Mul4x1(mgl32.Vec4{x, y, 1, 1})
	nearWorld = nearWorld.Mul(1 / nearWorld[3])
	farWorld = farWorld.Mul(1 / farWorld[3])

	origin := nearWorld.Vec3()
	dir := farWorld.Vec3().Sub(origin).Normalize()
	return Ray{Origin: origin, Direction: dir}
}

// ProjectNDC maps a world position to NDC through a view-projection matrix
// and also returns 1/w, the perspective size factor. The boolean is false
// for points behind the camera.
func ProjectNDC(vp mgl32.Mat4, p mgl32.Vec3) (mgl32.Vec3, float32, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return mgl32.Vec3{}, 0, false
	}
	inv := 1 / clip[3]
	return clip.Vec3().Mul(inv), inv, true
}
