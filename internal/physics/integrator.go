package physics

import "github.com/mkarvelas/marketglow/internal/domain"

// Damping is the per-tick multiplicative velocity decay. It is applied on
// every tick, collision or not, so bouncing particles always settle.
const Damping = 0.98

// Integrate advances positions by velocity over dt and resolves boundary
// collisions elastically: a coordinate crossing a bound is clamped to it
// and the matching velocity component is negated and scaled by the stock's
// elasticity, so a bounce never gains speed. Returns a new collection.
func Integrate(stocks []domain.Stock, dt float64, bounds domain.Bounds) []domain.Stock {
	out := make([]domain.Stock, len(stocks))
	for i, s := range stocks {
		s.Position.X += s.Velocity.X * dt
		s.Position.Y += s.Velocity.Y * dt

		s.Position.X, s.Velocity.X = reflect(s.Position.X, s.Velocity.X, bounds.XMin, bounds.XMax, s.Elasticity)
		s.Position.Y, s.Velocity.Y = reflect(s.Position.Y, s.Velocity.Y, bounds.YMin, bounds.YMax, s.Elasticity)

		s.Velocity.X *= Damping
		s.Velocity.Y *= Damping

		out[i] = s
	}
	return out
}

// reflect clamps pos into [lo, hi], flipping and scaling vel when a bound
// was crossed. Sitting exactly on a bound is not a collision.
func reflect(pos, vel, lo, hi, elasticity float64) (float64, float64) {
	if pos < lo {
		return lo, -vel * elasticity
	}
	if pos > hi {
		return hi, -vel * elasticity
	}
	return pos, vel
}
