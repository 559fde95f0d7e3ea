// Package shots holds the shot descriptor, the ray-cast collision of a
// shot's path against the level's walls, and the transcribed shot
// sprite blit.
package shots

// Shot is one projectile. Positions are 8x fixed point for sub-pixel
// precision; H and V are the per-frame velocity in the same units.
type Shot struct {
	X8, Y8 int // 8x fixed-point world position
	H, V   int // velocity, 8x fixed-point per frame

	Lifecount int // frames until the shot expires
	Btime     int // frames left when a bounce will happen
	Strafedir int // spark direction at impact, -1 if none

	HitlineID string // wall the shot will hit, "" if none
}

// Impact is the result of ray-casting a shot against the walls.
type Impact struct {
	// Frames is the number of frames until the shot reaches the wall,
	// or the shot's remaining life when nothing is hit.
	Frames int

	// Strafedir is the spark direction at the impact point, -1 when
	// nothing is hit.
	Strafedir int

	// Btime is totallife-Frames for a bounce wall, 0 otherwise.
	Btime int

	// HitlineID names the wall hit, "" when nothing is hit.
	HitlineID string
}
