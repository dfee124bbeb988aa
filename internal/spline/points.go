package spline

import "cogentcore.org/core/math32"

// defaultPoints is a wavy closed loop roughly 20 units across.
var defaultPoints = [][3]float32{
	{12.000, -0.600, 0.000},
	{11.391, 0.481, 1.321},
	{9.660, 0.980, 2.701},
	{7.071, 0.636, 4.157},
	{4.000, -0.300, 5.629},
	{0.856, -1.216, 6.977},
	{-2.000, -1.500, 8.000},
	{-4.320, -0.905, 8.477},
	{-6.000, 0.300, 8.227},
	{-7.071, 1.485, 7.157},
	{-7.660, 2.020, 5.299},
	{-7.927, 1.640, 2.821},
	{-8.000, 0.600, 0.000},
	{-7.927, -0.481, -2.821},
	{-7.660, -0.980, -5.299},
	{-7.071, -0.636, -7.157},
	{-6.000, 0.300, -8.227},
	{-4.320, 1.216, -8.477},
	{-2.000, 1.500, -8.000},
	{0.856, 0.905, -6.977},
	{4.000, -0.300, -5.629},
	{7.071, -1.485, -4.157},
	{9.660, -2.020, -2.701},
	{11.391, -1.640, -1.321},
}

// DefaultPoints returns the control points of the default flythrough loop.
func DefaultPoints() []math32.Vector3 {
	out := make([]math32.Vector3, len(defaultPoints))
	for i, p := range defaultPoints {
		out[i] = math32.Vec3(p[0], p[1], p[2])
	}
	return out
}
