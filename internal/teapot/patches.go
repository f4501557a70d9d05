package teapot

import "github.com/go-gl/mathgl/mgl32"

// Newell's teapot, in its own z-up units (3.15 tall). The rotationally
// symmetric parts are stored as profile curves in the (radius, height)
// plane and swept through four quarter patches; handle and spout are stored
// as one half of their 4x4 control grids and mirrored across the y = 0
// plane.

// A profile is a cubic Bézier in (radius, height), listed bottom to top.
type profile [4]mgl32.Vec2

var (
	// bottom, lower body, upper body, rim
	bodyProfiles = []profile{
		{{0, 0}, {1.425, 0}, {1.5, 0.075}, {1.5, 0.15}},
		{{1.5, 0.15}, {1.5, 0.225}, {2.0, 0.45}, {2.0, 0.9}},
		{{2.0, 0.9}, {2.0, 1.35}, {1.75, 1.875}, {1.5, 2.4}},
		{{1.5, 2.4}, {1.4375, 2.53125}, {1.3375, 2.53125}, {1.4, 2.4}},
	}

	// lid skirt, knob
	lidProfiles = []profile{
		{{1.3, 2.4}, {1.3, 2.55}, {0.4, 2.55}, {0.2, 2.7}},
		{{0.2, 2.7}, {0, 2.85}, {0.8, 3.15}, {0, 3.15}},
	}
)

// A halfPatch is a 4x4 control grid. Each row is one cross-section running
// from the y = 0 plane out to y < 0 and back; rows advance along the part.
type halfPatch [4][4]mgl32.Vec3

var (
	handlePatches = []halfPatch{
		{
			{{-1.6, 0, 2.025}, {-1.6, -0.3, 2.025}, {-1.5, -0.3, 2.25}, {-1.5, 0, 2.25}},
			{{-2.3, 0, 2.025}, {-2.3, -0.3, 2.025}, {-2.5, -0.3, 2.25}, {-2.5, 0, 2.25}},
			{{-2.7, 0, 2.025}, {-2.7, -0.3, 2.025}, {-3.0, -0.3, 2.25}, {-3.0, 0, 2.25}},
			{{-2.7, 0, 1.8}, {-2.7, -0.3, 1.8}, {-3.0, -0.3, 1.8}, {-3.0, 0, 1.8}},
		},
		{
			{{-2.7, 0, 1.8}, {-2.7, -0.3, 1.8}, {-3.0, -0.3, 1.8}, {-3.0, 0, 1.8}},
			{{-2.7, 0, 1.575}, {-2.7, -0.3, 1.575}, {-3.0, -0.3, 1.35}, {-3.0, 0, 1.35}},
			{{-2.5, 0, 1.125}, {-2.5, -0.3, 1.125}, {-2.65, -0.3, 0.9375}, {-2.65, 0, 0.9375}},
			{{-2.0, 0, 0.9}, {-2.0, -0.3, 0.9}, {-1.9, -0.3, 0.6}, {-1.9, 0, 0.6}},
		},
	}

	spoutPatches = []halfPatch{
		{
			{{1.7, 0, 1.425}, {1.7, -0.66, 1.425}, {1.7, -0.66, 0.6}, {1.7, 0, 0.6}},
			{{2.6, 0, 1.425}, {2.6, -0.66, 1.425}, {3.1, -0.66, 0.825}, {3.1, 0, 0.825}},
			{{2.3, 0, 2.1}, {2.3, -0.25, 2.1}, {2.4, -0.25, 2.025}, {2.4, 0, 2.025}},
			{{2.7, 0, 2.4}, {2.7, -0.25, 2.4}, {3.3, -0.25, 2.4}, {3.3, 0, 2.4}},
		},
		{
			{{2.7, 0, 2.4}, {2.7, -0.25, 2.4}, {3.3, -0.25, 2.4}, {3.3, 0, 2.4}},
			{{2.8, 0, 2.475}, {2.8, -0.25, 2.475}, {3.525, -0.25, 2.49375}, {3.525, 0, 2.49375}},
			{{2.9, 0, 2.475}, {2.9, -0.15, 2.475}, {3.45, -0.15, 2.5125}, {3.45, 0, 2.5125}},
			{{2.8, 0, 2.4}, {2.8, -0.15, 2.4}, {3.2, -0.15, 2.4}, {3.2, 0, 2.4}},
		},
	}
)

// circleWeight places the inner control points of a quarter-circle cubic.
const circleWeight = 0.56

// Scale maps teapot units to mesh units (about 79 tall).
const Scale = 25
