package constant

// Software projection
const (
	// FocalLength scales camera-space coordinates to screen cells
	FocalLength = 1.2

	// CellAspect compensates for terminal cells being roughly twice as
	// tall as they are wide
	CellAspect = 2.0

	// NearClip rejects geometry at or behind the camera plane
	NearClip = 0.25

	// FarFade is the distance at which depth fog reaches full strength
	FarFade = 60.0

	// HUDRows is the number of terminal rows reserved below the viewport
	HUDRows = 1
)

// Lighting
const (
	// Ambient is the base light level applied to every face
	Ambient = 0.35

	// DiffuseScale is the directional light contribution at full incidence
	DiffuseScale = 0.65
)
