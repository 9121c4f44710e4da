package config

// EditorConfig holds all configurable editor rules and constraints
type EditorConfig struct {
	// Roadmap constraints
	MaxNodesPerRoadmap       int
	MaxConnectionsPerRoadmap int

	// Zoom constraints
	MinZoom     float64
	MaxZoom     float64
	DefaultZoom float64

	// Node placement
	DuplicateOffsetX float64
	DuplicateOffsetY float64
	PlacementJitter  float64

	// Node defaults
	DefaultEstimatedHours float64
	DefaultNodeTitles     map[string]string

	// Edge rendering
	ControlPointCap float64

	// Layout metrics fallbacks (hosts override per frame)
	DefaultToolbarHeight float64
	DefaultNodeWidth     float64
	DefaultNodeHeight    float64
}

// DefaultEditorConfig returns the default editor configuration
func DefaultEditorConfig() *EditorConfig {
	return &EditorConfig{
		MaxNodesPerRoadmap:       10000,
		MaxConnectionsPerRoadmap: 50000,

		MinZoom:     0.25,
		MaxZoom:     2.0,
		DefaultZoom: 1.0,

		DuplicateOffsetX: 30,
		DuplicateOffsetY: 30,
		PlacementJitter:  20,

		DefaultEstimatedHours: 1,
		DefaultNodeTitles: map[string]string{
			"topic":      "Nuevo Tema",
			"project":    "Nuevo Proyecto",
			"milestone":  "Nuevo Hito",
			"checkpoint": "Nuevo Punto de Control",
		},

		ControlPointCap: 80,

		DefaultToolbarHeight: 56,
		DefaultNodeWidth:     208,
		DefaultNodeHeight:    84,
	}
}

// DefaultTitleFor returns the default title for a node kind
func (c *EditorConfig) DefaultTitleFor(kind string) string {
	if title, ok := c.DefaultNodeTitles[kind]; ok {
		return title
	}
	return "Nuevo Nodo"
}
