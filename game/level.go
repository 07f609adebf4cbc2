package game

// Level is a static level definition.
type Level struct {
	Number         int
	FragmentCount  int
	BaseCorruption float64
	Layout         LayoutType
	ColorScheme    []RGB
}

// DefaultLevels is the built-in read-only level catalog.
func DefaultLevels() []Level {
	return []Level{
		{
			Number:         1,
			FragmentCount:  5,
			BaseCorruption: 0.8,
			Layout:         LayoutCircle,
			ColorScheme:    []RGB{{50, 100, 200}, {100, 150, 255}, {150, 200, 255}},
		},
		{
			Number:         2,
			FragmentCount:  8,
			BaseCorruption: 0.85,
			Layout:         LayoutSpiral,
			ColorScheme:    []RGB{{200, 50, 100}, {255, 100, 150}, {255, 150, 200}},
		},
		{
			Number:         3,
			FragmentCount:  12,
			BaseCorruption: 0.9,
			Layout:         LayoutGrid,
			ColorScheme:    []RGB{{50, 200, 100}, {100, 255, 150}, {150, 255, 200}},
		},
		{
			Number:         4,
			FragmentCount:  15,
			BaseCorruption: 0.9,
			Layout:         LayoutConstellation,
			ColorScheme:    []RGB{{150, 50, 200}, {200, 100, 255}, {225, 150, 255}},
		},
		{
			Number:         5,
			FragmentCount:  20,
			BaseCorruption: 0.95,
			Layout:         LayoutMandala,
			ColorScheme:    []RGB{{200, 150, 50}, {255, 200, 100}, {255, 225, 150}},
		},
	}
}
