package model

type (
	// Settings represents user preferences.
	Settings struct {
		Dashboard  *DashboardSettings  `json:"dashboard" yaml:"dashboard"`
		Simulation *SimulationSettings `json:"simulation" yaml:"simulation"`
	}

	DashboardSettings struct {
		PlotWidth  int  `json:"plotWidth" yaml:"plotWidth"`
		PlotHeight int  `json:"plotHeight" yaml:"plotHeight"`
		ShowLegend bool `json:"showLegend" yaml:"showLegend"`
	}

	SimulationSettings struct {
		Step     float64 `json:"step" yaml:"step"`
		Duration float64 `json:"duration" yaml:"duration"`
		Method   string  `json:"method" yaml:"method"`
	}
)

// DefaultSettings returns settings used before any were persisted.
func DefaultSettings() *Settings {
	return &Settings{
		Dashboard: &DashboardSettings{
			PlotWidth:  800,
			PlotHeight: 400,
			ShowLegend: true,
		},
		Simulation: &SimulationSettings{
			Step:     0.1,
			Duration: 100,
			Method:   "rk4",
		},
	}
}
