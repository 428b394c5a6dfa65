package techdata

// Renderer renders TechnicalData for display or export.
type Renderer interface {
	// Render returns the textual representation of data.
	Render(data *TechnicalData) (string, error)
}
