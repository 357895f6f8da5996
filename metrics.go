package purfectedit

// Metrics describes the font geometry of a buffer: the font size and the
// line height, both in device pixels.
type Metrics struct {
	FontSize   float64
	LineHeight float64
}

// NewMetrics creates metrics from an unscaled font size and line height.
func NewMetrics(fontSize, lineHeight float64) Metrics {
	return Metrics{FontSize: fontSize, LineHeight: lineHeight}
}

// Scale returns the metrics multiplied by a display scale factor.
func (m Metrics) Scale(factor float64) Metrics {
	return Metrics{
		FontSize:   m.FontSize * factor,
		LineHeight: m.LineHeight * factor,
	}
}
