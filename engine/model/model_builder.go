package model

// ModelBuilderOption is a functional option for configuring a model.
type ModelBuilderOption func(*model)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertexData sets the packed xyz vertex positions. The slice is copied.
// Trailing components that do not form a whole vertex are ignored by VertexCount.
//
// Parameters:
//   - data: xyz triples
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithVertexData(data []float32) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = append([]float32(nil), data...)
	}
}
