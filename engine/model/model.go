package model

// ComponentsPerVertex is the number of float32 position components per vertex (x, y, z).
const ComponentsPerVertex = 3

// model is the implementation of the Model interface.
type model struct {
	name       string
	vertexData []float32
}

// Model defines the interface for a static mesh of tightly packed xyz positions.
// The vertex data is uploaded once by the renderer and never changes afterwards.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// VertexData retrieves a copy of the packed vertex positions.
	//
	// Returns:
	//   - []float32: xyz triples in normalized device coordinates
	VertexData() []float32

	// VertexCount returns the number of vertices in the model.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int
}

var _ Model = &model{}

// NewModel creates a new Model with the specified options.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the configured model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Triangle returns the single triangle drawn by the demo, sized to a quarter of the viewport
// and centered on the origin.
//
// Returns:
//   - Model: the triangle model
func Triangle() Model {
	return NewModel(
		WithName("triangle"),
		WithVertexData([]float32{
			0.0, 0.25, 0.0, // top
			-0.25, -0.25, 0.0, // bottom left
			0.25, -0.25, 0.0, // bottom right
		}),
	)
}

func (m *model) Name() string {
	return m.name
}

func (m *model) VertexData() []float32 {
	out := make([]float32, len(m.vertexData))
	copy(out, m.vertexData)
	return out
}

func (m *model) VertexCount() int {
	return len(m.vertexData) / ComponentsPerVertex
}
