package shader

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// vertexFormatInfo holds the wgpu vertex format and its byte size for offset calculation
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslVertexFormatMap maps WGSL type names to their corresponding wgpu vertex format and byte size
var wgslVertexFormatMap = map[string]vertexFormatInfo{
	"f32":       {wgpu.VertexFormatFloat32, 4},
	"vec2f":     {wgpu.VertexFormatFloat32x2, 8},
	"vec2<f32>": {wgpu.VertexFormatFloat32x2, 8},
	"vec3f":     {wgpu.VertexFormatFloat32x3, 12},
	"vec3<f32>": {wgpu.VertexFormatFloat32x3, 12},
	"vec4f":     {wgpu.VertexFormatFloat32x4, 16},
	"vec4<f32>": {wgpu.VertexFormatFloat32x4, 16},
	"i32":       {wgpu.VertexFormatSint32, 4},
	"u32":       {wgpu.VertexFormatUint32, 4},
}

var (
	// structBlockRegex matches struct declarations and captures the name and body
	structBlockRegex = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)

	// locationFieldRegex matches `@location(N) name: type` and captures all three
	locationFieldRegex = regexp.MustCompile(`@location\((\d+)\)\s*(\w+)\s*:\s*(.+)`)

	// plainFieldRegex matches an unannotated `name: type`
	plainFieldRegex = regexp.MustCompile(`^\s*(\w+)\s*:\s*(\w+)\s*$`)

	// vertexEntryRegex matches @vertex functions and captures the entry point name
	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	// fragmentEntryRegex matches @fragment functions and captures the entry point name
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)
)

// vertexInput is one @location input of the vertex stage.
type vertexInput struct {
	location int
	typeName string
}

// ParseWGSLEntryPoint extracts the entry point function name for the given shader type
// from WGSL source. Returns an empty string if no matching entry point annotation is found.
//
// Parameters:
//   - source: the raw WGSL source code string
//   - shaderType: the stage to search for
//
// Returns:
//   - string: the entry point function name, or empty string if not found
func ParseWGSLEntryPoint(source string, shaderType ShaderType) string {
	cleaned := stripComments(source)

	var re *regexp.Regexp
	switch shaderType {
	case ShaderTypeVertex:
		re = vertexEntryRegex
	case ShaderTypeFragment:
		re = fragmentEntryRegex
	default:
		return ""
	}

	if match := re.FindStringSubmatch(cleaned); match != nil {
		return match[1]
	}
	return ""
}

// ParseWGSLVertexLayout derives the vertex buffer layout consumed by the @vertex entry point.
// Inputs may be declared directly as @location parameters or inside a struct parameter.
// Attributes are packed tightly in location order into a single interleaved buffer.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - wgpu.VertexBufferLayout: the derived layout
//   - bool: false if there is no vertex entry point, it takes no @location inputs,
//     or an input uses a type with no vertex format
func ParseWGSLVertexLayout(source string) (wgpu.VertexBufferLayout, bool) {
	cleaned := stripComments(source)

	params, ok := vertexParams(cleaned)
	if !ok {
		return wgpu.VertexBufferLayout{}, false
	}

	structs := parseStructBlocks(cleaned)
	var inputs []vertexInput
	for _, param := range splitAtTopLevelCommas(params) {
		param = strings.TrimSpace(param)
		if param == "" || strings.Contains(param, "@builtin") {
			continue
		}
		if in, ok := parseLocation(param); ok {
			inputs = append(inputs, in)
			continue
		}
		if m := plainFieldRegex.FindStringSubmatch(param); m != nil {
			inputs = append(inputs, structs[m[2]]...)
		}
	}
	if len(inputs) == 0 {
		return wgpu.VertexBufferLayout{}, false
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].location < inputs[j].location })

	layout := wgpu.VertexBufferLayout{StepMode: wgpu.VertexStepModeVertex}
	var offset uint64
	for _, in := range inputs {
		info, ok := wgslVertexFormatMap[in.typeName]
		if !ok {
			return wgpu.VertexBufferLayout{}, false
		}
		layout.Attributes = append(layout.Attributes, wgpu.VertexAttribute{
			Format:         info.format,
			Offset:         offset,
			ShaderLocation: uint32(in.location),
		})
		offset += info.size
	}
	layout.ArrayStride = offset

	return layout, true
}

// vertexParams returns the text between the parentheses of the @vertex function signature.
func vertexParams(source string) (string, bool) {
	loc := vertexEntryRegex.FindStringIndex(source)
	if loc == nil {
		return "", false
	}

	open := strings.IndexByte(source[loc[1]:], '(')
	if open < 0 {
		return "", false
	}
	start := loc[1] + open + 1

	depth := 1
	for i := start; i < len(source); i++ {
		switch source[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return source[start:i], true
			}
		}
	}
	return "", false
}

func parseLocation(field string) (vertexInput, bool) {
	m := locationFieldRegex.FindStringSubmatch(field)
	if m == nil {
		return vertexInput{}, false
	}
	loc, err := strconv.Atoi(m[1])
	if err != nil {
		return vertexInput{}, false
	}
	return vertexInput{location: loc, typeName: strings.TrimSpace(m[3])}, true
}

// parseStructBlocks collects the @location fields of every struct, keyed by struct name.
// Structs with @builtin fields are vertex outputs and are skipped.
func parseStructBlocks(source string) map[string][]vertexInput {
	result := make(map[string][]vertexInput)
	for _, match := range structBlockRegex.FindAllStringSubmatch(source, -1) {
		body := match[2]
		if strings.Contains(body, "@builtin") {
			continue
		}
		var inputs []vertexInput
		for _, field := range splitAtTopLevelCommas(body) {
			if in, ok := parseLocation(strings.TrimSpace(field)); ok {
				inputs = append(inputs, in)
			}
		}
		if len(inputs) > 0 {
			result[match[1]] = inputs
		}
	}
	return result
}

// stripComments removes // line comments and /* */ block comments, handling nesting.
func stripComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))

	depth := 0
	for i := 0; i < len(source); i++ {
		switch {
		case i+1 < len(source) && source[i] == '/' && source[i+1] == '*':
			depth++
			i++
		case depth > 0 && i+1 < len(source) && source[i] == '*' && source[i+1] == '/':
			depth--
			i++
		case depth > 0:
		case i+1 < len(source) && source[i] == '/' && source[i+1] == '/':
			for i < len(source) && source[i] != '\n' {
				i++
			}
			sb.WriteByte('\n')
		default:
			sb.WriteByte(source[i])
		}
	}
	return sb.String()
}

// splitAtTopLevelCommas splits s on commas that are not inside <...>.
func splitAtTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
