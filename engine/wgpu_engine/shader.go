package wgpu_engine

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gogpu/naga"

	"github.com/pemattern/tui-shader/engine"
)

//go:embed shaders/fullscreen_vertex.wgsl
var fullscreenVertexWGSL string

//go:embed shaders/default_fragment.wgsl
var defaultFragmentWGSL string

// WGSLShader is a fragment shader in source form together with the label
// used in diagnostics and GPU object labels.
type WGSLShader struct {
	Label  string
	Source string
}

// WGSLSource wraps an in-memory WGSL string.
func WGSLSource(src string) WGSLShader {
	return WGSLShader{Label: "inline", Source: src}
}

// WGSLFile reads a shader from disk. The file path becomes the label.
func WGSLFile(path string) (WGSLShader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return WGSLShader{}, fmt.Errorf("reading shader: %w", err)
	}
	return WGSLShader{Label: path, Source: string(src)}, nil
}

// DefaultShader is the built-in solid magenta fragment shader. Its entry
// point is "main".
func DefaultShader() WGSLShader {
	return WGSLShader{Label: "default", Source: defaultFragmentWGSL}
}

// validate runs the source through naga before it ever reaches the
// device. Driver-side compile errors are reported through mechanisms we
// can't surface synchronously, so we front-load validation on the host.
func (s WGSLShader) validate() error {
	if _, err := naga.Compile(s.Source); err != nil {
		return &engine.CompileError{Label: s.Label, Diagnostic: err}
	}
	return nil
}

var fragmentEntryRe = regexp.MustCompile(`@fragment\s+fn\s+([A-Za-z_][A-Za-z0-9_]*)`)

// stripComments removes line and block comments so that entry-point
// scanning sees only code. WGSL block comments nest; there are no string
// literals to preserve.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		if src[i] == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				for i < len(src) && src[i] != '\n' {
					i++
				}
				continue
			case '*':
				depth := 1
				i += 2
				for i < len(src) && depth > 0 {
					if src[i] == '/' && i+1 < len(src) && src[i+1] == '*' {
						depth++
						i += 2
					} else if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
						depth--
						i += 2
					} else {
						i++
					}
				}
				b.WriteByte(' ')
				continue
			}
		}
		b.WriteByte(src[i])
		i++
	}
	return b.String()
}

// fragmentEntryPoints lists the names of all @fragment functions in
// declaration order.
func (s WGSLShader) fragmentEntryPoints() []string {
	var names []string
	for _, m := range fragmentEntryRe.FindAllStringSubmatch(stripComments(s.Source), -1) {
		names = append(names, m[1])
	}
	return names
}

// resolveEntryPoint picks the fragment entry point to bind. An empty
// requested name selects the shader's sole fragment function, or "main"
// when several are declared.
func (s WGSLShader) resolveEntryPoint(requested string) (string, error) {
	available := s.fragmentEntryPoints()
	if requested == "" {
		if len(available) == 1 {
			return available[0], nil
		}
		requested = "main"
	}
	for _, name := range available {
		if name == requested {
			return name, nil
		}
	}
	return "", &engine.EntryPointError{EntryPoint: requested, Available: available}
}
