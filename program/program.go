// This file is part of Embr.
//
// Embr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Embr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Embr.  If not, see <https://www.gnu.org/licenses/>.

package program

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/logger"
)

// Program is a linked GL program and its bindings.
type Program struct {
	ctx    gpu.Context
	handle uint32

	// all bindings in the order they were found. uniforms first, in driver
	// order, followed by attributes
	bindings []Binding

	// indexes into the bindings slice
	uniforms   map[string]int
	attributes map[string]int
}

// New introspects the linked program and creates a binding for every active
// uniform and attribute. The driver's state is only read, never changed.
func New(ctx gpu.Context, handle uint32) *Program {
	p := &Program{
		ctx:        ctx,
		handle:     handle,
		uniforms:   make(map[string]int),
		attributes: make(map[string]int),
	}

	n := ctx.GetProgramiv(handle, gpu.ACTIVE_UNIFORMS)
	for i := uint32(0); i < uint32(n); i++ {
		info := ctx.GetActiveUniform(handle, i)
		b := Binding{
			Kind:     KindOf(info.Type),
			Name:     info.Name,
			Location: ctx.GetUniformLocation(handle, info.Name),
			Type:     info.Type,
			Size:     info.Size,
			ctx:      ctx,
		}
		if b.Kind == Unsupported {
			logger.Logf("program", "uniform %s: no setter for type %s", b.Name, gpu.EnumName(b.Type))
		}
		p.add(p.uniforms, b)
	}

	numUniforms := len(p.bindings)

	n = ctx.GetProgramiv(handle, gpu.ACTIVE_ATTRIBUTES)
	for i := uint32(0); i < uint32(n); i++ {
		info := ctx.GetActiveAttrib(handle, i)
		p.add(p.attributes, Binding{
			Kind:     Attribute,
			Name:     info.Name,
			Location: ctx.GetAttribLocation(handle, info.Name),
			Type:     info.Type,
			Size:     info.Size,
			ctx:      ctx,
		})
	}

	logger.Logf("program", "program %d: %d uniforms, %d attributes", handle, numUniforms, len(p.bindings)-numUniforms)

	return p
}

// add binding to the list and to the supplied index. array uniforms are
// reported by the driver with a "[0]" suffix. these are indexed with and
// without the suffix.
func (p *Program) add(index map[string]int, b Binding) {
	p.bindings = append(p.bindings, b)
	idx := len(p.bindings) - 1
	index[b.Name] = idx
	if base, ok := strings.CutSuffix(b.Name, "[0]"); ok {
		if _, ok := index[base]; !ok {
			index[base] = idx
		}
	}
}

// Handle returns the GL program name.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Use makes the program the current program.
func (p *Program) Use() {
	p.ctx.UseProgram(p.handle)
}

// Destroy deletes the GL program. The Program should not be used after
// calling Destroy().
func (p *Program) Destroy() {
	if p.handle != 0 {
		p.ctx.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// Uniform returns the binding for the named uniform.
func (p *Program) Uniform(name string) (Binding, bool) {
	if i, ok := p.uniforms[name]; ok {
		return p.bindings[i], true
	}
	return Binding{}, false
}

// Attribute returns the binding for the named attribute.
func (p *Program) Attribute(name string) (Binding, bool) {
	if i, ok := p.attributes[name]; ok {
		return p.bindings[i], true
	}
	return Binding{}, false
}

// Location returns the location of the named uniform or attribute.
func (p *Program) Location(name string) (int32, bool) {
	if b, ok := p.Uniform(name); ok {
		return b.Location, true
	}
	if b, ok := p.Attribute(name); ok {
		return b.Location, true
	}
	return -1, false
}

// Set the named uniform to the value. See Binding.Set() for details.
func (p *Program) Set(name string, value interface{}) error {
	b, ok := p.Uniform(name)
	if !ok {
		if _, ok := p.Attribute(name); ok {
			return curated.Errorf(NotUniform, name)
		}
		return curated.Errorf(UnknownUniform, name)
	}
	return b.Set(value)
}

// Bindings returns a copy of all bindings. Uniforms are listed first in the
// order they were reported by the driver, followed by attributes.
func (p *Program) Bindings() []Binding {
	b := make([]Binding, len(p.bindings))
	copy(b, p.bindings)
	return b
}

// String returns the binding table as a formatted, multiline string.
func (p *Program) String() string {
	s := &strings.Builder{}
	w := tabwriter.NewWriter(s, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "program %d\n", p.handle)
	for _, b := range p.bindings {
		var cat string
		if b.IsUniform() {
			cat = "uniform"
		} else {
			cat = "attribute"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", cat, b.Name, gpu.EnumName(b.Type), b.Kind, b.Location)
	}
	w.Flush()
	return s.String()
}
