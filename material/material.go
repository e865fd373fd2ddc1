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

// Package material pairs a shader program with the names of the attributes
// and uniforms it uses. Drawing code can then ask for the location of the
// "position" attribute without knowing what the shader calls it.
package material

import (
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/program"
	"github.com/jetsetilly/embr/shader"
)

// Material is a program and the Options describing it.
type Material struct {
	prog *program.Program
	opts Options
}

// New compiles and links the vertex and fragment sources and introspects the
// resulting program.
func New(ctx gpu.Context, vertex string, fragment string, opts Options) (*Material, error) {
	h, err := shader.NewProgramStages(ctx, vertex, fragment)
	if err != nil {
		return nil, err
	}

	return &Material{
		prog: program.New(ctx, h),
		opts: MergeOptions(Options{}, opts),
	}, nil
}

// Program returns the introspected program.
func (mat *Material) Program() *program.Program {
	return mat.prog
}

// Options returns a copy of the material options.
func (mat *Material) Options() Options {
	return MergeOptions(mat.opts, Options{})
}

// Use the program for subsequent drawing.
func (mat *Material) Use() {
	mat.prog.Use()
}

// Set a uniform. The name can be a semantic name from the Uniforms field of
// the Options or the name of the uniform in the program. The program must be
// in use.
func (mat *Material) Set(name string, value interface{}) error {
	if n, ok := mat.opts.Uniforms[name]; ok {
		name = n
	}
	return mat.prog.Set(name, value)
}

// AttributeLocation returns the location of the attribute with the semantic
// name. Returns -1 if there is no such semantic name or if the attribute is
// not active in the program.
func (mat *Material) AttributeLocation(semantic string) int32 {
	name, ok := mat.opts.Attributes[semantic]
	if !ok {
		return -1
	}
	b, ok := mat.prog.Attribute(name)
	if !ok {
		return -1
	}
	return b.Location
}

// Destroy the program.
func (mat *Material) Destroy() {
	mat.prog.Destroy()
}
