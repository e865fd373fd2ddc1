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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. The pattern passed to Errorf() identifies the kind of
// error and can be tested for with the Is() and Has() functions.
//
// Packages in Embr export the patterns they raise as string constants. For
// example, the shader package raises compilation errors with the CompileError
// pattern:
//
//	_, err := shader.NewProgram(ctx, src)
//	if curated.Is(err, shader.CompileError) {
//		fmt.Println("asset error:", err)
//	}
//
// Has() checks whether the pattern occurs anywhere in the error chain. The
// chain is formed by passing a curated error as one of the values of a
// subsequent Errorf() call.
//
//	err := curated.Errorf("material: %v", err)
//	curated.Has(err, shader.CompileError) // true
//	curated.Is(err, shader.CompileError)  // false
//
// The Error() function normalises the message so that duplicate adjacent
// parts (separated by ": ") are not repeated. In this way a function does
// not need to know whether its caller will prefix the same context:
//
//	shader: shader: compile: vertex: 0:1(1): syntax error
//
// is printed as
//
//	shader: compile: vertex: 0:1(1): syntax error
//
// Errors that are not curated (for example, errors from the fs package) can
// be placed in the chain too. They are available through the standard
// errors.Unwrap() mechanism.
package curated
