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

// Package shader loads GLSL source, resolves #include directives and builds
// linked shader programs.
//
// A Registry holds the resolved source of every shader loaded so far, keyed
// by an identifier (usually the path of the file). When a new source is
// registered, every line of the form
//
//	#include "common.glsl"
//
// is replaced by the resolved source stored under "common.glsl". Includes
// naming an identifier that has not been registered yet are left in place.
// Dependencies must therefore be registered before the sources that include
// them.
//
// Expansion is a single pass. Scanning resumes immediately after the
// inserted text so any #include directive inside the inserted text is not
// expanded again. Because the stored text is already resolved this only
// matters when the included source itself contained an include that was
// unresolved at the time it was registered.
//
// A single source file can hold both the vertex and the fragment stage.
// NewProgram() compiles the source twice, once with VERTEX defined and once
// with FRAGMENT defined, so the stages are selected with the preprocessor:
//
//	#ifdef VERTEX
//	void main() { ... }
//	#endif
//
//	#ifdef FRAGMENT
//	void main() { ... }
//	#endif
package shader
