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

// Package gpu describes the part of the OpenGL API used by Embr. Every other
// package talks to the driver through the Context interface rather than
// calling the go-gl bindings directly. The glcore package provides the
// implementation used by real programs and the gputest package provides an
// in-memory implementation for tests.
//
// GL enumerations are defined here as untyped constants with the values given
// by the Khronos registry. This means that packages using Context do not need
// cgo to be built or tested.
//
// All Context calls must be made from the thread that owns the GL context.
// Nothing in this package, or in any package that uses it, is safe for
// concurrent use.
package gpu
