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

package gpu

import (
	"fmt"

	"github.com/jetsetilly/embr/curated"
)

// GLError is the pattern used when GetError() reports a pending error. The
// values are the caller supplied context and the name of the error enum.
const GLError = "gl: %s (%s)"

var enumNames = map[uint32]string{
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",

	FRAMEBUFFER_COMPLETE:                      "FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT: "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:        "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER",
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER:        "FRAMEBUFFER_INCOMPLETE_READ_BUFFER",
	FRAMEBUFFER_UNSUPPORTED:                   "FRAMEBUFFER_UNSUPPORTED",
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:        "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",
	FRAMEBUFFER_UNDEFINED:                     "FRAMEBUFFER_UNDEFINED",

	FLOAT:        "FLOAT",
	INT:          "INT",
	BOOL:         "BOOL",
	FLOAT_VEC2:   "FLOAT_VEC2",
	FLOAT_VEC3:   "FLOAT_VEC3",
	FLOAT_VEC4:   "FLOAT_VEC4",
	INT_VEC2:     "INT_VEC2",
	INT_VEC3:     "INT_VEC3",
	INT_VEC4:     "INT_VEC4",
	BOOL_VEC2:    "BOOL_VEC2",
	BOOL_VEC3:    "BOOL_VEC3",
	BOOL_VEC4:    "BOOL_VEC4",
	FLOAT_MAT2:   "FLOAT_MAT2",
	FLOAT_MAT3:   "FLOAT_MAT3",
	FLOAT_MAT4:   "FLOAT_MAT4",
	SAMPLER_2D:   "SAMPLER_2D",
	SAMPLER_3D:   "SAMPLER_3D",
	SAMPLER_CUBE: "SAMPLER_CUBE",
}

// EnumName returns the name of a GL enumeration. Only the values that
// appear in diagnostics are known. Any other value is returned in hex.
func EnumName(e uint32) string {
	if n, ok := enumNames[e]; ok {
		return n
	}
	return fmt.Sprintf("%#04x", e)
}

// the maximum number of pending errors cleared by CheckError().
const maxPendingErrors = 32

// CheckError returns a curated error if the driver has an error pending.
// Only the first pending error is reported but all pending errors are
// cleared.
func CheckError(ctx Context, msg string) error {
	e := ctx.GetError()
	if e == NO_ERROR {
		return nil
	}

	// drain remaining errors. the number of iterations is capped because a
	// lost context can report errors indefinitely
	for i := 0; i < maxPendingErrors && ctx.GetError() != NO_ERROR; i++ {
	}

	return curated.Errorf(GLError, msg, EnumName(e))
}
