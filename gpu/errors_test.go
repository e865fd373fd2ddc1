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

package gpu_test

import (
	"testing"

	"github.com/jetsetilly/embr/curated"
	"github.com/jetsetilly/embr/gpu"
	"github.com/jetsetilly/embr/gpu/gputest"
	"github.com/jetsetilly/embr/test"
)

func TestCheckError(t *testing.T) {
	ctx := gputest.New()
	test.ExpectSuccess(t, gpu.CheckError(ctx, "no error"))

	ctx.PendingErrors = []uint32{gpu.INVALID_VALUE, gpu.INVALID_OPERATION}
	err := gpu.CheckError(ctx, "texture upload")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gpu.GLError))
	test.ExpectEquality(t, err.Error(), "gl: texture upload (INVALID_VALUE)")

	// all pending errors are cleared
	test.ExpectEquality(t, len(ctx.PendingErrors), 0)
	test.ExpectSuccess(t, gpu.CheckError(ctx, "no error"))
}

func TestEnumName(t *testing.T) {
	test.ExpectEquality(t, gpu.EnumName(gpu.FLOAT_MAT4), "FLOAT_MAT4")
	test.ExpectEquality(t, gpu.EnumName(gpu.FRAMEBUFFER_UNSUPPORTED), "FRAMEBUFFER_UNSUPPORTED")
	test.ExpectEquality(t, gpu.EnumName(0x1234), "0x1234")
}
