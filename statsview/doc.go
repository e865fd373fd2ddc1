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

// Package statsview runs a local HTTP server showing runtime statistics of
// the Go process. It is only available when the program is built with the
// statsview build tag:
//
//	go build -tags statsview
//
// The statistics are drawn by github.com/go-echarts/statsview and are
// viewable at the address returned by Launch(), followed by /debug/statsview.
// The standard pprof pages are at /debug/pprof/ on the same server.
package statsview

// DefaultAddress is the address the server listens on if Launch() is given
// the empty string.
const DefaultAddress = "localhost:12700"

const path = "/debug/statsview"
