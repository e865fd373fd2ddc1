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

// Package resources prepares paths for files written and read by embr, such
// as the preferences file.
//
// The JoinPath() function returns the path to the resource specified in the
// arguments, rooted in the base path. Directories are created as required but
// the file itself is not touched.
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory. On a modern Linux system it would be something
// like:
//
//	/home/user/.config/embr/
//
// For other builds the base path is in the current working directory:
//
//	.embr
//
// The exception is when a .embr directory is present in the current
// directory. In that case it is used regardless of build tags.
package resources
