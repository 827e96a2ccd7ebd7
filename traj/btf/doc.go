/*
 * doc.go, part of gobd.
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

/*
Package btf implements the Brownian trajectory format, the trajectory
container of goBD. btf aims to produce reasonably small files while being very
easy to read and write, so readers/writers can be implemented in other
languages with little effort.

Format specification:

A btf file has the extension .btf and is compressed with z-standard (zstd) by
default; writers and readers select the compression from the last character of
the filename ('z' gzip, 'l' lzw, 'r' flate, anything else zstd). A btf file
may only contain ASCII symbols.

The file starts with a header of key=value lines, one per line, ending with a
line that starts with the characters "**" followed by one or more spaces and
the number of beads per frame. The precision (an integer greater than 0) may
be included with the key "prec"; the default is 2. Writers typically also
include a free-text "description", the time step in fs under "timestep", and
whatever else describes the system (labels, radii, chain layout); readers must
ignore keys they do not know.

After the header, the file has one line per bead, per frame. Each line
contains the x, y and z cartesian coordinates of the bead center, in Angstrom,
multiplied by 10^prec and rounded to integers. Each frame is terminated by a
line starting with "*", optionally followed by the simulation time of the
frame, in fs.
*/
package btf
