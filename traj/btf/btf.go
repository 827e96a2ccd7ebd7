/*
 * btf.go, part of gobd.
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

package btf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gobd/v3"
)

const lzwLitwidth int = 8

const defaultPrec int = 2

//Writer writes a btf trajectory.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
	frames    int
}

//NewWriter creates a btf trajectory file with natoms beads per frame and the
//given header, and returns a handle to keep writing frames to it. The first
//(optional) int given is the compression level, for the compressors that take
//one.
func NewWriter(name string, natoms int, header map[string]string, compressionLevel ...int) (*Writer, error) {
	level := 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.h, err = newCompressor(W.f, strings.ToLower(name), level)
	if err != nil {
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.natoms = natoms
	W.filename = name
	W.writeable = true
	W.prec = defaultPrec
	if header != nil {
		if p, ok := header["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err != nil || prec <= 0 {
				return nil, Error{"Invalid precision in header: " + p, name, []string{"NewWriter"}, true}
			}
			W.prec = prec
		}
		for k, v := range header {
			if strings.ContainsAny(k+v, "=\n") {
				return nil, Error{fmt.Sprintf("Header entries can't contain '=' or newlines: %s=%s", k, v), name, []string{"NewWriter"}, true}
			}
			fmt.Fprintf(W.h, "%s=%s\n", k, v)
		}
	}
	fmt.Fprintf(W.h, "** %d\n", W.natoms)
	return W, nil
}

//WNext writes the next frame of the trajectory. If given, timeFs is recorded
//in the frame terminator as the simulation time of the frame, in fs.
func (W *Writer) WNext(coord *v3.Matrix, timeFs ...float64) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	v := coord.NVecs()
	if v != W.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, W.natoms), W.filename, []string{"WNext"}, true}
	}
	p := math.Pow(10, float64(W.prec))
	for i := 0; i < v; i++ {
		x := int(math.RoundToEven(coord.At(i, 0) * p))
		y := int(math.RoundToEven(coord.At(i, 1) * p))
		z := int(math.RoundToEven(coord.At(i, 2) * p))
		if _, err := fmt.Fprintf(W.h, "%d %d %d\n", x, y, z); err != nil {
			return Error{err.Error(), W.filename, []string{"WNext"}, true}
		}
	}
	var err error
	if len(timeFs) > 0 {
		_, err = fmt.Fprintf(W.h, "* %.3f\n", timeFs[0])
	} else {
		_, err = fmt.Fprintf(W.h, "*\n")
	}
	if err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.frames++
	return nil
}

//Close flushes the compressor and closes the file. The handle can not be
//used after this call.
func (W *Writer) Close() {
	if W == nil {
		return
	}
	if W.writeable {
		W.h.Close()
		W.f.Close()
	}
	W.writeable = false
}

//Len returns the number of beads per frame.
func (W *Writer) Len() int { return W.natoms }

//Frames returns the number of frames written so far.
func (W *Writer) Frames() int { return W.frames }

//Reader reads a btf trajectory.
type Reader struct {
	f        *os.File
	comp     io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	prec     int
	readable bool
}

//zstd.Decoder doesn't implement io.ReadCloser (its Close returns nothing),
//hence this small adapter.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

func newCompressor(a io.Writer, name string, level int) (io.WriteCloser, error) {
	switch name[len(name)-1] {
	case 'l':
		return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil
	case 'z':
		return gzip.NewWriterLevel(a, level)
	case 'r':
		return flate.NewWriter(a, level)
	default:
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

func newDecompressor(a io.Reader, name string) (io.ReadCloser, error) {
	switch name[len(name)-1] {
	case 'l':
		return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil
	case 'z':
		return gzip.NewReader(a)
	case 'r':
		return flate.NewReader(a), nil
	default:
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return zstdql{r.Close, r}, nil
	}
}

//New opens a btf trajectory for reading, and returns a handle, a map with
//the header metadata (empty if the file has none) and error or nil.
func New(name string) (*Reader, map[string]string, error) {
	R := new(Reader)
	R.natoms = -1 //just so we know if things don't work
	R.prec = defaultPrec
	R.filename = name
	m := make(map[string]string)
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	R.comp, err = newDecompressor(bufio.NewReader(R.f), strings.ToLower(name))
	if err != nil {
		return nil, nil, Error{"Can't set up decompression: " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.comp)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return nil, nil, Error{"Can't read bead number from: " + str, name, []string{"New"}, true}
			}
			R.natoms, err = strconv.Atoi(nat[1])
			if err != nil {
				return nil, nil, Error{"Can't read bead number from: " + nat[1], name, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, name, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil || prec <= 0 {
			return nil, nil, Error{"Invalid precision in header: " + p, name, []string{"New"}, true}
		}
		R.prec = prec
	}
	R.readable = true
	return R, m, nil
}

//Readable returns true if it is possible to call Next on the handle.
func (R *Reader) Readable() bool { return R.readable }

//Len returns the number of beads in each frame of the trajectory.
func (R *Reader) Len() int { return R.natoms }

//Next puts in c, if not nil, the coordinates for the next frame of the
//trajectory and, if given, puts in timeFs the simulation time of the frame
//(-1 if the frame doesn't carry one). An error implementing
//LastFrameError signals the normal end of the trajectory.
func (R *Reader) Next(c *v3.Matrix, timeFs ...*float64) error {
	if !R.readable {
		return Error{TrajUnIniRead, R.filename, []string{"Next"}, true}
	}
	p := math.Pow(10, float64(R.prec))
	for i := 0; i < R.natoms; i++ {
		b, err := R.h.ReadBytes('\n')
		if err != nil {
			//EOF should only happen when reading the first bead of a frame.
			if err == io.EOF && i == 0 {
				R.Close()
				return newlastFrameError(R.filename, "Next")
			}
			return Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(string(b))
		if len(fields) != 3 {
			return Error{fmt.Sprintf("Ill formatted coordinate line: %s", b), R.filename, []string{"Next"}, true}
		}
		for j, v := range fields {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Error{fmt.Sprintf("Can't parse coordinate %d (%s): %s", j, v, err.Error()), R.filename, []string{"Next"}, true}
			}
			if c != nil {
				c.Set(i, j, float64(n)/p)
			}
		}
	}
	s, err := R.h.ReadString('\n')
	if err != nil {
		return Error{"Can't read the frame termination mark: " + err.Error(), R.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return Error{"Wrong number of beads in frame", R.filename, []string{"Next"}, true}
	}
	if len(timeFs) > 0 && timeFs[0] != nil {
		*timeFs[0] = -1
		fields := strings.Fields(strings.TrimSpace(s))
		if len(fields) >= 2 {
			t, err := strconv.ParseFloat(fields[1], 64)
			if err == nil {
				*timeFs[0] = t
			}
		}
	}
	return nil
}

//Close closes the handle, and marks it as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	R.comp.Close()
	R.f.Close()
	R.readable = false
}
