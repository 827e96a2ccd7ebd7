/*
 * v3.go, part of gobd.
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

//Package v3 implements a container for sets of 3D vectors, as a thin wrapper
//over gonum's mat.Dense restricted to matrices with 3 columns. Within the
//package it is understood that a "vector" is a row vector, i.e. the cartesian
//coordinates of a point in 3D space.
package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

/*Note: Most functions here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong at this level the calling
 * program is way-most likely wrong and should crash.*/

//Matrix is a set of vectors in 3D space, one vector per row.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense matrix into a Matrix. It panics if the
//Dense does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{message: "Input slice length not divisible by 3", deco: []string{"NewMatrix"}, critical: true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and c columns.
//Changes in the view are reflected in F and vice-versa. Note that very little
//memory allocation happens, only a couple of ints and pointers.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//SetMatrix puts the matrix A in the receiver starting from the ith row and
//jth col of the receiver.
func (F *Matrix) SetMatrix(i, j int, A *Matrix) {
	b := F.RawMatrix()
	ar, ac := A.Dims()
	fc := 3
	if ar+i > F.NVecs() || ac+j > fc {
		panic(ErrShape)
	}
	r := make([]float64, ac)
	for k := 0; k < ar; k++ {
		mat.Row(r, k, A)
		startpoint := fc*(k+i) + j
		copy(b.Data[startpoint:startpoint+ac], r)
	}
}

//SomeVecs puts in the receiver a copy of the vectors of A whose indexes
//are given in clist, in that order. The receiver must have len(clist) rows.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrIndexOutOfRange)
		}
		F.SetRow(key, A.RawRowView(val))
	}
}

//SetVecs sets the vectors of the receiver whose indexes are given in clist
//to the rows of A, in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= fr {
			panic(ErrIndexOutOfRange)
		}
		F.SetRow(val, A.RawRowView(key))
	}
}

//SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	rowi := mat.Row(nil, i, F)
	rowj := mat.Row(nil, j, F)
	for k := 0; k < 3; k++ {
		F.Set(i, k, rowj[k])
		F.Set(j, k, rowi[k])
	}
}

//AddVec adds the vector vec to each vector of A, putting the result on the
//receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		j := A.VecView(i)
		f := F.VecView(i)
		if F == A {
			j = f
		}
		f.Add(j.Dense, vec)
	}
}

//SubVec subtracts the vector vec from each vector of A, putting the result
//on the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		j := A.VecView(i)
		f := F.VecView(i)
		if F == A {
			j = f
		}
		f.Sub(j.Dense, vec)
	}
}

//Dot returns the dot product between the receiver and the argument, which
//must both be single vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrNotAVector)
	}
	a := F.RawRowView(0)
	b := B.RawRowView(0)
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

//Cross puts the cross product of a and b on the receiver. All three must be
//single vectors.
func (F *Matrix) Cross(a, b *Matrix) {
	if F.NVecs() != 1 || a.NVecs() != 1 || b.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	av := a.RawRowView(0)
	bv := b.RawRowView(0)
	F.Set(0, 0, av[1]*bv[2]-av[2]*bv[1])
	F.Set(0, 1, av[2]*bv[0]-av[0]*bv[2])
	F.Set(0, 2, av[0]*bv[1]-av[1]*bv[0])
}

//Norm returns the Euclidean norm of the receiver, which must be a single
//vector.
func (F *Matrix) Norm() float64 {
	if F.NVecs() != 1 {
		panic(ErrNotAVector)
	}
	a := F.RawRowView(0)
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

//Unit puts a unit vector in the direction of A on the receiver. Both must be
//single vectors. If A has zero norm, the receiver is zeroed.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	if n == 0 {
		F.Zero()
		return
	}
	F.Scale(1/n, A.Dense)
}

//String returns a neat string representation of the Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F)
		sep := " "
		if i == 0 {
			sep = ""
		}
		v = append(v, fmt.Sprintf("%s%6.2f %6.2f %6.2f\n", sep, row[0], row[1], row[2]))
	}
	//the closing bracket goes on the last row
	v[len(v)-1] = strings.TrimSuffix(v[len(v)-1], "\n")
	v = append(v, " ]")
	return strings.Join(v, "")
}

//Dist returns the Euclidean distance between the vectors a and b.
func Dist(a, b *Matrix) float64 {
	if a.NVecs() != 1 || b.NVecs() != 1 {
		panic(ErrNotAVector)
	}
	av := a.RawRowView(0)
	bv := b.RawRowView(0)
	dx := av[0] - bv[0]
	dy := av[1] - bv[1]
	dz := av[2] - bv[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
