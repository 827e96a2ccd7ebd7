/*
 * v3_test.go, part of gobd.
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

package v3

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestBasicOps(Te *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Wrong number of vectors: %d", A.NVecs())
	}
	B := Zeros(3)
	B.Copy(A)
	row, _ := NewMatrix([]float64{1, 1, 1})
	B.AddVec(B, row)
	if B.At(0, 0) != 2 || B.At(2, 2) != 10 {
		Te.Errorf("AddVec failed: %v", B)
	}
	B.SubVec(B, row)
	if B.At(0, 0) != 1 || B.At(2, 2) != 9 {
		Te.Errorf("SubVec failed: %v", B)
	}
	fmt.Println(A, "\n", B)
}

func TestViewsAndSelection(Te *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in a view should be reflected in the viewed matrix")
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	B.SomeVecs(A, cind)
	if B.At(0, 0) != 100 || B.At(2, 2) != 18 {
		Te.Errorf("SomeVecs failed: %v", B)
	}
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 {
		Te.Error("SetVecs failed to write back")
	}
}

func TestVectorGeometry(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 {
		Te.Errorf("Cross product failed: %v", z)
	}
	if x.Dot(y) != 0 {
		Te.Error("Orthogonal vectors should have zero dot product")
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if v.Norm() != 5 {
		Te.Errorf("Wrong norm: %f", v.Norm())
	}
	u := Zeros(1)
	u.Unit(v)
	if math.Abs(u.Norm()-1) > 1e-12 {
		Te.Errorf("Unit vector should have norm 1, got %f", u.Norm())
	}
	w, _ := NewMatrix([]float64{0, 0, 0})
	if d := Dist(v, w); d != 5 {
		Te.Errorf("Wrong distance: %f", d)
	}
}

func TestString(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	s := A.String()
	fmt.Println(s)
	if !strings.HasPrefix(s, "\n[") || !strings.HasSuffix(s, " ]") {
		Te.Errorf("String should bracket the matrix, got %q", s)
	}
	if !strings.Contains(s, "1.00") || !strings.Contains(s, "6.00") {
		Te.Errorf("String should show the formatted coordinates, got %q", s)
	}
	if strings.Count(s, "\n") != 2 {
		Te.Errorf("Expected one line per vector, got %q", s)
	}
}

func TestSwapVecs(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	A.SwapVecs(0, 1)
	if A.At(0, 0) != 4 || A.At(1, 2) != 3 {
		Te.Errorf("SwapVecs failed: %v", A)
	}
}
