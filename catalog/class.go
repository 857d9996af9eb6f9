// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sort"
)

// Class identifies a parameter class.
type Class int

// Declared parameter classes. Text, FilePath, OutputStream, InputStream,
// FileType and Random are declared so requests for them can be named, but
// they have no generator.
const (
	Invalid Class = iota
	NumElems
	NumRows
	NumCols
	ElemInd
	ExtElemInd
	RowInd
	ExtRowInd
	ColInd
	ExtColInd
	Normal
	Dim
	Exp
	MatNormInt
	VecNormInt
	GenDouble
	TriDouble
	SinValTol
	ElemIndRange
	RowIndRange
	ColIndRange
	MatSize
	ColVecSize
	RowVecSize
	GenMat
	InvMat
	SymPDMat
	SymMat
	SquMat
	LogicMat
	OOMat
	GenColVec
	GenRowVec
	MonColVec
	MonRowVec
	LogicColVec
	LogicRowVec
	OOColVec
	OORowVec
	GenVec
	MonVec
	LogicVec
	OOVec
	GenMatVec
	LogicMatVec
	OOMatVec
	ElemInds
	RowInds
	ColInds
	MatNormString
	VecNormString
	Sort
	Search
	SinValSel
	DistrParam
	Fill
	Text
	FilePath
	OutputStream
	InputStream
	FileType
	Random
)

var classNames = map[Class]string{
	NumElems: "NumElems", NumRows: "NumRows", NumCols: "NumCols",
	ElemInd: "ElemInd", ExtElemInd: "ExtElemInd",
	RowInd: "RowInd", ExtRowInd: "ExtRowInd",
	ColInd: "ColInd", ExtColInd: "ExtColInd",
	Normal: "Normal", Dim: "Dim", Exp: "Exp",
	MatNormInt: "MatNormInt", VecNormInt: "VecNormInt",
	GenDouble: "GenDouble", TriDouble: "TriDouble", SinValTol: "SinValTol",
	ElemIndRange: "ElemIndRange", RowIndRange: "RowIndRange", ColIndRange: "ColIndRange",
	MatSize: "MatSize", ColVecSize: "ColVecSize", RowVecSize: "RowVecSize",
	GenMat: "GenMat", InvMat: "InvMat", SymPDMat: "SymPDMat", SymMat: "SymMat", SquMat: "SquMat",
	LogicMat: "LogicMat", OOMat: "OOMat",
	GenColVec: "GenColVec", GenRowVec: "GenRowVec",
	MonColVec: "MonColVec", MonRowVec: "MonRowVec",
	LogicColVec: "LogicColVec", LogicRowVec: "LogicRowVec",
	OOColVec: "OOColVec", OORowVec: "OORowVec",
	GenVec: "GenVec", MonVec: "MonVec", LogicVec: "LogicVec", OOVec: "OOVec",
	GenMatVec: "GenMatVec", LogicMatVec: "LogicMatVec", OOMatVec: "OOMatVec",
	ElemInds: "ElemInds", RowInds: "RowInds", ColInds: "ColInds",
	MatNormString: "MatNormString", VecNormString: "VecNormString",
	Sort: "Sort", Search: "Search", SinValSel: "SinValSel",
	DistrParam: "DistrParam", Fill: "Fill",
	Text: "Text", FilePath: "FilePath", OutputStream: "OutputStream",
	InputStream: "InputStream", FileType: "FileType", Random: "Random",
}

var classByName = func() map[string]Class {
	out := make(map[string]Class, len(classNames))
	for c, n := range classNames {
		out[n] = c
	}

	return out
}()

// String returns the class name, e.g. "GenRowVec".
func (c Class) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}

	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass resolves a class by name.
func ParseClass(name string) (Class, error) {
	if c, ok := classByName[name]; ok {
		return c, nil
	}

	return Invalid, fmt.Errorf("ParseClass(%q): %w", name, ErrUnknownClass)
}

// Supported reports whether c has a generator.
func (c Class) Supported() bool {
	_, ok := generators[c]

	return ok
}

// Classes returns every declared class in declaration order.
func Classes() []Class {
	out := make([]Class, 0, len(classNames))
	for c := range classNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
