// SPDX-License-Identifier: MIT

package drivers

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/armaexpected/expected"
)

// ErrUnknownDriver is returned by Lookup for a name no driver carries.
var ErrUnknownDriver = errors.New("drivers: unknown driver")

// All returns every driver in a fixed order.
func All() []expected.Runner {
	return []expected.Runner{
		VectorPair(RowOperand),
		VectorPair(ColOperand),
		GenMatNormal(),
		GenColVecRowIndColInd(),
		GenRowVecRowIndRangeColIndRange(),
		InPlaceGenColVecNumElems(),
		InPlaceGenMatExtRowIndGenMat(),
		InPlaceGenMatRowIndRangeGenRowVec(),
		InPlaceGenMatColIndRangeGenRowVec(),
		InPlaceGenRowVecElemIndRange(),
		InPlaceGenColVecElemIndRangeGenRowVec(),
		LogicMatNumElemsSearch(),
		LogicRowVecNumElems(),
	}
}

// Names returns the names of All, in order.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for k, d := range all {
		out[k] = d.Describe().Name
	}

	return out
}

// Lookup returns the driver called name.
func Lookup(name string) (expected.Runner, error) {
	for _, d := range All() {
		if d.Describe().Name == name {
			return d, nil
		}
	}

	return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownDriver)
}
