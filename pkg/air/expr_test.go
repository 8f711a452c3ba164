// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package air

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/consensys/go-zkvm/pkg/util/field"
	"github.com/consensys/go-zkvm/pkg/util/field/koalabear"
)

type fe = koalabear.Element

func u64(v uint64) fe {
	return field.Uint64[fe](v)
}

func TestExprEval(t *testing.T) {
	var (
		preprocessed = []fe{u64(2), u64(3)}
		main         = []fe{u64(5), u64(7), u64(11)}
	)
	//
	assert.True(t, NewConstant(u64(42)).Eval(preprocessed, main).Equals(u64(42)))
	assert.True(t, NewMain[fe](2).Eval(preprocessed, main).Equals(u64(11)))
	assert.True(t, NewPreprocessed[fe](1).Eval(preprocessed, main).Equals(u64(3)))
	// 1 + 3*main[0] + 2*preprocessed[0] = 1 + 15 + 4
	expr := NewLinear(u64(1),
		Term[fe]{Column: Column{Kind: Main, Index: 0}, Coeff: u64(3)},
		Term[fe]{Column: Column{Kind: Preprocessed, Index: 0}, Coeff: u64(2)},
	)
	//
	assert.True(t, expr.Eval(preprocessed, main).Equals(u64(20)))
}

func TestExprRequiredWidth(t *testing.T) {
	expr := NewLinear(u64(0),
		Term[fe]{Column: Column{Kind: Main, Index: 4}, Coeff: u64(1)},
		Term[fe]{Column: Column{Kind: Main, Index: 1}, Coeff: u64(1)},
		Term[fe]{Column: Column{Kind: Preprocessed, Index: 2}, Coeff: u64(1)},
	)
	//
	assert.Equal(t, uint(5), expr.RequiredWidth(Main))
	assert.Equal(t, uint(3), expr.RequiredWidth(Preprocessed))
	//
	constant := NewConstant(u64(9))
	assert.Equal(t, uint(0), constant.RequiredWidth(Main))
	assert.Equal(t, uint(0), constant.RequiredWidth(Preprocessed))
}
