// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolutionBytes(t *testing.T) {
	s := &Solution{Nonce: 0x01020304, Edges: []uint32{1, 0x0a0b0c0d}}
	assert.Equal(t, "04030201"+"01000000"+"0d0c0b0a", hex.EncodeToString(s.Bytes()))
	assert.Equal(t, "nonce 16909060, 2 edges", s.String())

	empty := &Solution{}
	assert.Equal(t, []byte{0, 0, 0, 0}, empty.Bytes())
}

func TestSolutionHash(t *testing.T) {
	vf := loadVectors(t)
	for _, c := range vf.Chains {
		for i := 0; i+1 < len(c.Links); i++ {
			h := c.Links[i].Hash()
			assert.Equal(t, c.Seeds[i+1], h.String(), "%s link %d", c.Name, i)
		}
		inputs := c.Links.Inputs(nil)
		for i, input := range inputs {
			assert.Equal(t, c.Seeds[i], hex.EncodeToString(input), "%s link %d", c.Name, i)
		}
	}
}

func TestSolutionJSON(t *testing.T) {
	s := Solution{Nonce: 38, Edges: []uint32{3, 5}}
	b, err := json.Marshal(s)
	assert.NoError(t, err)
	assert.Equal(t, `{"nonce":38,"edges":[3,5]}`, string(b))

	var chain ChainedSolution
	assert.NoError(t, json.Unmarshal([]byte(`[{"nonce":1,"edges":[2]},{"nonce":3,"edges":[4,5]}]`), &chain))
	assert.Equal(t, ChainedSolution{{Nonce: 1, Edges: []uint32{2}}, {Nonce: 3, Edges: []uint32{4, 5}}}, chain)
}
