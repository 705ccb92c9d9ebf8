package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Impl     string  `json:"impl"`
	Ops      int     `json:"ops"`
	NsPerOp  float64 `json:"ns_per_op"`
	Verified bool    `json:"verified"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAreInterchangeable(t *testing.T) {
	in := sample{Impl: "store", Ops: 10000, NsPerOp: 12.5, Verified: true}

	// Data written by one codec must be readable by the other.
	var out sample
	require.NoError(t, JSON{}.Unmarshal(MustMarshal(GoJSON{}, in), &out))
	assert.Equal(t, in, out)

	out = sample{}
	require.NoError(t, GoJSON{}.Unmarshal(MustMarshal(JSON{}, in), &out))
	assert.Equal(t, in, out)
}

func TestMustMarshalDefault(t *testing.T) {
	b := MustMarshal(nil, sample{Impl: "padded"})
	assert.Contains(t, string(b), `"impl":"padded"`)
}

func TestMustMarshalPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
