package key_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/utils/key"
)

func TestFromBz(t *testing.T) {
	expectedBz := []byte("testkey")
	k := key.FromBz(expectedBz)

	assert.Equal(t, expectedBz, k.Bytes())
}

func TestFromStr(t *testing.T) {
	expected := "3yZe7dMcBuM9xWbQ"
	k := key.FromStr(expected)

	assert.Equal(t, expected, string(k.Bytes()))
}

func TestAppend(t *testing.T) {
	k1 := key.FromStr("prefix")
	k2 := key.FromStr("nucleus")
	k3 := key.FromBz([]byte("suffix"))

	assert.Equal(t, []byte("prefix_nucleus_suffix"), k1.Append(k2).Append(k3).Bytes())
	assert.Equal(t, []byte("prefix-nucleus-suffix"), k1.Append(k2).Append(k3).Bytes("-"))
}

func TestAppend_DoesNotMutateParent(t *testing.T) {
	parent := key.FromStr("tally").Append(key.FromStr("poll"))
	first := parent.Append(key.FromStr("v1"))
	second := parent.Append(key.FromStr("v2"))

	assert.Equal(t, []byte("tally_poll_v1"), first.Bytes())
	assert.Equal(t, []byte("tally_poll_v2"), second.Bytes())
	assert.Equal(t, []byte("tally_poll"), parent.Bytes())
}

func TestPrefix(t *testing.T) {
	k := key.FromStr("voter").Append(key.FromStr("abc"))

	assert.Equal(t, []byte("voter_abc_"), k.Prefix())
	assert.False(t, bytes.HasPrefix(key.FromStr("voter").Append(key.FromStr("abcd")).Append(key.FromStr("bob")).Bytes(), k.Prefix()))
	assert.True(t, bytes.HasPrefix(k.Append(key.FromStr("bob")).Bytes(), k.Prefix()))
}
