package crypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash("secret123"), Hash("secret123"))
	assert.NotEqual(t, Hash("secret123"), Hash("secret124"))
}

func TestHashKnownVector(t *testing.T) {
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		Hash("abc"))
}
