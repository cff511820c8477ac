package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyIdemRegister(t *testing.T) {
	assert.Equal(
		t,
		"eventra:v1:idem:register:42:abc-123",
		KeyIdemRegister(42, "abc-123"),
	)
}
