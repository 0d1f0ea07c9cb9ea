package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperations(t *testing.T) {
	ops := NewOperations()
	assert.True(t, ops.IsEmpty())

	ops.AddIncrement("A", 0)
	assert.True(t, ops.IsEmpty(), "zero increments change nothing")

	ops.AddIncrement("A", 15)
	ops.AddIncrement("A", 15)
	assert.Equal(t, 30.0, ops.Increments["A"])
	assert.False(t, ops.IsEmpty())

	ops.AddReset("B", 1)
	ops.AddReset("B", 2)
	assert.Equal(t, 2.0, ops.Resets["B"])

	var zero Operations
	zero.AddIncrement("A", 1)
	zero.AddReset("A", 1)
	assert.Len(t, zero.Increments, 1)
	assert.Len(t, zero.Resets, 1)

	assert.False(t, Operations{Clean: true}.IsEmpty())
}

func TestOperationKind_String(t *testing.T) {
	assert.Equal(t, "increment", OperationIncrement.String())
	assert.Equal(t, "reset", OperationReset.String())
	assert.Equal(t, "unknown", OperationKind(9).String())
}
