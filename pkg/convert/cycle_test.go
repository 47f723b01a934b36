package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type link struct {
	Name string
	Next *link
}

type holder struct {
	items map[string]any
}

func TestHasCycle(t *testing.T) {
	selfMap := map[string]any{"name": "loop"}
	selfMap["self"] = selfMap

	selfSlice := []any{"loop", nil}
	selfSlice[1] = selfSlice

	ring := &link{Name: "a", Next: &link{Name: "b"}}
	ring.Next.Next = ring

	hidden := holder{items: map[string]any{}}
	hidden.items["back"] = hidden.items

	shared := map[string]int{"a": 1}
	diamond := map[string]any{"left": shared, "right": shared}

	deep := any("leaf")
	for i := 0; i < 2*maxWalkDepth; i++ {
		deep = []any{deep}
	}

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "nil", input: nil, want: false},
		{name: "scalar", input: 42, want: false},
		{name: "flat map", input: map[string]int{"a": 1}, want: false},
		{name: "bytes", input: make([]byte, 1<<16), want: false},
		{name: "shared but acyclic", input: diamond, want: false},
		{name: "typed nil pointer", input: (*link)(nil), want: false},
		{name: "self map", input: selfMap, want: true},
		{name: "self slice", input: selfSlice, want: true},
		{name: "pointer ring", input: ring, want: true},
		{name: "unexported field", input: hidden, want: true},
		{name: "too deep", input: deep, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCycle(tt.input))
		})
	}
}
