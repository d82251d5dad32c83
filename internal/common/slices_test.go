package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"A", []string{"A"}},
		{"A,B", []string{"A", "B"}},
		{" A , ,B ", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestIsEmptyIsSingle(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsSingle([]int(nil)))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsEmpty([]int{1, 2}))
	assert.False(t, IsSingle([]int{1, 2}))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "basic", PkgAlias("nullable-generator/examples/basic"))
	assert.Equal(t, "time", PkgAlias("time"))
}
