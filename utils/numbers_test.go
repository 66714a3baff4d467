package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		name    string
		in      interface{}
		want    float64
		numeric bool
	}{
		{"float64", float64(2.5), 2.5, true},
		{"float32", float32(1.5), 1.5, true},
		{"int", 7, 7, true},
		{"int32", int32(-3), -3, true},
		{"int64", int64(9), 9, true},
		{"string", "4", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Number(tc.in)
			assert.Equal(t, tc.numeric, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNumberOrZero(t *testing.T) {
	assert.Equal(t, float64(0), NumberOrZero(nil))
	assert.Equal(t, float64(0), NumberOrZero("not a number"))
	assert.Equal(t, float64(4), NumberOrZero(int32(4)))
}
