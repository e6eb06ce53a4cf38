package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bogotá", "bogota"},
		{"bogota", "bogota"},
		{"CÓRDOBA", "cordoba"},
		{"Buenos Aires", "buenosaires"},
		{"  Buenos  Aires  ", "buenosaires"},
		{"Dúplex", "duplex"},
		{"São Paulo", "saopaulo"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeNameCollisions(t *testing.T) {
	// the duplicate detector treats all of these as the same name
	variants := []string{"Córdoba", "cordoba", " CORDOBA ", "cór doba"}
	for _, v := range variants {
		require.Equal(t, "cordoba", NormalizeName(v), "input %q", v)
	}
}
