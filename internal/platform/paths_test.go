package platform

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"a/b/c.sol", []string{"a", "b", "c.sol"}},
		{"c.sol", []string{"c.sol"}},
		{"./a/b.sol", []string{"a", "b.sol"}},
		{"a//b.sol", []string{"a", "b.sol"}},
		{`a\b\c.sol`, []string{"a", "b", "c.sol"}},
		{"/a/b.sol", []string{"a", "b.sol"}},
		{"", nil},
		{".", nil},
	}

	for _, tc := range cases {
		if got := Segments(tc.path); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Segments(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestNormalizeDeclared(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"a/b/c.sol", "a/b/c.sol"},
		{`a\b\c.sol`, "a/b/c.sol"},
		{"a/./b/../c.sol", "a/c.sol"},
	}

	for _, tc := range cases {
		if got := NormalizeDeclared(tc.path); got != tc.want {
			t.Errorf("NormalizeDeclared(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
