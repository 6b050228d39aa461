package manifest

import (
	"reflect"
	"testing"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"^1.2.3", "1.2.3"},
		{"~1.2.3", "1.2.3"},
		{"*1.2.3", "1.2.3"},
		{"x1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{">=1.2.3", ">=1.2.3"},
		{"^^1.2.3", "^1.2.3"},
		{"", ""},
		{"github:user/repo", "github:user/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeVersion(tt.input); got != tt.expected {
				t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMergeDependencies(t *testing.T) {
	tests := []struct {
		name string
		fe   DependencyMap
		re   DependencyMap
		want DependencyMap
	}{
		{
			name: "reverse engineering wins collisions",
			fe:   DependencyMap{"x": "^1.0.0"},
			re:   DependencyMap{"x": "^2.0.0", "y": "^1.0.0"},
			want: DependencyMap{"x": "^2.0.0", "y": "^1.0.0"},
		},
		{
			name: "forward engineering only",
			fe:   DependencyMap{"a": "1.0.0"},
			re:   DependencyMap{},
			want: DependencyMap{"a": "1.0.0"},
		},
		{
			name: "reverse engineering only",
			fe:   DependencyMap{},
			re:   DependencyMap{"y": "1.0.0"},
			want: DependencyMap{"y": "1.0.0"},
		},
		{
			name: "both empty",
			fe:   DependencyMap{},
			re:   DependencyMap{},
			want: DependencyMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeDependencies(tt.fe, tt.re)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeDependencies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDependencies_DoesNotMutateInputs(t *testing.T) {
	fe := DependencyMap{"x": "^1.0.0"}
	re := DependencyMap{"x": "^2.0.0"}
	MergeDependencies(fe, re)
	if fe["x"] != "^1.0.0" {
		t.Errorf("forward-engineering map was modified: %v", fe)
	}
}

func TestDependencyMap_Exact(t *testing.T) {
	deps := DependencyMap{"a": "^1.0.0", "b": "~2.1.0", "c": "3.0.0"}
	got := deps.Exact()
	want := DependencyMap{"a": "1.0.0", "b": "2.1.0", "c": "3.0.0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Exact() = %v, want %v", got, want)
	}
	if deps["a"] != "^1.0.0" {
		t.Errorf("Exact modified its receiver: %v", deps)
	}
}
