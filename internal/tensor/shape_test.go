package tensor

import (
	"errors"
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{5, 3}, 15},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}

	for _, bad := range []Shape{{0, 3}, {2, -1}} {
		err := bad.Validate()
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%v.Validate() = %v, want ErrInvalidShape", bad, err)
		}
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{5, 3}
	c := s.Clone()
	c[0] = 7

	assertEqualShape(t, Shape{5, 3}, s, "original after clone mutation")
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 5}).String(); got != "2×5" {
		t.Errorf("String() = %q, want %q", got, "2×5")
	}
	if got := (Shape{}).String(); got != "scalar" {
		t.Errorf("String() = %q, want %q", got, "scalar")
	}
}
