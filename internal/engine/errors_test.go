package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureClass
	}{
		{"sentinel", ErrResourceExhausted, ClassResourceExhausted},
		{"wrapped", fmt.Errorf("poll: %w", ErrResourceExhausted), ClassResourceExhausted},
		{"panic with error", &PanicError{Value: ErrResourceExhausted}, ClassResourceExhausted},
		{"panic with string", &PanicError{Value: "index out of range"}, ClassUnclassified},
		{"other", errors.New("render failed"), ClassUnclassified},
	}
	for _, c := range cases {
		if got := Classify(c.err); got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestPanicErrorMessage(t *testing.T) {
	err := &PanicError{Value: "boom"}
	if err.Error() != "engine panic: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil unwrap for non-error value")
	}
}
