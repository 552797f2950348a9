package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness(CodeUnknownOwner)

	if !IsBusiness(err, CodeUnknownOwner) {
		t.Fatal("code must match itself")
	}
	if IsBusiness(err, CodeNotFound) {
		t.Fatal("different code must not match")
	}
	if IsBusiness(errors.New("unknown_owner"), CodeUnknownOwner) {
		t.Fatal("plain error with the same text must not match")
	}
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrBusiness(CodeUnknownOwner))

	if !IsBusiness(err, CodeUnknownOwner) {
		t.Fatal("wrapped business error must match")
	}
}
