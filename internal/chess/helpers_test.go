package chess

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Local helpers; testutil depends on this package.

func assertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs), diff)
	}
}

func assertTrue(t *testing.T, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !cond {
		t.Errorf("%sexpected true but got false", prefix(msgAndArgs))
	}
}

func assertFalse(t *testing.T, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if cond {
		t.Errorf("%sexpected false but got true", prefix(msgAndArgs))
	}
}

func prefix(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	return fmt.Sprint(msgAndArgs[0]) + ": "
}
