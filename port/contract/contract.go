// Package contract expresses behavioural expectations towards a role
// interface supplier as a reusable testing suite.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make is the function signature contracts accept for creating
// a new instance of their testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification.
//
// A contract defines the behaviour a consumer assumes about its supplier,
// so any implementation of the role interface can be verified against the
// same expectations. It can be embedded into a test suite with Spec,
// or run on its own with Test.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioural requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark measures the performance aspects the consumer cares about,
	// so supplier implementations can be compared.
	Benchmark(*testing.B)
}
