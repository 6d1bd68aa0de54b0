package testutil

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// runOrSkip starts a container and skips t when no container runtime is
// reachable. testcontainers panics instead of erroring on some hosts.
func runOrSkip[C testcontainers.Container](t *testing.T, name string, start func() (C, error)) C {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start %s container: %v", name, r)
		}
	}()

	c, err := start()
	if err != nil {
		t.Skipf("failed to start %s container: %v", name, err)
	}
	return c
}

func terminate(ctx context.Context, t *testing.T, name string, container testcontainers.Container) {
	if err := container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate %s container: %v", name, err)
	}
}
