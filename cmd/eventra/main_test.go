package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_FailsFastOnBadConfig(t *testing.T) {
	t.Setenv("POSTGRES_USER", "")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), logger)

	require.Error(t, err)
	require.Contains(t, err.Error(), "POSTGRES_USER")
}
