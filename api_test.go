package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPropagatesMachineError(t *testing.T) {
	m := New(WithHost(newFakeHost()))
	err := m.Run(context.Background(), "nonesuch")
	require.Error(t, err)
	var me *MachineError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, ErrCommandUndefined, me.Kind)
}

func TestRunHonorsCanceledContext(t *testing.T) {
	m := New(WithHost(newFakeHost()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Run(ctx, "1 2 +")
	require.Error(t, err)
}

func TestRunWritesPrintedOutputThroughHost(t *testing.T) {
	fh := newFakeHost()
	m := New(WithHost(fh))
	require.NoError(t, m.Run(context.Background(), `"hello" p`))
	assert.Equal(t, "hello", fh.stdout.String())
}
