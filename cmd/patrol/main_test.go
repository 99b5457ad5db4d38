package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/guard-patrol/internal/patrol"
)

func TestRun(t *testing.T) {
	workers, showMap = 1, false

	var out bytes.Buffer
	err := run(context.Background(), strings.NewReader(".#.\n...\n^..\n"), &out, false)
	require.NoError(t, err)

	assert.Equal(t, "3\n0\n", out.String())
}

func TestRunRender(t *testing.T) {
	workers, showMap = 2, true
	defer func() { showMap = false }()

	var out bytes.Buffer
	err := run(context.Background(), strings.NewReader(".#.\n...\n^..\n"), &out, false)
	require.NoError(t, err)

	assert.Equal(t, "X#.\nX..\n^..\n3\n0\n", out.String())
}

func TestRunInvalid(t *testing.T) {
	workers, showMap = 1, false

	err := run(context.Background(), strings.NewReader("...\n..."), &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, patrol.ErrNoStart)

	err = run(context.Background(), strings.NewReader(".#.\n#^#\n.#."), &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, patrol.ErrBaselineLoops)
}
