package loop

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tomz197/starshooter/internal/loop/client"
)

func TestRunPlaysUntilInputEnds(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader("\raaf"), &out, client.ClientOptions{
		Logger:       zap.New(core),
		TermSizeFunc: func() (int, int, error) { return 80, 30, nil },
		Renderer:     lipgloss.NewRenderer(io.Discard),
		Seed:         3,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("Game started.").Len())
	assert.Equal(t, 1, logs.FilterMessage("Session ended.").Len())
	assert.Contains(t, out.String(), "STARSHOOTER")
}
