package input

import (
	"bufio"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Command
	}{
		{"w", CmdMoveUp},
		{"W", CmdMoveUp},
		{KeyUp, CmdMoveUp},
		{"s", CmdMoveDown},
		{KeyDown, CmdMoveDown},
		{"a", CmdMoveLeft},
		{KeyLeft, CmdMoveLeft},
		{"d", CmdMoveRight},
		{KeyRight, CmdMoveRight},
		{"f", CmdFire},
		{"F", CmdFire},
		{" ", CmdFire},
		{"p", CmdPause},
		{"\r", CmdStart},
		{"\n", CmdStart},
		{"q", CmdQuit},
		{"\x03", CmdQuit},
	}
	for _, tt := range tests {
		t.Run(tt.want.String()+" "+tt.key, func(t *testing.T) {
			got, err := ParseKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, key := range []string{"x", "1", "\x1b", "\x1b[Z", ""} {
		cmd, err := ParseKey(key)
		assert.Equal(t, CmdNone, cmd)
		assert.True(t, errors.Is(err, ErrInvalidCommand), "key %q", key)
	}
}

func TestSplitKeys(t *testing.T) {
	keys := SplitKeys([]byte("w\x1b[Af \x1b[Dx\x1b"))
	assert.Equal(t, []string{"w", KeyUp, "f", " ", KeyLeft, "x", "\x1b"}, keys)
	assert.Empty(t, SplitKeys(nil))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "fire", CmdFire.String())
	assert.Equal(t, "unknown", Command(42).String())
}

func TestStreamReadKeys(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("ad\x1b[B")))

	var keys []string
	require.Eventually(t, func() bool {
		keys = append(keys, ReadKeys(s)...)
		return s.Closed()
	}, time.Second, time.Millisecond)

	assert.Equal(t, []string{"a", "d", KeyDown}, keys)
	assert.Empty(t, ReadKeys(s))
}
