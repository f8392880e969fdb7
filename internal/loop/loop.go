// Package loop runs a single local game on a terminal.
package loop

import (
	"bufio"
	"context"
	"io"

	"github.com/tomz197/starshooter/internal/loop/client"
)

// Run plays one session with keys from r and frames to w until the player
// quits, the input closes or ctx is cancelled. After a game over the player
// may restart without leaving.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts client.ClientOptions) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return client.NewClient(br, w, opts).Run(ctx)
}
