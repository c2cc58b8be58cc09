package library

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"cbind/internal/config"
	"cbind/internal/entity"
)

// Write serializes the built library in a single synchronous pass: header,
// banner, items (blank line / rendering / blank line each), banner,
// functions in name order, banner, trailer. Each banner point is skipped
// when the autogen warning is empty.
//
// A BuiltLibrary is consumed exactly once; a second Write is an error.
// entity.EmitC panics on a Specialization — that would be a defect in the
// build step, not a user input problem, and must not be papered over.
func (b *BuiltLibrary) Write(cfg *config.Config, w io.Writer) error {
	if b.written {
		return errors.New("built library has already been written")
	}
	b.written = true
	if cfg == nil {
		cfg = config.Default()
	}

	bw := bufio.NewWriter(w)
	if cfg.Header != "" {
		fmt.Fprintf(bw, "%s\n", cfg.Header)
	}
	banner := func() {
		if cfg.AutogenWarning != "" {
			fmt.Fprintf(bw, "\n%s\n", cfg.AutogenWarning)
		}
	}

	banner()
	for _, item := range b.items {
		bw.WriteByte('\n')
		entity.EmitC(bw, item)
		bw.WriteByte('\n')
	}
	banner()
	for _, fn := range b.functions {
		bw.WriteByte('\n')
		entity.EmitFunction(bw, fn)
		bw.WriteByte('\n')
	}
	banner()
	if cfg.Trailer != "" {
		fmt.Fprintf(bw, "\n%s\n", cfg.Trailer)
	}
	return bw.Flush()
}
