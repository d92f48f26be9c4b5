// copperfish is a UCI chess engine: iterative-deepening alpha-beta search over a
// bitboard move generator, bounded to a fixed wall-clock budget per move.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/herohde/copperfish/pkg/engine"
	"github.com/herohde/copperfish/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var (
	hash    = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	maxTime = flag.Duration("movetime", 2990*time.Millisecond, "Per-move search budget")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: copperfish [options]

copperfish is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "copperfish", "herohde", engine.WithOptions(engine.Options{
		Hash:    *hash,
		MaxTime: *maxTime,
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
