package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/milk9111/actioncore/anim"
	"github.com/milk9111/actioncore/fsm"
	"github.com/milk9111/actioncore/prefabs"
)

// clipinfo prints each clip of the character spec with its timing in ticks,
// and where the combo window opens and closes on every attack clip.
func main() {
	dir := flag.String("dir", "prefabs", "prefab directory overriding the embedded specs")
	tps := flag.Int("tps", 60, "ticks per second")
	flag.Parse()

	prefabs.Dir = *dir
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *tps <= 0 {
		log.Fatalf("tps %d must be positive", *tps)
	}
	if err := report(os.Stdout, spec.Clips(), spec.Tunables(), *tps); err != nil {
		log.Fatal(err)
	}
}

func report(w io.Writer, clips []anim.Clip, t fsm.Tunables, tps int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "clip\ttag\tframes\tfps\tloop\tseconds\tticks\twindow")
	for _, c := range clips {
		window := "-"
		if c.Tag == fsm.AttackTag {
			open := ticksAt(c.Duration()*t.ComboWindow.Start, tps)
			closed := ticksAt(c.Duration()*t.ComboWindow.End, tps)
			window = fmt.Sprintf("%d..%d", open, closed)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%v\t%.3f\t%d\t%s\n",
			c.Name, c.Tag, c.Frames, c.FPS, c.Loop, c.Duration(), ticksAt(c.Duration(), tps), window)
	}
	return tw.Flush()
}

func ticksAt(seconds float64, tps int) int {
	return int(math.Ceil(seconds*float64(tps) - 1e-9))
}
