package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terramorph/internal/app"
	"terramorph/internal/core"
	"terramorph/internal/modes/morph"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("%q: want key=value", value)
	}
	*l = append(*l, value)
	return nil
}

type paramSet struct {
	radius float64
	gain   float64
	decay  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("radius=%.2f gain=%.1f decay=%.3f", p.radius, p.gain, p.decay)
}

type scenarioResult struct {
	params    paramSet
	hits      int
	pushes    int
	touched   int
	peak      float32
	settledAt int
	err       error
}

func main() {
	moves := flag.Int("moves", 90, "pointer moves per scenario")
	settle := flag.Int("settle", 600, "frames allowed for the field to settle")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed for particle sampling")
	top := flag.Int("top", 5, "results to print")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	var overrides kvList
	flag.Var(&overrides, "set", "morph option override in key=value form (repeatable)")
	flag.Parse()

	cfg := app.NewConfig()
	cfg.LogLevel = *logLevel
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	base := map[string]string{"seed": strconv.FormatInt(*seed, 10)}
	for _, kv := range overrides {
		k, v, _ := strings.Cut(kv, "=")
		base[k] = v
	}

	var sets []paramSet
	for _, radius := range []float64{0.3, 0.6, 1.0, 1.5} {
		for _, gain := range []float64{10, 30, 60} {
			for _, decay := range []float64{0.9, 0.95, 0.98} {
				sets = append(sets, paramSet{radius: radius, gain: gain, decay: decay})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d moves)\n", len(sets), *workers, *moves)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(logger, base, params, *moves, *settle)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.params, res.err)
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].peak > all[j].peak })
	fmt.Printf("Completed in %s\n\n", time.Since(start).Round(time.Millisecond))

	n := min(*top, len(all))
	for i, res := range all[:n] {
		settled := "never"
		if res.settledAt >= 0 {
			settled = fmt.Sprintf("frame %d", res.settledAt)
		}
		fmt.Printf("%d. peak %.3f, %d/%d rays hit, %d moves pushed %d particles, settled %s\n   %s\n",
			i+1, res.peak, res.hits, *moves, res.pushes, res.touched, settled, res.params)
	}
}

// runScenario drags the pointer across the default targets once, then lets the
// displacement field decay until it settles or the frame budget runs out.
func runScenario(logger *slog.Logger, base map[string]string, params paramSet, moves, settle int) scenarioResult {
	res := scenarioResult{params: params, settledAt: -1}

	opts := make(map[string]string, len(base)+3)
	for k, v := range base {
		opts[k] = v
	}
	opts["influence_radius"] = strconv.FormatFloat(params.radius, 'f', -1, 64)
	opts["velocity_gain"] = strconv.FormatFloat(params.gain, 'f', -1, 64)
	opts["decay"] = strconv.FormatFloat(params.decay, 'f', -1, 64)

	eng, err := morph.New(core.Resources{Logger: logger, Options: opts})
	if err != nil {
		res.err = err
		return res
	}
	defer eng.Teardown()

	const frameMS = 1000.0 / 60
	cam := app.CameraFor(morph.Name, 1)
	now := 0.0
	eng.Advance(core.Frame{ElapsedMS: now, Camera: cam})

	for i := 0; i < moves; i++ {
		t := float64(i) / float64(max(moves-1, 1))
		x := float32(-0.8 + 1.6*t)
		y := float32(0.15 * math.Sin(t*2*math.Pi))
		ray := cam.RayFromNDC(x, y)
		if _, ok := morph.NearestHit(ray, eng.Particles().Positions(), float32(eng.Config().RayThreshold)); ok {
			res.hits++
		}
		if n := eng.PointerMoved(x, y); n > 0 {
			res.pushes++
			res.touched += n
		}
		res.peak = max(res.peak, peakDisplacement(eng.Particles().Displacement()))
		now += frameMS
		eng.Advance(core.Frame{ElapsedMS: now, Camera: cam})
	}

	for f := 0; f < settle; f++ {
		if morph.Settled(eng.Particles().Displacement()) {
			res.settledAt = f
			break
		}
		now += frameMS
		eng.Advance(core.Frame{ElapsedMS: now, Camera: cam})
	}
	return res
}

func peakDisplacement(field []mgl32.Vec3) float32 {
	var peak float32
	for _, d := range field {
		peak = max(peak, d.Len())
	}
	return peak
}
