package bench

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	smallvec "github.com/deploymenttheory/go-smallvec"
)

// inlineCapacity is the inline threshold the vector scenarios are
// instantiated with. Sizes at or below it exercise the allocation-free
// path; larger sizes exercise the spill and regrowth path.
const inlineCapacity = 8

// Runner executes the configured benchmark grid
type Runner struct {
	cfg Config
}

// NewRunner creates a Runner for a validated config
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg}, nil
}

// Run executes every scenario in the grid and collects the results.
// Each scenario is driven by testing.Benchmark, so timings carry the
// usual ns/op and allocs/op semantics of go test benchmarks.
func (r *Runner) Run() (*Report, error) {
	report := &Report{
		Version:        smallvec.Version().String(),
		InlineCapacity: inlineCapacity,
		GeneratedAt:    time.Now().UTC(),
	}

	for _, elem := range r.cfg.Elements {
		for _, size := range r.cfg.Sizes {
			scenarios, err := scenariosFor(elem, size)
			if err != nil {
				return nil, err
			}
			for _, s := range scenarios {
				res := testing.Benchmark(s.fn)
				report.Results = append(report.Results, Result{
					Scenario:    s.name,
					Element:     elem,
					Size:        size,
					Iterations:  res.N,
					NsPerOp:     res.NsPerOp(),
					BytesPerOp:  res.AllocedBytesPerOp(),
					AllocsPerOp: res.AllocsPerOp(),
				})
			}
		}
	}
	return report, nil
}

type scenario struct {
	name string
	fn   func(*testing.B)
}

// scenariosFor maps an element kind to its concrete vector instantiation
func scenariosFor(elem string, size int) ([]scenario, error) {
	switch elem {
	case "int64":
		return buildScenarios[int64, [inlineCapacity]int64](size, func(i int) int64 {
			return int64(i)
		}), nil
	case "uuid":
		seed := uuid.New()
		return buildScenarios[uuid.UUID, [inlineCapacity]uuid.UUID](size, func(i int) uuid.UUID {
			id := seed
			id[0] = byte(i)
			id[1] = byte(i >> 8)
			return id
		}), nil
	default:
		return nil, fmt.Errorf("unknown element kind %q", elem)
	}
}

func buildScenarios[T any, A any](size int, mk func(int) T) []scenario {
	return []scenario{
		{name: "vector/push", fn: benchVectorPush[T, A](size, mk)},
		{name: "slice/append", fn: benchSliceAppend(size, mk)},
		{name: "vector/clone", fn: benchVectorClone[T, A](size, mk)},
		{name: "vector/move", fn: benchVectorMove[T, A](size, mk)},
	}
}

func benchVectorPush[T any, A any](size int, mk func(int) T) func(*testing.B) {
	return func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var v smallvec.Vector[T, A]
			for j := 0; j < size; j++ {
				v.Push(mk(j))
			}
			if v.Len() != size {
				b.Fatal("bad length")
			}
		}
	}
}

func benchSliceAppend[T any](size int, mk func(int) T) func(*testing.B) {
	return func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var s []T
			for j := 0; j < size; j++ {
				s = append(s, mk(j))
			}
			if len(s) != size {
				b.Fatal("bad length")
			}
		}
	}
}

func benchVectorClone[T any, A any](size int, mk func(int) T) func(*testing.B) {
	var v smallvec.Vector[T, A]
	for j := 0; j < size; j++ {
		v.Push(mk(j))
	}
	return func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			c := v.Clone()
			if c.Len() != size {
				b.Fatal("bad length")
			}
		}
	}
}

func benchVectorMove[T any, A any](size int, mk func(int) T) func(*testing.B) {
	var v smallvec.Vector[T, A]
	for j := 0; j < size; j++ {
		v.Push(mk(j))
	}
	return func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			src := v.Clone()
			var dst smallvec.Vector[T, A]
			dst.MoveFrom(&src)
			if dst.Len() != size {
				b.Fatal("bad length")
			}
		}
	}
}
