package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/dynarray/vector"
)

// ErrExpectation is returned by Run if a step does not meet its expectations.
var ErrExpectation = errors.New("script: expectation not met")

// errorKinds maps names usable in scenarios to the errors of package vector.
var errorKinds = map[string]error{
	"allocation": vector.ErrAllocation,
	"empty":      vector.ErrEmpty,
	"range":      vector.ErrIndexOutOfRange,
	"invalid":    vector.ErrInvalidArgument,
}

// Snapshot is the state of a vector at a 'print' step.
type Snapshot struct {
	Label    string
	Values   []float64
	Size     int
	Capacity int
}

func (s Snapshot) String() string {
	b := strings.Builder{}
	b.WriteString(s.Label)
	b.WriteString(": [ ")
	for _, x := range s.Values {
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		b.WriteByte(' ')
	}
	b.WriteString(fmt.Sprintf("] (size = %d, capacity = %d)", s.Size, s.Capacity))
	return b.String()
}

// Report collects the outcome of running a scenario.
type Report struct {
	Scenario  string
	Steps     int // number of steps performed
	Snapshots []Snapshot
}

// runner holds the vector a scenario is working on. Ops 'copy' and 'move'
// replace it by the copy or move target.
type runner struct {
	vec    *vector.Vector
	result result
	report *Report
}

// result holds the outcome of query ops, to be checked against expectations.
type result struct {
	index int
	value float64
	sum   float64
}

type operation func(*runner, Step) error

var operations map[string]operation

func init() {
	operations = map[string]operation{
		"push_back":     func(r *runner, s Step) error { return r.vec.PushBack(s.Value) },
		"push_front":    func(r *runner, s Step) error { return r.vec.PushFront(s.Value) },
		"insert":        func(r *runner, s Step) error { return r.vec.Insert(s.Value, s.Pos) },
		"insert_slice":  func(r *runner, s Step) error { return r.vec.InsertSlice(s.Values, s.Pos) },
		"insert_self":   func(r *runner, s Step) error { return r.vec.InsertVector(r.vec, s.Pos) },
		"pop_back":      func(r *runner, s Step) error { return r.vec.PopBack() },
		"pop_front":     func(r *runner, s Step) error { return r.vec.PopFront() },
		"erase":         opErase,
		"erase_between": func(r *runner, s Step) error { r.vec.EraseBetween(s.Pos, s.End); return nil },
		"reserve":       func(r *runner, s Step) error { return r.vec.Reserve(s.Capacity) },
		"shrink":        func(r *runner, s Step) error { return r.vec.ShrinkToFit() },
		"find":          func(r *runner, s Step) error { r.result.index = r.vec.Find(s.Value); return nil },
		"get":           opGet,
		"sum":           opSum,
		"copy":          opCopy,
		"copy_assign":   opCopyAssign,
		"move":          opMove,
		"move_assign":   opMoveAssign,
		"print":         opPrint,
		"expect":        func(r *runner, s Step) error { return nil },
	}
}

// Run performs all steps of a scenario on a fresh vector. It stops at the first
// step which fails unexpectedly or does not meet its expectations.
func Run(sc *Scenario) (*Report, error) {
	opts := []vector.Option{vector.AllocationLimit(sc.Limit)}
	if sc.Growth != 0 {
		opts = append(opts, vector.GrowthFactor(sc.Growth))
	}
	vec, err := vector.FromSlice(sc.Init, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	r := &runner{vec: vec, report: &Report{Scenario: sc.Name}}
	for i, step := range sc.Steps {
		if err := r.perform(step); err != nil {
			tracer().P("scenario", sc.Name).Errorf("step %d (%s): %v", i, step.Op, err)
			return r.report, fmt.Errorf("scenario %s, step %d (%s): %w", sc.Name, i, step.Op, err)
		}
		r.report.Steps++
	}
	tracer().P("scenario", sc.Name).Infof("%d steps ok, final %s", len(sc.Steps), r.vec)
	return r.report, nil
}

func (r *runner) perform(step Step) error {
	op, ok := operations[step.Op]
	if !ok {
		return fmt.Errorf("%w: unknown op %q", ErrScript, step.Op)
	}
	tracer().Debugf("%s on %s", step.Op, r.vec)
	r.result = result{}
	err := op(r, step)
	if step.Error != "" {
		if !errors.Is(err, errorKinds[step.Error]) {
			return fmt.Errorf("%w: expected error %q, got %v", ErrExpectation, step.Error, err)
		}
	} else if err != nil {
		return err
	}
	if step.Expect != nil {
		return r.check(step.Expect)
	}
	return nil
}

func (r *runner) check(e *Expect) error {
	v := r.vec
	if e.Values != nil && !equalValues(e.Values, v.Values()) {
		return fmt.Errorf("%w: values are %v, expected %v", ErrExpectation, v.Values(), e.Values)
	}
	if e.Size != nil && *e.Size != v.Size() {
		return fmt.Errorf("%w: size is %d, expected %d", ErrExpectation, v.Size(), *e.Size)
	}
	if e.Capacity != nil && *e.Capacity != v.Cap() {
		return fmt.Errorf("%w: capacity is %d, expected %d", ErrExpectation, v.Cap(), *e.Capacity)
	}
	if e.LoadFactor != nil && *e.LoadFactor != v.LoadFactor() {
		return fmt.Errorf("%w: load factor is %g, expected %g", ErrExpectation, v.LoadFactor(), *e.LoadFactor)
	}
	if e.Index != nil && *e.Index != r.result.index {
		return fmt.Errorf("%w: index is %d, expected %d", ErrExpectation, r.result.index, *e.Index)
	}
	if e.Value != nil && *e.Value != r.result.value {
		return fmt.Errorf("%w: value is %g, expected %g", ErrExpectation, r.result.value, *e.Value)
	}
	if e.Sum != nil && *e.Sum != r.result.sum {
		return fmt.Errorf("%w: sum is %g, expected %g", ErrExpectation, r.result.sum, *e.Sum)
	}
	return nil
}

// --- Operations ------------------------------------------------------------

func opErase(r *runner, s Step) error {
	if s.Count == nil {
		r.vec.EraseOne(s.Pos)
		return nil
	}
	r.vec.Erase(s.Pos, *s.Count)
	return nil
}

func opGet(r *runner, s Step) error {
	x, err := r.vec.Get(s.Pos)
	if err == nil {
		r.result.value = x
	}
	return err
}

func opSum(r *runner, s Step) error {
	sum := 0.0
	for it, end := r.vec.Begin(), r.vec.End(); !it.Equal(end); it.Next() {
		sum += it.Value()
	}
	r.result.sum = sum
	return nil
}

// opCopy continues the scenario with a clone of the current vector and checks that
// the clone is independent of its source.
func opCopy(r *runner, s Step) error {
	w, err := r.vec.Clone()
	if err != nil {
		return err
	}
	if err = checkCopy(r.vec, w); err != nil {
		return err
	}
	r.vec = w
	return nil
}

// opCopyAssign copies the current vector onto a vector holding s.Values.
func opCopyAssign(r *runner, s Step) error {
	w, err := vector.FromSlice(s.Values)
	if err != nil {
		return err
	}
	if err = w.CopyFrom(r.vec); err != nil {
		return err
	}
	if err = checkCopy(r.vec, w); err != nil {
		return err
	}
	r.vec = w
	return nil
}

func checkCopy(src, dst *vector.Vector) error {
	if !equalValues(src.Values(), dst.Values()) {
		return fmt.Errorf("%w: copy holds %v, source %v", ErrExpectation, dst.Values(), src.Values())
	}
	if dst.Size() > 0 {
		before := src.At(0)
		dst.Set(0, before+1)
		independent := src.At(0) == before
		dst.Set(0, before)
		if !independent {
			return fmt.Errorf("%w: copy shares memory with its source", ErrExpectation)
		}
	}
	return nil
}

// opMove continues the scenario with the target of a move, checking that the
// source has been emptied.
func opMove(r *runner, s Step) error {
	src := r.vec
	r.vec = src.Move()
	return checkMovedFrom(src)
}

// opMoveAssign moves the current vector onto a vector holding s.Values.
func opMoveAssign(r *runner, s Step) error {
	w, err := vector.FromSlice(s.Values)
	if err != nil {
		return err
	}
	src := r.vec
	w.MoveFrom(src)
	r.vec = w
	return checkMovedFrom(src)
}

func checkMovedFrom(src *vector.Vector) error {
	if src.Size() != 0 || src.Cap() != 0 {
		return fmt.Errorf("%w: moved-from vector not empty: %s", ErrExpectation, src)
	}
	src.Release()
	return nil
}

func opPrint(r *runner, s Step) error {
	label := s.Label
	if label == "" {
		label = "Vector"
	}
	values := append([]float64{}, r.vec.Values()...)
	r.report.Snapshots = append(r.report.Snapshots, Snapshot{
		Label:    label,
		Values:   values,
		Size:     r.vec.Size(),
		Capacity: r.vec.Cap(),
	})
	return nil
}

func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
