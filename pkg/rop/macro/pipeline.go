package macro

import (
	"context"

	"github.com/eapache/queue"

	"github.com/ib-77/trycatch/pkg/rop"
	"github.com/ib-77/trycatch/pkg/rop/trycatch"
)

// Control is what a Step returns: continue with a value or stop with an
// error. ShortCircuit(nil), or a typed nil pointer error, is the same as
// Continue with the zero value.
type Control[T any] struct {
	value T
	err   error
}

func Continue[T any](v T) Control[T] {
	return Control[T]{value: v}
}

func ShortCircuit[T any](err error) Control[T] {
	return Control[T]{err: err}
}

func (c Control[T]) Value() T {
	return c.value
}

func (c Control[T]) Err() error {
	err, _ := rop.AsError(c.err)
	return err
}

func (c Control[T]) Stopped() bool {
	_, ok := rop.AsError(c.err)
	return ok
}

type Step[T any] func(ctx context.Context, v T) Control[T]

// Pipeline is an ordered list of steps run once, front to back.
type Pipeline[T any] struct {
	steps *queue.Queue
}

func NewPipeline[T any](steps ...Step[T]) *Pipeline[T] {
	p := &Pipeline[T]{steps: queue.New()}
	for _, s := range steps {
		p.Then(s)
	}
	return p
}

func (p *Pipeline[T]) Then(step Step[T]) *Pipeline[T] {
	p.steps.Add(step)
	return p
}

// ThenTry appends a (value, error) function as a step
func (p *Pipeline[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) *Pipeline[T] {
	return p.Then(func(ctx context.Context, v T) Control[T] {
		out, err := try(ctx, v)
		if _, ok := rop.AsError(err); ok {
			return ShortCircuit[T](err)
		}
		return Continue(out)
	})
}

// Len returns the number of steps not yet run.
func (p *Pipeline[T]) Len() int {
	return p.steps.Length()
}

// Run feeds initial through the steps and stops at the first ShortCircuit,
// returning its error. A panicking step stops the run with a
// *rop.ThrownError. Steps are consumed: a second Run only sees steps added
// after the first one. A macro bridge call inside a step ends the enclosing
// macro.Run, not just the pipeline.
func (p *Pipeline[T]) Run(ctx context.Context, initial T) (T, error) {
	var zero T
	cur := initial
	defer p.discard()

	for p.steps.Length() > 0 {
		step := p.steps.Remove().(Step[T])

		if err := ctx.Err(); err != nil {
			return zero, err
		}

		out := trycatch.Do(func() Control[T] {
			return step(ctx, cur)
		})
		if !out.IsSuccess() {
			return zero, out.Err()
		}

		ctl := out.Result()
		if ctl.Stopped() {
			return zero, ctl.Err()
		}
		cur = ctl.Value()
	}

	return cur, nil
}

func (p *Pipeline[T]) discard() {
	p.steps = queue.New()
}

// Fold runs steps over initial once, see Pipeline.Run.
func Fold[T any](ctx context.Context, initial T, steps ...Step[T]) (T, error) {
	return NewPipeline(steps...).Run(ctx, initial)
}
