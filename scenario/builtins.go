package scenario

import (
	"github.com/d5/tengo/v2"
)

type builtin = tengo.CallableFunc

func (b *builder) builtins() map[string]builtin {
	return map[string]builtin{
		"down": b.fn(2, func(a []float64) error { return b.down(PrimaryID, a[0], a[1]) }),
		"move": b.fn(3, func(a []float64) error { return b.move(PrimaryID, a[0], a[1], a[2]) }),
		"stay": b.fn(1, func(a []float64) error {
			if b.pointers[PrimaryID] == nil {
				return ErrPointerUp
			}
			return b.stay(a[0])
		}),
		"up":   b.fn(0, func([]float64) error { return b.up(PrimaryID) }),
		"wait": b.fn(1, func(a []float64) error { return b.stay(a[0]) }),
		"tap": b.fn(2, func(a []float64) error {
			if err := b.down(PrimaryID, a[0], a[1]); err != nil {
				return err
			}
			return b.up(PrimaryID)
		}),
		"hold": b.fn(3, func(a []float64) error {
			if err := b.down(PrimaryID, a[0], a[1]); err != nil {
				return err
			}
			if err := b.stay(a[2]); err != nil {
				return err
			}
			return b.up(PrimaryID)
		}),
		"drag": b.fn(5, func(a []float64) error {
			if err := b.down(PrimaryID, a[0], a[1]); err != nil {
				return err
			}
			if err := b.move(PrimaryID, a[2], a[3], a[4]); err != nil {
				return err
			}
			return b.up(PrimaryID)
		}),
		"hold_drag": b.fn(6, func(a []float64) error {
			if err := b.down(PrimaryID, a[0], a[1]); err != nil {
				return err
			}
			if err := b.stay(a[4]); err != nil {
				return err
			}
			if err := b.move(PrimaryID, a[2], a[3], a[5]); err != nil {
				return err
			}
			return b.up(PrimaryID)
		}),
		"rotate": b.fn(4, func(a []float64) error {
			if err := b.down(PrimaryID, a[0], a[1]); err != nil {
				return err
			}
			if err := b.move(PrimaryID, a[0]+a[2], a[1]+a[3], 0.25); err != nil {
				return err
			}
			return b.up(PrimaryID)
		}),
		"pinch": b.fn(5, func(a []float64) error { return b.pinch(a[0], a[1], a[2], a[3], a[4]) }),
		"frames": func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Int{Value: int64(len(b.frames))}, nil
		},
	}
}

// fn adapts a numeric built-in taking exactly n arguments.
func (b *builder) fn(n int, body func([]float64) error) builtin {
	return func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != n {
			return nil, tengo.ErrWrongNumArguments
		}
		vals := make([]float64, n)
		for i, arg := range args {
			v, ok := tengo.ToFloat64(arg)
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{
					Name:     argName(i),
					Expected: "int or float",
					Found:    arg.TypeName(),
				}
			}
			vals[i] = v
		}
		if err := body(vals); err != nil {
			return nil, err
		}
		return tengo.UndefinedValue, nil
	}
}

func argName(i int) string {
	names := []string{"first", "second", "third", "fourth", "fifth", "sixth"}
	if i < len(names) {
		return names[i]
	}
	return "argument"
}
