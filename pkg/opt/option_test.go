package opt_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/optres/pkg/opt"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	o := opt.Some(42)

	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestNone(t *testing.T) {
	o := opt.None[int]()

	assert.False(t, o.IsSome())
	assert.True(t, o.IsNone())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSome_ZeroValueRoundTrip(t *testing.T) {
	o := opt.Some("")

	assert.True(t, o.IsSome())
	assert.Equal(t, "", o.Unwrap())

	type empty struct{}
	e := opt.Some(empty{})
	assert.True(t, e.IsSome())
	assert.Equal(t, empty{}, e.Unwrap())
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, "report.pdf", opt.Some("report.pdf").Unwrap())

	assert.Panics(t, func() {
		opt.None[string]().Unwrap()
	})
}

func TestExpect(t *testing.T) {
	assert.NotPanics(t, func() {
		opt.Some(1).Expect("must be present")
	})

	assert.PanicsWithValue(t, "opt: title is required", func() {
		opt.None[string]().Expect("title is required")
	})
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 5, opt.Some(5).UnwrapOr(9))
	assert.Equal(t, 9, opt.None[int]().UnwrapOr(9))
}

func TestMap(t *testing.T) {
	o := opt.Map(opt.Some(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, o.Unwrap())

	calls := 0
	n := opt.Map(opt.None[int](), func(v int) int {
		calls++
		return v * 2
	})
	assert.True(t, n.IsNone())
	assert.Equal(t, 0, calls, "map must not invoke f on none")
}

func TestMap_ChangesType(t *testing.T) {
	o := opt.Map(opt.Some(7), strconv.Itoa)
	assert.Equal(t, "7", o.Unwrap())
}

// present(5).map(x*2).unwrap_or(0) == 10; absent path yields the default.
func TestMapUnwrapOrScenario(t *testing.T) {
	double := func(x int) int { return x * 2 }

	assert.Equal(t, 10, opt.Map(opt.Some(5), double).UnwrapOr(0))
	assert.Equal(t, 0, opt.Map(opt.None[int](), double).UnwrapOr(0))
}

func TestBind(t *testing.T) {
	halve := func(v int) opt.Option[int] {
		if v%2 != 0 {
			return opt.None[int]()
		}
		return opt.Some(v / 2)
	}

	assert.Equal(t, 4, opt.Bind(opt.Some(8), halve).Unwrap())
	assert.True(t, opt.Bind(opt.Some(7), halve).IsNone())

	calls := 0
	n := opt.Bind(opt.None[int](), func(v int) opt.Option[int] {
		calls++
		return opt.Some(v)
	})
	assert.True(t, n.IsNone())
	assert.Equal(t, 0, calls)
}

func TestAsRef(t *testing.T) {
	o := opt.Some("payload")

	ref := opt.AsRef(&o)
	assert.True(t, ref.IsSome())
	assert.Equal(t, "payload", *ref.Unwrap())

	// the original is still valid and untouched after the view
	assert.True(t, o.IsSome())
	assert.Equal(t, "payload", o.Unwrap())

	n := opt.None[string]()
	assert.True(t, opt.AsRef(&n).IsNone())
}

func TestAsRef_MapOverView(t *testing.T) {
	o := opt.Some("payload")

	length := opt.Map(opt.AsRef(&o), func(s *string) int { return len(*s) })
	assert.Equal(t, 7, length.Unwrap())

	// the owner still holds the original after the transform
	assert.Equal(t, "payload", o.Unwrap())
}

func TestOkOr(t *testing.T) {
	errMissing := errors.New("missing")

	r := opt.OkOr(opt.Some(3), errMissing)
	assert.True(t, r.IsSuccess())
	assert.Equal(t, 3, r.Value())

	f := opt.OkOr(opt.None[int](), errMissing)
	assert.True(t, f.IsFailure())
	assert.Equal(t, errMissing, f.Err())
}

func TestFromResult(t *testing.T) {
	assert.Equal(t, 3, opt.FromResult(opt.OkOr(opt.Some(3), nil)).Unwrap())
	assert.True(t, opt.FromResult(opt.OkOr(opt.None[int](), errors.New("gone"))).IsNone())
}
