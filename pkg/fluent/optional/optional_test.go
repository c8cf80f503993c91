package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	t.Parallel()

	o := Of(5)
	assert.True(t, o.IsPresent())
	assert.False(t, o.IsEmpty())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 5, o.MustGet())
	assert.Equal(t, 5, o.OrElse(9))

	var p *int
	assert.True(t, Of(p).IsPresent())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	o := Empty[string]()
	assert.True(t, o.IsEmpty())
	v, ok := o.Get()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, "other", o.OrElse("other"))
	assert.Equal(t, "lazy", o.OrElseGet(func() string { return "lazy" }))
	assert.PanicsWithValue(t, ErrEmpty, func() { o.MustGet() })

	var zero Optional[int]
	assert.True(t, zero.IsEmpty())
}

func TestOfNillable(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, OfNillable(p).IsEmpty())
	assert.True(t, OfNillable[any](nil).IsEmpty())
	assert.True(t, OfNillable([]int(nil)).IsEmpty())
	assert.True(t, OfNillable(map[string]int(nil)).IsEmpty())
	assert.True(t, OfNillable[error](nil).IsEmpty())

	n := 3
	assert.True(t, OfNillable(&n).IsPresent())
	assert.True(t, OfNillable(0).IsPresent())
	assert.True(t, OfNillable("").IsPresent())
	assert.True(t, OfNillable([]int{}).IsPresent())
}

func TestIfPresent(t *testing.T) {
	t.Parallel()

	var seen []int
	Of(1).IfPresent(func(v int) { seen = append(seen, v) })
	Empty[int]().IfPresent(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{1}, seen)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Optional[x]", Of("x").String())
	assert.Equal(t, "Optional.empty", Empty[string]().String())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var fn func()
	var ch chan int
	var err error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(fn))
	assert.True(t, IsNil(ch))
	assert.True(t, IsNil(err))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(struct{}{}))
	assert.False(t, IsNil(make(chan int)))
}
