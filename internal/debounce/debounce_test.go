package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu   sync.Mutex
	vals []string
}

func (r *recorder) commit(v string) {
	r.mu.Lock()
	r.vals = append(r.vals, v)
	r.mu.Unlock()
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.vals...)
}

func TestDebouncer_TrailingValueOnly(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.commit)

	for _, v := range []string{"d", "du", "dun", "dune"} {
		d.Set(v)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"dune"}, rec.get())
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.commit)

	d.Set("a")
	assert.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)
	d.Set("b")
	assert.Eventually(t, func() bool { return len(rec.get()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, rec.get())
}

func TestDebouncer_StopPreventsFire(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.commit)

	d.Set("a")
	d.Stop()
	d.Set("b")
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, rec.get())
	assert.False(t, d.Pending())
}

func TestDebouncer_Flush(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.commit)

	assert.False(t, d.Flush())

	d.Set("x")
	assert.True(t, d.Pending())
	assert.True(t, d.Flush())
	assert.Equal(t, []string{"x"}, rec.get())
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
}
