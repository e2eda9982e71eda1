package priority

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

const fakeHandle Handle = 0x7

type setClassCall struct {
	handle Handle
	class  Class
}

type fakeClasses struct {
	class  Class
	err    error
	setErr error
	sets   []setClassCall
}

func (f *fakeClasses) CurrentProcess() Handle { return fakeHandle }

func (f *fakeClasses) PriorityClass(h Handle) (Class, error) {
	return f.class, f.err
}

func (f *fakeClasses) SetPriorityClass(h Handle, class Class) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, setClassCall{handle: h, class: class})
	f.class = class
	return nil
}

type fakeNice struct {
	mu       sync.Mutex
	niceness int
	readErr  error
	niceErr  error
	reads    int
	deltas   []int
}

func (f *fakeNice) Niceness() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	return f.niceness, f.readErr
}

func (f *fakeNice) Nice(delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.niceErr != nil {
		return f.niceness, f.niceErr
	}
	f.deltas = append(f.deltas, delta)
	f.niceness += delta
	return f.niceness, nil
}

func quietLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestMapper(o OS, opts ...Option) *Mapper {
	base := []Option{WithPlatform(Static(o)), WithLogger(quietLogger())}
	return NewMapper(append(base, opts...)...)
}
