// Package loop implements the single-threaded cooperative event loop that
// drives the whole compositor core: it multiplexes backend file
// descriptors, client file descriptors, and timers, and is the only
// scheduling primitive the rest of the module depends on (spec §5).
package loop

import (
	"container/heap"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bwhmather/hayward/internal/log"
)

// Loop owns one epoll instance and a timer min-heap. It is not safe for
// concurrent use; everything it dispatches runs on the goroutine that
// calls Run.
type Loop struct {
	epfd int

	handlers map[int32]func(events uint32)
	timers   timerHeap

	closing bool
}

func New() (*Loop, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &Loop{epfd: epfd, handlers: make(map[int32]func(events uint32))}, nil
}

// AddFD registers fd for the given epoll event mask (EPOLLIN, EPOLLOUT,
// ...); handler is invoked with the ready mask whenever the loop wakes for
// it.
func (l *Loop) AddFD(fd int, mask uint32, handler func(events uint32)) error {
	l.handlers[int32(fd)] = handler
	ev := unix.EpollEvent{Events: mask, Fd: int32(fd)}
	return unix.EpollCtl(l.epfd, unix.EPOLL_CTL_ADD, fd, &ev)
}

// RemoveFD deregisters fd. Long-running work is never permitted in
// handlers (spec §5); callers are expected to have already drained fd.
func (l *Loop) RemoveFD(fd int) error {
	delete(l.handlers, int32(fd))
	return unix.EpollCtl(l.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

// After schedules f to run once after d has elapsed, satisfying
// txn.Scheduler. It returns a cancel function.
func (l *Loop) After(d time.Duration, f func()) (cancel func()) {
	t := &timerEntry{at: time.Now().Add(d), fn: f}
	heap.Push(&l.timers, t)
	return func() { t.cancelled = true }
}

// Stop breaks out of Run after the current dispatch pass.
func (l *Loop) Stop() { l.closing = true }

// Run dispatches events until Stop is called. Each iteration computes the
// epoll timeout from the next pending timer, blocks, then runs any fired
// timers before the newly-ready FD handlers — matching wl_event_loop's
// "timers before new I/O" ordering.
func (l *Loop) Run() error {
	events := make([]unix.EpollEvent, 32)
	for !l.closing {
		timeout := l.nextTimeout()
		n, err := unix.EpollWait(l.epfd, events, timeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		l.fireTimers()
		for i := 0; i < n; i++ {
			ev := events[i]
			if h, ok := l.handlers[ev.Fd]; ok {
				h(ev.Events)
			}
		}
	}
	return nil
}

func (l *Loop) nextTimeout() int {
	for l.timers.Len() > 0 && l.timers[0].cancelled {
		heap.Pop(&l.timers)
	}
	if l.timers.Len() == 0 {
		return -1
	}
	d := time.Until(l.timers[0].at)
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)>>1) {
		ms = int64(^uint32(0) >> 1)
	}
	return int(ms)
}

func (l *Loop) fireTimers() {
	now := time.Now()
	for l.timers.Len() > 0 {
		t := l.timers[0]
		if t.cancelled {
			heap.Pop(&l.timers)
			continue
		}
		if t.at.After(now) {
			break
		}
		heap.Pop(&l.timers)
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("loop: timer handler panicked: %v", r)
				}
			}()
			t.fn()
		}()
	}
}

// Close releases the epoll file descriptor.
func (l *Loop) Close() error {
	return unix.Close(l.epfd)
}
