package controllerImp

import "sync"

// accountLocks serializes work per account: imports take the write side,
// exports and previews the read side. An entry lives only while someone
// holds or waits for it.
type accountLocks struct {
	mu sync.Mutex
	m  map[string]*accountLock
}

type accountLock struct {
	rw   sync.RWMutex
	refs int
}

func newAccountLocks() *accountLocks { return &accountLocks{m: map[string]*accountLock{}} }

func (l *accountLocks) ref(uid string) *accountLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	al, ok := l.m[uid]
	if !ok {
		al = &accountLock{}
		l.m[uid] = al
	}
	al.refs++
	return al
}

func (l *accountLocks) unref(uid string, al *accountLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	al.refs--
	if al.refs == 0 {
		delete(l.m, uid)
	}
}

// read takes the shared side for uid and returns its release.
func (l *accountLocks) read(uid string) func() {
	al := l.ref(uid)
	al.rw.RLock()
	return func() {
		al.rw.RUnlock()
		l.unref(uid, al)
	}
}

// write takes the exclusive side for uid and returns its release.
func (l *accountLocks) write(uid string) func() {
	al := l.ref(uid)
	al.rw.Lock()
	return func() {
		al.rw.Unlock()
		l.unref(uid, al)
	}
}

func (l *accountLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
