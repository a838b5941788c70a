// SPDX-License-Identifier: Unlicense OR MIT

package text

// widthCache is a bounded LRU map from strings to their measured width.
type widthCache struct {
	m          map[string]*widthElem
	head, tail *widthElem
}

type widthElem struct {
	next, prev *widthElem
	key        string
	width      float64
}

const maxSize = 256

func (l *widthCache) Get(k string) (float64, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.width, true
	}
	return 0, false
}

func (l *widthCache) Put(k string, w float64) {
	if l.m == nil {
		l.m = make(map[string]*widthElem)
		l.head = new(widthElem)
		l.tail = new(widthElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if e, ok := l.m[k]; ok {
		e.width = w
		l.remove(e)
		l.insert(e)
		return
	}
	val := &widthElem{key: k, width: w}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *widthCache) remove(e *widthElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *widthCache) insert(e *widthElem) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
