package kxarena

// pushTail appends a to the end of the allocator's arena list.
func (al *Allocator) pushTail(a *arena) {
	a.prev = al.tail
	a.next = nil
	if al.tail != nil {
		al.tail.next = a
	}
	al.tail = a
	if al.head == nil {
		al.head = a
	}
}

// unlink splices a out of the allocator's arena list. It does not call
// a.destroy; the caller is responsible for releasing a's region.
func (al *Allocator) unlink(a *arena) {
	if a.prev != nil {
		a.prev.next = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	}
	if al.head == a {
		al.head = a.next
	}
	if al.tail == a {
		al.tail = a.prev
	}
	a.prev, a.next = nil, nil
}
