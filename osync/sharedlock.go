// Package osync: writer-priority reader-writer lock.
package osync

// SharedLock separates read and write access: any number of readers
// may hold the lock together, writers hold it exclusively.
//
// Fairness policy: writer priority. StartWrite claims its slot in the
// writer count before blocking, and StartRead blocks while any writer
// is active or waiting — a continuous stream of new readers can never
// starve a writer. No FIFO order is guaranteed among multiple waiting
// writers or among multiple waiting readers.
//
// EndRead/EndWrite require the caller to hold the corresponding
// access; violating that is undefined behavior.
type SharedLock struct {
	mu            Lock
	noWritersLeft *Condition // readers wait here while writers exist
	isOnlyAccess  *Condition // writers wait here for exclusivity
	readerCount   int
	writerCount   int // active plus waiting writers
	isWriting     bool
}

// NewSharedLock returns an uncontended SharedLock.
func NewSharedLock() *SharedLock {
	l := &SharedLock{}
	l.noWritersLeft = NewCondition(&l.mu)
	l.isOnlyAccess = NewCondition(&l.mu)

	return l
}

// StartRead blocks while any writer is active or waiting, then joins
// the reader group.
func (l *SharedLock) StartRead() {
	l.mu.Acquire()

	for l.writerCount != 0 {
		l.noWritersLeft.Wait(true)
	}
	l.readerCount++

	l.mu.Release()
}

// StartWrite claims writer priority immediately, then blocks until no
// reader and no other writer holds the lock.
func (l *SharedLock) StartWrite() {
	l.mu.Acquire()

	// Claim before blocking so new readers are excluded while we wait.
	l.writerCount++
	for l.readerCount != 0 || l.isWriting {
		l.isOnlyAccess.Wait(true)
	}
	l.isWriting = true

	l.mu.Release()
}

// EndRead leaves the reader group; the last reader out hands the lock
// to any waiting writer.
func (l *SharedLock) EndRead() {
	l.mu.Acquire()

	l.readerCount--
	if l.readerCount == 0 && l.writerCount > 0 {
		l.isOnlyAccess.Broadcast()
	}

	l.mu.Release()
}

// EndWrite releases exclusive access, waking the next waiting writer
// if one exists, otherwise all waiting readers.
func (l *SharedLock) EndWrite() {
	l.mu.Acquire()

	l.writerCount--
	l.isWriting = false
	if l.writerCount > 0 {
		l.isOnlyAccess.Broadcast()
	} else {
		l.noWritersLeft.Broadcast()
	}

	l.mu.Release()
}
