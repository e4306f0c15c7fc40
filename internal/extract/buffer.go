package extract

import "sync"

// Buffer is the process-wide per-file CSS mapping: exactly one mapping
// from source id to accumulated CSS text, shared by every Coordinator that
// transforms files for the same build. The zero value is ready to use.
//
// Mutation rules: Coordinator.Transform first deletes the entry for the
// id it is about to process, then on success overwrites it with the
// file's accumulated CSS — so a re-transform replaces, never appends to,
// the previous entry.
type Buffer struct {
	mu   sync.Mutex
	data map[string]string
}

// Store overwrites (or creates) the CSS text for id.
func (b *Buffer) Store(id, css string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		b.data = make(map[string]string)
	}
	b.data[id] = css
}

// Load returns the stored CSS text for id, if any.
func (b *Buffer) Load(id string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	css, ok := b.data[id]
	return css, ok
}

// Delete removes id's entry, if present.
func (b *Buffer) Delete(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, id)
}
