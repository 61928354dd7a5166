package main

import (
	"errors"
	"fmt"
)

// maxDocuments is the number of document slots a reviewer can fill
const maxDocuments = 4

// ErrSlotOutOfRange is returned for slot indexes outside [0, maxDocuments)
var ErrSlotOutOfRange = errors.New("document slot out of range")

// Document is one loaded draft
type Document struct {
	Content string
	Name    string
	Source  string // path or REV:path the content was read from
}

// Loaded reports whether the slot holds any content
func (d Document) Loaded() bool {
	return d.Content != ""
}

// Pair selects the left and right slots of a comparison
type Pair struct {
	Left  int
	Right int
}

// DefaultPair is the pair shown before the reviewer picks one
var DefaultPair = Pair{Left: 0, Right: 1}

// DocumentStore holds the drafts loaded for review
type DocumentStore struct {
	docs [maxDocuments]Document
}

// Load stores content in slot index
func (s *DocumentStore) Load(index int, content, name, source string) error {
	if err := checkSlot(index); err != nil {
		return err
	}
	s.docs[index] = Document{Content: content, Name: name, Source: source}
	return nil
}

// Clear empties slot index
func (s *DocumentStore) Clear(index int) error {
	if err := checkSlot(index); err != nil {
		return err
	}
	s.docs[index] = Document{}
	return nil
}

// Reset empties every slot
func (s *DocumentStore) Reset() {
	s.docs = [maxDocuments]Document{}
}

// Get returns the document in slot index
func (s *DocumentStore) Get(index int) (Document, error) {
	if err := checkSlot(index); err != nil {
		return Document{}, err
	}
	return s.docs[index], nil
}

// FirstEmptySlot returns the lowest slot without content. ok is false when
// every slot is filled.
func (s *DocumentStore) FirstEmptySlot() (index int, ok bool) {
	for i, doc := range s.docs {
		if !doc.Loaded() {
			return i, true
		}
	}
	return 0, false
}

// List returns all slots in order, including empty ones
func (s *DocumentStore) List() []Document {
	docs := make([]Document, maxDocuments)
	copy(docs, s.docs[:])
	return docs
}

// Loaded returns the number of slots holding content
func (s *DocumentStore) Loaded() int {
	count := 0
	for _, doc := range s.docs {
		if doc.Loaded() {
			count++
		}
	}
	return count
}

// Comparable reports whether at least two documents are loaded
func (s *DocumentStore) Comparable() bool {
	return s.Loaded() >= 2
}

// SlotForSource returns the slot that was loaded from source
func (s *DocumentStore) SlotForSource(source string) (int, bool) {
	for i, doc := range s.docs {
		if doc.Source != "" && doc.Source == source {
			return i, true
		}
	}
	return 0, false
}

// Label returns the display label for slot index
func (s *DocumentStore) Label(index int) string {
	doc, err := s.Get(index)
	if err != nil {
		return ""
	}
	return slotLabel(index, doc.Name)
}

func slotLabel(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("Draft %d", index+1)
	}
	return fmt.Sprintf("Draft %d: %s", index+1, name)
}

func checkSlot(index int) error {
	if index < 0 || index >= maxDocuments {
		return fmt.Errorf("slot %d: %w", index, ErrSlotOutOfRange)
	}
	return nil
}

// ValidPair keeps active when both of its slots are loaded, otherwise
// falls back to the first two loaded slots, otherwise DefaultPair.
func ValidPair(docs []Document, active Pair) Pair {
	if loadedAt(docs, active.Left) && loadedAt(docs, active.Right) && active.Left != active.Right {
		return active
	}

	var loaded []int
	for i, doc := range docs {
		if doc.Loaded() {
			loaded = append(loaded, i)
		}
	}
	if len(loaded) >= 2 {
		return Pair{Left: loaded[0], Right: loaded[1]}
	}
	return DefaultPair
}

// WithLeft returns p with its left slot replaced, unless index is already
// the right slot.
func (p Pair) WithLeft(index int) Pair {
	if index == p.Right {
		return p
	}
	return Pair{Left: index, Right: p.Right}
}

// WithRight returns p with its right slot replaced, unless index is already
// the left slot.
func (p Pair) WithRight(index int) Pair {
	if index == p.Left {
		return p
	}
	return Pair{Left: p.Left, Right: index}
}

// AdjacentPairs lists consecutive slot pairs that are both loaded
func AdjacentPairs(docs []Document) []Pair {
	var pairs []Pair
	for i := 0; i+1 < len(docs); i++ {
		if docs[i].Loaded() && docs[i+1].Loaded() {
			pairs = append(pairs, Pair{Left: i, Right: i + 1})
		}
	}
	return pairs
}

// nextLoadedSlot returns the next loaded slot after from, wrapping around
// and skipping skip. It returns from when no other slot qualifies.
func nextLoadedSlot(docs []Document, from, skip int) int {
	for step := 1; step <= len(docs); step++ {
		i := (from + step) % len(docs)
		if i != skip && docs[i].Loaded() {
			return i
		}
	}
	return from
}

func loadedAt(docs []Document, index int) bool {
	return index >= 0 && index < len(docs) && docs[index].Loaded()
}
