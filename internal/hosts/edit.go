package hosts

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned when an entry index does not exist.
var ErrIndexOutOfRange = errors.New("entry index out of range")

func (d *Document) checkIndex(i int) error {
	if i < 0 || i >= len(d.Entries) {
		return fmt.Errorf("%w: %d (have %d entries)", ErrIndexOutOfRange, i, len(d.Entries))
	}
	return nil
}

// Add appends an entry.
func (d *Document) Add(e Entry) {
	d.Entries = append(d.Entries, e.Clone())
}

// Replace overwrites the entry at index i.
func (d *Document) Replace(i int, e Entry) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Entries[i] = e.Clone()
	return nil
}

// Remove deletes the entry at index i, keeping the order of the rest.
func (d *Document) Remove(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Entries = slices.Delete(d.Entries, i, i+1)
	return nil
}

// SetEnabled enables or disables the entry at index i.
func (d *Document) SetEnabled(i int, enabled bool) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Entries[i].Enabled = enabled
	return nil
}

// Toggle flips the enabled state of the entry at index i and returns the new state.
func (d *Document) Toggle(i int) (bool, error) {
	if err := d.checkIndex(i); err != nil {
		return false, err
	}
	d.Entries[i].Enabled = !d.Entries[i].Enabled
	return d.Entries[i].Enabled, nil
}
