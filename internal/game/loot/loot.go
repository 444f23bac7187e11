// Package loot implements deterministic loot-table rotation.
//
// Drops are not rolled: every kill (or chest open) of the same template
// yields the next entry of its table, wrapping around. This keeps drop
// sequences reproducible.
package loot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/bqsolo/internal/data"
)

// Entry is one slot of a loot table. A single-kind entry drops one item,
// a multi-kind entry drops one item of each kind.
type Entry []data.Kind

// UnmarshalYAML accepts a single kind or a sequence of kinds.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var k data.Kind
		if err := node.Decode(&k); err != nil {
			return err
		}
		*e = Entry{k}
		return nil
	case yaml.SequenceNode:
		var kinds []data.Kind
		if err := node.Decode(&kinds); err != nil {
			return err
		}
		*e = Entry(kinds)
		return nil
	default:
		return fmt.Errorf("line %d: loot entry must be a kind or a list of kinds", node.Line)
	}
}

// Table is an ordered loot table.
type Table []Entry

// Kinds builds a table of single-kind entries.
func Kinds(kinds ...data.Kind) Table {
	t := make(Table, 0, len(kinds))
	for _, k := range kinds {
		t = append(t, Entry{k})
	}
	return t
}

// Cycler rotates through a loot table. The index only grows; the entry
// returned is table[index mod len].
type Cycler struct {
	table Table
	index int
}

// NewCycler creates a cycler positioned at the first entry.
func NewCycler(table Table) *Cycler {
	return &Cycler{table: table}
}

// Next returns the current entry and advances the index.
// Returns nil for an empty table without advancing.
func (c *Cycler) Next() Entry {
	if len(c.table) == 0 {
		return nil
	}
	entry := c.table[c.index%len(c.table)]
	c.index++
	return entry
}

// Index returns how many entries have been handed out so far.
func (c *Cycler) Index() int {
	return c.index
}

// Len returns the table length.
func (c *Cycler) Len() int {
	return len(c.table)
}
