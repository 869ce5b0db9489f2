package layout

import (
	"reflect"

	"tgobjects/pkg/logx"
)

// Change lists the keyboards that differ between two layouts.
type Change struct {
	Added   []string
	Removed []string
	Changed []string
	Logging bool
}

func (c Change) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0 && !c.Logging
}

// Fields returns the change as log fields.
func (c Change) Fields() []logx.Field {
	return []logx.Field{
		logx.Strings("added", c.Added),
		logx.Strings("removed", c.Removed),
		logx.Strings("changed", c.Changed),
		logx.Bool("logging_changed", c.Logging),
	}
}

// Diff compares the specs behind two layouts. A nil layout counts as empty.
func Diff(oldL, newL *Layout) Change {
	var oldF, newF File
	if oldL != nil {
		oldF = oldL.spec
	}
	if newL != nil {
		newF = newL.spec
	}

	var c Change
	for _, name := range sortedKeys(newF.Keyboards) {
		prev, ok := oldF.Keyboards[name]
		switch {
		case !ok:
			c.Added = append(c.Added, name)
		case !reflect.DeepEqual(prev, newF.Keyboards[name]):
			c.Changed = append(c.Changed, name)
		}
	}
	for _, name := range sortedKeys(oldF.Keyboards) {
		if _, ok := newF.Keyboards[name]; !ok {
			c.Removed = append(c.Removed, name)
		}
	}
	c.Logging = !reflect.DeepEqual(oldF.Logging, newF.Logging)
	return c
}
