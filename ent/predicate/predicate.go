// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MFADevice is the predicate function for mfadevice builders.
type MFADevice func(*sql.Selector)
