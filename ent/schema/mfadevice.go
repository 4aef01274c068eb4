package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MFADevice holds the schema definition for the MFADevice entity.
type MFADevice struct {
	ent.Schema
}

// Fields of the MFADevice.
func (MFADevice) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable(),
		field.String("user_id"),
		field.String("device_type").Comment("totp, backup_codes, sms, email"),
		field.String("name"),
		field.String("secret").Optional().Sensitive(),
		field.Strings("backup_codes").Optional(),
		field.String("destination").Optional().Comment("phone number or email address"),
		field.Bool("is_active").Default(false),
		field.Time("created_at").Default(time.Now().UTC).Immutable(),
		field.Time("last_used_at").Optional().Nillable(),
		field.Int("usage_count").Default(0),
	}
}

// Indexes of the MFADevice.
func (MFADevice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
