package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const AuditEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "admin",
	"name": "audit_event",
	"fields" : [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "subject", "type": "string"},
		{"name": "attributes", "type": {"type": "map", "values": "string"}},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type AuditEventV1 struct {
	EventID    string            `avro:"event_id"`
	Kind       string            `avro:"kind"`
	Subject    string            `avro:"subject"`
	Attributes map[string]string `avro:"attributes"`
	OccurredAt time.Time         `avro:"occurred_at"`
}

// AuditEventV1Avro panics if the schema text is broken.
func AuditEventV1Avro() avro.Schema {
	return avro.MustParse(AuditEventSchemaTextV1)
}
