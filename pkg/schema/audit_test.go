package schema

import (
	"testing"
	"time"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditEventV1(t *testing.T) {
	var auditSchema avro.Schema
	require.NotPanics(t, func() {
		auditSchema = AuditEventV1Avro()
	})

	in := AuditEventV1{
		EventID:    "0b6f6a3e-7f0e-4a4c-9d5e-2d0b1f1c9a10",
		Kind:       "order.status_updated",
		Subject:    "42",
		Attributes: map[string]string{"from": "PENDING", "to": "COMPLETED"},
		OccurredAt: time.UnixMilli(1_700_000_000_123).UTC(),
	}

	data, err := avro.Marshal(auditSchema, in)
	require.NoError(t, err)

	var out AuditEventV1
	require.NoError(t, avro.Unmarshal(auditSchema, data, &out))

	assert.Equal(t, in.EventID, out.EventID)
	assert.Equal(t, in.Kind, out.Kind)
	assert.Equal(t, in.Subject, out.Subject)
	assert.Equal(t, in.Attributes, out.Attributes)
	assert.True(t, in.OccurredAt.Equal(out.OccurredAt))
}
