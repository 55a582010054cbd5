package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.AuditPublisher = (*AuditProducer)(nil)

// An AuditProducer writes [domain.AuditEvent] records keyed by subject.
type AuditProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewAuditProducer(opts ...ProducerOpt) (AuditProducer, error) {
	const op = "NewAuditProducer"

	if len(opts) != 2 {
		return AuditProducer{}, opErr(ErrTooFewOpts, op)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return AuditProducer{}, opErr(err, op)
		}
	}
	if options.cl == nil || options.encoder == nil {
		return AuditProducer{}, opErr(ErrTooFewOpts, op)
	}

	return AuditProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "AuditProducer",
	}, nil
}

func (p AuditProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p AuditProducer) PublishAudit(ctx context.Context, e domain.AuditEvent) error {
	const op = "PublishAudit"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(e)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p AuditProducer) createRecord(e domain.AuditEvent) (*kgo.Record, error) {
	v, err := p.encoder.Encode(toAuditEventV1(e))
	if err != nil {
		return nil, err
	}
	return &kgo.Record{Key: []byte(e.Subject), Value: v}, nil
}

func toAuditEventV1(e domain.AuditEvent) (s schema.AuditEventV1) {
	s.EventID = e.ID
	s.Kind = string(e.Kind)
	s.Subject = e.Subject
	s.Attributes = e.Attributes
	if s.Attributes == nil {
		s.Attributes = map[string]string{}
	}
	s.OccurredAt = e.OccurredAt.UTC()
	return
}
