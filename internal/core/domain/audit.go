package domain

import "time"

type AuditKind string

const (
	AuditOrderStatusUpdated AuditKind = "order.status_updated"
	AuditBatchSubmitted     AuditKind = "products.batch_submitted"
	AuditProductCreated     AuditKind = "product.created"
	AuditProductUpdated     AuditKind = "product.updated"
	AuditProductDeleted     AuditKind = "product.deleted"
	AuditCategoryCreated    AuditKind = "category.created"
	AuditCategoryDeleted    AuditKind = "category.deleted"
	AuditCategoryLinked     AuditKind = "category.product_added"
	AuditCategoryUnlinked   AuditKind = "category.product_removed"
)

// AuditEvent records an admin mutation that the backend accepted.
type AuditEvent struct {
	ID         string
	Kind       AuditKind
	Subject    string
	Attributes map[string]string
	OccurredAt time.Time
}
