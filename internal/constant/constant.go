package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	DocumentStatusPending = "pending"
	DocumentStatusIndexed = "indexed"
	DocumentStatusFailed  = "failed"

	KnowledgeEntityStatusActive     = "active"
	KnowledgeEntityStatusSuperseded = "superseded"
)
