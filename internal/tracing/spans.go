package tracing

// Span names, one per wizard action.
const (
	SpanSubmitStep1 = "wizard.submit_step1"
	SpanSubmitStep2 = "wizard.submit_step2"
	SpanGoBack      = "wizard.go_back"
)

// Span attribute keys.
const (
	AttrWizardID   = "wizard.id"
	AttrStep       = "wizard.step"
	AttrErrorCount = "wizard.error_count"
	AttrCommitted  = "wizard.committed"
	AttrRecordSize = "store.size"
)

// Span event names.
const (
	EventRecordInserted = "record.inserted"
)
