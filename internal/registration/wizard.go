package registration

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/tracing"
)

// Step is the screen the wizard is on.
type Step int

const (
	Step1 Step = iota + 1
	Step2
)

func (s Step) String() string {
	switch s {
	case Step1:
		return "step1"
	case Step2:
		return "step2"
	default:
		return "unknown"
	}
}

// Result is the outcome of a submission.
type Result struct {
	// Step is the wizard step after the call.
	Step Step
	// Errors are the rendered messages, in field order. Empty on success.
	Errors []string
	// FieldErrors carry the same failures with the field they belong to.
	FieldErrors []*FieldValidationError
	// Committed is true when a record was stored and inputs should be cleared.
	Committed bool
}

// OK reports whether the submission passed validation.
func (r Result) OK() bool {
	return len(r.FieldErrors) == 0
}

// check is one validator bound to a draft field.
type check struct {
	field Field
	run   func(d Draft) string
}

// Wizard is the two-step state machine. Callers own it; several wizards
// may share a Store or use their own.
//
// Wizard is not safe for concurrent use.
type Wizard struct {
	id     string
	step   Step
	draft  Draft
	store  *Store
	clock  Clock
	tracer trace.Tracer

	step1Checks []check
	step2Checks []check
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithClock sets the clock used for the age check.
func WithClock(c Clock) Option {
	return func(w *Wizard) {
		w.clock = c
	}
}

// WithTracer sets the tracer used for per-action spans.
func WithTracer(t trace.Tracer) Option {
	return func(w *Wizard) {
		w.tracer = t
	}
}

// NewWizard creates a wizard on Step1 that commits into store.
func NewWizard(store *Store, opts ...Option) *Wizard {
	w := &Wizard{
		id:     uuid.NewString(),
		step:   Step1,
		store:  store,
		clock:  RealClock{},
		tracer: noop.NewTracerProvider().Tracer("noop"),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.step1Checks = []check{
		{FieldFirstName, func(d Draft) string { return ValidateName(d.FirstName) }},
		{FieldLastName, func(d Draft) string { return ValidateName(d.LastName) }},
		{FieldEmail, func(d Draft) string { return ValidateEmail(d.Email) }},
	}
	w.step2Checks = append(slices.Clone(w.step1Checks),
		check{FieldPassword, func(d Draft) string { return ValidatePassword(d.Password) }},
		check{FieldConfirmPassword, func(d Draft) string { return ValidateConfirmPassword(d.Password, d.ConfirmPassword) }},
		check{FieldDateOfBirth, func(d Draft) string { return ValidateDateOfBirth(d.DateOfBirth, w.clock.Now()) }},
		check{FieldGender, func(d Draft) string { return ValidateGender(d.Gender) }},
	)

	return w
}

// ID identifies this wizard instance in logs and traces.
func (w *Wizard) ID() string {
	return w.id
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns the step-1 values accepted so far. It is empty on Step1.
func (w *Wizard) Draft() Draft {
	return w.draft
}

// Store returns the store records are committed to.
func (w *Wizard) Store() *Store {
	return w.store
}

// SubmitStep1 handles the "next" action.
// All three fields are validated even after a failure.
func (w *Wizard) SubmitStep1(firstName, lastName, email string) Result {
	_, span := w.tracer.Start(context.Background(), tracing.SpanSubmitStep1)
	defer span.End()

	d := Draft{FirstName: firstName, LastName: lastName, Email: email}.trimmed()

	res := w.run(w.step1Checks, d)
	if res.OK() {
		w.draft = d
		w.step = Step2
		log.Debug(log.CatWizard, "advanced to step 2", "wizard", w.id)
	}
	res.Step = w.step

	span.SetAttributes(
		attribute.String(tracing.AttrWizardID, w.id),
		attribute.String(tracing.AttrStep, w.step.String()),
		attribute.Int(tracing.AttrErrorCount, len(res.Errors)),
	)
	return res
}

// SubmitStep2 handles the "save" action.
//
// The step-1 fields of d are validated again alongside the step-2 fields.
// On success the record is inserted, the draft is cleared and the wizard
// returns to Step1 with Committed set. Called on Step1 it does nothing.
func (w *Wizard) SubmitStep2(d Draft) Result {
	_, span := w.tracer.Start(context.Background(), tracing.SpanSubmitStep2)
	defer span.End()

	span.SetAttributes(attribute.String(tracing.AttrWizardID, w.id))

	if w.step != Step2 {
		span.SetAttributes(attribute.String(tracing.AttrStep, w.step.String()))
		return Result{Step: w.step}
	}

	d = d.trimmed()
	res := w.run(w.step2Checks, d)
	if res.OK() {
		w.store.Insert(d.toRecord())
		w.draft = Draft{}
		w.step = Step1
		res.Committed = true

		span.AddEvent(tracing.EventRecordInserted)
		log.Debug(log.CatStore, "record inserted", "wizard", w.id, "records", w.store.Len())
	}
	res.Step = w.step

	span.SetAttributes(
		attribute.String(tracing.AttrStep, w.step.String()),
		attribute.Int(tracing.AttrErrorCount, len(res.Errors)),
		attribute.Bool(tracing.AttrCommitted, res.Committed),
		attribute.Int(tracing.AttrRecordSize, w.store.Len()),
	)
	return res
}

// GoBack handles the "back" action: return to Step1 and drop the draft.
// The store is never touched.
func (w *Wizard) GoBack() {
	_, span := w.tracer.Start(context.Background(), tracing.SpanGoBack)
	defer span.End()

	if w.step == Step2 {
		log.Debug(log.CatWizard, "back to step 1", "wizard", w.id)
	}
	w.step = Step1
	w.draft = Draft{}

	span.SetAttributes(
		attribute.String(tracing.AttrWizardID, w.id),
		attribute.String(tracing.AttrStep, w.step.String()),
	)
}

// run evaluates every check in order and collects the failures.
func (w *Wizard) run(checks []check, d Draft) Result {
	res := Result{
		Errors:      make([]string, 0, len(checks)),
		FieldErrors: make([]*FieldValidationError, 0, len(checks)),
	}
	for _, c := range checks {
		if msg := c.run(d); msg != "" {
			fe := newFieldValidationError(c.field, msg)
			res.FieldErrors = append(res.FieldErrors, fe)
			res.Errors = append(res.Errors, fe.Error())
		}
	}
	return res
}
