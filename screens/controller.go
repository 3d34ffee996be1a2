// Package screens holds the state behind the entity screens, the dashboard
// and the navigation shell. Every entity screen is one Controller
// configured by a Resource.
package screens

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// FilterAll is the identity filter every screen offers
const FilterAll = "all"

var (
	ErrEditNotSupported   = errors.New("editing is not supported for this resource")
	ErrDeleteNotSupported = errors.New("deleting is not supported for this resource")
	ErrRecordNotFound     = errors.New("record not found")
	ErrModalClosed        = errors.New("no form is open")
	ErrNothingPending     = errors.New("no delete awaiting confirmation")
)

// ValidationError reports a missing or invalid form field. No request is
// sent for a form that fails validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Required returns a ValidationError when value is blank
func Required(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: label + " is required"}
	}
	return nil
}

// FirstError returns the first non-nil error
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Filter is a named category predicate
type Filter[T any] struct {
	Value string
	Label string
	// Match is nil for the identity filter
	Match func(record T, now time.Time) bool
}

// Resource configures a Controller for one resource. Update and Delete are
// nil when the API has no such endpoint.
type Resource[T any, F any] struct {
	// Label is the singular lower-case name, e.g. "case"
	Label string
	// Plural is used in notices, e.g. "cases"
	Plural string

	ID            func(T) string
	Filters       []Filter[T]
	DefaultFilter string
	// SearchFields returns the two fields matched by free-text search
	SearchFields func(T) (string, string)

	Blank    func() F
	Form     func(T) F
	Validate func(F) error

	DeletePrompt func(T) string

	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, form F) error
	Update func(ctx context.Context, id string, form F) error
	Delete func(ctx context.Context, id string) error

	Related []Related
}

// ModalMode tells whether the open form creates or edits
type ModalMode string

const (
	ModeCreate ModalMode = "create"
	ModeEdit   ModalMode = "edit"
)

// Modal is the open create/edit form
type Modal[F any] struct {
	Mode ModalMode
	ID   string
	Form F
}

// Confirmation is a delete awaiting the user's answer
type Confirmation struct {
	ID     string
	Prompt string
}

// Option configures a Controller
type Option func(*options)

type options struct {
	now      func() time.Time
	notifier Notifier
}

// WithClock sets the clock used by date filters
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithNotifier forwards every notice to n
func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// Controller is the state of one entity screen: the fetched records, the
// active filter and search, the open form and a pending delete
type Controller[T any, F any] struct {
	noticeQueue

	res     Resource[T, F]
	now     func() time.Time
	records []T
	byID    map[string]T
	filter  string
	search  string
	modal   *Modal[F]
	pending *Confirmation
}

// NewController creates a controller with the default filter selected
func NewController[T any, F any](res Resource[T, F], opts ...Option) *Controller[T, F] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	filter := res.DefaultFilter
	if filter == "" {
		filter = FilterAll
	}
	return &Controller[T, F]{
		noticeQueue: noticeQueue{notifier: o.notifier},
		res:         res,
		now:         o.now,
		byID:        map[string]T{},
		filter:      filter,
	}
}

// Label returns the singular resource name
func (c *Controller[T, F]) Label() string { return c.res.Label }

// Editable reports whether records can be edited
func (c *Controller[T, F]) Editable() bool { return c.res.Update != nil }

// Deletable reports whether records can be deleted
func (c *Controller[T, F]) Deletable() bool { return c.res.Delete != nil }

// Load fetches the records and every related collection in parallel. On
// failure the previous state is kept and an error notice is posted.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	var records []T
	g.Go(func() error {
		var err error
		records, err = c.res.List(gctx)
		return err
	})

	stores := make([]func(), len(c.res.Related))
	for i, related := range c.res.Related {
		i, related := i, related
		g.Go(func() error {
			store, err := related(gctx)
			stores[i] = store
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("Error fetching %s: %v", c.res.Plural, err)
		c.post(LevelError, fmt.Sprintf("Error loading %s. Please try again.", c.res.Plural))
		return err
	}

	c.records = records
	c.byID = make(map[string]T, len(records))
	for _, r := range records {
		c.byID[c.res.ID(r)] = r
	}
	for _, store := range stores {
		store()
	}
	return nil
}

// Records returns every fetched record in API order
func (c *Controller[T, F]) Records() []T {
	return c.records
}

// Record looks a fetched record up by id
func (c *Controller[T, F]) Record(id string) (T, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Filters returns the category filters offered by the screen
func (c *Controller[T, F]) Filters() []Filter[T] {
	return c.res.Filters
}

// Filter returns the selected filter value
func (c *Controller[T, F]) Filter() string { return c.filter }

// SetFilter selects a filter. An empty value selects the default and an
// unknown value matches everything.
func (c *Controller[T, F]) SetFilter(value string) {
	if value == "" {
		value = c.res.DefaultFilter
		if value == "" {
			value = FilterAll
		}
	}
	c.filter = value
}

// Search returns the search text
func (c *Controller[T, F]) Search() string { return c.search }

// SetSearch sets the free-text search
func (c *Controller[T, F]) SetSearch(q string) { c.search = q }

// View returns the records passing both the selected filter and the search
func (c *Controller[T, F]) View() []T {
	now := c.now()
	match := c.categoryMatch()
	q := strings.ToLower(strings.TrimSpace(c.search))

	view := make([]T, 0, len(c.records))
	for _, r := range c.records {
		if match != nil && !match(r, now) {
			continue
		}
		if !c.matchesSearch(r, q) {
			continue
		}
		view = append(view, r)
	}
	return view
}

func (c *Controller[T, F]) categoryMatch() func(T, time.Time) bool {
	for _, f := range c.res.Filters {
		if f.Value == c.filter {
			return f.Match
		}
	}
	return nil
}

func (c *Controller[T, F]) matchesSearch(r T, q string) bool {
	if q == "" || c.res.SearchFields == nil {
		return true
	}
	a, b := c.res.SearchFields(r)
	return strings.Contains(strings.ToLower(a), q) || strings.Contains(strings.ToLower(b), q)
}

// Modal returns the open form or nil
func (c *Controller[T, F]) Modal() *Modal[F] { return c.modal }

// OpenCreate opens the form with the resource defaults
func (c *Controller[T, F]) OpenCreate() {
	c.modal = &Modal[F]{Mode: ModeCreate, Form: c.res.Blank()}
}

// OpenEdit opens the form pre-populated from the record. Resources without
// an update endpoint get an info notice instead.
func (c *Controller[T, F]) OpenEdit(id string) error {
	if !c.Editable() {
		c.post(LevelInfo, fmt.Sprintf("Editing %s is not yet supported.", c.res.Plural))
		return ErrEditNotSupported
	}
	r, ok := c.byID[id]
	if !ok {
		c.post(LevelError, fmt.Sprintf("%s not found.", capitalize(c.res.Label)))
		return ErrRecordNotFound
	}
	c.modal = &Modal[F]{Mode: ModeEdit, ID: id, Form: c.res.Form(r)}
	return nil
}

// CloseModal discards the open form
func (c *Controller[T, F]) CloseModal() { c.modal = nil }

// Submit validates the form and creates or updates depending on the open
// modal. On success the records are re-fetched and the modal closes; on
// failure the modal stays open with the submitted values.
func (c *Controller[T, F]) Submit(ctx context.Context, form F) error {
	if c.modal == nil {
		return ErrModalClosed
	}
	c.modal.Form = form

	if c.res.Validate != nil {
		if err := c.res.Validate(form); err != nil {
			c.post(LevelError, err.Error())
			return err
		}
	}

	var err error
	if c.modal.Mode == ModeEdit {
		if !c.Editable() {
			return ErrEditNotSupported
		}
		err = c.res.Update(ctx, c.modal.ID, form)
	} else {
		err = c.res.Create(ctx, form)
	}
	if err != nil {
		log.Printf("Error saving %s: %v", c.res.Label, err)
		c.post(LevelError, fmt.Sprintf("Error saving %s. Please try again.", c.res.Label))
		return err
	}

	c.modal = nil
	c.post(LevelSuccess, fmt.Sprintf("%s saved.", capitalize(c.res.Label)))
	// A failed refresh posts its own notice; the mutation itself succeeded
	_ = c.Load(ctx)
	return nil
}

// Pending returns the delete awaiting confirmation, or nil
func (c *Controller[T, F]) Pending() *Confirmation { return c.pending }

// RequestDelete asks for confirmation before deleting a record. Nothing is
// sent until ConfirmDelete.
func (c *Controller[T, F]) RequestDelete(id string) error {
	if !c.Deletable() {
		c.post(LevelInfo, fmt.Sprintf("Deleting %s is not supported.", c.res.Plural))
		return ErrDeleteNotSupported
	}
	r, ok := c.byID[id]
	if !ok {
		c.post(LevelError, fmt.Sprintf("%s not found.", capitalize(c.res.Label)))
		return ErrRecordNotFound
	}
	prompt := fmt.Sprintf("Are you sure you want to delete this %s?", c.res.Label)
	if c.res.DeletePrompt != nil {
		prompt = c.res.DeletePrompt(r)
	}
	c.pending = &Confirmation{ID: id, Prompt: prompt}
	return nil
}

// ConfirmDelete deletes the pending record and re-fetches
func (c *Controller[T, F]) ConfirmDelete(ctx context.Context) error {
	if c.pending == nil {
		return ErrNothingPending
	}
	id := c.pending.ID
	c.pending = nil

	if err := c.res.Delete(ctx, id); err != nil {
		log.Printf("Error deleting %s: %v", c.res.Label, err)
		c.post(LevelError, fmt.Sprintf("Error deleting %s. Please try again.", c.res.Label))
		return err
	}

	c.post(LevelSuccess, fmt.Sprintf("%s deleted.", capitalize(c.res.Label)))
	// A failed refresh posts its own notice; the mutation itself succeeded
	_ = c.Load(ctx)
	return nil
}

// CancelDelete drops the pending delete without any request
func (c *Controller[T, F]) CancelDelete() { c.pending = nil }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
