package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Mutation op names recorded by a Recorder.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// Mutation describes one committed finalizer change: a replace that the store
// accepted. Precondition no-ops and failed writes are never recorded.
type Mutation struct {
	Time            time.Time
	Op              string
	Resource        Resource
	Name            string
	Token           string
	ResourceVersion string
}

// Recorder is an optional sink for committed mutations. Record failures must
// not fail the mutation; the Mutator logs them as warnings and moves on.
type Recorder interface {
	Record(ctx context.Context, m Mutation) error
}

// Mutator applies finalizer changes to objects of one custom resource type.
// It holds no state between calls: every operation fetches a fresh snapshot,
// mutates it locally, and issues at most one conditional replace. The replace
// carries the resourceVersion captured at read time, so a concurrent writer's
// update fails the write with a conflict instead of being lost.
//
// The Mutator never retries. Conflicts and transport failures are logged and
// surfaced to the caller, whose reconciliation cadence re-invokes the
// operation with a fresh read.
//
// A Mutator is safe for concurrent use.
type Mutator struct {
	store      Store
	res        Resource
	log        *slog.Logger // nil means use the package-level Logger()
	rec        Recorder     // nil means no mutation recording
	batchLimit int
}

// NewMutator builds a Mutator for one resource type. log may be nil to follow
// the package-level logger, rec may be nil to disable mutation recording.
//
// Panics if store is nil, res has an empty group/version/plural, or
// batchLimit is not positive — these are wired at construction time, so an
// invalid value indicates a programmer error.
func NewMutator(store Store, res Resource, log *slog.Logger, rec Recorder, batchLimit int) *Mutator {
	if store == nil {
		panic("finalizerkit: NewMutator store must not be nil")
	}
	if err := res.Validate(); err != nil {
		panic(fmt.Sprintf("finalizerkit: NewMutator: %v", err))
	}
	if batchLimit <= 0 {
		panic(fmt.Sprintf("finalizerkit: NewMutator batchLimit must be greater than 0, got %d", batchLimit))
	}
	return &Mutator{
		store:      store,
		res:        res,
		log:        log,
		rec:        rec,
		batchLimit: batchLimit,
	}
}

// Resource returns the resource tuple this mutator operates on.
func (m *Mutator) Resource() Resource {
	return m.res
}

// AddFinalizer ensures token is present in the finalizer list of the named
// object. Both no-op outcomes complete successfully:
//
//   - the object is terminating (deletionTimestamp set): adding a finalizer
//     would block deletion pointlessly, so the call logs a warning and
//     returns nil without writing;
//   - token is already present: the call is idempotent and issues no write.
//
// Fetch and replace failures are logged with the store's code, reason, and
// message and returned without retry.
func (m *Mutator) AddFinalizer(ctx context.Context, name, token string) error {
	if err := validateCallArgs(name, token); err != nil {
		return err
	}

	obj, err := m.store.Get(ctx, m.res, name)
	if err != nil {
		m.logStoreError(ctx, "fetching object for finalizer add failed", name, token, err)
		return fmt.Errorf("get %s %q: %w", m.res.Plural, name, err)
	}

	if obj.GetDeletionTimestamp() != nil {
		m.logger().WarnContext(ctx, "object is terminating, not adding finalizer",
			"gvr", m.res.GroupVersionResource().String(),
			"namespace", m.res.Namespace,
			"name", name,
			"token", token,
		)
		return nil
	}

	finalizers := obj.GetFinalizers()
	if hasToken(finalizers, token) {
		m.logger().WarnContext(ctx, "finalizer already present, skipping add",
			"gvr", m.res.GroupVersionResource().String(),
			"namespace", m.res.Namespace,
			"name", name,
			"token", token,
		)
		return nil
	}

	obj.SetFinalizers(append(finalizers, token))

	updated, err := m.store.Replace(ctx, m.res, name, obj)
	if err != nil {
		m.logStoreError(ctx, "replacing object for finalizer add failed", name, token, err)
		return fmt.Errorf("replace %s %q: %w", m.res.Plural, name, err)
	}

	m.logger().InfoContext(ctx, "finalizer added",
		"gvr", m.res.GroupVersionResource().String(),
		"namespace", m.res.Namespace,
		"name", name,
		"token", token,
		"resource_version", updated.GetResourceVersion(),
	)
	m.record(ctx, OpAdd, name, token, updated.GetResourceVersion())
	return nil
}

// RemoveFinalizer ensures token is absent from the finalizer list of the
// named object. An empty list or a token that is not present are no-ops: the
// call logs a warning and returns nil without writing.
//
// Removal is permitted while the object is terminating. Cleanup controllers
// must be able to drop their finalizer after deletion has been requested,
// otherwise the object would never be garbage collected; the asymmetry with
// AddFinalizer is intentional.
func (m *Mutator) RemoveFinalizer(ctx context.Context, name, token string) error {
	if err := validateCallArgs(name, token); err != nil {
		return err
	}

	obj, err := m.store.Get(ctx, m.res, name)
	if err != nil {
		m.logStoreError(ctx, "fetching object for finalizer remove failed", name, token, err)
		return fmt.Errorf("get %s %q: %w", m.res.Plural, name, err)
	}

	finalizers := obj.GetFinalizers()
	if len(finalizers) == 0 {
		m.logger().WarnContext(ctx, "object has no finalizers, skipping remove",
			"gvr", m.res.GroupVersionResource().String(),
			"namespace", m.res.Namespace,
			"name", name,
			"token", token,
		)
		return nil
	}

	remaining := withoutToken(finalizers, token)
	if len(remaining) == len(finalizers) {
		m.logger().WarnContext(ctx, "finalizer not present, skipping remove",
			"gvr", m.res.GroupVersionResource().String(),
			"namespace", m.res.Namespace,
			"name", name,
			"token", token,
		)
		return nil
	}

	// Write an emptied list as absent rather than as [], matching how the
	// apiserver serializes cleared finalizers.
	if len(remaining) == 0 {
		remaining = nil
	}
	obj.SetFinalizers(remaining)

	updated, err := m.store.Replace(ctx, m.res, name, obj)
	if err != nil {
		m.logStoreError(ctx, "replacing object for finalizer remove failed", name, token, err)
		return fmt.Errorf("replace %s %q: %w", m.res.Plural, name, err)
	}

	m.logger().InfoContext(ctx, "finalizer removed",
		"gvr", m.res.GroupVersionResource().String(),
		"namespace", m.res.Namespace,
		"name", name,
		"token", token,
		"resource_version", updated.GetResourceVersion(),
	)
	m.record(ctx, OpRemove, name, token, updated.GetResourceVersion())
	return nil
}

// HasFinalizer reports whether token is present on a fresh snapshot of the
// named object. The result reflects the store state at read time and may be
// stale by the time the caller acts on it.
func (m *Mutator) HasFinalizer(ctx context.Context, name, token string) (bool, error) {
	if err := validateCallArgs(name, token); err != nil {
		return false, err
	}

	obj, err := m.store.Get(ctx, m.res, name)
	if err != nil {
		m.logStoreError(ctx, "fetching object for finalizer check failed", name, token, err)
		return false, fmt.Errorf("get %s %q: %w", m.res.Plural, name, err)
	}
	return hasToken(obj.GetFinalizers(), token), nil
}

// logger returns the mutator's logger, falling back to the package-level
// logger when none was supplied at construction.
func (m *Mutator) logger() *slog.Logger {
	if m.log != nil {
		return m.log
	}
	return Logger()
}

// logStoreError logs a failed store round trip with the machine-readable
// status the store attached to the error: HTTP-style code, short reason, and
// human-readable message.
func (m *Mutator) logStoreError(ctx context.Context, msg, name, token string, err error) {
	code, reason, message := statusOf(err)
	m.logger().ErrorContext(ctx, msg,
		"gvr", m.res.GroupVersionResource().String(),
		"namespace", m.res.Namespace,
		"name", name,
		"token", token,
		"code", code,
		"reason", reason,
		"message", message,
	)
}

// record forwards a committed mutation to the recorder, if one is configured.
// Recorder failures are logged and swallowed: recording is observability, not
// part of the mutation contract.
func (m *Mutator) record(ctx context.Context, op, name, token, resourceVersion string) {
	if m.rec == nil {
		return
	}
	mut := Mutation{
		Time:            time.Now().UTC(),
		Op:              op,
		Resource:        m.res,
		Name:            name,
		Token:           token,
		ResourceVersion: resourceVersion,
	}
	if err := m.rec.Record(ctx, mut); err != nil {
		m.logger().WarnContext(ctx, "recording mutation failed",
			"op", op,
			"name", name,
			"token", token,
			"error", err,
		)
	}
}

// statusOf extracts the machine-readable status from a store error. Errors
// from the Kubernetes API satisfy apierrors.APIStatus (also through wrapped
// chains); for anything else the error text stands in as the message.
func statusOf(err error) (code int32, reason, message string) {
	var status apierrors.APIStatus
	if errors.As(err, &status) {
		s := status.Status()
		return s.Code, string(s.Reason), s.Message
	}
	return 0, "", err.Error()
}

// validateCallArgs rejects empty per-call arguments before any I/O.
func validateCallArgs(name, token string) error {
	if name == "" {
		return ErrEmptyName
	}
	if token == "" {
		return ErrEmptyToken
	}
	return nil
}

// hasToken reports whether token occurs in finalizers.
func hasToken(finalizers []string, token string) bool {
	for _, f := range finalizers {
		if f == token {
			return true
		}
	}
	return false
}

// withoutToken returns finalizers with the first occurrence of token removed,
// preserving the relative order of the remaining entries. By the uniqueness
// invariant a token appears at most once, so removing the first occurrence
// removes them all.
func withoutToken(finalizers []string, token string) []string {
	out := make([]string, 0, len(finalizers))
	removed := false
	for _, f := range finalizers {
		if !removed && f == token {
			removed = true
			continue
		}
		out = append(out, f)
	}
	return out
}
