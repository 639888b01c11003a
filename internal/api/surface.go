// Package api assembles the feature route groups into the live API surface:
// one dispatch table and one published description document, always
// swapped together.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/logging"
	"github.com/JaimeStill/delta/pkg/metrics"
	"github.com/JaimeStill/delta/pkg/middleware"
	"github.com/JaimeStill/delta/pkg/routes"
)

var (
	// ErrNotReady indicates the surface has no published snapshot yet.
	ErrNotReady = errors.New("api: surface not ready")

	// ErrAlreadyBuilt indicates Build was called on a surface that left
	// the uninitialized state.
	ErrAlreadyBuilt = errors.New("api: surface already built")

	// ErrMethodNotAllowed indicates the path resolves under other methods only.
	ErrMethodNotAllowed = errors.New("api: method not allowed")
)

// State is the lifecycle phase of a Surface.
type State int32

const (
	Uninitialized State = iota
	Mounting
	Composing
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Mounting:
		return "mounting"
	case Composing:
		return "composing"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type snapshot struct {
	table     *routes.Table
	publisher *apidoc.Publisher
	doc       *apidoc.Document
}

// Surface serves the mounted feature groups and their description document.
//
// Each build produces a fresh dispatch table and document. The document
// endpoints inside a table serve that build's document only, and the pair
// becomes visible through a single pointer swap, so a request never sees a
// table and a document from different builds.
type Surface struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	mounts  []routes.Mount

	mu      sync.Mutex
	state   atomic.Int32
	current atomic.Pointer[snapshot]
}

// New creates an uninitialized surface over mounts. recorder may be nil.
func New(mounts []routes.Mount, logger *slog.Logger, recorder *metrics.Recorder) *Surface {
	return &Surface{
		logger:  logging.Module(logger, "api"),
		metrics: recorder,
		mounts:  slices.Clone(mounts),
	}
}

// State returns the current lifecycle phase.
func (s *Surface) State() State {
	return State(s.state.Load())
}

// Ready reports whether a snapshot is being served.
func (s *Surface) Ready() bool {
	return s.current.Load() != nil
}

// Table returns the live dispatch table, or nil before Build succeeds.
func (s *Surface) Table() *routes.Table {
	if snap := s.current.Load(); snap != nil {
		return snap.table
	}
	return nil
}

// Document returns the live description document, or nil before Build succeeds.
func (s *Surface) Document() *apidoc.Document {
	if snap := s.current.Load(); snap != nil {
		return snap.doc
	}
	return nil
}

// Build mounts every group, composes the document, and starts serving.
// Any error is an authoring mistake in the mounted groups or metadata and
// leaves the surface uninitialized.
func (s *Surface) Build(meta apidoc.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != Uninitialized {
		return ErrAlreadyBuilt
	}
	if err := s.build(meta); err != nil {
		s.state.Store(int32(Uninitialized))
		return err
	}
	return nil
}

// Reload rebuilds the table and document with new metadata. On failure the
// previous snapshot keeps serving and the error is returned.
func (s *Surface) Reload(meta apidoc.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	if prev == nil {
		return ErrNotReady
	}
	if err := s.build(meta); err != nil {
		s.state.Store(int32(Ready))
		s.logger.Error("reload failed, keeping previous document", "error", err, "etag", prev.doc.JSONETag)
		return err
	}

	if next := s.current.Load(); next.doc.JSONETag == prev.doc.JSONETag {
		s.logger.Info("document unchanged after reload", "etag", next.doc.JSONETag)
	}
	return nil
}

func (s *Surface) build(meta apidoc.Metadata) error {
	s.state.Store(int32(Mounting))

	publisher := apidoc.NewPublisher()
	reg := routes.NewRegistry()
	for _, m := range s.mounts {
		if err := reg.Register(m.Prefix, m.Group); err != nil {
			return s.failed(fmt.Errorf("mount %s: %w", m.Prefix, err))
		}
	}
	if err := reg.Register("/", publisher.Routes()); err != nil {
		return s.failed(fmt.Errorf("mount document routes: %w", err))
	}
	table := reg.Table()

	s.state.Store(int32(Composing))

	result, err := apidoc.Compose(meta, Tags, TagGroups, reg.Mounts())
	if err != nil {
		return s.failed(fmt.Errorf("compose document: %w", err))
	}
	for _, w := range result.Warnings {
		s.logger.Warn("documentation gap", "code", w.Code, "tag", w.Tag, "detail", w.Message)
	}

	doc, err := apidoc.NewDocument(result.Spec)
	if err != nil {
		return s.failed(fmt.Errorf("serialize document: %w", err))
	}
	publisher.Publish(doc)

	s.current.Store(&snapshot{table: table, publisher: publisher, doc: doc})
	s.state.Store(int32(Ready))

	if s.metrics != nil {
		s.metrics.ObserveComposition(nil, table.Len(), len(doc.JSON))
	}
	s.logger.Info(
		"api surface ready",
		"routes", table.Len(),
		"paths", len(doc.Spec.Paths),
		"document_size", units.HumanSize(float64(len(doc.JSON))),
		"etag", doc.JSONETag,
	)
	return nil
}

func (s *Surface) failed(err error) error {
	if s.metrics != nil {
		s.metrics.ObserveComposition(err, 0, 0)
	}
	return err
}

// ServeHTTP dispatches r through the live snapshot. Path parameters are
// exposed through r.PathValue. HEAD falls back to GET, and a path mounted
// only under other methods answers 405 with an Allow header.
func (s *Surface) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snap := s.current.Load()
	if snap == nil {
		handlers.RespondError(w, s.logger, http.StatusServiceUnavailable, ErrNotReady)
		return
	}

	start := time.Now()
	sw := middleware.NewStatusWriter(w)
	route := metrics.UnmatchedRoute

	match, err := snap.table.Dispatch(r.Method, r.URL.Path)
	if errors.Is(err, routes.ErrNotFound) && r.Method == http.MethodHead {
		match, err = snap.table.Dispatch(http.MethodGet, r.URL.Path)
	}

	if err == nil {
		route = match.Entry.Path
		for _, p := range match.Params {
			r.SetPathValue(p.Name, p.Value)
		}
		match.Entry.Route.Handler(sw, r)
	} else if methods := allowed(snap.table, r.URL.Path); len(methods) > 0 {
		sw.Header().Set("Allow", strings.Join(methods, ", "))
		handlers.RespondError(sw, s.logger, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
	} else {
		handlers.RespondError(sw, s.logger, http.StatusNotFound, routes.ErrNotFound)
	}

	if s.metrics != nil {
		s.metrics.ObserveDispatch(r.Method, route, sw.Status, time.Since(start))
	}
}

func allowed(table *routes.Table, path string) []string {
	methods := table.Allowed(path)
	if slices.Contains(methods, http.MethodGet) && !slices.Contains(methods, http.MethodHead) {
		i := slices.Index(methods, http.MethodGet) + 1
		methods = slices.Insert(methods, i, http.MethodHead)
	}
	return methods
}
