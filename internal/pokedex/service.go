// Package pokedex implements the collection and registry operations: building
// owners, adding and releasing records, fights, evolution, merging and the
// owner-level maintenance of the registry circle.
//
// Every operation runs synchronously on the caller's goroutine. The service is
// not safe for concurrent use; the TUI drives it from Bubble Tea's Update loop.
package pokedex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/pokedex/internal/catalog"
	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/log"
	"github.com/zjrosen/pokedex/internal/pubsub"
	"github.com/zjrosen/pokedex/internal/registry"
	"github.com/zjrosen/pokedex/internal/tracing"
)

// DefaultStarters are offered when no starters are configured.
var DefaultStarters = []string{"Bulbasaur", "Charmander", "Squirtle"}

// Option configures a Service.
type Option func(*Service)

// WithTracer sets the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithStarters replaces the starter list. Names are resolved against the catalog.
func WithStarters(names ...string) Option {
	return func(s *Service) {
		if len(names) > 0 {
			s.starters = append([]string(nil), names...)
		}
	}
}

// WithEventBus publishes changes on bus instead of a private broker.
func WithEventBus(bus *pubsub.Broker[Change]) Option {
	return func(s *Service) {
		s.events = bus
	}
}

// WithRegistry starts from an existing registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Service) {
		s.registry = reg
	}
}

// Service owns the catalog reference and the owner registry.
type Service struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	starters []string
	tracer   trace.Tracer
	events   *pubsub.Broker[Change]
}

// New creates a service over cat. Every starter must name a catalog entry.
func New(cat *catalog.Catalog, opts ...Option) (*Service, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	s := &Service{
		catalog:  cat,
		registry: registry.New(),
		starters: DefaultStarters,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.events == nil {
		s.events = pubsub.NewBroker[Change]()
	}
	for i, name := range s.starters {
		if _, err := cat.ByName(name); err != nil {
			return nil, fmt.Errorf("starter %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Catalog returns the catalog records are created from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Registry returns the owner registry.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Starters returns the starter names in menu order.
func (s *Service) Starters() []string {
	return append([]string(nil), s.starters...)
}

// Events returns the broker that change events are published on.
func (s *Service) Events() *pubsub.Broker[Change] {
	return s.events
}

// Close tears down every owner and closes the event broker.
func (s *Service) Close() int {
	released := 0
	for !s.registry.Empty() {
		o := s.registry.Head()
		s.registry.Unlink(o)
		released += registry.Destroy(o)
	}
	s.events.Close()
	return released
}

func (s *Service) publish(ctx context.Context, c Change) {
	c.TraceID = tracing.TraceID(ctx)
	s.events.Publish(c.Kind.eventType(), c)
}

// NewPokedex creates and links an owner whose tree holds one starter.
// starter is a 1-based index into Starters. A taken name is rejected before
// the starter is looked at.
func (s *Service) NewPokedex(ctx context.Context, name string, starter int) (owner *registry.Owner, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, "new_pokedex",
		attribute.String(tracing.AttrOwnerName, name),
		attribute.Int(tracing.AttrRecordID, starter),
	)
	defer func() { tracing.End(span, err) }()

	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.registry.FindByName(name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if starter < 1 || starter > len(s.starters) {
		return nil, fmt.Errorf("starter %d %w (1-%d)", starter, ErrOutOfRange, len(s.starters))
	}

	rec, err := dex.Create(s.catalog, s.starters[starter-1])
	if err != nil {
		return nil, fmt.Errorf("%w: starter %q: %w", ErrAllocation, s.starters[starter-1], err)
	}

	owner, err = s.registry.CreateOwner(name, dex.NewTree(rec))
	if err != nil {
		return nil, translateRegistryErr(err)
	}
	if err := s.registry.Link(owner); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String(tracing.AttrOwnerID, owner.ID.String()))
	log.Info(log.CatRegistry, "created pokedex", "owner", name, "starter", rec.Name)
	s.publish(ctx, Change{Kind: OwnerCreated, Owner: name, OwnerID: owner.ID, RecordID: rec.ID, Record: rec.Name})
	return owner, nil
}

// Add inserts a fresh copy of catalog entry id into owner's tree.
func (s *Service) Add(ctx context.Context, owner *registry.Owner, id int) (rec *dex.Record, err error) {
	ctx, span := s.ownerSpan(ctx, "add", owner, attribute.Int(tracing.AttrRecordID, id))
	defer func() { tracing.End(span, err) }()

	if !s.catalog.InRange(id) {
		return nil, fmt.Errorf("id %d %w (1-%d)", id, ErrOutOfRange, s.catalog.Len())
	}
	if owner.Dex.Contains(id) {
		return nil, fmt.Errorf("pokemon with ID %d is %w", id, ErrAlreadyPresent)
	}
	rec, err = dex.CreateByID(s.catalog, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	owner.Dex.Insert(rec)

	log.Info(log.CatDex, "added record", "owner", owner.Name, "id", id, "name", rec.Name)
	s.publish(ctx, Change{Kind: RecordAdded, Owner: owner.Name, OwnerID: owner.ID, RecordID: id, Record: rec.Name})
	return rec.Clone(), nil
}

// Release removes id from owner's tree and returns a copy of what was removed.
// An empty tree is ErrEmptyPokedex rather than ErrNotFound.
func (s *Service) Release(ctx context.Context, owner *registry.Owner, id int) (rec *dex.Record, err error) {
	ctx, span := s.ownerSpan(ctx, "release", owner, attribute.Int(tracing.AttrRecordID, id))
	defer func() { tracing.End(span, err) }()

	if owner.Dex.Empty() {
		return nil, fmt.Errorf("no pokemon to release: %w: %w", ErrNotFound, ErrEmptyPokedex)
	}
	found := owner.Dex.Search(id)
	if found == nil {
		return nil, fmt.Errorf("pokemon with ID %d %w", id, ErrNotFound)
	}
	rec = found.Clone()
	owner.Dex.Remove(id)

	log.Info(log.CatDex, "released record", "owner", owner.Name, "id", id, "name", rec.Name)
	s.publish(ctx, Change{Kind: RecordReleased, Owner: owner.Name, OwnerID: owner.ID, RecordID: id, Record: rec.Name})
	return rec, nil
}

// Fight scores two owned records against each other. Nothing is mutated.
func (s *Service) Fight(ctx context.Context, owner *registry.Owner, idA, idB int) (res FightResult, err error) {
	_, span := s.ownerSpan(ctx, "fight", owner,
		attribute.Int(tracing.AttrRecordID, idA),
		attribute.Int(tracing.AttrRecordB, idB),
	)
	defer func() { tracing.End(span, err) }()

	first := owner.Dex.Search(idA)
	second := owner.Dex.Search(idB)
	if first == nil || second == nil {
		return FightResult{}, fmt.Errorf("one or both pokemon IDs %w", ErrNotFound)
	}

	res = FightResult{
		First:       first.Clone(),
		Second:      second.Clone(),
		FirstScore:  first.Score(),
		SecondScore: second.Score(),
	}
	switch {
	case res.FirstScore > res.SecondScore:
		res.Outcome = FirstWins
	case res.SecondScore > res.FirstScore:
		res.Outcome = SecondWins
	default:
		res.Outcome = Tie
	}

	span.SetAttributes(attribute.String(tracing.AttrOutcome, res.Outcome.String()))
	log.Debug(log.CatDex, "fight", "owner", owner.Name, "first", first.Name, "second", second.Name, "outcome", res.Outcome)
	return res, nil
}

// Evolve replaces id with its successor entry id+1. When the successor is
// already owned the original is released and nothing is inserted.
func (s *Service) Evolve(ctx context.Context, owner *registry.Owner, id int) (res EvolveResult, err error) {
	ctx, span := s.ownerSpan(ctx, "evolve", owner, attribute.Int(tracing.AttrRecordID, id))
	defer func() { tracing.End(span, err) }()

	found := owner.Dex.Search(id)
	if found == nil {
		return EvolveResult{}, fmt.Errorf("pokemon with ID %d %w", id, ErrNotFound)
	}
	if !found.CanEvolve {
		return EvolveResult{}, fmt.Errorf("%s (ID %d) %w", found.Name, id, ErrNotEvolvable)
	}
	from := found.Clone()
	next := id + 1

	if existing := owner.Dex.Search(next); existing != nil {
		res = EvolveResult{From: from, To: existing.Clone(), Collided: true}
		owner.Dex.Remove(id)
		span.SetAttributes(attribute.Bool(tracing.AttrCollided, true))
		log.Info(log.CatDex, "evolution blocked, released original", "owner", owner.Name, "id", id, "successor", next)
		s.publish(ctx, Change{Kind: RecordReleased, Owner: owner.Name, OwnerID: owner.ID, RecordID: id, Record: from.Name})
		return res, nil
	}

	// Build the successor first so a lookup failure leaves the tree untouched.
	to, err := dex.CreateByID(s.catalog, next)
	if err != nil {
		return EvolveResult{}, fmt.Errorf("%w: evolution of %s: %w", ErrAllocation, from.Name, err)
	}
	owner.Dex.Remove(id)
	owner.Dex.Insert(to)

	log.Info(log.CatDex, "evolved record", "owner", owner.Name, "from", from.Name, "to", to.Name)
	s.publish(ctx, Change{Kind: RecordEvolved, Owner: owner.Name, OwnerID: owner.ID, RecordID: to.ID, Record: to.Name})
	return EvolveResult{From: from, To: to.Clone()}, nil
}

// Merge copies every record of owner nameB into owner nameA in level order,
// then unlinks and destroys nameB. Duplicates are dropped; records whose
// catalog lookup fails are skipped and counted.
func (s *Service) Merge(ctx context.Context, nameA, nameB string) (res MergeResult, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, "merge",
		attribute.String(tracing.AttrOwnerName, nameA),
		attribute.String(tracing.AttrOwnerB, nameB),
	)
	defer func() { tracing.End(span, err) }()

	if s.registry.Len() < 2 {
		return MergeResult{}, ErrNotEnoughOwners
	}
	a, errA := s.registry.FindByName(nameA)
	b, errB := s.registry.FindByName(nameB)
	if errA != nil || errB != nil {
		return MergeResult{}, fmt.Errorf("one or both owners %w", ErrNotFound)
	}
	if a == b {
		return MergeResult{}, fmt.Errorf("%w: %q", ErrSameOwner, nameA)
	}

	res = MergeResult{Into: a.Name, From: b.Name}
	b.Dex.Walk(dex.LevelOrder, func(n *dex.Node) {
		rec, err := dex.Create(s.catalog, n.Record.Name)
		if err != nil {
			res.Failed++
			log.Warn(log.CatDex, "merge skipped record", "from", b.Name, "name", n.Record.Name, "error", err)
			return
		}
		if a.Dex.Insert(rec) {
			res.Added++
		} else {
			res.Duplicates++
		}
	})

	bID := b.ID
	s.registry.Unlink(b)
	registry.Destroy(b)

	span.SetAttributes(
		attribute.Int(tracing.AttrAdded, res.Added),
		attribute.Int(tracing.AttrDuplicate, res.Duplicates),
		attribute.Int(tracing.AttrFailed, res.Failed),
	)
	log.Info(log.CatRegistry, "merged owners", "into", res.Into, "from", res.From,
		"visited", res.Visited(), "added", res.Added, "duplicates", res.Duplicates, "failed", res.Failed)
	s.publish(ctx, Change{Kind: OwnersMerged, Owner: res.Into, OwnerID: a.ID, Other: res.From})
	s.publish(ctx, Change{Kind: OwnerDeleted, Owner: res.From, OwnerID: bID})
	return res, nil
}

// DeletePokedex unlinks and destroys the owner at 1-based position index.
// It returns the deleted owner's name.
func (s *Service) DeletePokedex(ctx context.Context, index int) (name string, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, "delete_pokedex",
		attribute.Int(tracing.AttrOwners, s.registry.Len()),
	)
	defer func() { tracing.End(span, err) }()

	if s.registry.Empty() {
		return "", ErrNoOwners
	}
	owner, err := s.registry.At(index)
	if err != nil {
		return "", fmt.Errorf("pokedex number %d %w (1-%d)", index, ErrOutOfRange, s.registry.Len())
	}

	name, id := owner.Name, owner.ID
	s.registry.Unlink(owner)
	released := registry.Destroy(owner)

	span.SetAttributes(attribute.String(tracing.AttrOwnerName, name))
	log.Info(log.CatRegistry, "deleted pokedex", "owner", name, "released", released)
	s.publish(ctx, Change{Kind: OwnerDeleted, Owner: name, OwnerID: id})
	return name, nil
}

// SortOwners orders the registry by name. It returns false when there are
// fewer than two owners and nothing was done.
func (s *Service) SortOwners(ctx context.Context) bool {
	ctx, span := tracing.Start(ctx, s.tracer, "sort_owners",
		attribute.Int(tracing.AttrOwners, s.registry.Len()),
	)
	defer tracing.End(span, nil)

	if !s.registry.SortByName() {
		return false
	}
	log.Info(log.CatRegistry, "sorted owners", "order", strings.Join(s.registry.Names(), ","))
	s.publish(ctx, Change{Kind: OwnersSorted})
	return true
}

// Rotate visits count owners from head in the given direction.
func (s *Service) Rotate(dir registry.Direction, count int, visit func(index int, o *registry.Owner)) {
	s.registry.Rotate(dir, count, visit)
}

// Owners returns the owners in forward order from head.
func (s *Service) Owners() []*registry.Owner {
	return s.registry.Owners()
}

// OwnerAt returns the owner at 1-based position index.
func (s *Service) OwnerAt(index int) (*registry.Owner, error) {
	if s.registry.Empty() {
		return nil, ErrNoOwners
	}
	o, err := s.registry.At(index)
	if err != nil {
		return nil, fmt.Errorf("pokedex number %d %w", index, ErrOutOfRange)
	}
	return o, nil
}

// Display visits owner's records in the given order.
func (s *Service) Display(owner *registry.Owner, order dex.Order, visit func(*dex.Record)) error {
	if owner.Dex == nil || owner.Dex.Empty() {
		return ErrEmptyPokedex
	}
	owner.Dex.Walk(order, func(n *dex.Node) { visit(n.Record) })
	return nil
}

func (s *Service) ownerSpan(ctx context.Context, op string, owner *registry.Owner, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String(tracing.AttrOwnerName, owner.Name),
		attribute.String(tracing.AttrOwnerID, owner.ID.String()),
		attribute.Int(tracing.AttrTreeSize, owner.Dex.Len()),
	)
	return tracing.Start(ctx, s.tracer, op, attrs...)
}

func translateRegistryErr(err error) error {
	switch {
	case errors.Is(err, registry.ErrDuplicateName):
		return fmt.Errorf("%w: %w", ErrDuplicateName, err)
	case errors.Is(err, registry.ErrEmptyName):
		return ErrEmptyName
	default:
		return err
	}
}
