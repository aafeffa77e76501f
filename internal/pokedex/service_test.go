package pokedex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/pokedex/internal/catalog"
	"github.com/zjrosen/pokedex/internal/dex"
	"github.com/zjrosen/pokedex/internal/pubsub"
	"github.com/zjrosen/pokedex/internal/registry"
)

func newService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := New(catalog.Default(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

// newOwner creates name with the Bulbasaur starter, then adds ids.
func newOwner(t *testing.T, svc *Service, name string, ids ...int) *registry.Owner {
	t.Helper()
	ctx := context.Background()
	o, err := svc.NewPokedex(ctx, name, 1)
	require.NoError(t, err)
	for _, id := range ids {
		if o.Dex.Contains(id) {
			continue
		}
		_, err := svc.Add(ctx, o, id)
		require.NoError(t, err)
	}
	return o
}

// ownerWith creates name holding exactly ids.
func ownerWith(t *testing.T, svc *Service, name string, ids ...int) *registry.Owner {
	t.Helper()
	o := newOwner(t, svc, name, ids...)
	if !containsInt(ids, 1) {
		_, err := svc.Release(context.Background(), o, 1)
		require.NoError(t, err)
	}
	return o
}

func containsInt(ids []int, want int) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestNew_UnknownStarter(t *testing.T) {
	_, err := New(catalog.Default(), WithStarters("Missingno"))
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestNew_NilCatalog(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNewPokedex(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	o, err := svc.NewPokedex(ctx, "Ash", 2)
	require.NoError(t, err)
	require.Equal(t, "Ash", o.Name)
	require.Equal(t, []int{4}, o.Dex.IDs(), "second starter is Charmander")
	require.Same(t, o, svc.Registry().Head())
}

func TestNewPokedex_DuplicateName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	newOwner(t, svc, "Ash")

	_, err := svc.NewPokedex(ctx, "Ash", 1)
	require.ErrorIs(t, err, ErrDuplicateName)
	require.Equal(t, 1, svc.Registry().Len(), "nothing is created")

	_, err = svc.NewPokedex(ctx, "Ash", 9)
	require.ErrorIs(t, err, ErrDuplicateName, "name is checked before the starter")
}

func TestNewPokedex_InvalidInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.NewPokedex(ctx, "", 1)
	require.ErrorIs(t, err, ErrEmptyName)

	for _, starter := range []int{0, 4, -1} {
		_, err = svc.NewPokedex(ctx, "Misty", starter)
		require.ErrorIs(t, err, ErrOutOfRange, "starter %d", starter)
	}
	require.True(t, svc.Registry().Empty())
}

func TestNewPokedex_CustomStarters(t *testing.T) {
	svc := newService(t, WithStarters("Pikachu", "Eevee"))
	require.Equal(t, []string{"Pikachu", "Eevee"}, svc.Starters())

	o, err := svc.NewPokedex(context.Background(), "Red", 1)
	require.NoError(t, err)
	require.Equal(t, []int{25}, o.Dex.IDs())
}

func TestAdd(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	o := newOwner(t, svc, "Ash")

	rec, err := svc.Add(ctx, o, 25)
	require.NoError(t, err)
	require.Equal(t, "Pikachu", rec.Name)
	require.Equal(t, []int{1, 25}, o.Dex.IDs())

	_, err = svc.Add(ctx, o, 25)
	require.ErrorIs(t, err, ErrAlreadyPresent)

	for _, id := range []int{0, 152, -3} {
		_, err = svc.Add(ctx, o, id)
		require.ErrorIs(t, err, ErrOutOfRange, "id %d", id)
	}
	require.Equal(t, 2, o.Dex.Len(), "failed adds leave the tree unchanged")
}

func TestAdd_ReturnsCopy(t *testing.T) {
	svc := newService(t)
	o := newOwner(t, svc, "Ash")

	rec, err := svc.Add(context.Background(), o, 25)
	require.NoError(t, err)
	rec.Name = "changed"
	require.Equal(t, "Pikachu", o.Dex.Search(25).Name)
}

func TestRelease(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	o := newOwner(t, svc, "Ash", 4, 7)

	rec, err := svc.Release(ctx, o, 4)
	require.NoError(t, err)
	require.Equal(t, "Charmander", rec.Name)
	require.Equal(t, []int{1, 7}, o.Dex.IDs())

	_, err = svc.Release(ctx, o, 4)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, []int{1, 7}, o.Dex.IDs())
}

func TestRelease_EmptyPokedex(t *testing.T) {
	svc := newService(t)
	o := ownerWith(t, svc, "Ash")
	require.True(t, o.Dex.Empty())

	_, err := svc.Release(context.Background(), o, 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, ErrEmptyPokedex)
}

func TestFight(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	// Bulbasaur 45/49, Charmander 39/52, Squirtle 44/48.
	o := newOwner(t, svc, "Ash", 4, 7, 150)

	res, err := svc.Fight(ctx, o, 1, 4)
	require.NoError(t, err)
	require.InDelta(t, 49*1.5+45*1.2, res.FirstScore, 1e-9)
	require.InDelta(t, 52*1.5+39*1.2, res.SecondScore, 1e-9)
	require.Equal(t, FirstWins, res.Outcome)
	require.Equal(t, "Bulbasaur", res.Winner().Name)

	res, err = svc.Fight(ctx, o, 7, 150)
	require.NoError(t, err)
	require.Equal(t, SecondWins, res.Outcome)
	require.Equal(t, "Mewtwo", res.Winner().Name)

	res, err = svc.Fight(ctx, o, 4, 4)
	require.NoError(t, err)
	require.Equal(t, Tie, res.Outcome)
	require.Nil(t, res.Winner())

	_, err = svc.Fight(ctx, o, 1, 99)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Fight(ctx, o, 99, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEvolve(t *testing.T) {
	svc := newService(t)
	o := newOwner(t, svc, "Ash")

	res, err := svc.Evolve(context.Background(), o, 1)
	require.NoError(t, err)
	require.False(t, res.Collided)
	require.Equal(t, "Bulbasaur", res.From.Name)
	require.Equal(t, "Ivysaur", res.To.Name)
	require.Equal(t, []int{2}, o.Dex.IDs())
}

func TestEvolve_CollisionReleasesOriginal(t *testing.T) {
	svc := newService(t)
	o := newOwner(t, svc, "Ash", 2, 25)
	before := o.Dex.Len()

	res, err := svc.Evolve(context.Background(), o, 1)
	require.NoError(t, err)
	require.True(t, res.Collided)
	require.Equal(t, "Ivysaur", res.To.Name)
	require.Equal(t, before-1, o.Dex.Len(), "size shrinks by exactly one")
	require.Equal(t, []int{2, 25}, o.Dex.IDs(), "successor stays, original is gone")
}

func TestEvolve_Errors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	o := newOwner(t, svc, "Ash", 3)

	_, err := svc.Evolve(ctx, o, 99)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Evolve(ctx, o, 3)
	require.ErrorIs(t, err, ErrNotEvolvable, "Venusaur is fully evolved")
	require.Equal(t, []int{1, 3}, o.Dex.IDs())
}

func TestMerge(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	a := ownerWith(t, svc, "A", 1, 4)
	ownerWith(t, svc, "B", 4, 7)

	res, err := svc.Merge(ctx, "A", "B")
	require.NoError(t, err)
	require.Equal(t, MergeResult{Into: "A", From: "B", Added: 1, Duplicates: 1}, res)
	require.Equal(t, 2, res.Visited())

	require.Equal(t, []int{1, 4, 7}, a.Dex.IDs())
	require.Equal(t, 1, svc.Registry().Len())
	_, err = svc.Registry().FindByName("B")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestMerge_SkipsRecordsMissingFromCatalog(t *testing.T) {
	cat := catalog.Default()
	charmeleon, err := dex.Create(cat, "Charmeleon")
	require.NoError(t, err)
	squirtle, err := dex.Create(cat, "Squirtle")
	require.NoError(t, err)
	missing := &dex.Record{ID: 900, Name: "Missingno", HP: 33, Attack: 136}

	reg := registry.New()
	b, err := reg.CreateOwner("B", dex.NewTree(charmeleon, missing, squirtle))
	require.NoError(t, err)
	require.NoError(t, reg.Link(b))

	svc := newService(t, WithRegistry(reg))
	a := newOwner(t, svc, "A")

	res, err := svc.Merge(context.Background(), "A", "B")
	require.NoError(t, err)
	require.Equal(t, MergeResult{Into: "A", From: "B", Added: 2, Failed: 1}, res)
	require.Equal(t, 3, res.Visited())

	require.Equal(t, []int{1, 5, 7}, a.Dex.IDs())
	require.Equal(t, 1, svc.Registry().Len())
	_, err = svc.Registry().FindByName("B")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestMerge_Errors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	newOwner(t, svc, "A")

	_, err := svc.Merge(ctx, "A", "B")
	require.ErrorIs(t, err, ErrNotEnoughOwners)

	newOwner(t, svc, "B")
	_, err = svc.Merge(ctx, "A", "C")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Merge(ctx, "A", "A")
	require.ErrorIs(t, err, ErrSameOwner)
	require.Equal(t, 2, svc.Registry().Len())
}

func TestMerge_LevelOrderInsertShape(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	a := ownerWith(t, svc, "A", 100)
	ownerWith(t, svc, "B", 50, 30, 70)

	_, err := svc.Merge(ctx, "A", "B")
	require.NoError(t, err)

	var pre []int
	dex.PreOrderWalk(a.Dex.Root(), func(n *dex.Node) { pre = append(pre, n.ID()) })
	require.Equal(t, []int{100, 50, 30, 70}, pre)
}

func TestDeletePokedex(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.DeletePokedex(ctx, 1)
	require.ErrorIs(t, err, ErrNoOwners)

	newOwner(t, svc, "A")
	newOwner(t, svc, "B")
	newOwner(t, svc, "C")

	_, err = svc.DeletePokedex(ctx, 4)
	require.ErrorIs(t, err, ErrOutOfRange)

	name, err := svc.DeletePokedex(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "B", name)
	require.Equal(t, []string{"A", "C"}, svc.Registry().Names())

	name, err = svc.DeletePokedex(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "A", name)
	require.Equal(t, "C", svc.Registry().Head().Name)
}

func TestSortOwnersAndRotate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.False(t, svc.SortOwners(ctx))
	for _, name := range []string{"Zoe", "Amy", "Mia"} {
		newOwner(t, svc, name)
	}
	require.True(t, svc.SortOwners(ctx))

	var got []string
	svc.Rotate(registry.Backward, 4, func(_ int, o *registry.Owner) { got = append(got, o.Name) })
	require.Equal(t, []string{"Amy", "Zoe", "Mia", "Amy"}, got)
}

func TestOwnerAt(t *testing.T) {
	svc := newService(t)

	_, err := svc.OwnerAt(1)
	require.ErrorIs(t, err, ErrNoOwners)

	newOwner(t, svc, "A")
	newOwner(t, svc, "B")
	o, err := svc.OwnerAt(2)
	require.NoError(t, err)
	require.Equal(t, "B", o.Name)
	require.Len(t, svc.Owners(), 2)

	_, err = svc.OwnerAt(3)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestDisplay(t *testing.T) {
	svc := newService(t)
	o := newOwner(t, svc, "Ash", 25, 4)

	var names []string
	require.NoError(t, svc.Display(o, dex.Alphabetical, func(r *dex.Record) { names = append(names, r.Name) }))
	require.Equal(t, []string{"Bulbasaur", "Charmander", "Pikachu"}, names)

	_, err := svc.Release(context.Background(), o, 1)
	require.NoError(t, err)
	_, err = svc.Release(context.Background(), o, 4)
	require.NoError(t, err)
	_, err = svc.Release(context.Background(), o, 25)
	require.NoError(t, err)

	err = svc.Display(o, dex.InOrder, func(*dex.Record) {})
	require.ErrorIs(t, err, ErrEmptyPokedex)

	_, err = svc.Release(context.Background(), o, 25)
	require.ErrorIs(t, err, ErrEmptyPokedex)
}

func TestEvents(t *testing.T) {
	bus := pubsub.NewBroker[Change]()
	svc := newService(t, WithEventBus(bus))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := bus.Subscribe(ctx)

	o := newOwner(t, svc, "Ash")
	_, err := svc.Add(ctx, o, 25)
	require.NoError(t, err)
	_, err = svc.Add(ctx, o, 25)
	require.Error(t, err)

	want := []struct {
		typ  pubsub.EventType
		kind ChangeKind
	}{
		{pubsub.CreatedEvent, OwnerCreated},
		{pubsub.CreatedEvent, RecordAdded},
	}
	for _, w := range want {
		select {
		case evt := <-events:
			require.Equal(t, w.typ, evt.Type)
			require.Equal(t, w.kind, evt.Payload.Kind)
			require.Equal(t, "Ash", evt.Payload.Owner)
			require.Equal(t, o.ID, evt.Payload.OwnerID)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", w.kind)
		}
	}
	select {
	case evt := <-events:
		t.Fatalf("failed add must not publish, got %s", evt.Payload.Kind)
	default:
	}
}

func TestTracing_SpansPerOperation(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	svc := newService(t, WithTracer(tp.Tracer("test")))
	ctx := context.Background()

	o := newOwner(t, svc, "Ash")
	_, err := svc.Release(ctx, o, 42)
	require.ErrorIs(t, err, ErrNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "pokedex.new_pokedex", spans[0].Name())
	require.Equal(t, codes.Ok, spans[0].Status().Code)
	require.Equal(t, "pokedex.release", spans[1].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestClose_ReleasesEverything(t *testing.T) {
	svc, err := New(catalog.Default())
	require.NoError(t, err)
	newOwner(t, svc, "A", 4)
	newOwner(t, svc, "B")

	require.Equal(t, 3, svc.Close())
	require.True(t, svc.Registry().Empty())
}
