package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/data"
	"github.com/udisondev/bqsolo/internal/game/loot"
	"github.com/udisondev/bqsolo/internal/model"
)

func newMonster(r *Registry, kind data.Kind, x, y int32) *model.Monster {
	tmpl := model.MobTemplate{Kind: kind, X: x, Y: y}.Resolve(model.MobDefaults{
		MaxHP: 30, Armor: 4, Damage: 6, RespawnDelay: time.Second,
		AggroRange: 6, LeashRange: 12, AttackDelay: time.Second,
	})
	return model.NewMonster(r.NextID(), &tmpl, loot.NewCycler(nil))
}

func TestObjectIDGenerator(t *testing.T) {
	gen := NewObjectIDGenerator()

	if got := gen.NextID(); got != 2 {
		t.Errorf("first NextID() = %d, want 2", got)
	}
	if got := gen.NextID(); got != 3 {
		t.Errorf("second NextID() = %d, want 3", got)
	}
	if got := gen.Last(); got != 3 {
		t.Errorf("Last() = %d, want 3", got)
	}
}

func TestRegistry_AddLookupRemove(t *testing.T) {
	r := NewRegistry()

	rat := newMonster(r, data.KindRat, 1, 1)
	r.Add(rat.WorldObject)

	got, ok := r.Monster(rat.ObjectID())
	require.True(t, ok)
	assert.Same(t, rat, got)

	_, ok = r.Item(rat.ObjectID())
	assert.False(t, ok, "typed lookup must not cross variants")

	obj, ok := r.Object(rat.ObjectID())
	require.True(t, ok)
	assert.Same(t, rat.WorldObject, obj)

	assert.True(t, r.Remove(rat.ObjectID()))
	assert.False(t, r.Remove(rat.ObjectID()))
	_, ok = r.Monster(rat.ObjectID())
	assert.False(t, ok)
	assert.Equal(t, 0, r.ObjectCount())
}

func TestRegistry_DuplicateIDPanics(t *testing.T) {
	r := NewRegistry()
	rat := newMonster(r, data.KindRat, 1, 1)
	r.Add(rat.WorldObject)

	assert.Panics(t, func() { r.Add(rat.WorldObject) })
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := NewRegistry()

	player := model.NewPlayer("p", model.NewLocation(0, 0), data.KindClothArmor, data.KindSword1, 100)
	a := newMonster(r, data.KindRat, 1, 1)
	b := newMonster(r, data.KindGoblin, 2, 2)
	item := model.NewDroppedItem(r.NextID(), data.KindFlask, model.NewLocation(3, 3), []uint32{1})
	c := newMonster(r, data.KindSkeleton, 4, 4)

	r.Add(a.WorldObject)
	r.Add(player.WorldObject)
	r.Add(b.WorldObject)
	r.Add(item.WorldObject)
	r.Add(c.WorldObject)

	assert.Equal(t, []uint32{a.ObjectID(), b.ObjectID(), item.ObjectID(), c.ObjectID()}, r.ListIDs())
	assert.Equal(t, []*model.Monster{a, b, c}, r.Monsters())

	r.Remove(b.ObjectID())
	assert.Equal(t, []*model.Monster{a, c}, r.Monsters())

	assert.False(t, r.Remove(model.PlayerObjectID), "player is never removed")
	assert.Same(t, player, r.Player())
}

func TestRegistry_SnapshotAllowsRemovalDuringIteration(t *testing.T) {
	r := NewRegistry()
	for i := range int32(3) {
		r.Add(newMonster(r, data.KindRat, i, i).WorldObject)
	}

	for _, m := range r.Monsters() {
		r.Remove(m.ObjectID())
	}
	assert.Equal(t, 0, r.MonsterCount())
}

func TestRegistry_SetPlayerReplaces(t *testing.T) {
	r := NewRegistry()
	first := model.NewPlayer("a", model.NewLocation(1, 1), data.KindClothArmor, data.KindSword1, 100)
	r.Add(first.WorldObject)
	assert.Panics(t, func() { r.Add(first.WorldObject) })

	second := model.NewPlayer("b", model.NewLocation(2, 2), data.KindClothArmor, data.KindSword1, 100)
	r.SetPlayer(second)

	assert.Same(t, second, r.Player())
	obj, ok := r.Object(model.PlayerObjectID)
	require.True(t, ok)
	assert.Same(t, second.WorldObject, obj)
	assert.Empty(t, r.ListIDs())
	assert.False(t, r.Remove(model.PlayerObjectID))
}
