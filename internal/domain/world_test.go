package domain

import "testing"

// probe — минимальный думающий объект для тестов планировщика.
type probe struct {
	WorldObject
	thinks    int
	created   int
	destroyed int
	onThink   func(p *probe)
}

func newProbe(name string, solid bool) *probe {
	return &probe{WorldObject: NewWorldObject(name, ObjectTypeNPC, solid)}
}

func (p *probe) Think() {
	p.thinks++
	if p.onThink != nil {
		p.onThink(p)
	}
}

func (p *probe) OnCreate()  { p.created++ }
func (p *probe) OnDestroy() { p.destroyed++ }

// recorderSink копит события для проверок.
type recorderSink struct {
	events []Event
}

func (r *recorderSink) HandleEvent(ev Event) { r.events = append(r.events, ev) }

func (r *recorderSink) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// --- Жизненный цикл объектов ---

func TestAddObj_NilIsRejected(t *testing.T) {
	w := NewWorld()
	w.AddObj(nil, 0, 0) // без паники, операция отменена
	if len(w.Objects()) != 0 {
		t.Error("Nil object must not be added")
	}
}

func TestAddObj_BindsWorldAndPosition(t *testing.T) {
	w := NewWorld()
	p := newProbe("goblin", true)

	w.AddObj(p, 3, 4)

	if p.World() != w {
		t.Error("World back-reference not bound")
	}
	if p.Pos.X != 3 || p.Pos.Y != 4 {
		t.Errorf("Position not set: %+v", p.Pos)
	}
	if len(w.Objects()) != 1 {
		t.Error("Object missing from authoritative list")
	}
	// Хук создания вызывается после полной регистрации.
	if p.created != 1 {
		t.Errorf("OnCreate fired %d times, want 1", p.created)
	}
}

func TestRemoveObj_ImmediateAndHooked(t *testing.T) {
	w := NewWorld()
	p := newProbe("goblin", true)
	w.AddObj(p, 0, 0)

	w.RemoveObj(p)

	if len(w.Objects()) != 0 {
		t.Error("Authoritative list must be mutated immediately")
	}
	if p.destroyed != 1 {
		t.Errorf("OnDestroy fired %d times, want 1", p.destroyed)
	}
	if !w.CheckEmpty(0, 0) {
		t.Error("Removed object must not occupy its cell")
	}
}

func TestAddPlayer_LastWriterWins(t *testing.T) {
	w := NewWorld()
	first := NewActor("Alice", ObjectTypePlayer, 10, StateIdle, nil)
	second := NewActor("Bob", ObjectTypePlayer, 10, StateIdle, nil)

	w.AddPlayer(first, 0, 0)
	w.AddPlayer(second, 1, 1)

	if w.Player() != second {
		t.Error("Player reference: last writer must win")
	}
	if !first.IsPlayer || !second.IsPlayer {
		t.Error("Both actors should carry the IsPlayer mark")
	}

	w.AddPlayer(nil, 0, 0) // отклоняется, ссылка не затирается
	if w.Player() != second {
		t.Error("Nil AddPlayer must not clobber the player reference")
	}
}

// --- Планировщик тиков ---

func TestAdvance_NewThinkerWaitsOneTick(t *testing.T) {
	w := NewWorld()
	host := newProbe("host", false)
	w.AddObj(host, 0, 0)
	w.Advance() // host в живом списке

	var spawned *probe
	host.onThink = func(p *probe) {
		if spawned == nil {
			spawned = newProbe("spawned", false)
			w.AddObj(spawned, 1, 1) // добавление ВО ВРЕМЯ тика N
		}
	}

	w.Advance() // тик N: spawned создан внутри итерации
	if spawned == nil {
		t.Fatal("Setup: spawn did not happen")
	}
	if spawned.thinks != 0 {
		t.Errorf("Thinker added during tick N must not think on tick N, got %d", spawned.thinks)
	}

	w.Advance() // тик N+1
	if spawned.thinks != 1 {
		t.Errorf("Thinker must start thinking on tick N+1, got %d", spawned.thinks)
	}
}

func TestAdvance_RemovedThinkerFinishesTick(t *testing.T) {
	w := NewWorld()
	remover := newProbe("remover", false)
	victim := newProbe("victim", false)
	w.AddObj(remover, 0, 0)
	w.AddObj(victim, 1, 0)
	w.Advance() // оба в живом списке, по одному Think

	// remover стоит в списке ДО victim и удаляет его посреди тика.
	remover.onThink = func(p *probe) {
		if victim.destroyed == 0 {
			w.RemoveObj(victim)
		}
	}

	w.Advance() // тик N: victim уже в живом списке -> думает ровно раз
	if victim.thinks != 2 {
		t.Errorf("Removed thinker must still complete tick N, thinks=%d want 2", victim.thinks)
	}

	w.Advance()
	w.Advance()
	if victim.thinks != 2 {
		t.Errorf("Removed thinker must never think again, thinks=%d want 2", victim.thinks)
	}
}

// Регрессия: очередь добавления обязана очищаться после слива.
// Иначе ранее добавленные думающие дублируются в живом списке
// на каждом следующем тике и начинают думать по несколько раз.
func TestAdvance_AddQueueClearedAfterDrain(t *testing.T) {
	w := NewWorld()
	p := newProbe("goblin", false)
	w.AddObj(p, 0, 0)

	w.Advance()
	w.Advance()
	w.Advance()

	if p.thinks != 3 {
		t.Errorf("Thinker must think exactly once per tick, thinks=%d want 3", p.thinks)
	}
}

func TestAdvance_EnumerationOrderIsStable(t *testing.T) {
	w := NewWorld()
	var order []string
	mk := func(name string) *probe {
		p := newProbe(name, false)
		p.onThink = func(p *probe) { order = append(order, p.Name) }
		return p
	}
	w.AddObj(mk("a"), 0, 0)
	w.AddObj(mk("b"), 1, 0)
	w.AddObj(mk("c"), 2, 0)

	w.Advance()

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("Think order mismatch: got %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Enqueue order must be preserved: got %v", order)
		}
	}
}

func TestAdvance_TickCounter(t *testing.T) {
	w := NewWorld()
	if w.Tick() != 0 {
		t.Errorf("Fresh world tick should be 0, got %d", w.Tick())
	}
	w.Advance()
	w.Advance()
	if w.Tick() != 2 {
		t.Errorf("Expected tick 2, got %d", w.Tick())
	}
}

// --- Пространственные запросы ---

func TestCheckEmpty(t *testing.T) {
	w := NewWorld()
	solid := newProbe("wall", true)
	ghost := newProbe("ghost", false)
	w.AddObj(solid, 2, 2)
	w.AddObj(ghost, 3, 3)

	if w.CheckEmpty(2, 2) {
		t.Error("Cell with a solid object must not be empty")
	}
	if !w.CheckEmpty(3, 3) {
		t.Error("Non-solid object must not block the cell")
	}
	if !w.CheckEmpty(5, 5) {
		t.Error("Vacant cell must be empty")
	}
}

func TestCheckEmpty_DeadActorDoesNotBlock(t *testing.T) {
	w := NewWorld()
	a := NewActor("Ork", ObjectTypeEnemy, 5, StateIdle, nil)
	w.AddObj(a, 1, 1)

	if w.CheckEmpty(1, 1) {
		t.Fatal("Living solid actor must block the cell")
	}

	a.ReceiveDamage(nil, 10, DamageStab) // смерть снимает Solid

	if !w.CheckEmpty(1, 1) {
		t.Error("Dead actor must no longer block occupancy")
	}
}

func TestGetObjectsAt(t *testing.T) {
	w := NewWorld()
	a := newProbe("a", false)
	b := newProbe("b", false)
	c := newProbe("c", false)
	w.AddObj(a, 1, 1)
	w.AddObj(b, 1, 1)
	w.AddObj(c, 2, 1)

	got := w.GetObjectsAt(1, 1)
	if len(got) != 2 {
		t.Fatalf("Expected 2 objects at (1,1), got %d", len(got))
	}
	if len(w.GetObjectsAt(9, 9)) != 0 {
		t.Error("Vacant cell must yield no objects")
	}
}

func TestGetObjectsInRange_Metrics(t *testing.T) {
	w := NewWorld()
	near := newProbe("near", false) // (1,1): манхэттен 2, шахматное 1
	far := newProbe("far", false)   // (2,1): манхэттен 3
	side := newProbe("side", false) // (2,0): шахматное 2
	w.AddObj(near, 1, 1)
	w.AddObj(far, 2, 1)
	w.AddObj(side, 2, 0)

	contains := func(objs []Object, p *probe) bool {
		for _, o := range objs {
			if o.Base() == p.Base() {
				return true
			}
		}
		return false
	}

	manhattan := w.GetObjectsInRange(0, 0, 2, MetricManhattan)
	if !contains(manhattan, near) {
		t.Error("Manhattan r=2 must include (1,1)")
	}
	if contains(manhattan, far) {
		t.Error("Manhattan r=2 must exclude (2,1)")
	}

	chess := w.GetObjectsInRange(0, 0, 1, MetricChessboard)
	if !contains(chess, near) {
		t.Error("Chessboard r=1 must include (1,1)")
	}
	if contains(chess, side) {
		t.Error("Chessboard r=1 must exclude (2,0)")
	}
}

// --- Движение в мире ---

func TestTryMove_InWorld(t *testing.T) {
	w := NewWorld()
	hero := NewActor("Hero", ObjectTypePlayer, 10, StateIdle, nil)
	wall := newProbe("wall", true)
	w.AddObj(hero, 0, 0)
	w.AddObj(wall, 1, 0)

	if hero.TryMove(1, 0) {
		t.Error("Move into an occupied cell must fail")
	}
	if hero.Pos.X != 0 || hero.Pos.Y != 0 {
		t.Error("Failed move must leave position unchanged")
	}

	if !hero.TryMove(0, 1) {
		t.Error("Move into an empty cell must succeed")
	}
	if hero.Pos.X != 0 || hero.Pos.Y != 1 {
		t.Errorf("Position not committed: %+v", hero.Pos)
	}
}

// --- События ---

func TestEvents_EmittedAtContractPoints(t *testing.T) {
	w := NewWorld()
	sink := &recorderSink{}
	w.SetEventSink(sink)

	hero := NewActor("Hero", ObjectTypePlayer, 10, StateIdle, nil)
	ork := NewActor("Ork", ObjectTypeEnemy, 5, StateIdle, nil)
	w.AddObj(hero, 0, 0)
	w.AddObj(ork, 1, 0)

	sword := newStubWeapon("Sword", 5, DamageSlice)
	hero.AddItem(sword)
	hero.EquipWeapon(sword)
	sword.targets = []*Actor{ork}
	hero.TryAttack(ork)

	if sink.count(EventObjectAdded) != 2 {
		t.Errorf("Expected 2 OBJECT_ADDED events, got %d", sink.count(EventObjectAdded))
	}
	if sink.count(EventWeaponEquipped) != 1 {
		t.Errorf("Expected WEAPON_EQUIPPED event, got %d", sink.count(EventWeaponEquipped))
	}
	if sink.count(EventDamageTaken) != 1 {
		t.Errorf("Expected DAMAGE_TAKEN event, got %d", sink.count(EventDamageTaken))
	}
	if sink.count(EventActorDied) != 1 {
		t.Errorf("Expected ACTOR_DIED event, got %d", sink.count(EventActorDied))
	}

	// Событие урона несет источник (он опционален, тут — есть).
	for _, ev := range sink.events {
		if ev.Type == EventDamageTaken && ev.Origin != hero {
			t.Error("Damage event must carry the origin actor")
		}
	}
}
