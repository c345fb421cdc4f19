// Package testutil provides an in-memory backend for handler and router
// tests. It implements every repository interface of the service package
// and fails the same way the database repositories do.
package testutil

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/choice-battle/backend/internal/model"
	"github.com/choice-battle/backend/internal/repository"
	"github.com/choice-battle/backend/internal/service"
	"github.com/google/uuid"
)

// Store holds the five tables.
type Store struct {
	Users            *Users
	Rooms            *Rooms
	RoomParticipants *RoomParticipants
	RoomInvites      *RoomInvites
	Choices          *Choices

	mu   sync.Mutex
	fail string
}

func NewStore() *Store {
	s := &Store{}
	s.Users = &Users{newTable[model.User](s, "users", "User not found", nil)}
	s.Rooms = &Rooms{newTable[model.Room](s, "rooms", "Room not found",
		map[string]any{"status": string(model.RoomStatusLobby)}, "code")}
	s.RoomParticipants = &RoomParticipants{newTable[model.RoomParticipant](s, "room_participants", "Participant not found", nil)}
	s.RoomInvites = &RoomInvites{newTable[model.RoomInvite](s, "room_invites", "Invite not found",
		map[string]any{"max_uses": model.DefaultInviteMaxUses, "uses": 0}, "code")}
	s.Choices = &Choices{newTable[model.Choice](s, "choices", "Choice not found",
		map[string]any{"hits": 0})}
	return s
}

// Stores returns the store as the service layer's repository set.
func (s *Store) Stores() service.Stores {
	return service.Stores{
		Users:            s.Users,
		Rooms:            s.Rooms,
		RoomParticipants: s.RoomParticipants,
		RoomInvites:      s.RoomInvites,
		Choices:          s.Choices,
	}
}

// Fail makes every following call return a backend error with message.
// An empty message restores normal behavior.
func (s *Store) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = message
}

func (s *Store) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail == "" {
		return nil
	}
	return &repository.Error{Kind: repository.KindBackend, Message: s.fail}
}

type table[T any] struct {
	store    *Store
	name     string
	notFound string
	defaults map[string]any
	unique   []string
	columns  map[string]bool

	mu   sync.Mutex
	rows []map[string]any
}

func newTable[T any](s *Store, name, notFound string, defaults map[string]any, unique ...string) *table[T] {
	var zero T
	cols, _ := toMap(zero)

	columns := make(map[string]bool, len(cols))
	for c := range cols {
		columns[c] = true
	}

	return &table[T]{
		store:    s,
		name:     name,
		notFound: notFound,
		defaults: defaults,
		unique:   unique,
		columns:  columns,
	}
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	err = json.Unmarshal(b, &m)
	return m, err
}

func fromMap[T any](m map[string]any) (T, error) {
	var v T
	b, err := json.Marshal(m)
	if err != nil {
		return v, err
	}
	err = json.Unmarshal(b, &v)
	return v, err
}

func backendError(format string, args ...any) error {
	return &repository.Error{Kind: repository.KindBackend, Message: fmt.Sprintf(format, args...)}
}

// apply writes record over row, rejecting unknown columns and duplicate
// unique values the way PostgreSQL does. The caller holds t.mu.
func (t *table[T]) apply(row, record map[string]any) (T, error) {
	var zero T

	next := maps.Clone(row)
	for _, c := range slices.Sorted(maps.Keys(record)) {
		if !t.columns[c] {
			return zero, backendError("column %q of relation %q does not exist", c, t.name)
		}
		next[c] = record[c]
	}

	for _, c := range t.unique {
		for _, other := range t.rows {
			if other["id"] != next["id"] && other[c] == next[c] {
				return zero, backendError("duplicate key value violates unique constraint %q", t.name+"_"+c+"_key")
			}
		}
	}

	v, err := fromMap[T](next)
	if err != nil {
		return zero, backendError("%s", err.Error())
	}
	return v, nil
}

func (t *table[T]) index(id string) int {
	return slices.IndexFunc(t.rows, func(r map[string]any) bool { return r["id"] == id })
}

func (t *table[T]) find(column string, value any) (T, error) {
	var zero T
	if err := t.store.failure(); err != nil {
		return zero, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.rows {
		if r[column] == value {
			return fromMap[T](r)
		}
	}
	return zero, repository.NewNotFoundError(t.notFound)
}

func (t *table[T]) filter(match func(map[string]any) bool) ([]T, error) {
	if err := t.store.failure(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	items := []T{}
	for _, r := range t.rows {
		if match(r) {
			v, err := fromMap[T](r)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
	}
	return items, nil
}

func (t *table[T]) where(column string, value any) ([]T, error) {
	return t.filter(func(r map[string]any) bool { return r[column] == value })
}

func (t *table[T]) all() ([]T, error) {
	return t.filter(func(map[string]any) bool { return true })
}

func (t *table[T]) insert(record map[string]any) (T, error) {
	var zero T
	if err := t.store.failure(); err != nil {
		return zero, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	values := maps.Clone(t.defaults)
	if values == nil {
		values = map[string]any{}
	}
	maps.Copy(values, record)

	row := map[string]any{"id": uuid.NewString()}
	now := time.Now().UTC()
	for _, c := range []string{"created_at", "joined_at"} {
		if t.columns[c] {
			row[c] = now
		}
	}

	v, err := t.apply(row, values)
	if err != nil {
		return zero, err
	}

	stored, _ := toMap(v)
	t.rows = append(t.rows, stored)
	return v, nil
}

func (t *table[T]) update(id string, record map[string]any) (T, error) {
	var zero T
	if err := t.store.failure(); err != nil {
		return zero, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(id)
	if i < 0 {
		return zero, repository.NewNotFoundError(t.notFound)
	}

	v, err := t.apply(t.rows[i], record)
	if err != nil {
		return zero, err
	}

	t.rows[i], _ = toMap(v)
	return v, nil
}

func (t *table[T]) increment(id, column string) (T, error) {
	var zero T
	if err := t.store.failure(); err != nil {
		return zero, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(id)
	if i < 0 {
		return zero, repository.NewNotFoundError(t.notFound)
	}

	n, _ := t.rows[i][column].(float64)
	t.rows[i][column] = n + 1
	return fromMap[T](t.rows[i])
}

func (t *table[T]) delete(match func(map[string]any) bool) error {
	if err := t.store.failure(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	before := len(t.rows)
	t.rows = slices.DeleteFunc(t.rows, match)
	if len(t.rows) == before {
		return repository.NewNotFoundError(t.notFound)
	}
	return nil
}

func byID(id string) func(map[string]any) bool {
	return func(r map[string]any) bool { return r["id"] == id }
}

// Count returns the number of stored rows.
func (t *table[T]) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}
