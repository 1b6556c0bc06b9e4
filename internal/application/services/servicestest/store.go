// Package servicestest provides in-memory repositories and collaborators for service and handler tests.
package servicestest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/menuitem"
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/restaurant"
	"food-delivery-api/internal/domain/typeuser"
	"food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/infrastructure/mq"
)

// Store backs every repository port with maps guarded by one mutex.
type Store struct {
	mu          sync.Mutex
	users       map[uuid.UUID]user.User
	typeUsers   map[uuid.UUID]typeuser.TypeUser
	restaurants map[uuid.UUID]restaurant.Restaurant
	items       map[uuid.UUID]menuitem.MenuItem
}

func NewStore() *Store {
	return &Store{
		users:       map[uuid.UUID]user.User{},
		typeUsers:   map[uuid.UUID]typeuser.TypeUser{},
		restaurants: map[uuid.UUID]restaurant.Restaurant{},
		items:       map[uuid.UUID]menuitem.MenuItem{},
	}
}

func (s *Store) Users() *Users             { return &Users{s} }
func (s *Store) TypeUsers() *TypeUsers     { return &TypeUsers{s} }
func (s *Store) Restaurants() *Restaurants { return &Restaurants{s} }
func (s *Store) MenuItems() *MenuItems     { return &MenuItems{s} }

func stamp(id *uuid.UUID, created, updated *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type Users struct{ s *Store }

func (r *Users) FetchUserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *Users) FetchUserByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email && u.IsActive {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Users) active() user.Users {
	var out user.Users
	for _, u := range r.s.users {
		if u.IsActive {
			u := u
			out = append(out, &u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Users) FetchActiveUsers(_ context.Context) (user.Users, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.active(), nil
}

func (r *Users) FetchActiveByType(_ context.Context, typeID uuid.UUID) (user.Users, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := user.Users{}
	for _, u := range r.active() {
		if u.TypeUserID != nil && *u.TypeUserID == typeID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *Users) FetchActiveUsersPage(_ context.Context, req paging.Request) (user.Users, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.active()
	from := int(req.Offset())
	if from >= len(all) {
		return user.Users{}, int64(len(all)), nil
	}
	to := min(from+req.Size, len(all))
	return all[from:to], int64(len(all)), nil
}

func (r *Users) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *Users) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *Users) CreateUser(_ context.Context, u user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	r.s.users[u.ID] = u
	return &u, nil
}

func (r *Users) UpdateUser(_ context.Context, u user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return nil, nil
	}
	stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	r.s.users[u.ID] = u
	return &u, nil
}

func (r *Users) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		u.PasswordHash = hash
		r.s.users[id] = u
	}
	return nil
}

func (r *Users) SetActive(_ context.Context, id uuid.UUID, active bool) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	u.IsActive = active
	r.s.users[id] = u
	return &u, nil
}

func (r *Users) CountActive(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.active())), nil
}

func (r *Users) CountActiveByType(_ context.Context, typeID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, u := range r.active() {
		if u.TypeUserID != nil && *u.TypeUserID == typeID {
			n++
		}
	}
	return n, nil
}

func (r *Users) DeleteUser(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}

type TypeUsers struct{ s *Store }

func (r *TypeUsers) FetchByID(_ context.Context, id uuid.UUID) (*typeuser.TypeUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.typeUsers[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *TypeUsers) FetchByName(_ context.Context, name string) (*typeuser.TypeUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.typeUsers {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *TypeUsers) FetchActive(_ context.Context) (typeuser.TypeUsers, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out typeuser.TypeUsers
	for _, t := range r.s.typeUsers {
		if t.IsActive {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TypeUsers) ExistsByName(ctx context.Context, name string) (bool, error) {
	t, err := r.FetchByName(ctx, name)
	return t != nil, err
}

func (r *TypeUsers) Create(_ context.Context, t typeuser.TypeUser) (*typeuser.TypeUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	r.s.typeUsers[t.ID] = t
	return &t, nil
}

func (r *TypeUsers) Update(_ context.Context, t typeuser.TypeUser) (*typeuser.TypeUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.typeUsers[t.ID]; !ok {
		return nil, nil
	}
	stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	r.s.typeUsers[t.ID] = t
	return &t, nil
}

func (r *TypeUsers) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.typeUsers[id]; ok {
		t.IsActive = active
		r.s.typeUsers[id] = t
	}
	return nil
}

func (r *TypeUsers) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.typeUsers[id]; !ok {
		return false, nil
	}
	delete(r.s.typeUsers, id)
	return true, nil
}

type Restaurants struct{ s *Store }

func (r *Restaurants) FetchByID(_ context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rs, ok := r.s.restaurants[id]; ok {
		return &rs, nil
	}
	return nil, nil
}

func (r *Restaurants) filter(keep func(restaurant.Restaurant) bool) restaurant.Restaurants {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out restaurant.Restaurants
	for _, rs := range r.s.restaurants {
		if rs.IsActive && keep(rs) {
			rs := rs
			out = append(out, &rs)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Restaurants) FetchActive(_ context.Context) (restaurant.Restaurants, error) {
	return r.filter(func(restaurant.Restaurant) bool { return true }), nil
}

func (r *Restaurants) FetchActivePage(ctx context.Context, req paging.Request) (restaurant.Restaurants, int64, error) {
	all, _ := r.FetchActive(ctx)
	from := int(req.Offset())
	if from >= len(all) {
		return restaurant.Restaurants{}, int64(len(all)), nil
	}
	return all[from:min(from+req.Size, len(all))], int64(len(all)), nil
}

func (r *Restaurants) FetchByOwner(_ context.Context, ownerID uuid.UUID) (restaurant.Restaurants, error) {
	return r.filter(func(rs restaurant.Restaurant) bool { return rs.OwnerID == ownerID }), nil
}

func (r *Restaurants) SearchByCuisine(_ context.Context, cuisine string) (restaurant.Restaurants, error) {
	return r.filter(func(rs restaurant.Restaurant) bool { return contains(rs.Cuisine, cuisine) }), nil
}

func (r *Restaurants) SearchByName(_ context.Context, name string) (restaurant.Restaurants, error) {
	return r.filter(func(rs restaurant.Restaurant) bool { return contains(rs.Name, name) }), nil
}

func (r *Restaurants) ExistsByTaxID(_ context.Context, taxID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rs := range r.s.restaurants {
		if rs.TaxID == taxID {
			return true, nil
		}
	}
	return false, nil
}

func (r *Restaurants) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rs := range r.s.restaurants {
		if rs.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *Restaurants) Create(_ context.Context, rs restaurant.Restaurant) (*restaurant.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&rs.ID, &rs.CreatedAt, &rs.UpdatedAt)
	rs.MenuItems = nil
	r.s.restaurants[rs.ID] = rs
	return &rs, nil
}

func (r *Restaurants) Update(_ context.Context, rs restaurant.Restaurant) (*restaurant.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.restaurants[rs.ID]; !ok {
		return nil, nil
	}
	stamp(&rs.ID, &rs.CreatedAt, &rs.UpdatedAt)
	rs.MenuItems = nil
	r.s.restaurants[rs.ID] = rs
	return &rs, nil
}

func (r *Restaurants) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rs, ok := r.s.restaurants[id]; ok {
		rs.IsActive = active
		r.s.restaurants[id] = rs
	}
	return nil
}

func (r *Restaurants) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.restaurants[id]; !ok {
		return false, nil
	}
	delete(r.s.restaurants, id)
	return true, nil
}

type MenuItems struct{ s *Store }

func (r *MenuItems) FetchByID(_ context.Context, id uuid.UUID) (*menuitem.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m, ok := r.s.items[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *MenuItems) filter(keep func(menuitem.MenuItem) bool) menuitem.MenuItems {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out menuitem.MenuItems
	for _, m := range r.s.items {
		if m.IsActive && keep(m) {
			m := m
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *MenuItems) FetchActive(_ context.Context) (menuitem.MenuItems, error) {
	return r.filter(func(menuitem.MenuItem) bool { return true }), nil
}

func (r *MenuItems) FetchByRestaurant(_ context.Context, rid uuid.UUID, onlyAvailable bool) (menuitem.MenuItems, error) {
	return r.filter(func(m menuitem.MenuItem) bool {
		return m.RestaurantID == rid && (!onlyAvailable || m.IsAvailable)
	}), nil
}

func (r *MenuItems) SearchByCategory(_ context.Context, category string) (menuitem.MenuItems, error) {
	return r.filter(func(m menuitem.MenuItem) bool { return strings.EqualFold(m.Category, category) }), nil
}

func (r *MenuItems) SearchByName(_ context.Context, name string) (menuitem.MenuItems, error) {
	return r.filter(func(m menuitem.MenuItem) bool { return contains(m.Name, name) }), nil
}

func (r *MenuItems) Create(_ context.Context, m menuitem.MenuItem) (*menuitem.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	r.s.items[m.ID] = m
	return &m, nil
}

func (r *MenuItems) Update(_ context.Context, m menuitem.MenuItem) (*menuitem.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[m.ID]; !ok {
		return nil, nil
	}
	stamp(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	r.s.items[m.ID] = m
	return &m, nil
}

func (r *MenuItems) SetAvailability(_ context.Context, id uuid.UUID, available bool) (*menuitem.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	m.IsAvailable = available
	r.s.items[id] = m
	return &m, nil
}

func (r *MenuItems) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m, ok := r.s.items[id]; ok {
		m.IsActive = active
		r.s.items[id] = m
	}
	return nil
}

func (r *MenuItems) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return false, nil
	}
	delete(r.s.items, id)
	return true, nil
}

// Publisher records events instead of sending them.
type Publisher struct {
	mu     sync.Mutex
	Events []mq.Event
}

func (p *Publisher) Publish(e mq.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, e)
}

func (p *Publisher) PublisherWorker(ctx context.Context) { <-ctx.Done() }

// Actions lists the recorded "entity:method" pairs in publish order.
func (p *Publisher) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.Entity + ":" + e.Method
	}
	return out
}

// Authorizer answers RequireAdmin with Err.
type Authorizer struct{ Err error }

func (a Authorizer) RequireAdmin(context.Context) error { return a.Err }
