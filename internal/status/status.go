package status

import (
	"strconv"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/tpfand/tpfand/internal/controller"
	"github.com/tpfand/tpfand/internal/sensors"
)

// Zone is the latest value of a single thermal zone.
type Zone struct {
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Value     int       `json:"value"`
	Present   bool      `json:"present"`
	Primary   bool      `json:"primary"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store keeps the latest state published by the control loop, for readers
// on other goroutines.
type Store struct {
	zoneName func(index int) string
	zones    cmap.ConcurrentMap[string, Zone]

	mu             sync.RWMutex
	controller     controller.Snapshot
	lastTransition *controller.Transition
	transitionAt   time.Time
}

func NewStore(zoneName func(index int) string) *Store {
	if zoneName == nil {
		zoneName = strconv.Itoa
	}
	return &Store{
		zoneName: zoneName,
		zones:    cmap.New[Zone](),
	}
}

func (s *Store) OnTick(snapshot controller.Snapshot) {
	for index, value := range snapshot.Reading {
		name := s.zoneName(index)
		s.zones.Set(name, Zone{
			Index:     index,
			Name:      name,
			Value:     value,
			Present:   value != sensors.NotPresent,
			Primary:   index == snapshot.PrimaryZone,
			UpdatedAt: snapshot.UpdatedAt,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller = snapshot
}

func (s *Store) OnTransition(transition controller.Transition, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTransition = &transition
	s.transitionAt = at
}

// Zones returns the latest zone values keyed by zone name.
func (s *Store) Zones() map[string]Zone {
	return s.zones.Items()
}

func (s *Store) Zone(name string) (Zone, bool) {
	return s.zones.Get(name)
}

func (s *Store) Controller() controller.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controller
}

// LastTransition returns the most recent profile change, if any.
func (s *Store) LastTransition() (controller.Transition, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastTransition == nil {
		return controller.Transition{}, time.Time{}, false
	}
	return *s.lastTransition, s.transitionAt, true
}
