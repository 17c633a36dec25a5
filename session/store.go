// Package session persists follower playback state between runs
package session

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/alongpath/follower"
	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/timeline"
)

// FollowerState is the stored form of follower.Snapshot
type FollowerState struct {
	Elapsed       time.Duration `yaml:"elapsed"` // Duration string, full precision
	Phase         string        `yaml:"phase"`
	Reversing     bool          `yaml:"reversing,omitempty"`
	Started       bool          `yaml:"started,omitempty"`
	Cycles        int           `yaml:"cycles,omitempty"`
	ActiveTrigger string        `yaml:"active_trigger,omitempty"`
	Frame         int64         `yaml:"frame,omitempty"`
}

// Record is one saved scene session
type Record struct {
	SavedAt   time.Time                `yaml:"saved_at"`
	Followers map[string]FollowerState `yaml:"followers"`
}

// Store saves records under a scene key
// A nil gdata manager keeps records in memory only
type Store struct {
	manager *gdata.Manager
	prop    string
	memory  []byte
	logger  *log.Logger
}

// OpenManager opens the gdata storage for appName
// Callers may pass the nil result to NewStore on error
func OpenManager(appName string) (*gdata.Manager, error) {
	if appName == "" {
		appName = parameter.SessionAppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}
	return m, nil
}

// NewStore creates a store for sceneKey, degraded to memory when manager is nil
func NewStore(manager *gdata.Manager, sceneKey string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	if manager == nil {
		logger.Printf("[session] no storage available, snapshots kept in memory")
	}
	return &Store{manager: manager, prop: propKey(sceneKey), logger: logger}
}

// Persistent reports whether records survive the process
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Save stores the snapshot of every follower
func (s *Store) Save(followers []*follower.Follower) error {
	rec := Record{
		SavedAt:   time.Now().UTC().Truncate(time.Second),
		Followers: make(map[string]FollowerState, len(followers)),
	}
	for _, f := range followers {
		rec.Followers[f.Name()] = fromSnapshot(f.Snapshot())
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if s.manager == nil {
		s.memory = data
		return nil
	}
	if err := s.manager.SaveObjectProp(parameter.SessionObject, s.prop, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Printf("[session] saved %d followers to %s/%s", len(followers), parameter.SessionObject, s.prop)
	return nil
}

// Load returns the stored record; ok is false when nothing was saved
func (s *Store) Load() (rec Record, ok bool, err error) {
	var data []byte
	if s.manager == nil {
		data = s.memory
	} else {
		if !s.manager.ObjectPropExists(parameter.SessionObject, s.prop) {
			return Record{}, false, nil
		}
		data, err = s.manager.LoadObjectProp(parameter.SessionObject, s.prop)
		if err != nil {
			return Record{}, false, fmt.Errorf("failed to load session: %w", err)
		}
	}
	if len(data) == 0 {
		return Record{}, false, nil
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return rec, true, nil
}

// Restore applies the stored record to matching followers by name
// Returns the number of followers restored; unknown names are ignored
func (s *Store) Restore(followers []*follower.Follower) (int, error) {
	rec, ok, err := s.Load()
	if err != nil || !ok {
		return 0, err
	}
	n := 0
	for _, f := range followers {
		st, found := rec.Followers[f.Name()]
		if !found {
			continue
		}
		f.Restore(st.snapshot())
		n++
	}
	s.logger.Printf("[session] restored %d of %d followers", n, len(followers))
	return n, nil
}

func fromSnapshot(s follower.Snapshot) FollowerState {
	return FollowerState{
		Elapsed:       s.Timeline.Elapsed,
		Phase:         s.Timeline.Phase.String(),
		Reversing:     s.Timeline.Reversing,
		Started:       s.Timeline.Started,
		Cycles:        s.Timeline.Cycles,
		ActiveTrigger: s.ActiveTrigger,
		Frame:         s.Frame,
	}
}

func (st FollowerState) snapshot() follower.Snapshot {
	phase, _ := timeline.ParsePhase(st.Phase)
	return follower.Snapshot{
		Timeline: timeline.Snapshot{
			Elapsed:   st.Elapsed,
			Phase:     phase,
			Reversing: st.Reversing,
			Started:   st.Started,
			Cycles:    st.Cycles,
		},
		ActiveTrigger: st.ActiveTrigger,
		Frame:         st.Frame,
	}
}

// propKey reduces a scene key to a storage-safe name
func propKey(sceneKey string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(sceneKey) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "default"
	}
	return b.String()
}
