// ABOUTME: Reactive keyed store holding every slice of the life dashboard.
// ABOUTME: Hydrates from keyed storage, mutates in memory, persists debounced.
package store

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/lifedash/internal/config"
	"github.com/harperreed/lifedash/internal/kv"
	"github.com/harperreed/lifedash/internal/models"
)

// Slice names used in persistence keys. One serialized blob per
// (identity, slice) pair.
const (
	sliceHabits       = "habits"
	sliceTasks        = "tasks"
	sliceTransactions = "transactions"
	sliceSavings      = "savings"
	sliceHealthLogs   = "health_logs"
	slicePeriods      = "periods"
	sliceReflections  = "reflections"
	sliceRoadmap      = "roadmap"
	sliceChannelStats = "channel_stats"
	sliceStudyLog     = "study_log"
	sliceVideoPlans   = "video_plans"
	sliceSettings     = "settings"
)

// Session keys stored outside the per-slice namespace.
const (
	sessionUser   = "user"
	sessionAuthed = "authed"
)

// DefaultSaveDelay is the debounce window for slice writes.
const DefaultSaveDelay = 500 * time.Millisecond

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "store",
	Level:  log.WarnLevel,
})

func init() {
	// Deserialization failures only show up in developer runs.
	if os.Getenv("LIFEDASH_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
}

// Options configures a Store.
type Options struct {
	// SaveDelay is the debounce window; zero means DefaultSaveDelay.
	SaveDelay time.Duration
	// Env holds environment credential defaults used for settings backfill.
	Env config.EnvCredentials
	// Stats fetches channel statistics for SyncChannelStats. Optional.
	Stats StatsFetcher
}

// Store is the single in-memory owner of all dashboard slices for the
// process lifetime. Construct with New, mutate through the operation set,
// and Close to flush pending writes.
type Store struct {
	mu    sync.RWMutex
	db    kv.Store
	saver *saver
	env   config.EnvCredentials
	stats StatsFetcher

	user   *models.User
	authed bool

	habits       []models.Habit
	tasks        []models.Task
	transactions []models.Transaction
	savings      models.Savings
	healthLogs   []models.HealthLog
	periods      []models.PeriodData
	reflections  []models.Reflection
	roadmap      models.GoalRoadmap
	channelStats models.ChannelStats
	studyLog     models.StudyLog
	videoPlans   []models.VideoPlan
	settings     models.Settings
}

// New constructs a store over the given keyed storage and hydrates every
// slice for whichever identity was active last. This constructor-time read
// is the only bulk load until the identity changes.
func New(db kv.Store, opts Options) *Store {
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = DefaultSaveDelay
	}

	s := &Store{
		db:    db,
		saver: newSaver(db, opts.SaveDelay),
		env:   opts.Env,
		stats: opts.Stats,
	}

	s.user = loadSlice[*models.User](db, kv.SessionKey(sessionUser), nil)
	s.authed = loadSlice(db, kv.SessionKey(sessionAuthed), false)
	s.hydrate()
	return s
}

// Close flushes all pending debounced writes. It does not close the
// underlying kv store; the caller owns that.
func (s *Store) Close() {
	s.saver.FlushAll()
}

// hydrate reads every slice for the active identity, replacing all
// in-memory values. Callers hold the write lock except in New, where the
// store is not yet shared.
func (s *Store) hydrate() {
	key := func(slice string) string {
		return kv.SliceKey(s.identityLocked(), slice)
	}

	s.habits = models.NormalizeHabits(loadSlice(s.db, key(sliceHabits), []models.Habit{}))
	s.tasks = models.NormalizeTasks(loadSlice(s.db, key(sliceTasks), []models.Task{}))
	s.transactions = models.NormalizeTransactions(loadSlice(s.db, key(sliceTransactions), []models.Transaction{}))
	s.savings = loadSlice(s.db, key(sliceSavings), models.DefaultSavings())
	s.healthLogs = models.NormalizeHealthLogs(loadSlice(s.db, key(sliceHealthLogs), []models.HealthLog{}))
	s.periods = models.NormalizePeriods(loadSlice(s.db, key(slicePeriods), []models.PeriodData{}))
	s.reflections = models.NormalizeReflections(loadSlice(s.db, key(sliceReflections), []models.Reflection{}))
	s.channelStats = loadSlice(s.db, key(sliceChannelStats), models.DefaultChannelStats())
	s.studyLog = models.NormalizeStudyLog(loadSlice(s.db, key(sliceStudyLog), models.StudyLog{}))
	s.videoPlans = models.NormalizeVideoPlans(loadSlice(s.db, key(sliceVideoPlans), []models.VideoPlan{}))

	// The roadmap deliberately falls back to whatever roadmap is already in
	// memory rather than the static default, so switching to an identity
	// that never saved one keeps showing the current plan.
	roadmapFallback := s.roadmap
	if roadmapFallback.Milestones == nil {
		roadmapFallback = models.DefaultRoadmap()
	}
	s.roadmap = models.NormalizeRoadmap(loadSlice(s.db, key(sliceRoadmap), roadmapFallback))

	s.settings = s.backfillCredentials(loadSlice(s.db, key(sliceSettings), models.DefaultSettings()))
}

// identityLocked returns the active identity discriminator. Empty string is
// the guest identity.
func (s *Store) identityLocked() string {
	if s.user == nil {
		return ""
	}
	return s.user.Email
}

// persist schedules a debounced write of one slice under the active
// identity. The snapshot is serialized at schedule time, so later in-memory
// mutations do not leak into an already-scheduled write.
func (s *Store) persist(slice string, snapshot any) {
	s.saver.Schedule(kv.SliceKey(s.identityLocked(), slice), snapshot)
}
