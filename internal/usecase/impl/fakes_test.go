package impl

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"wingman/config"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/infra/geo"
	"wingman/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// memStore is an in-memory stand-in for the database. Every conditional write
// runs under one mutex, which gives the same compare-and-set guarantees as the
// conditional UPDATE statements in the postgres repositories.
type memStore struct {
	mu sync.Mutex

	matches     map[uuid.UUID]*entity.WingmanMatch
	sessions    map[uuid.UUID]*entity.WingmanSession
	profiles    map[uuid.UUID]*entity.WingmanProfile
	locations   map[uuid.UUID]*entity.UserLocation
	idempotency map[string]*entity.IdempotencyRecord

	// beforeRecordResponse runs after the service read the match and before the write.
	beforeRecordResponse func()
	createMatchErr       func(match *entity.WingmanMatch) error
	dispatchedMarks      int
	outcomeQueries       int
}

func newMemStore() *memStore {
	return &memStore{
		matches:     make(map[uuid.UUID]*entity.WingmanMatch),
		sessions:    make(map[uuid.UUID]*entity.WingmanSession),
		profiles:    make(map[uuid.UUID]*entity.WingmanProfile),
		locations:   make(map[uuid.UUID]*entity.UserLocation),
		idempotency: make(map[string]*entity.IdempotencyRecord),
	}
}

func cloneMatch(m *entity.WingmanMatch) *entity.WingmanMatch {
	c := *m

	return &c
}

func cloneSession(s *entity.WingmanSession) *entity.WingmanSession {
	c := *s

	return &c
}

// --- matches ---

type memMatchRepo struct{ s *memStore }

func (r *memMatchRepo) CreateMatch(_ context.Context, match *entity.WingmanMatch) error {
	if r.s.createMatchErr != nil {
		if err := r.s.createMatchErr(match); err != nil {
			return err
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.matches {
		if existing.UserAID == match.UserAID && existing.UserBID == match.UserBID {
			return repository.ErrDuplicateMatch
		}
	}
	r.s.matches[match.ID] = cloneMatch(match)

	return nil
}

func (r *memMatchRepo) FindMatchByID(_ context.Context, id uuid.UUID) (*entity.WingmanMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok {
		return nil, repository.ErrMatchNotFound
	}

	return cloneMatch(m), nil
}

func (r *memMatchRepo) FindMatchesByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.WingmanMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.WingmanMatch
	for _, m := range r.s.matches {
		if m.IsParticipant(userID) {
			out = append(out, cloneMatch(m))
		}
	}
	slices.SortFunc(out, func(a, b *entity.WingmanMatch) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *memMatchRepo) RecordResponse(_ context.Context, update repository.ResponseUpdate) (*entity.WingmanMatch, bool, error) {
	if r.s.beforeRecordResponse != nil {
		r.s.beforeRecordResponse()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[update.MatchID]
	if !ok {
		return nil, false, repository.ErrMatchNotFound
	}

	self, other := &m.ResponderAStatus, &m.ResponderBStatus
	if update.Side == entity.SideB {
		self, other = other, self
	}
	if m.Status != entity.MatchStatusPending || *self != entity.ResponderPending || update.Now.After(m.ExpiresAt) {
		return cloneMatch(m), false, nil
	}

	*self = update.Action.ResponderStatus()
	switch {
	case update.Action == entity.MatchActionDecline:
		m.Status = entity.MatchStatusDeclined
	case *other == entity.ResponderAccepted:
		m.Status = entity.MatchStatusAccepted
	}
	m.UpdatedAt = update.Now

	return cloneMatch(m), true, nil
}

func (r *memMatchRepo) ExpireMatch(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok || m.Status != entity.MatchStatusPending || !m.ExpiresAt.Before(now) {
		return false, nil
	}
	m.Status = entity.MatchStatusExpired
	m.UpdatedAt = now

	return true, nil
}

func (r *memMatchRepo) FindExpiredPending(_ context.Context, now time.Time, limit int) ([]*entity.WingmanMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.WingmanMatch
	for _, m := range r.s.matches {
		if m.Status == entity.MatchStatusPending && m.ExpiresAt.Before(now) {
			out = append(out, cloneMatch(m))
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *memMatchRepo) MarkSideEffectsDispatched(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.matches[id]
	if !ok || m.Status != entity.MatchStatusAccepted || m.SideEffectsDispatchedAt != nil {
		return false, nil
	}
	m.SideEffectsDispatchedAt = &at
	r.s.dispatchedMarks++

	return true, nil
}

func (r *memMatchRepo) FindUndispatchedAccepted(_ context.Context, cutoff time.Time, limit int) ([]*entity.WingmanMatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.WingmanMatch
	for _, m := range r.s.matches {
		if m.Status == entity.MatchStatusAccepted && m.SideEffectsDispatchedAt == nil && m.UpdatedAt.Before(cutoff) {
			out = append(out, cloneMatch(m))
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// --- sessions ---

type memSessionRepo struct{ s *memStore }

func (r *memSessionRepo) CreateSession(_ context.Context, session *entity.WingmanSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.sessions {
		if existing.MatchID == session.MatchID && !existing.Status.IsTerminal() {
			return repository.ErrActiveSessionExists
		}
	}
	r.s.sessions[session.ID] = cloneSession(session)

	return nil
}

func (r *memSessionRepo) FindSessionByID(_ context.Context, id uuid.UUID) (*entity.WingmanSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s, ok := r.s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return cloneSession(s), nil
}

func (r *memSessionRepo) FindActiveSessionByMatch(_ context.Context, matchID uuid.UUID) (*entity.WingmanSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, s := range r.s.sessions {
		if s.MatchID == matchID && !s.Status.IsTerminal() {
			return cloneSession(s), nil
		}
	}

	return nil, repository.ErrSessionNotFound
}

func (r *memSessionRepo) SetConfirmation(_ context.Context, sessionID uuid.UUID, side entity.MatchSide, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s, ok := r.s.sessions[sessionID]
	if !ok || s.Status.IsTerminal() {
		return false, nil
	}
	flag := &s.ConfirmedByA
	if side == entity.SideB {
		flag = &s.ConfirmedByB
	}
	if *flag {
		return false, nil
	}
	*flag = true
	s.UpdatedAt = now

	return true, nil
}

func (r *memSessionRepo) CompleteIfConfirmed(_ context.Context, sessionID uuid.UUID, now time.Time) (*entity.WingmanSession, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s, ok := r.s.sessions[sessionID]
	if !ok {
		return nil, false, repository.ErrSessionNotFound
	}
	if s.Status.IsTerminal() || !s.BothConfirmed() || now.Before(s.ScheduledTime) {
		return cloneSession(s), false, nil
	}
	s.Status = entity.SessionStatusCompleted
	s.CompletedAt = &now
	s.UpdatedAt = now

	return cloneSession(s), true, nil
}

func (r *memSessionRepo) TransitionStatus(_ context.Context, t repository.StatusTransition) (*entity.WingmanSession, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s, ok := r.s.sessions[t.SessionID]
	if !ok {
		return nil, false, repository.ErrSessionNotFound
	}
	if !slices.Contains(t.From, s.Status) {
		return cloneSession(s), false, nil
	}
	s.Status = t.To
	if t.NoShowUserID != nil {
		id := *t.NoShowUserID
		s.NoShowUserID = &id
	}
	s.UpdatedAt = t.Now

	return cloneSession(s), true, nil
}

func (r *memSessionRepo) CountSessionOutcomes(_ context.Context, userID uuid.UUID) (int, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.outcomeQueries++
	c := r.outcomesLocked(userID)

	return c.Completed, c.NoShows, nil
}

func (r *memSessionRepo) CountSessionOutcomesFor(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]repository.SessionOutcomeCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.outcomeQueries++
	out := make(map[uuid.UUID]repository.SessionOutcomeCounts, len(userIDs))
	for _, id := range userIDs {
		if c := r.outcomesLocked(id); c != (repository.SessionOutcomeCounts{}) {
			out[id] = c
		}
	}

	return out, nil
}

func (r *memSessionRepo) outcomesLocked(userID uuid.UUID) repository.SessionOutcomeCounts {
	var c repository.SessionOutcomeCounts
	for _, s := range r.s.sessions {
		m, ok := r.s.matches[s.MatchID]
		if !ok || !m.IsParticipant(userID) {
			continue
		}
		switch {
		case s.Status == entity.SessionStatusCompleted:
			c.Completed++
		case s.Status == entity.SessionStatusNoShow && s.NoShowUserID != nil && *s.NoShowUserID == userID:
			c.NoShows++
		}
	}

	return c
}

// --- profiles ---

type memProfileRepo struct{ s *memStore }

func (r *memProfileRepo) FindProfileByUserID(_ context.Context, userID uuid.UUID) (*entity.WingmanProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	c := *p

	return &c, nil
}

func (r *memProfileRepo) FindProfilesByUserIDs(_ context.Context, userIDs []uuid.UUID) ([]*entity.WingmanProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.WingmanProfile
	for _, id := range userIDs {
		if p, ok := r.s.profiles[id]; ok {
			c := *p
			out = append(out, &c)
		}
	}

	return out, nil
}

func (r *memProfileRepo) UpsertProfile(_ context.Context, profile *entity.WingmanProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *profile
	if existing, ok := r.s.profiles[profile.UserID]; ok {
		c.CompletedSessions = existing.CompletedSessions
		c.CreatedAt = existing.CreatedAt
	}
	r.s.profiles[profile.UserID] = &c

	return nil
}

func (r *memProfileRepo) IncrementCompletedSessions(_ context.Context, userIDs ...uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range userIDs {
		if p, ok := r.s.profiles[id]; ok {
			p.CompletedSessions++
		}
	}

	return nil
}

// --- locations ---

type memLocationRepo struct{ s *memStore }

func (r *memLocationRepo) UpsertLocation(_ context.Context, location *entity.UserLocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *location
	r.s.locations[location.UserID] = &c

	return nil
}

func (r *memLocationRepo) FindLocationByUserID(_ context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.locations[userID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}
	c := *l

	return &c, nil
}

// FindCandidatePool applies every filter of the pool query before the limit and orders
// rows the same way: exact or proxy distance, reputation from session history, then
// longest waiting.
func (r *memLocationRepo) FindCandidatePool(_ context.Context, query repository.CandidatePoolQuery) ([]*entity.CandidateRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if searcher, ok := r.s.locations[query.SearcherID]; !ok || searcher.PrivacyMode == entity.PrivacyHidden {
		return nil, nil
	}

	skip := map[uuid.UUID]struct{}{query.SearcherID: {}}
	for _, id := range query.Exclude {
		skip[id] = struct{}{}
	}
	for _, m := range r.s.matches {
		if m.IsParticipant(query.SearcherID) {
			skip[m.PartnerOf(query.SearcherID)] = struct{}{}
		}
	}

	type ranked struct {
		row        *entity.CandidateRow
		miles      float64
		reputation int
	}

	sessions := &memSessionRepo{r.s}

	var pool []ranked
	for id, l := range r.s.locations {
		if _, ok := skip[id]; ok || l.PrivacyMode == entity.PrivacyHidden {
			continue
		}
		p, ok := r.s.profiles[id]
		if !ok || !p.IsSeeking {
			continue
		}
		if entity.CompareExperience(query.SearcherExperience, p.ExperienceLevel) == entity.ExperienceMatchNone {
			continue
		}

		loc := *l
		if loc.PrivacyMode != entity.PrivacyPrecise {
			loc.Latitude, loc.Longitude = nil, nil
		}

		var miles float64
		switch {
		case query.Latitude != nil && query.Longitude != nil && loc.HasCoordinates():
			miles = geo.HaversineMiles(*query.Latitude, *query.Longitude, *loc.Latitude, *loc.Longitude)
			if miles > float64(query.MaxTravelDistance) {
				continue
			}
		case entity.NormalizeCity(loc.City) == query.SearcherCity:
			miles = query.SameCityProxyMiles
		default:
			miles = query.OtherCityProxyMiles
		}

		outcomes := sessions.outcomesLocked(id)
		pool = append(pool, ranked{
			row: &entity.CandidateRow{
				Location:         loc,
				ExperienceLevel:  p.ExperienceLevel,
				DisplayName:      p.DisplayName,
				ProfileCreatedAt: p.CreatedAt,
			},
			miles:      miles,
			reputation: entity.ReputationScore(outcomes.Completed, outcomes.NoShows),
		})
	}

	slices.SortStableFunc(pool, func(a, b ranked) int {
		return cmp.Or(
			cmp.Compare(a.miles, b.miles),
			cmp.Compare(b.reputation, a.reputation),
			a.row.ProfileCreatedAt.Compare(b.row.ProfileCreatedAt),
		)
	})
	if query.Limit > 0 && len(pool) > query.Limit {
		pool = pool[:query.Limit]
	}

	rows := make([]*entity.CandidateRow, 0, len(pool))
	for _, p := range pool {
		rows = append(rows, p.row)
	}

	return rows, nil
}

// --- idempotency ---

type memIdempotencyRepo struct{ s *memStore }

func idempotencyKey(userID uuid.UUID, scope entity.IdempotencyScope, key string) string {
	return userID.String() + "|" + string(scope) + "|" + key
}

func (r *memIdempotencyRepo) FindRecord(_ context.Context, userID uuid.UUID, scope entity.IdempotencyScope, key string, now time.Time) (*entity.IdempotencyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.idempotency[idempotencyKey(userID, scope, key)]
	if !ok || !rec.ExpiresAt.After(now) {
		return nil, repository.ErrIdempotencyKeyNotFound
	}
	c := *rec

	return &c, nil
}

func (r *memIdempotencyRepo) SaveRecord(_ context.Context, record *entity.IdempotencyRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := idempotencyKey(record.UserID, record.Scope, record.Key)
	if existing, ok := r.s.idempotency[k]; ok && !existing.ExpiresAt.Before(record.CreatedAt) {
		return repository.ErrIdempotencyKeyExists
	}
	c := *record
	r.s.idempotency[k] = &c

	return nil
}

// --- transactions ---

type memRepoFactory struct{ s *memStore }

func (f *memRepoFactory) NewMatchRepository() repository.MatchRepository { return &memMatchRepo{f.s} }

func (f *memRepoFactory) NewSessionRepository() repository.SessionRepository {
	return &memSessionRepo{f.s}
}

func (f *memRepoFactory) NewProfileRepository() repository.ProfileRepository {
	return &memProfileRepo{f.s}
}

func (f *memRepoFactory) NewLocationRepository() repository.LocationRepository {
	return &memLocationRepo{f.s}
}

func (f *memRepoFactory) NewIdempotencyRepository() repository.IdempotencyRepository {
	return &memIdempotencyRepo{f.s}
}

type memTxManager struct{ s *memStore }

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memRepoFactory{m.s})
}

// --- collaborators ---

// memCache is a ReputationCache backed by a map. getErr simulates a backend outage.
type memCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.Reputation
	getErr  error
	setErr  error

	batchReads  int
	batchWrites int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[uuid.UUID]*entity.Reputation)}
}

func (c *memCache) Get(_ context.Context, userID uuid.UUID) (*entity.Reputation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return nil, c.getErr
	}
	rep, ok := c.entries[userID]
	if !ok {
		return nil, service.ErrCacheMiss
	}
	r := *rep

	return &r, nil
}

func (c *memCache) GetMany(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Reputation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.batchReads++
	if c.getErr != nil {
		return nil, c.getErr
	}

	out := make(map[uuid.UUID]*entity.Reputation, len(userIDs))
	for _, id := range userIDs {
		if rep, ok := c.entries[id]; ok {
			r := *rep
			out[id] = &r
		}
	}

	return out, nil
}

func (c *memCache) SetMany(_ context.Context, reps []*entity.Reputation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.batchWrites++
	if c.setErr != nil {
		return c.setErr
	}
	for _, rep := range reps {
		r := *rep
		c.entries[rep.UserID] = &r
	}

	return nil
}

func (c *memCache) Set(_ context.Context, rep *entity.Reputation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.setErr != nil {
		return c.setErr
	}
	r := *rep
	c.entries[rep.UserID] = &r

	return nil
}

func (c *memCache) Delete(_ context.Context, userIDs ...uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range userIDs {
		delete(c.entries, id)
	}

	return nil
}

type memBlockList struct {
	pairs map[[2]uuid.UUID]struct{}
}

func (b *memBlockList) IsBlocked(_ context.Context, userA, userB uuid.UUID) (bool, error) {
	x, y := entity.CanonicalPair(userA, userB)
	_, ok := b.pairs[[2]uuid.UUID{x, y}]

	return ok, nil
}

func (b *memBlockList) BlockedWith(_ context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{})
	for pair := range b.pairs {
		switch userID {
		case pair[0]:
			out[pair[1]] = struct{}{}
		case pair[1]:
			out[pair[0]] = struct{}{}
		}
	}

	return out, nil
}

func (b *memBlockList) block(a, c uuid.UUID) {
	x, y := entity.CanonicalPair(a, c)
	b.pairs[[2]uuid.UUID{x, y}] = struct{}{}
}

// recordingPublisher counts published events by type.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.EngagementEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *entity.EngagementEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}

	return n
}

// --- fixture ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{
			MatchExpiry:         48 * time.Hour,
			CandidateLimit:      10,
			CandidatePoolSize:   200,
			SameCityProxyMiles:  5,
			OtherCityProxyMiles: 1000,
			CreateRetries:       3,
		},
		Sweeper: &config.SweeperConfig{
			BatchSize:       100,
			RedispatchAfter: 10 * time.Minute,
		},
	}
}

// fixture wires the real services over the in-memory store.
type fixture struct {
	store      *memStore
	cache      *memCache
	blocks     *memBlockList
	publisher  *recordingPublisher
	metrics    *metrics.Metrics
	dispatcher *EventDispatcher
	clock      *testClock

	reputation *reputationService
	discovery  *discoveryService
	match      *matchService
	session    *sessionService
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:     newMemStore(),
		cache:     newMemCache(),
		blocks:    &memBlockList{pairs: make(map[[2]uuid.UUID]struct{})},
		publisher: &recordingPublisher{},
		metrics:   metrics.New(prometheus.NewRegistry()),
		clock:     &testClock{now: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)},
	}
	logger := discardLogger()
	cfg := testConfig()

	f.dispatcher = NewEventDispatcher(EventDispatcherParams{Publisher: f.publisher, Logger: logger})

	f.reputation = NewReputationService(ReputationServiceParams{
		Sessions: &memSessionRepo{f.store},
		Cache:    f.cache,
		Metrics:  f.metrics,
		Logger:   logger,
	}).(*reputationService)
	f.reputation.now = f.clock.Now

	f.discovery = NewDiscoveryService(DiscoveryServiceParams{
		Config:     cfg,
		Locations:  &memLocationRepo{f.store},
		Profiles:   &memProfileRepo{f.store},
		BlockList:  f.blocks,
		Reputation: f.reputation,
		Metrics:    f.metrics,
		Logger:     logger,
	}).(*discoveryService)

	f.match = newMatchService(MatchServiceParams{
		Config:      cfg,
		TxManager:   &memTxManager{f.store},
		Matches:     &memMatchRepo{f.store},
		Profiles:    &memProfileRepo{f.store},
		Idempotency: &memIdempotencyRepo{f.store},
		Discovery:   f.discovery,
		Reputation:  f.reputation,
		Dispatcher:  f.dispatcher,
		Metrics:     f.metrics,
		Logger:      logger,
	})
	f.match.now = f.clock.Now

	f.session = NewSessionService(SessionServiceParams{
		TxManager:  &memTxManager{f.store},
		Matches:    &memMatchRepo{f.store},
		Sessions:   &memSessionRepo{f.store},
		Reputation: f.reputation,
		QRCode:     stubQRCode{},
		Dispatcher: f.dispatcher,
		Metrics:    f.metrics,
		Logger:     logger,
	}).(*sessionService)
	f.session.now = f.clock.Now

	return f
}

// drain waits for background publishes so assertions see their effects.
func (f *fixture) drain(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := f.dispatcher.Wait(ctx); err != nil {
		t.Fatalf("dispatcher did not drain: %v", err)
	}
}

// addUser seeds a seeking user with a profile and a location. It returns the user ID.
func (f *fixture) addUser(city string, mode entity.PrivacyMode, level entity.ExperienceLevel, coords ...float64) uuid.UUID {
	id := uuid.New()
	now := f.clock.Now()

	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	f.store.profiles[id] = &entity.WingmanProfile{
		UserID:          id,
		DisplayName:     city + "-" + id.String()[:4],
		ExperienceLevel: level,
		IsSeeking:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	loc := &entity.UserLocation{
		UserID:            id,
		City:              city,
		PrivacyMode:       mode,
		MaxTravelDistance: 25,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if len(coords) == 2 {
		lat, lon := coords[0], coords[1]
		loc.Latitude, loc.Longitude = &lat, &lon
	}
	f.store.locations[id] = loc

	return id
}

// seedMatch stores a match between two users directly.
func (f *fixture) seedMatch(a, b uuid.UUID, status entity.MatchStatus) *entity.WingmanMatch {
	m := entity.NewPendingMatch(a, b, 0, 0, f.clock.Now(), 48*time.Hour)
	m.Status = status
	if status == entity.MatchStatusAccepted {
		m.ResponderAStatus, m.ResponderBStatus = entity.ResponderAccepted, entity.ResponderAccepted
	}

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.matches[m.ID] = cloneMatch(m)

	return m
}

// seedCompletedSessions gives the user a history of completed sessions with strangers.
func (f *fixture) seedCompletedSessions(userID uuid.UUID, n int) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	for range n {
		m := entity.NewPendingMatch(userID, uuid.New(), 0, 0, f.clock.Now(), 48*time.Hour)
		m.Status = entity.MatchStatusAccepted
		f.store.matches[m.ID] = m

		completedAt := f.clock.Now()
		s := &entity.WingmanSession{
			ID:          uuid.New(),
			MatchID:     m.ID,
			Status:      entity.SessionStatusCompleted,
			CompletedAt: &completedAt,
		}
		f.store.sessions[s.ID] = s
	}
}

func (f *fixture) profile(id uuid.UUID) *entity.WingmanProfile {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	c := *f.store.profiles[id]

	return &c
}

func (f *fixture) storedMatch(id uuid.UUID) *entity.WingmanMatch {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	return cloneMatch(f.store.matches[id])
}

type stubQRCode struct{}

func (stubQRCode) GenerateSessionQR(sessionID uuid.UUID) ([]byte, error) {
	return []byte("png:" + sessionID.String()), nil
}

func (stubQRCode) ParseSessionQR(qrData string) (uuid.UUID, error) {
	return uuid.Parse(qrData)
}
