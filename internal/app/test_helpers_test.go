package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/example/vouch/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement their interfaces
var (
	_ secondary.BackgroundCheckRepository = (*mockCheckRepository)(nil)
	_ secondary.ObservationRepository     = (*mockObservationRepository)(nil)
	_ secondary.ReplicaRepository         = (*mockReplicaRepository)(nil)
	_ secondary.Messenger                 = (*mockMessenger)(nil)
	_ secondary.SessionStash              = (*mockStash)(nil)
	_ secondary.LogWriter                 = (*mockLogWriter)(nil)
)

// mockCheckRepository implements secondary.BackgroundCheckRepository for testing.
type mockCheckRepository struct {
	checks    map[string]*secondary.CheckRecord
	createErr error
	getErr    error
}

func newMockCheckRepository() *mockCheckRepository {
	return &mockCheckRepository{
		checks: make(map[string]*secondary.CheckRecord),
	}
}

func (m *mockCheckRepository) Create(ctx context.Context, check *secondary.CheckRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *check
	if stored.Status == "" {
		stored.Status = "unset"
	}
	if stored.CreatedAt == "" {
		stored.CreatedAt = "2026-08-20T10:00:00Z"
	}
	m.checks[check.OriginID] = &stored
	return nil
}

func (m *mockCheckRepository) GetByOrigin(ctx context.Context, originID string) (*secondary.CheckRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	check, ok := m.checks[originID]
	if !ok {
		return nil, nil
	}
	copied := *check
	return &copied, nil
}

func (m *mockCheckRepository) UpdateSelection(ctx context.Context, originID string, keys []string) (bool, error) {
	check, ok := m.checks[originID]
	if !ok || check.Status != "unset" {
		return false, nil
	}
	check.SelectedKeys = keys
	return true, nil
}

func (m *mockCheckRepository) Finalize(ctx context.Context, originID, status string) (bool, error) {
	check, ok := m.checks[originID]
	if !ok || check.Status != "unset" {
		return false, nil
	}
	check.Status = status
	return true, nil
}

// mockObservationRepository implements secondary.ObservationRepository for testing.
type mockObservationRepository struct {
	reports   map[string]map[int]*secondary.ObservationRecord
	insertErr error
}

func newMockObservationRepository() *mockObservationRepository {
	return &mockObservationRepository{
		reports: make(map[string]map[int]*secondary.ObservationRecord),
	}
}

func (m *mockObservationRepository) Insert(ctx context.Context, report *secondary.ObservationRecord) (*secondary.ObservationRecord, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	slots, ok := m.reports[report.OriginID]
	if !ok {
		slots = make(map[int]*secondary.ObservationRecord)
		m.reports[report.OriginID] = slots
	}
	if existing, ok := slots[report.Slot]; ok {
		copied := *existing
		return &copied, nil
	}
	stored := *report
	slots[report.Slot] = &stored
	return nil, nil
}

func (m *mockObservationRepository) GetBySlot(ctx context.Context, originID string, slot int) (*secondary.ObservationRecord, error) {
	report, ok := m.reports[originID][slot]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (m *mockObservationRepository) ListByOrigin(ctx context.Context, originID string) ([]*secondary.ObservationRecord, error) {
	var result []*secondary.ObservationRecord
	for _, report := range m.reports[originID] {
		copied := *report
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slot < result[j].Slot })
	return result, nil
}

func (m *mockObservationRepository) CountByOrigin(ctx context.Context, originID string) (int, error) {
	return len(m.reports[originID]), nil
}

// mockReplicaRepository implements secondary.ReplicaRepository for testing.
type mockReplicaRepository struct {
	refs   []*secondary.ReplicaRef
	claims map[string]string
}

func newMockReplicaRepository() *mockReplicaRepository {
	return &mockReplicaRepository{
		claims: make(map[string]string),
	}
}

func (m *mockReplicaRepository) Register(ctx context.Context, ref *secondary.ReplicaRef) error {
	for _, existing := range m.refs {
		if *existing == *ref {
			return nil
		}
	}
	copied := *ref
	m.refs = append(m.refs, &copied)
	return nil
}

func (m *mockReplicaRepository) ListByOrigin(ctx context.Context, originID string) ([]*secondary.ReplicaRef, error) {
	var result []*secondary.ReplicaRef
	for _, ref := range m.refs {
		if ref.OriginID == originID {
			result = append(result, ref)
		}
	}
	return result, nil
}

func (m *mockReplicaRepository) ClaimPollMirror(ctx context.Context, originID, actorID string) (bool, error) {
	if _, claimed := m.claims[originID]; claimed {
		return false, nil
	}
	m.claims[originID] = actorID
	return true, nil
}

// mockMessenger implements secondary.Messenger for testing. Messages are
// keyed by "channel/message"; surfaces listed in gone refuse edits.
type mockMessenger struct {
	messages map[string]string
	edits    []string // "channel/message" in edit order
	gone     map[string]bool
	nextID   int
	postErr  error
}

func newMockMessenger() *mockMessenger {
	return &mockMessenger{
		messages: make(map[string]string),
		gone:     make(map[string]bool),
	}
}

func surfaceKey(channelID, messageID string) string {
	return channelID + "/" + messageID
}

func (m *mockMessenger) Post(ctx context.Context, channelID, content string) (string, error) {
	if m.postErr != nil {
		return "", m.postErr
	}
	m.nextID++
	messageID := fmt.Sprintf("msg-%d", m.nextID)
	m.messages[surfaceKey(channelID, messageID)] = content
	return messageID, nil
}

func (m *mockMessenger) Edit(ctx context.Context, channelID, messageID, content string) error {
	key := surfaceKey(channelID, messageID)
	if m.gone[key] {
		return secondary.ErrSurfaceGone
	}
	if _, ok := m.messages[key]; !ok {
		return secondary.ErrSurfaceGone
	}
	m.messages[key] = content
	m.edits = append(m.edits, key)
	return nil
}

func (m *mockMessenger) React(ctx context.Context, channelID, messageID, marker string) error {
	key := surfaceKey(channelID, messageID)
	if m.gone[key] {
		return secondary.ErrSurfaceGone
	}
	if _, ok := m.messages[key]; !ok {
		return secondary.ErrSurfaceGone
	}
	return nil
}

// mockStash implements secondary.SessionStash for testing, without timers.
type mockStash struct {
	entries map[string]secondary.DraftPayload
}

func newMockStash() *mockStash {
	return &mockStash{entries: make(map[string]secondary.DraftPayload)}
}

func (m *mockStash) Put(token string, payload secondary.DraftPayload, ttl time.Duration) {
	m.entries[token] = payload
}

func (m *mockStash) Refresh(token string) bool {
	_, ok := m.entries[token]
	return ok
}

func (m *mockStash) Consume(token string) (secondary.DraftPayload, bool) {
	payload, ok := m.entries[token]
	if ok {
		delete(m.entries, token)
	}
	return payload, ok
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	entries []logEntry
}

type logEntry struct {
	entityType string
	entityID   string
	action     string
	detail     string
}

func newMockLogWriter() *mockLogWriter {
	return &mockLogWriter{}
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.entries = append(m.entries, logEntry{entityType: entityType, entityID: entityID, action: "create"})
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, detail string) error {
	m.entries = append(m.entries, logEntry{entityType: entityType, entityID: entityID, action: "update", detail: detail})
	return nil
}

func (m *mockLogWriter) LogSkip(ctx context.Context, entityType, entityID, reason string) error {
	m.entries = append(m.entries, logEntry{entityType: entityType, entityID: entityID, action: "skip", detail: reason})
	return nil
}

// ============================================================================
// Test Fixtures
// ============================================================================

// testDeps bundles the mock secondary ports shared by service tests.
type testDeps struct {
	checkRepo       *mockCheckRepository
	observationRepo *mockObservationRepository
	replicaRepo     *mockReplicaRepository
	messenger       *mockMessenger
	stash           *mockStash
	logWriter       *mockLogWriter
}

func newTestDeps() *testDeps {
	return &testDeps{
		checkRepo:       newMockCheckRepository(),
		observationRepo: newMockObservationRepository(),
		replicaRepo:     newMockReplicaRepository(),
		messenger:       newMockMessenger(),
		stash:           newMockStash(),
		logWriter:       newMockLogWriter(),
	}
}

const testSlotCount = 3

// seedCheck stores a background check in the mock repository.
func (d *testDeps) seedCheck(originID, status string, selected ...string) {
	d.checkRepo.checks[originID] = &secondary.CheckRecord{
		OriginID:        originID,
		OriginChannelID: "review",
		Candidate:       "alice",
		RecommenderID:   "bob",
		Status:          status,
		SelectedKeys:    selected,
		CreatedAt:       "2026-08-20T10:00:00Z",
	}
}

// seedReport stores a filed report in the mock repository.
func (d *testDeps) seedReport(originID string, slot int, authorID string) {
	slots, ok := d.observationRepo.reports[originID]
	if !ok {
		slots = make(map[int]*secondary.ObservationRecord)
		d.observationRepo.reports[originID] = slots
	}
	slots[slot] = &secondary.ObservationRecord{
		OriginID: originID,
		Slot:     slot,
		Date:     "2026-08-20",
		Notes:    "seeded notes",
		AuthorID: authorID,
	}
}
