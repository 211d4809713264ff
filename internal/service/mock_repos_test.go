package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"mom-portal/backend/internal/model"
	"mom-portal/backend/internal/repository"
	"mom-portal/backend/pkg/storage"
)

var mockSeq atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, mockSeq.Add(1))
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.UserID == "" {
		user.UserID = nextID("user")
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staff       map[string]*model.Staff
	memberships map[string]int64
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[string]*model.Staff), memberships: make(map[string]int64)}
}

func (m *mockStaffRepo) add(id, name, email string) *model.Staff {
	s := &model.Staff{StaffID: id, StaffName: name, EmailAddress: email, Role: model.RoleStaff, IsActive: true}
	m.staff[id] = s
	return s
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	if staff.StaffID == "" {
		staff.StaffID = nextID("staff")
	}
	m.staff[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.staff[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) GetByEmail(_ context.Context, email string) (*model.Staff, error) {
	for _, s := range m.staff {
		if s.EmailAddress != "" && s.EmailAddress == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context, search string, offset, limit int) ([]model.Staff, int64, error) {
	var all []model.Staff
	for _, s := range m.staff {
		if search == "" || strings.Contains(strings.ToLower(s.StaffName), strings.ToLower(search)) {
			all = append(all, *s)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StaffID < all[j].StaffID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockStaffRepo) CountByIDs(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := m.staff[id]; ok {
			n++
		}
	}
	return n, nil
}

func (m *mockStaffRepo) Update(_ context.Context, staff *model.Staff) error {
	cp := *staff
	m.staff[staff.StaffID] = &cp
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.staff[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.staff, id)
	return nil
}

func (m *mockStaffRepo) CountMemberships(_ context.Context, id string) (int64, error) {
	return m.memberships[id], nil
}

// ── Mock MeetingTypeRepository ──

type mockMeetingTypeRepo struct {
	types    map[string]*model.MeetingType
	meetings map[string]int64
}

func newMockMeetingTypeRepo() *mockMeetingTypeRepo {
	return &mockMeetingTypeRepo{
		types: map[string]*model.MeetingType{
			"type-board": {MeetingTypeID: "type-board", MeetingTypeName: "Board"},
		},
		meetings: make(map[string]int64),
	}
}

func (m *mockMeetingTypeRepo) Create(_ context.Context, mt *model.MeetingType) error {
	if mt.MeetingTypeID == "" {
		mt.MeetingTypeID = nextID("type")
	}
	m.types[mt.MeetingTypeID] = mt
	return nil
}

func (m *mockMeetingTypeRepo) GetByID(_ context.Context, id string) (*model.MeetingType, error) {
	if mt, ok := m.types[id]; ok {
		cp := *mt
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingTypeRepo) GetByName(_ context.Context, name string) (*model.MeetingType, error) {
	for _, mt := range m.types {
		if mt.MeetingTypeName == name {
			cp := *mt
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingTypeRepo) List(_ context.Context, search string) ([]model.MeetingType, error) {
	var result []model.MeetingType
	for _, mt := range m.types {
		if search == "" || strings.Contains(strings.ToLower(mt.MeetingTypeName), strings.ToLower(search)) {
			result = append(result, *mt)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MeetingTypeName < result[j].MeetingTypeName })
	return result, nil
}

func (m *mockMeetingTypeRepo) Update(_ context.Context, mt *model.MeetingType) error {
	cp := *mt
	m.types[mt.MeetingTypeID] = &cp
	return nil
}

func (m *mockMeetingTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.types[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.types, id)
	return nil
}

func (m *mockMeetingTypeRepo) CountMeetings(_ context.Context, id string) (int64, error) {
	return m.meetings[id], nil
}

// ── Mock MeetingRepository ──

type mockMeetingRepo struct {
	meetings map[string]*model.Meeting
	types    *mockMeetingTypeRepo
	members  *mockMeetingMemberRepo
	docs     *mockMeetingDocumentRepo
	lastList repository.MeetingFilter
	listErr  error
}

func newMockMeetingRepo(types *mockMeetingTypeRepo) *mockMeetingRepo {
	return &mockMeetingRepo{meetings: make(map[string]*model.Meeting), types: types}
}

func (m *mockMeetingRepo) add(id string, date time.Time, status model.MeetingStatus) *model.Meeting {
	mt := &model.Meeting{
		MeetingID:     id,
		MeetingDate:   date,
		MeetingTime:   "10:00",
		MeetingTypeID: "type-board",
		MeetingTitle:  "Meeting " + id,
		Status:        status,
	}
	if status == model.StatusCancelled {
		now := time.Now()
		mt.CancellationDateTime = &now
	}
	m.meetings[id] = mt
	return mt
}

func (m *mockMeetingRepo) withType(meeting *model.Meeting) *model.Meeting {
	cp := *meeting
	if m.types != nil {
		if mt, ok := m.types.types[cp.MeetingTypeID]; ok {
			t := *mt
			cp.MeetingType = &t
		}
	}
	return &cp
}

func (m *mockMeetingRepo) Create(_ context.Context, meeting *model.Meeting) error {
	if meeting.MeetingID == "" {
		meeting.MeetingID = nextID("meeting")
	}
	now := time.Now()
	meeting.CreatedAt, meeting.UpdatedAt = now, now
	cp := *meeting
	m.meetings[meeting.MeetingID] = &cp
	return nil
}

func (m *mockMeetingRepo) GetByID(_ context.Context, id string) (*model.Meeting, error) {
	if mt, ok := m.meetings[id]; ok {
		return m.withType(mt), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingRepo) GetDetail(ctx context.Context, id string) (*model.Meeting, error) {
	meeting, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.members != nil {
		meeting.Members, _ = m.members.ListByMeeting(ctx, id)
	}
	if m.docs != nil {
		meeting.Documents, _ = m.docs.ListByMeeting(ctx, id)
	}
	return meeting, nil
}

func (m *mockMeetingRepo) List(_ context.Context, filter repository.MeetingFilter) ([]model.Meeting, int64, error) {
	m.lastList = filter
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var result []model.Meeting
	for _, mt := range m.meetings {
		if filter.Status != "" && mt.Status != filter.Status {
			continue
		}
		result = append(result, *m.withType(mt))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MeetingDate.After(result[j].MeetingDate) })
	return result, int64(len(result)), nil
}

func (m *mockMeetingRepo) Update(_ context.Context, meeting *model.Meeting) error {
	if _, ok := m.meetings[meeting.MeetingID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *meeting
	cp.MeetingType, cp.Members, cp.Documents = nil, nil, nil
	m.meetings[meeting.MeetingID] = &cp
	return nil
}

func (m *mockMeetingRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := m.meetings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if m.members != nil {
		for mid, mm := range m.members.members {
			if mm.MeetingID == id {
				delete(m.members.members, mid)
			}
		}
	}
	if m.docs != nil {
		for did, d := range m.docs.docs {
			if d.MeetingID == id {
				delete(m.docs.docs, did)
			}
		}
	}
	delete(m.meetings, id)
	return nil
}

func (m *mockMeetingRepo) CountByStatus(_ context.Context) (map[model.MeetingStatus]int64, error) {
	result := make(map[model.MeetingStatus]int64)
	for _, mt := range m.meetings {
		result[mt.Status]++
	}
	return result, nil
}

func (m *mockMeetingRepo) upcoming(today time.Time) []model.Meeting {
	var result []model.Meeting
	for _, mt := range m.meetings {
		if mt.Status == model.StatusScheduled && !mt.MeetingDate.Before(today) {
			result = append(result, *m.withType(mt))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].MeetingDate.Equal(result[j].MeetingDate) {
			return result[i].MeetingDate.Before(result[j].MeetingDate)
		}
		return result[i].MeetingTime < result[j].MeetingTime
	})
	return result
}

func (m *mockMeetingRepo) CountUpcoming(_ context.Context, today time.Time) (int64, error) {
	return int64(len(m.upcoming(today))), nil
}

func (m *mockMeetingRepo) Upcoming(_ context.Context, today time.Time, limit int) ([]model.Meeting, error) {
	result := m.upcoming(today)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── Mock MeetingMemberRepository ──

type mockMeetingMemberRepo struct {
	members map[string]*model.MeetingMember
	staff   *mockStaffRepo
	// batchCalls number of CreateBatch invocations
	batchCalls int
}

func newMockMeetingMemberRepo(staff *mockStaffRepo) *mockMeetingMemberRepo {
	return &mockMeetingMemberRepo{members: make(map[string]*model.MeetingMember), staff: staff}
}

func (m *mockMeetingMemberRepo) exists(meetingID, staffID string) bool {
	for _, mm := range m.members {
		if mm.MeetingID == meetingID && mm.StaffID == staffID {
			return true
		}
	}
	return false
}

func (m *mockMeetingMemberRepo) Create(_ context.Context, member *model.MeetingMember) error {
	if m.exists(member.MeetingID, member.StaffID) {
		return repository.ErrDuplicate
	}
	if member.MeetingMemberID == "" {
		member.MeetingMemberID = nextID("member")
	}
	cp := *member
	m.members[member.MeetingMemberID] = &cp
	return nil
}

func (m *mockMeetingMemberRepo) CreateBatch(ctx context.Context, members []model.MeetingMember) error {
	m.batchCalls++
	for i := range members {
		if m.exists(members[i].MeetingID, members[i].StaffID) {
			return repository.ErrDuplicate
		}
	}
	for i := range members {
		if err := m.Create(ctx, &members[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockMeetingMemberRepo) withStaff(mm *model.MeetingMember) model.MeetingMember {
	cp := *mm
	if m.staff != nil {
		if s, ok := m.staff.staff[cp.StaffID]; ok {
			sc := *s
			cp.Staff = &sc
		}
	}
	return cp
}

func (m *mockMeetingMemberRepo) GetByID(_ context.Context, id string) (*model.MeetingMember, error) {
	if mm, ok := m.members[id]; ok {
		cp := m.withStaff(mm)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingMemberRepo) GetByPair(_ context.Context, meetingID, staffID string) (*model.MeetingMember, error) {
	for _, mm := range m.members {
		if mm.MeetingID == meetingID && mm.StaffID == staffID {
			cp := *mm
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingMemberRepo) ListByMeeting(_ context.Context, meetingID string) ([]model.MeetingMember, error) {
	var result []model.MeetingMember
	for _, mm := range m.members {
		if mm.MeetingID == meetingID {
			result = append(result, m.withStaff(mm))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MeetingMemberID < result[j].MeetingMemberID })
	return result, nil
}

func (m *mockMeetingMemberRepo) ListByStaff(_ context.Context, staffID string) ([]model.MeetingMember, error) {
	var result []model.MeetingMember
	for _, mm := range m.members {
		if mm.StaffID == staffID {
			result = append(result, *mm)
		}
	}
	return result, nil
}

func (m *mockMeetingMemberRepo) StaffIDsInMeeting(_ context.Context, meetingID string, staffIDs []string) ([]string, error) {
	var result []string
	for _, id := range staffIDs {
		if m.exists(meetingID, id) {
			result = append(result, id)
		}
	}
	return result, nil
}

func (m *mockMeetingMemberRepo) Update(_ context.Context, member *model.MeetingMember) error {
	cp := *member
	cp.Meeting, cp.Staff = nil, nil
	m.members[member.MeetingMemberID] = &cp
	return nil
}

func (m *mockMeetingMemberRepo) SetPresence(_ context.Context, id string, isPresent bool) error {
	mm, ok := m.members[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	mm.IsPresent = isPresent
	return nil
}

func (m *mockMeetingMemberRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.members[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.members, id)
	return nil
}

func (m *mockMeetingMemberRepo) CountAttendance(_ context.Context, meetingID string) (repository.AttendanceCount, error) {
	var c repository.AttendanceCount
	for _, mm := range m.members {
		if mm.MeetingID != meetingID {
			continue
		}
		c.Total++
		if mm.IsPresent {
			c.Present++
		}
	}
	return c, nil
}

// ── Mock MeetingDocumentRepository ──

type mockMeetingDocumentRepo struct {
	mu        sync.Mutex
	docs      map[string]*model.MeetingDocument
	meetings  *mockMeetingRepo
	createErr error
	updateErr error
}

func newMockMeetingDocumentRepo(meetings *mockMeetingRepo) *mockMeetingDocumentRepo {
	return &mockMeetingDocumentRepo{docs: make(map[string]*model.MeetingDocument), meetings: meetings}
}

func (m *mockMeetingDocumentRepo) Create(_ context.Context, doc *model.MeetingDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(doc)
}

func (m *mockMeetingDocumentRepo) insert(doc *model.MeetingDocument) error {
	if m.createErr != nil {
		return m.createErr
	}
	if doc.MeetingDocumentID == "" {
		doc.MeetingDocumentID = nextID("doc")
	}
	cp := *doc
	cp.Uploader = nil
	m.docs[doc.MeetingDocumentID] = &cp
	return nil
}

func (m *mockMeetingDocumentRepo) CreateWithNextSequence(_ context.Context, doc *model.MeetingDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.meetings != nil {
		if _, ok := m.meetings.meetings[doc.MeetingID]; !ok {
			return gorm.ErrRecordNotFound
		}
	}
	var max float64
	for _, d := range m.docs {
		if d.MeetingID == doc.MeetingID && d.Sequence > max {
			max = d.Sequence
		}
	}
	doc.Sequence = max + 1
	return m.insert(doc)
}

func (m *mockMeetingDocumentRepo) GetByID(_ context.Context, id string) (*model.MeetingDocument, error) {
	if d, ok := m.docs[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingDocumentRepo) ListByMeeting(_ context.Context, meetingID string) ([]model.MeetingDocument, error) {
	var result []model.MeetingDocument
	for _, d := range m.docs {
		if d.MeetingID == meetingID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Sequence < result[j].Sequence })
	return result, nil
}

func (m *mockMeetingDocumentRepo) Update(_ context.Context, doc *model.MeetingDocument) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *doc
	cp.Uploader = nil
	m.docs[doc.MeetingDocumentID] = &cp
	return nil
}

func (m *mockMeetingDocumentRepo) Reorder(_ context.Context, meetingID string, updates []repository.SequenceUpdate) ([]string, error) {
	var skipped []string
	for _, u := range updates {
		d, ok := m.docs[u.DocumentID]
		if !ok || d.MeetingID != meetingID {
			skipped = append(skipped, u.DocumentID)
			continue
		}
		d.Sequence = u.Sequence
	}
	return skipped, nil
}

func (m *mockMeetingDocumentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *mockMeetingDocumentRepo) Stats(_ context.Context, meetingID string) (*repository.DocumentStats, error) {
	stats := &repository.DocumentStats{FileTypes: make(map[string]int64)}
	for _, d := range m.docs {
		if d.MeetingID != meetingID {
			continue
		}
		stats.TotalDocuments++
		stats.TotalSize += d.FileSize
		ft := d.FileType
		if ft == "" {
			ft = "unknown"
		}
		stats.FileTypes[ft]++
	}
	return stats, nil
}

// ── Mock DashboardRepository ──

type mockDashboardRepo struct {
	counts     repository.OverviewCounts
	total      int64
	present    int64
	staffRows  []repository.StaffAttendanceRow
	typeRows   []repository.TypeUsageRow
	trends     []repository.TrendRow
	attendance []repository.MeetingAttendanceRow
	meetings   []model.Meeting
	staff      []model.Staff
	documents  []model.MeetingDocument
	lastSince  time.Time
	lastWeek   time.Time
	lastMonth  time.Time
	lastLimit  int
	staffLimit int
}

func (m *mockDashboardRepo) Counts(_ context.Context, monthStart, weekStart, _ time.Time) (*repository.OverviewCounts, error) {
	m.lastMonth, m.lastWeek = monthStart, weekStart
	c := m.counts
	return &c, nil
}

func (m *mockDashboardRepo) AttendanceTotals(_ context.Context) (int64, int64, error) {
	return m.total, m.present, nil
}

func (m *mockDashboardRepo) ActiveStaff(_ context.Context, limit int) ([]repository.StaffAttendanceRow, error) {
	m.lastLimit = limit
	return m.staffRows, nil
}

func (m *mockDashboardRepo) StaffAttendanceSince(_ context.Context, since time.Time) ([]repository.StaffAttendanceRow, error) {
	m.lastSince = since
	return m.staffRows, nil
}

func (m *mockDashboardRepo) TypeUsage(_ context.Context) ([]repository.TypeUsageRow, error) {
	return m.typeRows, nil
}

func (m *mockDashboardRepo) Trends(_ context.Context, since time.Time) ([]repository.TrendRow, error) {
	m.lastSince = since
	return m.trends, nil
}

func (m *mockDashboardRepo) MeetingAttendanceSince(_ context.Context, since time.Time) ([]repository.MeetingAttendanceRow, error) {
	m.lastSince = since
	return m.attendance, nil
}

func (m *mockDashboardRepo) LatestMeetings(_ context.Context, limit int) ([]model.Meeting, error) {
	m.lastLimit = limit
	return m.meetings, nil
}

func (m *mockDashboardRepo) RecentlyUpdatedMeetings(_ context.Context, limit int) ([]model.Meeting, error) {
	m.lastLimit = limit
	return m.meetings, nil
}

func (m *mockDashboardRepo) RecentStaff(_ context.Context, limit int) ([]model.Staff, error) {
	m.staffLimit = limit
	return m.staff, nil
}

func (m *mockDashboardRepo) RecentDocuments(_ context.Context, _ int) ([]model.MeetingDocument, error) {
	return m.documents, nil
}

// ── Mock FileStore ──

type mockFileStore struct {
	files   map[string][]byte
	saveErr error
	removed []string
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{files: make(map[string][]byte)}
}

func (m *mockFileStore) Save(originalName string, r io.Reader) (*storage.StoredFile, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	path := "uploads/" + nextID("file") + strings.ToLower(extOf(originalName))
	m.files[path] = buf.Bytes()
	return &storage.StoredFile{Path: path, Size: int64(buf.Len()), MIME: "application/pdf"}, nil
}

func (m *mockFileStore) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *mockFileStore) Resolve(path string) (string, bool) {
	if !m.Exists(path) {
		return "", false
	}
	return path, true
}

func (m *mockFileStore) Remove(path string) error {
	m.removed = append(m.removed, path)
	delete(m.files, path)
	return nil
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	revoked map[string]time.Duration
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.revoked == nil {
		m.revoked = make(map[string]time.Duration)
	}
	m.revoked[jti] = ttl
	return nil
}

// ── fixture ──

type testRepos struct {
	user      *mockUserRepo
	staff     *mockStaffRepo
	types     *mockMeetingTypeRepo
	meetings  *mockMeetingRepo
	members   *mockMeetingMemberRepo
	docs      *mockMeetingDocumentRepo
	dashboard *mockDashboardRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	r := &testRepos{
		user:      newMockUserRepo(),
		staff:     newMockStaffRepo(),
		types:     newMockMeetingTypeRepo(),
		dashboard: &mockDashboardRepo{},
	}
	r.meetings = newMockMeetingRepo(r.types)
	r.members = newMockMeetingMemberRepo(r.staff)
	r.docs = newMockMeetingDocumentRepo(r.meetings)
	r.meetings.members = r.members
	r.meetings.docs = r.docs

	return &repository.Repository{
		User:            r.user,
		Staff:           r.staff,
		MeetingType:     r.types,
		Meeting:         r.meetings,
		MeetingMember:   r.members,
		MeetingDocument: r.docs,
		Dashboard:       r.dashboard,
	}, r
}
