package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/organization"
	"github.com/go-chi/jwtauth/v5"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type dayKey struct {
	org, emp string
	date     time.Time
}

// fakeDayRepository keeps the (organization, employee, date) uniqueness the table enforces.
type fakeDayRepository struct {
	mu   sync.Mutex
	rows map[dayKey]attendance.Day
	err  error
}

func newFakeDayRepository() *fakeDayRepository {
	return &fakeDayRepository{rows: map[dayKey]attendance.Day{}}
}

func (f *fakeDayRepository) CreateCheckIn(_ context.Context, day attendance.Day) (attendance.Day, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return attendance.Day{}, f.err
	}
	k := dayKey{day.OrganizationID, day.EmployeeID, day.Date}
	if _, ok := f.rows[k]; ok {
		return attendance.Day{}, attendance.ErrAlreadyCheckedIn
	}
	f.rows[k] = day
	return day, nil
}

func (f *fakeDayRepository) GetByEmployeeAndDate(_ context.Context, org, emp string, date time.Time) (*attendance.Day, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.rows[dayKey{org, emp, date}]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDayRepository) CloseCheckOut(_ context.Context, day attendance.Day) (attendance.Day, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := dayKey{day.OrganizationID, day.EmployeeID, day.Date}
	existing, ok := f.rows[k]
	if !ok || existing.CheckOut != nil {
		return attendance.Day{}, attendance.ErrAlreadyCheckedOut
	}
	f.rows[k] = day
	return day, nil
}

func (f *fakeDayRepository) ListByRange(_ context.Context, org, emp string, from, to time.Time) ([]attendance.Day, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Day
	for k, d := range f.rows {
		if k.org == org && k.emp == emp && !k.date.Before(from) && !k.date.After(to) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeDayRepository) List(ctx context.Context, org, emp string, filter attendance.MyAttendanceFilter) ([]attendance.Day, int64, error) {
	all, _ := f.ListByRange(ctx, org, emp, time.Time{}, time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
	if filter.SortOrder == "desc" {
		sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	}
	start := (filter.Page - 1) * filter.Limit
	if start > len(all) {
		start = len(all)
	}
	end := min(start+filter.Limit, len(all))
	return all[start:end], int64(len(all)), nil
}

func (f *fakeDayRepository) Upsert(_ context.Context, day attendance.Day) (attendance.Day, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := dayKey{day.OrganizationID, day.EmployeeID, day.Date}
	if existing, ok := f.rows[k]; ok {
		day.ID = existing.ID
	}
	f.rows[k] = day
	return day, nil
}

// fakeBreakRepository keeps the at-most-one-open-break rule of the partial unique index.
type fakeBreakRepository struct {
	mu   sync.Mutex
	rows []attendance.Break
}

func (f *fakeBreakRepository) Open(_ context.Context, b attendance.Break) (attendance.Break, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.OrganizationID == b.OrganizationID && r.EmployeeID == b.EmployeeID && r.Date.Equal(b.Date) && r.IsOpen() {
			return attendance.Break{}, attendance.ErrBreakAlreadyActive
		}
	}
	f.rows = append(f.rows, b)
	return b, nil
}

func (f *fakeBreakRepository) CloseActive(_ context.Context, org, emp string, date, end time.Time) (attendance.Break, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.OrganizationID == org && r.EmployeeID == emp && r.Date.Equal(date) && r.IsOpen() {
			f.rows[i].End = &end
			return f.rows[i], nil
		}
	}
	return attendance.Break{}, attendance.ErrNoActiveBreak
}

func (f *fakeBreakRepository) ListByDay(ctx context.Context, org, emp string, date time.Time) ([]attendance.Break, error) {
	return f.ListByRange(ctx, org, emp, date, date)
}

func (f *fakeBreakRepository) ListByRange(_ context.Context, org, emp string, from, to time.Time) ([]attendance.Break, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Break
	for _, r := range f.rows {
		if r.OrganizationID == org && r.EmployeeID == emp && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeOfficeRepository struct {
	offices map[string]organization.OfficeLocation
}

func (f *fakeOfficeRepository) GetByOrganizationID(_ context.Context, org string) (organization.OfficeLocation, error) {
	o, ok := f.offices[org]
	if !ok {
		return organization.OfficeLocation{}, organization.ErrOfficeLocationNotFound
	}
	return o, nil
}

type fakeLeaveRepository struct {
	ranges []leave.Range
}

func (f *fakeLeaveRepository) ListApproved(_ context.Context, _, emp string, from, to time.Time) ([]leave.Range, error) {
	var out []leave.Range
	for _, r := range f.ranges {
		if r.EmployeeID == emp && !r.EndDate.Before(from) && !r.StartDate.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func ctxWithClaims(org, emp, role string) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]any{
		"user_id":     "user-" + emp,
		"company_id":  org,
		"employee_id": emp,
		"role":        role,
	}
	token, _, err := tokenAuth.Encode(claims)
	if err != nil {
		panic(err)
	}
	return jwtauth.NewContext(context.Background(), token, nil)
}

func ptr[T any](v T) *T { return &v }
