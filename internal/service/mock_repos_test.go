package service

import (
	"context"
	"strings"

	"app/internal/model"
	"app/internal/repository"

	"github.com/google/uuid"
)

// ── Mock CourseRepository ──

// mockCourseRepo keeps courses in insertion order so "natural retrieval
// order" assertions hold.
type mockCourseRepo struct {
	courses []*model.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{}
}

func (m *mockCourseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	if c.CourseID == "" {
		c.CourseID = uuid.NewString()
	}
	m.courses = append(m.courses, c)
	return nil
}

func (m *mockCourseRepo) GetCourseByID(_ context.Context, courseID string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.CourseID == courseID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCourseRepo) ListCourses(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) ListCoursesByInstructor(_ context.Context, instructorID string) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range m.courses {
		if c.InstructorID == instructorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) UpdateCourse(_ context.Context, c *model.Course) error {
	for i, existing := range m.courses {
		if existing.CourseID == c.CourseID {
			m.courses[i] = c
			return nil
		}
	}
	return nil
}

func (m *mockCourseRepo) DeleteCourse(_ context.Context, courseID string) error {
	for i, c := range m.courses {
		if c.CourseID == courseID {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

// SearchCourses mirrors the case-insensitive substring semantics of the SQL
// alternation match.
func (m *mockCourseRepo) SearchCourses(_ context.Context, pattern string, limit int) ([]model.Course, error) {
	tokens := strings.Split(pattern, "|")
	out := []model.Course{}
	for _, c := range m.courses {
		if len(out) >= limit {
			break
		}
		haystack := strings.ToLower(c.Title + " " + c.Description + " " + c.Content)
		for _, tok := range tokens {
			if tok != "" && strings.Contains(haystack, strings.ToLower(tok)) {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (m *mockCourseRepo) ListTopCourses(_ context.Context, limit int) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range m.courses {
		if len(out) >= limit {
			break
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) CountByInstructor(_ context.Context, instructorID string) (int, error) {
	count := 0
	for _, c := range m.courses {
		if c.InstructorID == instructorID {
			count++
		}
	}
	return count, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments []*model.Enrollment
	courses     *mockCourseRepo
}

func newMockEnrollmentRepo(courses *mockCourseRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{courses: courses}
}

func (m *mockEnrollmentRepo) CreateEnrollment(_ context.Context, e *model.Enrollment) error {
	for _, existing := range m.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return repository.ErrDuplicate
		}
	}
	if e.EnrollmentID == "" {
		e.EnrollmentID = uuid.NewString()
	}
	m.enrollments = append(m.enrollments, e)
	return nil
}

func (m *mockEnrollmentRepo) GetByStudentAndCourse(_ context.Context, studentID, courseID string) (*model.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockEnrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	out := []model.Enrollment{}
	for _, e := range m.enrollments {
		if e.StudentID != studentID {
			continue
		}
		enriched := *e
		if m.courses != nil {
			enriched.Course, _ = m.courses.GetCourseByID(ctx, e.CourseID)
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (m *mockEnrollmentRepo) ListByCourse(_ context.Context, courseID string) ([]model.Enrollment, error) {
	out := []model.Enrollment{}
	for _, e := range m.enrollments {
		if e.CourseID == courseID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEnrollmentRepo) CountDistinctStudents(ctx context.Context, instructorID string) (int, error) {
	seen := map[string]struct{}{}
	for _, e := range m.enrollments {
		course, _ := m.courses.GetCourseByID(ctx, e.CourseID)
		if course != nil && course.InstructorID == instructorID {
			seen[e.StudentID] = struct{}{}
		}
	}
	return len(seen), nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u *model.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	m.users[u.UserID] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// ── Fake OpenAI client ──

type fakeOpenAI struct {
	reply string
	err   error
	// last prompt seen, for assertions
	prompt string
}

func (f *fakeOpenAI) CreateCompletion(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
