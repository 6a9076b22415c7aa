package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
)

type coursesRepo struct {
	db dbtx
}

const courseColumns = `id, title, branch, description, topics, syllabus_key, price_cents, created_at, updated_at`

func scanCourse(scan func(dest ...any) error) (domain.Course, error) {
	var (
		c      domain.Course
		branch string
		topics string
		price  sql.NullInt64
	)
	err := scan(&c.ID, &c.Title, &branch, &c.Description, &topics, &c.SyllabusKey, &price, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Course{}, err
	}
	c.Branch = domain.Branch(branch)
	c.PriceCents = mapNullInt64Ptr(price)
	c.Topics, err = decodeTopics(topics)
	if err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id string) (domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	c, err := scanCourse(row.Scan)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return c, nil
}

func (r *coursesRepo) GetCoursesByIDs(ctx context.Context, ids []string) ([]domain.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]domain.Course, len(ids))
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Preserve the caller's order; unknown IDs are simply absent.
	out := make([]domain.Course, 0, len(byID))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) error {
	topics, err := encodeTopics(c.Topics)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO courses (id, title, branch, description, topics, syllabus_key, price_cents, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, string(c.Branch), c.Description, topics, c.SyllabusKey,
		mapOptionalInt64(c.PriceCents), now, now)
	return err
}

func (r *coursesRepo) UpdateCourse(ctx context.Context, c domain.Course) error {
	topics, err := encodeTopics(c.Topics)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET title = ?, branch = ?, description = ?, topics = ?, price_cents = ?, updated_at = ?
		 WHERE id = ?`,
		c.Title, string(c.Branch), c.Description, topics,
		mapOptionalInt64(c.PriceCents), time.Now().UTC(), c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *coursesRepo) DeleteCourse(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *coursesRepo) ListCourses(ctx context.Context, branch domain.Branch) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	var args []any
	if branch != "" {
		query += ` WHERE branch = ?`
		args = append(args, string(branch))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	return r.queryCourses(ctx, query, args...)
}

// SearchCourses matches a lowercased substring against title and description.
func (r *coursesRepo) SearchCourses(ctx context.Context, query string) ([]domain.Course, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}

	return r.queryCourses(ctx,
		`SELECT `+courseColumns+` FROM courses
		 WHERE instr(lower(title), ?) > 0 OR instr(lower(description), ?) > 0
		 ORDER BY created_at DESC, id DESC`,
		needle, needle)
}

func (r *coursesRepo) SetSyllabusKey(ctx context.Context, courseID, key string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET syllabus_key = ?, updated_at = ? WHERE id = ?`,
		key, time.Now().UTC(), courseID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *coursesRepo) queryCourses(ctx context.Context, query string, args ...any) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// requireRow maps "no rows affected" onto store.ErrNotFound for updates and
// deletes that target a single record.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
