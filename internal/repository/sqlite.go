package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/SARIKA005/smartspend/internal/model"
)

// SQLiteStore keeps all records in a single local database file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database file and ensures the schema exists.
// Schema creation is idempotent; there is no migration logic.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			amount REAL NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL,
			description TEXT,
			tags TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			target_amount REAL NOT NULL,
			current_amount REAL DEFAULT 0,
			deadline TEXT NOT NULL,
			priority TEXT DEFAULT 'Medium',
			description TEXT,
			status TEXT DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS savings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			amount REAL NOT NULL,
			date TEXT NOT NULL,
			source TEXT,
			purpose TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (amount, category, date, description, tags)
		VALUES (?, ?, ?, ?, ?)`,
		expense.Amount, expense.Category, expense.Date, expense.Description, expense.Tags)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	expense.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("expense id: %w", err)
	}
	return nil
}

// Expenses returns all expenses, newest date first. A non-empty month in
// YYYY-MM form restricts the result to that calendar month.
func (s *SQLiteStore) Expenses(ctx context.Context, month string) ([]model.Expense, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if month != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, amount, category, date, description, tags, created_at
			FROM expenses
			WHERE strftime('%Y-%m', date) = ?
			ORDER BY date DESC`, month)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, amount, category, date, description, tags, created_at
			FROM expenses
			ORDER BY date DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []model.Expense
	for rows.Next() {
		var (
			e                          model.Expense
			description, tags, created sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Date, &description, &tags, &created); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Description = description.String
		e.Tags = tags.String
		e.CreatedAt = created.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (name, target_amount, current_amount, deadline, priority, description, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline,
		goal.Priority, goal.Description, goal.Status)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	goal.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("goal id: %w", err)
	}
	return nil
}

// Goals returns all goals ordered by priority descending then deadline
// ascending. The priority column holds the literal strings Low/Medium/High,
// so "descending" is alphabetic: Medium before Low before High.
func (s *SQLiteStore) Goals(ctx context.Context) ([]model.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_amount, current_amount, deadline, priority, description, status, created_at
		FROM goals
		ORDER BY priority DESC, deadline ASC`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var out []model.Goal
	for rows.Next() {
		var (
			g                    model.Goal
			description, created sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
			&g.Deadline, &g.Priority, &description, &g.Status, &created); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.Description = description.String
		g.CreatedAt = created.String
		out = append(out, g)
	}
	return out, rows.Err()
}

// UpdateGoalAmount sets current_amount to newAmount (an absolute value, not
// an increment), then flips status to achieved when the target is reached.
// The two statements are not wrapped in a transaction.
func (s *SQLiteStore) UpdateGoalAmount(ctx context.Context, id int64, newAmount float64) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE goals SET current_amount = ? WHERE id = ?`, newAmount, id); err != nil {
		return fmt.Errorf("update goal amount: %w", err)
	}

	var target float64
	err := s.db.QueryRowContext(ctx,
		`SELECT target_amount FROM goals WHERE id = ?`, id).Scan(&target)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read goal target: %w", err)
	}
	if newAmount >= target {
		if _, err := s.db.ExecContext(ctx,
			`UPDATE goals SET status = ? WHERE id = ?`, model.GoalStatusAchieved, id); err != nil {
			return fmt.Errorf("mark goal achieved: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) CreateSaving(ctx context.Context, saving *model.Saving) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO savings (amount, date, source, purpose)
		VALUES (?, ?, ?, ?)`,
		saving.Amount, saving.Date, saving.Source, saving.Purpose)
	if err != nil {
		return fmt.Errorf("insert saving: %w", err)
	}
	saving.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("saving id: %w", err)
	}
	return nil
}

// Savings returns all savings records, newest date first.
func (s *SQLiteStore) Savings(ctx context.Context) ([]model.Saving, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, date, source, purpose, created_at
		FROM savings
		ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query savings: %w", err)
	}
	defer rows.Close()

	var out []model.Saving
	for rows.Next() {
		var (
			sv                       model.Saving
			source, purpose, created sql.NullString
		)
		if err := rows.Scan(&sv.ID, &sv.Amount, &sv.Date, &source, &purpose, &created); err != nil {
			return nil, fmt.Errorf("scan saving: %w", err)
		}
		sv.Source = source.String
		sv.Purpose = purpose.String
		sv.CreatedAt = created.String
		out = append(out, sv)
	}
	return out, rows.Err()
}
