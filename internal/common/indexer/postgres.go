package indexer

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
	"github.com/project-tktt/go-postgen/internal/domain"
)

// PostgresIndexer stores generated posts as drafts in PostgreSQL
type PostgresIndexer struct {
	db        *sql.DB
	tableName string
}

// NewPostgresIndexer creates a new PostgreSQL indexer
func NewPostgresIndexer(connStr string, tableName string) (*PostgresIndexer, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	indexer := &PostgresIndexer{
		db:        db,
		tableName: tableName,
	}

	if err := indexer.ensureTable(); err != nil {
		return nil, fmt.Errorf("ensure table: %w", err)
	}

	return indexer, nil
}

// ensureTable creates the posts table if it doesn't exist
func (i *PostgresIndexer) ensureTable() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			slug TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			excerpt TEXT,
			content TEXT NOT NULL,
			category TEXT NOT NULL,
			keywords TEXT[],
			company TEXT,
			location TEXT,
			salary_range TEXT,
			job_type TEXT,
			experience TEXT,
			qualification TEXT,
			deadline TEXT,
			email TEXT,
			contact TEXT,
			application_link TEXT,
			status TEXT DEFAULT 'draft',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`, i.tableName)

	_, err := i.db.Exec(query)
	return err
}

// Index stores a single generated post
func (i *PostgresIndexer) Index(ctx context.Context, post *domain.GeneratedPost) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			slug, title, excerpt, content, category, keywords,
			company, location, salary_range, job_type,
			experience, qualification, deadline, email, contact, application_link,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			NOW()
		)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			category = EXCLUDED.category,
			keywords = EXCLUDED.keywords,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			salary_range = EXCLUDED.salary_range,
			job_type = EXCLUDED.job_type,
			experience = EXCLUDED.experience,
			qualification = EXCLUDED.qualification,
			deadline = EXCLUDED.deadline,
			email = EXCLUDED.email,
			contact = EXCLUDED.contact,
			application_link = EXCLUDED.application_link,
			updated_at = NOW()
	`, i.tableName)

	_, err := i.db.ExecContext(ctx, query, postArgs(post)...)
	return err
}

// BulkIndex stores multiple posts at once using a transaction
func (i *PostgresIndexer) BulkIndex(ctx context.Context, posts []*domain.GeneratedPost) error {
	if len(posts) == 0 {
		return nil
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO %s (
			slug, title, excerpt, content, category, keywords,
			company, location, salary_range, job_type,
			experience, qualification, deadline, email, contact, application_link,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			NOW()
		)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			category = EXCLUDED.category,
			keywords = EXCLUDED.keywords,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			salary_range = EXCLUDED.salary_range,
			job_type = EXCLUDED.job_type,
			experience = EXCLUDED.experience,
			qualification = EXCLUDED.qualification,
			deadline = EXCLUDED.deadline,
			email = EXCLUDED.email,
			contact = EXCLUDED.contact,
			application_link = EXCLUDED.application_link,
			updated_at = NOW()
	`, i.tableName)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, post := range posts {
		if _, err := stmt.ExecContext(ctx, postArgs(post)...); err != nil {
			log.Printf("Error indexing post %s: %v", post.Slug, err)
			continue
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// postArgs flattens a post into the statement argument list shared by
// Index and BulkIndex
func postArgs(post *domain.GeneratedPost) []any {
	details := post.JobDetails
	if details == nil {
		details = &domain.JobDetails{}
	}

	return []any{
		post.Slug, post.Title, post.Excerpt, post.Content, string(post.Category), pq.Array(post.Keywords),
		details.Company, details.Location, details.SalaryRange, details.JobType,
		details.Experience, details.Qualification, details.Deadline,
		details.Email, details.Contact, details.ApplicationLink,
	}
}

// Close closes the database connection
func (i *PostgresIndexer) Close() error {
	return i.db.Close()
}
