package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// Doc represents a documentation page. The markdown body is rendered to
// HTML at view time; the store only holds source text.
type Doc struct {
	ID        int64          `json:"id"`
	GUID      string         `json:"guid"`
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	Summary   sql.NullString `json:"-"`
	Body      string         `json:"body"`
	Published bool           `json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt sql.NullTime   `json:"-"`
}

const CreateDocsTableSQL = `
CREATE SEQUENCE IF NOT EXISTS docs_id_seq START 1;

CREATE TABLE IF NOT EXISTS docs (
    id         BIGINT PRIMARY KEY DEFAULT nextval('docs_id_seq'),
    guid       VARCHAR NOT NULL UNIQUE,
    slug       VARCHAR NOT NULL UNIQUE,
    title      VARCHAR NOT NULL,
    summary    VARCHAR,
    body       VARCHAR NOT NULL,
    published  BOOLEAN DEFAULT false,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_docs_slug ON docs(slug);
`

// DocInput is the JSON shape accepted by the create/update endpoints.
type DocInput struct {
	Slug      string  `json:"slug,omitempty"` // derived from title when absent
	Title     string  `json:"title"`
	Summary   *string `json:"summary,omitempty"`
	Body      string  `json:"body"`
	Published bool    `json:"published"`
}

// DocOutput is the JSON-friendly representation of a Doc.
type DocOutput struct {
	ID        int64     `json:"id"`
	GUID      string    `json:"guid"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Summary   *string   `json:"summary,omitempty"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doc) ToOutput() DocOutput {
	out := DocOutput{
		ID:        d.ID,
		GUID:      d.GUID,
		Slug:      d.Slug,
		Title:     d.Title,
		Body:      d.Body,
		Published: d.Published,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Summary.Valid {
		out.Summary = &d.Summary.String
	}
	return out
}

// Slugify converts a title to a URL slug: lowercased, non-alphanumerics
// collapsed to single hyphens, trimmed at the edges.
func Slugify(s string) string {
	var sb strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// CreateDoc inserts a new doc and its first revision.
func CreateDoc(input DocInput) (*Doc, error) {
	if input.Title == "" {
		return nil, serr.New("title is required")
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if slug == "" {
		return nil, serr.New("slug could not be derived from title")
	}

	now := time.Now()
	doc := &Doc{
		GUID:      uuid.NewString(),
		Slug:      slug,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Summary != nil {
		doc.Summary = sql.NullString{String: *input.Summary, Valid: true}
	}

	tx, err := BeginDualTx()
	if err != nil {
		return nil, serr.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	err = tx.Exec(`
		INSERT INTO docs (guid, slug, title, summary, body, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.GUID, doc.Slug, doc.Title, doc.Summary, doc.Body, doc.Published, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return nil, serr.Wrap(err, "failed to create doc")
	}

	if err = recordRevisionTx(tx, doc.GUID, 1, doc.Title, doc.Body, now); err != nil {
		return nil, serr.Wrap(err, "failed to record initial revision")
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return GetDocByGUID(doc.GUID)
}

// UpdateDoc modifies a doc and records a new revision when the title or
// body changed.
func UpdateDoc(guid string, input DocInput) (*Doc, error) {
	doc, err := GetDocByGUID(guid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	changed := doc.Title != input.Title || doc.Body != input.Body

	doc.Title = input.Title
	doc.Body = input.Body
	doc.Published = input.Published
	if input.Slug != "" {
		doc.Slug = input.Slug
	}
	if input.Summary != nil {
		doc.Summary = sql.NullString{String: *input.Summary, Valid: true}
	}
	doc.UpdatedAt = time.Now()

	tx, err := BeginDualTx()
	if err != nil {
		return nil, serr.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	rev := 0
	if changed {
		rev, err = nextRevisionNumber(tx, guid)
		if err != nil {
			return nil, err
		}
	}

	err = tx.Exec(`
		UPDATE docs
		SET slug = ?, title = ?, summary = ?, body = ?, published = ?, updated_at = ?
		WHERE guid = ?
	`, doc.Slug, doc.Title, doc.Summary, doc.Body, doc.Published, doc.UpdatedAt, guid)
	if err != nil {
		return nil, serr.Wrap(err, "failed to update doc")
	}

	if changed {
		if err = recordRevisionTx(tx, guid, rev, doc.Title, doc.Body, doc.UpdatedAt); err != nil {
			return nil, serr.Wrap(err, "failed to record revision")
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return GetDocByGUID(guid)
}

// DeleteDoc soft-deletes a doc
func DeleteDoc(guid string) error {
	now := time.Now()
	err := WriteThrough(`
		UPDATE docs SET deleted_at = ?, updated_at = ? WHERE guid = ?
	`, now, now, guid)
	if err != nil {
		return serr.Wrap(err, "failed to delete doc")
	}
	return nil
}

const docColumns = `id, guid, slug, title, summary, body, published, created_at, updated_at, deleted_at`

// GetDocByGUID retrieves a single live doc by GUID. Returns nil, nil
// when no doc matches.
func GetDocByGUID(guid string) (*Doc, error) {
	row := QueryRowFromCache(`
		SELECT `+docColumns+` FROM docs WHERE guid = ? AND deleted_at IS NULL
	`, guid)
	return scanDocRow(row)
}

// GetDocBySlug retrieves a single live doc by slug. Returns nil, nil
// when no doc matches.
func GetDocBySlug(slug string) (*Doc, error) {
	row := QueryRowFromCache(`
		SELECT `+docColumns+` FROM docs WHERE slug = ? AND deleted_at IS NULL
	`, slug)
	return scanDocRow(row)
}

func scanDocRow(row *sql.Row) (*Doc, error) {
	doc := &Doc{}
	err := row.Scan(&doc.ID, &doc.GUID, &doc.Slug, &doc.Title, &doc.Summary,
		&doc.Body, &doc.Published, &doc.CreatedAt, &doc.UpdatedAt, &doc.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to scan doc")
	}
	return doc, nil
}

// ListDocs returns live docs ordered by most recently updated.
// When publishedOnly is set, drafts are excluded. A limit of 0 means
// no limit.
func ListDocs(publishedOnly bool, limit, offset int) ([]Doc, error) {
	query := `SELECT ` + docColumns + ` FROM docs WHERE deleted_at IS NULL`
	if publishedOnly {
		query += ` AND published`
	}
	query += ` ORDER BY updated_at DESC`

	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := ReadFromCache(query, args...)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list docs")
	}
	defer rows.Close()

	return scanDocs(rows)
}

// SearchDocs performs a title search over published docs.
func SearchDocs(searchQuery string) ([]Doc, error) {
	rows, err := ReadFromCache(`
		SELECT `+docColumns+` FROM docs
		WHERE deleted_at IS NULL AND published AND title ILIKE ?
		ORDER BY updated_at DESC
	`, "%"+searchQuery+"%")
	if err != nil {
		return nil, serr.Wrap(err, "failed to search docs")
	}
	defer rows.Close()

	return scanDocs(rows)
}

func scanDocs(rows *sql.Rows) ([]Doc, error) {
	docs := []Doc{}
	for rows.Next() {
		var doc Doc
		err := rows.Scan(&doc.ID, &doc.GUID, &doc.Slug, &doc.Title, &doc.Summary,
			&doc.Body, &doc.Published, &doc.CreatedAt, &doc.UpdatedAt, &doc.DeletedAt)
		if err != nil {
			return nil, serr.Wrap(err, "failed to scan doc row")
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
