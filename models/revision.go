package models

import (
	"time"

	"github.com/rohanthewiz/serr"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DocRevision is an immutable snapshot of a doc's title and body taken
// on every content change. Revisions number from 1 per doc.
type DocRevision struct {
	ID        int64     `json:"id"`
	DocGUID   string    `json:"doc_guid"`
	Rev       int       `json:"rev"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

const CreateRevisionsTableSQL = `
CREATE SEQUENCE IF NOT EXISTS doc_revisions_id_seq START 1;

CREATE TABLE IF NOT EXISTS doc_revisions (
    id         BIGINT PRIMARY KEY DEFAULT nextval('doc_revisions_id_seq'),
    doc_guid   VARCHAR NOT NULL,
    rev        INTEGER NOT NULL,
    title      VARCHAR NOT NULL,
    body       VARCHAR NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_revisions_doc ON doc_revisions(doc_guid);
`

func recordRevisionTx(tx *DualTx, docGUID string, rev int, title, body string, at time.Time) error {
	return tx.Exec(`
		INSERT INTO doc_revisions (doc_guid, rev, title, body, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, docGUID, rev, title, body, at)
}

// nextRevisionNumber reads the doc's highest revision through the open
// transaction, while the write lock is held. Reading outside the
// transaction would let two concurrent updates claim the same number.
func nextRevisionNumber(tx *DualTx, docGUID string) (int, error) {
	var maxRev int
	row := tx.diskTx.QueryRow(`
		SELECT COALESCE(MAX(rev), 0) FROM doc_revisions WHERE doc_guid = ?
	`, docGUID)
	if err := row.Scan(&maxRev); err != nil {
		return 0, serr.Wrap(err, "failed to get max revision")
	}
	return maxRev + 1, nil
}

// ListRevisions returns all revisions for a doc, newest first.
func ListRevisions(docGUID string) ([]DocRevision, error) {
	rows, err := ReadFromCache(`
		SELECT id, doc_guid, rev, title, body, created_at
		FROM doc_revisions WHERE doc_guid = ?
		ORDER BY rev DESC
	`, docGUID)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list revisions")
	}
	defer rows.Close()

	revs := []DocRevision{}
	for rows.Next() {
		var r DocRevision
		if err := rows.Scan(&r.ID, &r.DocGUID, &r.Rev, &r.Title, &r.Body, &r.CreatedAt); err != nil {
			return nil, serr.Wrap(err, "failed to scan revision")
		}
		revs = append(revs, r)
	}
	return revs, rows.Err()
}

// GetRevision returns one revision of a doc, or nil when absent.
func GetRevision(docGUID string, rev int) (*DocRevision, error) {
	revs, err := ListRevisions(docGUID)
	if err != nil {
		return nil, err
	}
	for i := range revs {
		if revs[i].Rev == rev {
			return &revs[i], nil
		}
	}
	return nil, nil
}

// DiffBodies computes an HTML-highlighted diff between two body texts,
// with semantic cleanup so the output reads as word-level changes
// rather than character soup.
func DiffBodies(older, newer string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(older, newer, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyHtml(diffs)
}

// DiffRevisions diffs the bodies of two revisions of a doc.
// Returns an error when either revision is missing.
func DiffRevisions(docGUID string, revA, revB int) (string, error) {
	a, err := GetRevision(docGUID, revA)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", serr.New("revision not found")
	}

	b, err := GetRevision(docGUID, revB)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", serr.New("revision not found")
	}

	return DiffBodies(a.Body, b.Body), nil
}
