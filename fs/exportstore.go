// Package fs provides file-based export of coaching artifacts.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/jobcoach/jobcoach"
)

// ExportStore writes artifacts as markdown files with atomic update
// semantics. Files are saved to a temporary directory, then moved into place
// on Commit. An aborted or crashed export never leaves a half-written
// directory behind.
type ExportStore struct {
	baseDir string
	name    string
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name string) *ExportStore {
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes an artifact to the temporary directory. The file path is
// derived from the posting and artifact kind, so saving the same artifact
// kind twice for one posting overwrites the earlier file.
func (s *ExportStore) Save(ctx context.Context, posting *jobcoach.JobPosting, artifact *jobcoach.Artifact) error {
	if err := artifact.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), ArtifactPath(posting, artifact))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := FormatArtifact(posting, artifact)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit atomically replaces the final directory with the temporary one.
func (s *ExportStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards the temporary directory.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// ArtifactPath returns the relative markdown path for an artifact:
// <company>-<title>/<kind>.md, with both components slugified.
func ArtifactPath(posting *jobcoach.JobPosting, artifact *jobcoach.Artifact) string {
	dir := jobcoach.Slugify(strings.TrimSpace(posting.Company + " " + posting.Title))
	if dir == "" {
		dir = jobcoach.Slugify(posting.ID)
	}
	return filepath.Join(dir, artifact.Kind+".md")
}

// FormatArtifact formats an artifact with YAML frontmatter.
func FormatArtifact(posting *jobcoach.JobPosting, artifact *jobcoach.Artifact) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("company: ")
	b.WriteString(posting.Company)
	b.WriteString("\ntitle: ")
	b.WriteString(posting.Title)
	b.WriteString("\nsource: ")
	b.WriteString(posting.SourceURL)
	b.WriteString("\nkind: ")
	b.WriteString(artifact.Kind)
	b.WriteString("\ngenerated: ")
	b.WriteString(artifact.CreatedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(artifact.Content)
	return b.String()
}
