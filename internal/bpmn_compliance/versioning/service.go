package versioning

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/utils"
)

const metaFile = "version.json"

var (
	ErrVersionNotFound = errors.New("version not found")
	ErrInvalidID       = errors.New("invalid job or version id")
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidID reports whether id is safe to use as a single path segment under versions/.
func ValidID(id string) bool { return idPattern.MatchString(id) }

func checkIDs(ids ...string) error {
	for _, id := range ids {
		if !ValidID(id) {
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

type Version struct {
	JobID       string        `json:"job_id" yaml:"job_id"`
	VersionID   string        `json:"version_id" yaml:"version_id"`
	Label       string        `json:"label" yaml:"label"`
	Dir         string        `json:"dir" yaml:"dir"`
	ProcessPath string        `json:"process_path" yaml:"process_path"`
	Format      parser.Format `json:"format" yaml:"format"`
	Score       float64       `json:"score" yaml:"score"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at"`
}

// CreateVersion writes a process snapshot under:
//
//	<outBaseDir>/versions/<jobID>/<versionID>/process<ext>
//
// Reports and renderings for the same run (report.json, graph.dot, ...) go into Dir.
func CreateVersion(jobID, outBaseDir, label string, f parser.Format, content []byte, score float64) (*Version, error) {
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	if jobID == "" {
		jobID = "adhoc"
	}
	if label == "" {
		label = "improved"
	}
	if err := checkIDs(jobID); err != nil {
		return nil, err
	}

	vid := utils.NewID()
	dir := filepath.Join(outBaseDir, "versions", jobID, vid)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create version dir: %w", err)
	}

	path := filepath.Join(dir, "process"+f.Ext())
	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, fmt.Errorf("write process: %w", err)
	}

	v := &Version{
		JobID:       jobID,
		VersionID:   vid,
		Label:       label,
		Dir:         dir,
		ProcessPath: path,
		Format:      f,
		Score:       score,
		CreatedAt:   time.Now().UTC(),
	}

	meta, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, metaFile), meta, 0644); err != nil {
		return nil, fmt.Errorf("write version meta: %w", err)
	}
	return v, nil
}

func ReadVersion(outBaseDir, jobID, versionID string) (*Version, error) {
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	if jobID == "" || versionID == "" {
		return nil, fmt.Errorf("jobID and versionID are required")
	}
	if err := checkIDs(jobID, versionID); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Join(outBaseDir, "versions", jobID, versionID, metaFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrVersionNotFound, jobID, versionID)
	}
	if err != nil {
		return nil, err
	}
	var v Version
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVersions returns the versions of a job, oldest first. A job without versions
// yields an empty list.
func ListVersions(outBaseDir, jobID string) ([]Version, error) {
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	if err := checkIDs(jobID); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(outBaseDir, "versions", jobID))
	if errors.Is(err, os.ErrNotExist) {
		return []Version{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := []Version{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := ReadVersion(outBaseDir, jobID, e.Name())
		if err != nil {
			continue
		}
		out = append(out, *v)
	}
	sortByCreated(out)
	return out, nil
}
