// Package project discovers project directories under an input root and
// derives per-project metadata and file statistics.
//
// A directory counts as a project when it contains, at any depth, at least one
// file whose extension is registered as code or as project metadata. Ignored
// directories are pruned from the search entirely.
package project

import (
	"time"
)

// FileStats aggregates file counts and cumulative size for one project.
// It is recomputed from scratch on every analysis.
type FileStats struct {
	CodeFiles    int
	HeaderFiles  int
	ProjectFiles int
	OtherFiles   int
	TotalSize    int64
}

// Info describes one analyzed project. It is produced by Analyze and consumed
// immediately by rendering; it is not persisted anywhere else.
type Info struct {
	Name        string
	SourcePath  string
	TargetPath  string
	GeneratedAt time.Time
	Stats       FileStats
}
