package domain

// FileStatus classifies a relative path across the left and right roots.
type FileStatus string

const (
	// StatusOnlyLeft means the file exists only under the left root.
	StatusOnlyLeft FileStatus = "only-left"
	// StatusOnlyRight means the file exists only under the right root.
	StatusOnlyRight FileStatus = "only-right"
	// StatusIdentical means both files exist with the same content.
	StatusIdentical FileStatus = "identical"
	// StatusModified means both files exist with different content.
	StatusModified FileStatus = "modified"
)

// FileEntry is a resolved path with its comparison status.
type FileEntry struct {
	Path   RelativePath
	Status FileStatus
}
