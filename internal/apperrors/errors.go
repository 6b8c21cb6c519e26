package apperrors

import "fmt"

// ErrUnsupportedEncoding is returned when an encoding name cannot be resolved
// to a known character encoding.
type ErrUnsupportedEncoding struct {
	Name string
}

// Error implements the error interface.
func (e *ErrUnsupportedEncoding) Error() string {
	return fmt.Sprintf("unsupported encoding %q", e.Name)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnsupportedEncoding) Is(target error) bool {
	_, ok := target.(*ErrUnsupportedEncoding)
	return ok
}

// NewUnsupportedEncodingError creates a new ErrUnsupportedEncoding.
func NewUnsupportedEncodingError(name string) *ErrUnsupportedEncoding {
	return &ErrUnsupportedEncoding{Name: name}
}

// ErrMatcherNotImplemented is returned when video matching is requested on a
// subtitle whose source did not supply matching logic. Unlike data-quality
// errors, this indicates a missing implementation in the calling code.
type ErrMatcherNotImplemented struct {
	Provider string
}

// Error implements the error interface.
func (e *ErrMatcherNotImplemented) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("provider %q does not implement video matching", e.Provider)
	}
	return "subtitle source does not implement video matching"
}

// Is allows for error checking with errors.Is().
func (e *ErrMatcherNotImplemented) Is(target error) bool {
	_, ok := target.(*ErrMatcherNotImplemented)
	return ok
}

// NewMatcherNotImplementedError creates a new ErrMatcherNotImplemented.
func NewMatcherNotImplementedError(provider string) *ErrMatcherNotImplemented {
	return &ErrMatcherNotImplemented{Provider: provider}
}

// ErrNoSubtitleInArchive is returned when an archive payload contains no file
// with a recognized subtitle extension.
type ErrNoSubtitleInArchive struct {
	FileCount int
}

// Error implements the error interface.
func (e *ErrNoSubtitleInArchive) Error() string {
	return fmt.Sprintf("no subtitle file found in archive (searched %d files)", e.FileCount)
}

// Is allows for error checking with errors.Is().
func (e *ErrNoSubtitleInArchive) Is(target error) bool {
	_, ok := target.(*ErrNoSubtitleInArchive)
	return ok
}

// NewNoSubtitleInArchiveError creates a new ErrNoSubtitleInArchive.
func NewNoSubtitleInArchiveError(fileCount int) *ErrNoSubtitleInArchive {
	return &ErrNoSubtitleInArchive{FileCount: fileCount}
}
