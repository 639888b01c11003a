package apidoc

import "errors"

// Composition errors. Like registration errors, these are authoring
// mistakes and abort startup.
var (
	// ErrUnknownTag indicates an operation or tag group references a tag
	// absent from the configured tag set.
	ErrUnknownTag = errors.New("apidoc: unknown tag")

	// ErrDuplicateTag indicates a tag name declared twice with different descriptions.
	ErrDuplicateTag = errors.New("apidoc: duplicate tag")

	// ErrDuplicatePath indicates two operations documented at the same path and method.
	ErrDuplicatePath = errors.New("apidoc: duplicate path operation")

	// ErrSchemaConflict indicates two groups define one schema name differently.
	ErrSchemaConflict = errors.New("apidoc: conflicting schema definitions")

	// ErrInvalidExtension indicates a metadata extension with a bad or reserved key.
	ErrInvalidExtension = errors.New("apidoc: invalid extension")

	// ErrInvalidMetadata indicates missing document metadata.
	ErrInvalidMetadata = errors.New("apidoc: invalid metadata")
)

// ErrNotPublished indicates a document was requested before one was published.
var ErrNotPublished = errors.New("apidoc: document not published")
