package cache

// Keyer builds cache keys. Backends treat keys as opaque strings.
type Keyer interface {
	// DocumentKey addresses the serialized option document built from a
	// definition and its dataset.
	DocumentKey(definitionHash, dataHash string) string

	// ArtifactKey addresses one rendered output of a document.
	ArtifactKey(documentHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string `json:"format"`
	Indent      bool   `json:"indent,omitempty"`
	Width       string `json:"width,omitempty"`
	Height      string `json:"height,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Script      string `json:"script,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DocumentKey generates a key for a serialized document.
func (DefaultKeyer) DocumentKey(definitionHash, dataHash string) string {
	return hashKey("document", definitionHash, dataHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", documentHash, opts)
}
