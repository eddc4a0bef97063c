package cache

// ScopedKeyer prefixes every key of an inner Keyer with Scope. The preview
// server uses the "serve:" scope, so its entries never replace CLI renders
// in a shared backend.
type ScopedKeyer struct {
	Inner Keyer
	Scope string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return ScopedKeyer{Inner: inner, Scope: scope}
}

// PlacementKey implements Keyer.
func (k ScopedKeyer) PlacementKey(datasetHash string) string {
	return k.Scope + k.Inner.PlacementKey(datasetHash)
}

// ArtifactKey implements Keyer.
func (k ScopedKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return k.Scope + k.Inner.ArtifactKey(datasetHash, opts)
}
