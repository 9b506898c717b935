// Package l10n is the runtime the expressions generated by tino call into.
package l10n

// Bundle selects the resource bundle a key is looked up in.
type Bundle string

const (
	BundleMain   Bundle = "main"
	BundleModule Bundle = "module"
)

// Value is the text used when a key has no translation.
type Value string

type Resource struct {
	Key     string
	Default Value
	Bundle  Bundle
}

func NewResource(key string, value Value, bundle Bundle) Resource {
	return Resource{Key: key, Default: value, Bundle: bundle}
}

type Text struct {
	Key    string
	Bundle Bundle
}

func NewText(key string, bundle Bundle) Text {
	return Text{Key: key, Bundle: bundle}
}
