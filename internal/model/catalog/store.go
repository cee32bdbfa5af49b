package catalog

// DefaultLanguage is used whenever a session carries an unknown language code.
const DefaultLanguage = "en"

// Catalog exposes read-only survey configuration to the flow engine and the
// HTTP handlers.
type Catalog interface {
	Languages() []Language
	Language(code string) (Language, bool)
	UI(code string) UIStrings
	ChainConfig(code, chainID string) (Chain, bool)
}

// MemoryCatalog implements Catalog with an in-memory slice, suitable for
// statically configured deployments.
type MemoryCatalog struct {
	items []Language
}

// NewMemoryCatalog returns a MemoryCatalog preloaded with the supplied languages.
func NewMemoryCatalog(items []Language) *MemoryCatalog {
	return &MemoryCatalog{items: append([]Language(nil), items...)}
}

// Languages returns the configured language list.
func (c *MemoryCatalog) Languages() []Language {
	return append([]Language(nil), c.items...)
}

// Language looks up a language by code.
func (c *MemoryCatalog) Language(code string) (Language, bool) {
	for _, item := range c.items {
		if item.Code == code {
			return item, true
		}
	}
	return Language{}, false
}

// UI returns the interface copy for code, falling back to the default
// language when the code is unknown.
func (c *MemoryCatalog) UI(code string) UIStrings {
	if lang, ok := c.Language(code); ok {
		return lang.UI
	}
	if lang, ok := c.Language(DefaultLanguage); ok {
		return lang.UI
	}
	return UIStrings{}
}

// ChainConfig looks up one chain within a language. An unknown language
// resolves against the default language before giving up.
func (c *MemoryCatalog) ChainConfig(code, chainID string) (Chain, bool) {
	lang, ok := c.Language(code)
	if !ok {
		if lang, ok = c.Language(DefaultLanguage); !ok {
			return Chain{}, false
		}
	}
	for _, chain := range lang.Chains {
		if chain.ID == chainID {
			return chain, true
		}
	}
	return Chain{}, false
}
