// file: internal/i18n/i18n.go
// version: 1.2.0
// guid: 2d3e4f5a-6b7c-8d9e-0f1a-2b3c4d5e6f7a

// Package i18n loads language catalogs and resolves dot-delimited
// translation keys with {param} placeholder substitution.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed languages/*.json
var embedded embed.FS

// DefaultLanguage is the fallback when a requested catalog cannot load.
const DefaultLanguage = "en"

var supported = []language.Tag{
	language.English, // en, the default
	language.Arabic,  // ar
}

var matcher = language.NewMatcher(supported)

// Translator holds the current language and its catalog. Catalogs are
// whole-replaced on Load; lookups never see a half-loaded state.
type Translator struct {
	mu          sync.RWMutex
	lang        string
	catalog     map[string]interface{}
	overrideDir string
	persist     func(code string) error
}

// New creates a Translator. overrideDir may be empty; when set, a
// <code>.json file there takes precedence over the embedded catalog.
// persist, when non-nil, is invoked with each successfully loaded code.
func New(overrideDir string, persist func(code string) error) *Translator {
	return &Translator{
		overrideDir: overrideDir,
		persist:     persist,
		catalog:     map[string]interface{}{},
	}
}

// Resolve maps an arbitrary language code onto a supported catalog code
// using BCP 47 matching; unknown codes resolve to the default.
func Resolve(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	_, index, _ := matcher.Match(tag)
	base, _ := supported[index].Base()
	return base.String()
}

// Load replaces the entire catalog with the one for code and persists
// the choice. A failed load of a non-default code falls back to the
// default language instead of leaving the previous catalog in place.
func (t *Translator) Load(code string) error {
	code = Resolve(code)
	catalog, err := t.read(code)
	if err != nil {
		if code == DefaultLanguage {
			return err
		}
		log.Printf("[DEBUG] i18n: loading %q failed (%v), falling back to %q", code, err, DefaultLanguage)
		return t.Load(DefaultLanguage)
	}

	t.mu.Lock()
	t.lang = code
	t.catalog = catalog
	t.mu.Unlock()

	if t.persist != nil {
		if err := t.persist(code); err != nil {
			log.Printf("[DEBUG] i18n: could not persist language choice: %v", err)
		}
	}
	return nil
}

// Reload re-reads the catalog for the current language, used when an
// override file changes on disk.
func (t *Translator) Reload() error {
	t.mu.RLock()
	code := t.lang
	t.mu.RUnlock()
	if code == "" {
		return nil
	}

	catalog, err := t.read(code)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.catalog = catalog
	t.mu.Unlock()
	return nil
}

func (t *Translator) read(code string) (map[string]interface{}, error) {
	name := code + ".json"

	if t.overrideDir != "" {
		if data, err := os.ReadFile(filepath.Join(t.overrideDir, name)); err == nil {
			return parseCatalog(data)
		}
	}

	data, err := embedded.ReadFile("languages/" + name)
	if err != nil {
		return nil, fmt.Errorf("no catalog for language %q: %w", code, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (map[string]interface{}, error) {
	var catalog map[string]interface{}
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse language catalog: %w", err)
	}
	return catalog, nil
}

// Language returns the currently loaded language code.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Translate walks the dot-delimited key path through the catalog.
// ok is false when any segment is missing or the leaf is not a string;
// display callers leave their existing text unchanged in that case.
func (t *Translator) Translate(keyPath string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var node interface{} = t.catalog
	for _, segment := range strings.Split(keyPath, ".") {
		m, isMap := node.(map[string]interface{})
		if !isMap {
			return "", false
		}
		child, exists := m[segment]
		if !exists {
			return "", false
		}
		node = child
	}

	leaf, isString := node.(string)
	return leaf, isString
}

// T resolves a key and substitutes {param} placeholders. When no
// translation exists the key path itself is returned so callers always
// have something printable.
func (t *Translator) T(keyPath string, params map[string]string) string {
	text, ok := t.Translate(keyPath)
	if !ok {
		return keyPath
	}
	for param, value := range params {
		text = strings.ReplaceAll(text, "{"+param+"}", value)
	}
	return text
}
