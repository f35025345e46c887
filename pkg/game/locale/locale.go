// Package locale loads the translated UI strings bundled with the game.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Translation keys
const (
	WindowTitle  = "WINDOW_TITLE"
	MenuTitle    = "MENU_TITLE"
	MenuPlay     = "MENU_PLAY"
	MenuQuit     = "MENU_QUIT"
	EndTitle     = "END_TITLE"
	EndScore     = "END_SCORE"
	EndPlayAgain = "END_PLAY_AGAIN"
	Goodbye      = "GOODBYE"
)

// DefaultLanguage is used when no language is requested
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned for a language with no bundled catalog
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*.po
var catalogs embed.FS

// Catalog resolves translation keys for one language.
// Keys missing from the catalog are returned unchanged.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load parses the bundled catalog for lang
func Load(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogs.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// MustLoad is Load for callers that only use bundled languages
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the translation for key. Entries such as END_SCORE are
// fmt templates; callers format them with fmt.Sprintf.
func (c *Catalog) Get(key string) string {
	return c.po.Get(key)
}

// Language returns the catalog language code
func (c *Catalog) Language() string {
	return c.lang
}

// Languages lists the bundled language codes
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}
