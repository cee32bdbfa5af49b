package catalog_test

import (
	"strings"
	"testing"

	"github.com/avoronova/deepsight/internal/model/catalog"
)

func TestSeedCatalogLookups(t *testing.T) {
	cat := catalog.NewMemoryCatalog(catalog.Seed())

	if len(cat.Languages()) != 2 {
		t.Fatalf("expected 2 seeded languages, got %d", len(cat.Languages()))
	}

	lang, ok := cat.Language("ru")
	if !ok {
		t.Fatal("expected ru language")
	}
	if len(lang.Chains) == 0 {
		t.Fatal("expected ru chains")
	}

	chain, ok := cat.ChainConfig("ru", "self-discovery")
	if !ok {
		t.Fatal("expected ru/self-discovery chain")
	}
	if len(chain.Questions) == 0 {
		t.Fatal("expected questions in seeded chain")
	}
	if chain.Fallback == "" {
		t.Fatal("expected a fallback analysis text")
	}
	if chain.Prompts.System == "" || !strings.Contains(chain.Prompts.UserFormat, "%s") {
		t.Fatalf("expected usable AI prompts, got %+v", chain.Prompts)
	}
}

func TestUnknownLanguageFallsBackToDefault(t *testing.T) {
	cat := catalog.NewMemoryCatalog(catalog.Seed())

	ui := cat.UI("de")
	want := cat.UI(catalog.DefaultLanguage)
	if ui.Intro != want.Intro {
		t.Fatalf("expected default UI strings for unknown language, got %q", ui.Intro)
	}

	if _, ok := cat.ChainConfig("de", "self-discovery"); !ok {
		t.Fatal("expected chain lookup to fall back to the default language")
	}
}

func TestUnknownChainIsReported(t *testing.T) {
	cat := catalog.NewMemoryCatalog(catalog.Seed())
	if _, ok := cat.ChainConfig("en", "missing"); ok {
		t.Fatal("expected lookup failure for unknown chain")
	}
}

func TestSeedUIStringsAreComplete(t *testing.T) {
	for _, lang := range catalog.Seed() {
		ui := lang.UI
		for name, value := range map[string]string{
			"Intro":           ui.Intro,
			"ChooseLanguage":  ui.ChooseLanguage,
			"ChooseChain":     ui.ChooseChain,
			"ProgressFormat":  ui.ProgressFormat,
			"TooLongFormat":   ui.TooLongFormat,
			"AnalysisFormat":  ui.AnalysisFormat,
			"PleaseWait":      ui.PleaseWait,
			"SessionExpired":  ui.SessionExpired,
			"CompletedHint":   ui.CompletedHint,
			"NothingToExport": ui.NothingToExport,
			"ImportEmpty":     ui.ImportEmpty,
			"NextActions":     ui.NextActions,
			"ExportButton":    ui.ExportButton,
			"RestartButton":   ui.RestartButton,
			"DateLayout":      ui.DateLayout,
		} {
			if value == "" {
				t.Fatalf("language %s missing UI string %s", lang.Code, name)
			}
		}
	}
}
