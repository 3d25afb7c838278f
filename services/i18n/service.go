package i18n

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/danudara/storefront/lib/myerrors"
	"github.com/danudara/storefront/lib/mykv"
	"github.com/danudara/storefront/lib/mylog"
)

// StringsLoader fetches the language section of the hosted content.
type StringsLoader interface {
	LanguageStrings(c context.Context) (Strings, error)
}

type Service struct {
	sync.RWMutex
	storage         mykv.KeyValueStore
	languageKey     string
	defaultLanguage string
	loader          StringsLoader
	strings         Strings
	logger          mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func New(storage mykv.KeyValueStore, languageKey string, defaultLanguage string, loader StringsLoader, logger mylog.Logger) *Service {
	if !IsSupported(defaultLanguage) {
		defaultLanguage = FallbackLanguage
	}
	return &Service{
		storage:         storage,
		languageKey:     languageKey,
		defaultLanguage: defaultLanguage,
		loader:          loader,
		strings:         DefaultStrings(),
		logger:          logger,
	}
}

// Reload fetches the hosted strings; on failure the built-in strings stay in use.
func (s *Service) Reload(c context.Context) {
	loaded := DefaultStrings()
	if s.loader != nil {
		remote, err := s.loader.LanguageStrings(c)
		if err != nil {
			s.logger.Log(c, "", mylog.SeverityWarn, "Using built-in language strings: %s", err)
		} else {
			loaded = merge(loaded, remote)
		}
	}

	s.Lock()
	defer s.Unlock()
	s.strings = loaded
}

// CurrentLanguage returns the stored preference, or the configured default.
func (s *Service) CurrentLanguage(c context.Context) string {
	lang, found, err := s.storage.Get(c, s.languageKey)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error reading language preference: %s", err)
		return s.defaultLanguage
	}
	if !found || !IsSupported(lang) {
		return s.defaultLanguage
	}
	return lang
}

func (s *Service) SetLanguage(c context.Context, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !IsSupported(lang) {
		return myerrors.NewInvalidInputError(fmt.Errorf("unsupported language %q, expected one of %s", lang, strings.Join(SupportedLanguages, ",")))
	}
	err := s.storage.Set(c, s.languageKey, lang)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing language preference: %s", err))
	}
	s.logger.Log(c, "", mylog.SeverityInfo, "Language set to %s", lang)
	return nil
}

// Translate resolves key in the current language.
func (s *Service) Translate(c context.Context, key string) string {
	lang := s.CurrentLanguage(c)

	s.RLock()
	defer s.RUnlock()
	return s.strings.Translate(lang, key)
}

// Dictionary returns all strings of the current language.
func (s *Service) Dictionary(c context.Context) (string, map[string]string) {
	lang := s.CurrentLanguage(c)

	s.RLock()
	defer s.RUnlock()
	return lang, s.strings.Dictionary(lang)
}
