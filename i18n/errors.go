package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider supplies the message format behind a translation key
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider using a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the message for key in the bundle's default language
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	return p.bundle.Message(key)
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. Copies made by WithArgs and Wrap share the sentinel
// of the error they were made from, so errors.Is matches them against it.
//
//	err := NewError("goclip.error.missing_argument").WithArgs("f")
//	errors.Is(err, errs.ErrMissingArgument) // true
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return NewErrorWithProvider(key, getDefaultProvider())
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: provider,
	}
}

// NewErrorVariant creates an error with its own message key which errors.Is treats as base
func NewErrorVariant(base *TrError, key string) *TrError {
	return &TrError{
		sentinel:        base.sentinel,
		key:             key,
		messageProvider: base.messageProvider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	provider := e.messageProvider
	if provider == nil {
		provider = getDefaultProvider()
	}

	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// Translate renders the error in lang using the translations held by b
func (e *TrError) Translate(b *Bundle, lang language.Tag) string {
	msg := b.TL(lang, e.key, e.args...)
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created afterwards
// and by errors without a provider
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()
	if p != nil {
		return p
	}

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
