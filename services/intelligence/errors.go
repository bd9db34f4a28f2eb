package ai

import (
	"errors"
	"strings"
)

// ErrorKind separates content-safety rejections from everything else.
type ErrorKind string

const (
	KindTransient ErrorKind = "transient" // quota, unknown model, network, empty reply
	KindSafety    ErrorKind = "safety"
)

var (
	ErrEmptyResponse = errors.New("model returned an empty response")
	ErrNoModels      = errors.New("no models configured")
)

// safetyMarker is matched against provider messages that carry no structured kind.
const safetyMarker = "SAFETY"

// ProviderError is one failed attempt against a model.
type ProviderError struct {
	Model string
	Kind  ErrorKind
	Err   error
}

// Error returns the provider's own message so it can be surfaced verbatim.
func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) IsSafety() bool {
	return e.Kind == KindSafety
}

// classifyError turns whatever a generator returned into a ProviderError.
// A structured kind anywhere in the chain wins; otherwise a message containing
// "SAFETY" is taken as a safety rejection. err itself is kept as the cause so
// outer wrapping survives, and the generator's error is never modified.
func classifyError(model string, err error) *ProviderError {
	var inner *ProviderError
	if errors.As(err, &inner) {
		if inner.Model != "" {
			model = inner.Model
		}
		return &ProviderError{Model: model, Kind: inner.Kind, Err: err}
	}
	kind := KindTransient
	if strings.Contains(err.Error(), safetyMarker) {
		kind = KindSafety
	}
	return &ProviderError{Model: model, Kind: kind, Err: err}
}
