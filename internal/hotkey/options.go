package hotkey

import (
	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/log"
)

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the source the registry is populated from on first use.
func WithConfig(src config.Source) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithResolver sets the resolver used for scope references.
func WithResolver(r element.Resolver) Option {
	return func(s *Service) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithRoot sets the document element used as the default scope.
func WithRoot(root element.Element) Option {
	return func(s *Service) {
		if root != nil {
			s.root = root
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}
