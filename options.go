package snapscript

import "log/slog"

// DefaultFileName is the suggested name for the encoded output artifact.
const DefaultFileName = "SnapScript_Extracted.docx"

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "SnapScript Extracted Notes"

// Options holds pipeline configuration.
type Options struct {
	title     string
	pageWidth float64
	logger    *slog.Logger
	progress  func(name string, status Status)
}

// Option configures a Pipeline.
type Option func(*Options)

// defaultOptions returns the default pipeline options.
func defaultOptions() Options {
	return Options{
		title: DefaultTitle,
	}
}

// WithTitle sets the document title paragraph text.
func WithTitle(title string) Option {
	return func(o *Options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithPageWidth overrides the usable page width, in page units (points),
// used to size embedded images.
func WithPageWidth(width float64) Option {
	return func(o *Options) {
		o.pageWidth = width
	}
}

// WithLogger sets the logger for per-marker crop diagnostics and per-file
// annotation failures. Without it the pipeline is silent; failures are still
// visible in file statuses and in-document placeholders.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithProgress registers a callback invoked on every per-file status
// transition, before and after each annotation call. The callback runs on
// the goroutine executing Run.
func WithProgress(fn func(name string, status Status)) Option {
	return func(o *Options) {
		o.progress = fn
	}
}
