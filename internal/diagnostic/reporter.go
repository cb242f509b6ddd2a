package diagnostic

import (
	"go.uber.org/zap"
)

// Reporter records diagnostics and logs each one as it is reported.
type Reporter struct {
	logger *zap.Logger
	diags  Diagnostics
}

// NewReporter creates a Reporter. A nil logger discards log output.
func NewReporter(logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reporter{logger: logger}
}

// Info reports an informational diagnostic.
func (r *Reporter) Info(code, message, property, tag string) {
	r.report(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Property: property, Tag: tag})
}

// Warn reports a warning.
func (r *Reporter) Warn(code, message, property, tag string) {
	r.report(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Property: property, Tag: tag})
}

// Error reports an error-level diagnostic. It does not stop processing.
func (r *Reporter) Error(code, message, property, tag string) {
	r.report(Diagnostic{Severity: SeverityError, Code: code, Message: message, Property: property, Tag: tag})
}

// Diagnostics returns everything reported so far.
func (r *Reporter) Diagnostics() *Diagnostics {
	return &r.diags
}

func (r *Reporter) report(d Diagnostic) {
	r.diags.Add(d)

	fields := []zap.Field{zap.String("code", d.Code)}
	if d.Property != "" {
		fields = append(fields, zap.String("property", d.Property))
	}

	if d.Tag != "" {
		fields = append(fields, zap.String("tag", d.Tag))
	}

	switch d.Severity {
	case SeverityError:
		r.logger.Error(d.Message, fields...)
	case SeverityWarning:
		r.logger.Warn(d.Message, fields...)
	default:
		r.logger.Info(d.Message, fields...)
	}
}
