// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package standardises structured logging across validation tooling by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a pipeline id) every time Handle is invoked.
//
// # Architecture
//
// New builds a decorated slog.Handler. It first selects the concrete handler
// implementation – slog.NewTextHandler or slog.NewJSONHandler – based on the
// configured Format, then wraps it with LogHandlerDecorator, which executes
// any registered ContextExtractor callbacks before delegating to the
// underlying handler.
//
// Helper constructors such as Group, Error, RunID, Rule, and Columns live in
// attr.go and return commonly-used slog.Attr instances to keep attribute
// naming consistent across a codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/checkkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithVerbose(),
//	        logger.WithContextValue("pipeline_id", ctxKeyPipelineID),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("validation run completed",
//	        logger.RunID(runID),
//	        logger.Rows(1042),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   • WithLevel – set a custom slog.Level.
//   • WithVerbose – debug-level text output for rule set development.
//   • WithAttr – attach static attributes.
//   • WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
