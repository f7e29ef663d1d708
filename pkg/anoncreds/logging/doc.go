// Package logging provides the logging facade used by the anoncreds binding.
//
// The Logger interface wraps the subset of log/slog the binding needs. It is
// small on purpose so applications can plug in their own implementation for
// tests or redaction policies.
//
// # Default Implementation
//
//	// Bind to slog.Default()
//	logger := logging.New(nil)
//
//	// Or a configured handler
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// The binding uses New(nil) when no logger is configured. Discard drops
// every record and is meant for tests.
//
// # What The Binding Logs
//
// Every native call emits one Debug record with the C function name, the
// result code and the call duration. A failed call whose error channel
// record belongs to a different call is logged at Warn with both codes.
// Argument values are never logged.
//
// # Redaction
//
//	logger.Debug(ctx, "credential request created", logging.Redacted("link_secret"))
//	// link_secret="[redacted]"
//
// # Security Considerations
//
//   - Never log link secrets, credential definition private parts or
//     revocation registry private parts
//   - Credential JSON carries attribute values; treat it as personal data
//   - Use logging.Redacted to record that a sensitive value was present
package logging
