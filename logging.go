package typeflow

import "github.com/sirupsen/logrus"

// traceStep logs one converter invocation when debug tracing is enabled.
// It mirrors the warn! calls the original implementation bracketed every
// converter call with, rendered as structured logrus fields rather than
// formatted strings so the trace stays machine-parseable.
func traceStep(logger *logrus.Logger, phase string, keyIn, keyOut any, payload any, err error) {
	entry := logger.WithFields(logrus.Fields{
		"phase":   phase,
		"key_in":  keyIn,
		"key_out": keyOut,
		"payload": payload,
	})
	if err != nil {
		entry.WithError(err).Debug("typeflow: converter step failed")
		return
	}
	entry.Debug("typeflow: converter step")
}
