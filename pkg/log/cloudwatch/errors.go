package cloudwatch

import (
	"errors"
	"os"

	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// codeNoCredentials is the client error code returned when no AWS
// credentials could be resolved.
const codeNoCredentials = "NoCredentialsError"

// FailureKind classifies a remote failure.
type FailureKind int

const (
	// ClientFailure covers every remote client error that is not a
	// credentials problem, including plain transport errors.
	ClientFailure FailureKind = iota
	// CredentialsFailure means AWS credentials are missing or invalid.
	CredentialsFailure
)

// Classify inspects the error chain for a client error code and maps it onto
// the failure taxonomy. Embedders that cannot afford process termination can
// use this directly instead of ErrorTranslator.
func Classify(err error) FailureKind {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == codeNoCredentials {
		return CredentialsFailure
	}
	return ClientFailure
}

// ErrorTranslator is the boundary policy for remote failures in a single-shot
// CLI invocation: classify, log exactly one ERROR record, exit with status 1.
type ErrorTranslator struct {
	log *zap.Logger
	// exit is os.Exit in production; tests override it to observe the code.
	exit func(int)
}

func NewErrorTranslator(logger *zap.Logger) *ErrorTranslator {
	return &ErrorTranslator{log: logger, exit: os.Exit}
}

// Fatal logs the translated failure and terminates the process. The returned
// error is only observable when the exit function was overridden.
func (t *ErrorTranslator) Fatal(err error) error {
	switch Classify(err) {
	case CredentialsFailure:
		t.log.Error("Could not find AWS credentials. Error: " + err.Error())
	default:
		t.log.Error("Error: " + err.Error())
	}
	t.exit(1)
	return err
}
