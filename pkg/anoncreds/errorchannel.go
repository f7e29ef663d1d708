package anoncreds

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// ErrorRecord is the content of the native error slot. An empty slot has
// code zero and no message.
type ErrorRecord struct {
	Code    int64   `json:"code"`
	Message *string `json:"message"`
}

// CurrentError reads and clears the native error slot. Failed facade calls
// already consume the slot, so this is mostly useful for diagnostics.
func (a *Anoncreds) CurrentError(ctx context.Context) (ErrorRecord, error) {
	if err := a.ready(); err != nil {
		return ErrorRecord{}, err
	}
	callMu.Lock()
	defer callMu.Unlock()
	if a.closed.Load() {
		return ErrorRecord{}, ErrLibraryClosed
	}
	return a.currentErrorLocked()
}

// currentErrorLocked must run with callMu held.
func (a *Anoncreds) currentErrorLocked() (ErrorRecord, error) {
	ar := native.NewArena()
	defer ar.Release()

	out := ar.OutString()
	if rc := a.lib.GetCurrentError(out); rc != native.Success {
		return ErrorRecord{}, fmt.Errorf("%s: result code %d", native.FnGetCurrentError, int64(rc))
	}
	raw, err := a.takeString(native.FnGetCurrentError, *out)
	if err != nil {
		return ErrorRecord{}, err
	}
	var rec ErrorRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return ErrorRecord{}, fmt.Errorf("%s: decode error record: %w", native.FnGetCurrentError, err)
	}
	return rec, nil
}

// errorFromChannel turns the nonzero result code of fn into an *Error. The
// fetched message is only used when the slot's code matches rc.
func (a *Anoncreds) errorFromChannel(ctx context.Context, fn string, rc native.ErrorCode) error {
	rec, fetchErr := a.currentErrorLocked()
	if fetchErr == nil && rec.Code == int64(rc) {
		msg := ""
		if rec.Message != nil {
			msg = *rec.Message
		}
		return &Error{Code: ErrorCode(rc), Message: msg, Function: fn}
	}

	a.metrics.IncrementErrorChannelMismatch()
	args := []any{"function", fn, "code", int64(rc), "slot_code", rec.Code}
	if fetchErr != nil {
		args = append(args, "error", fetchErr)
	}
	a.log.Warn(ctx, "native error slot does not match the failing call", args...)
	return &Error{Code: ErrorCode(rc), Message: ErrorDetailsUnavailable, Function: fn, Mismatch: true}
}
