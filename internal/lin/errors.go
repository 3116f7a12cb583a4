package lin

import (
	"errors"
	"fmt"
)

// The parser's failures are all local to one record: batch callers skip
// the record and keep going. Each kind carries enough context to log
// why the record was rejected.

// MissingFieldError reports a mandatory tag absent from the record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record is missing the %s field", e.Field)
}

// AsMissingFieldError attempts to unwrap an error into a MissingFieldError.
func AsMissingFieldError(err error) (*MissingFieldError, bool) {
	var mfErr *MissingFieldError
	if errors.As(err, &mfErr) {
		return mfErr, true
	}
	return nil, false
}

// CorruptEncodingError reports a dealt-hand blob that names a duplicate
// or unknown card.
type CorruptEncodingError struct {
	Card   string
	Reason string
}

func (e *CorruptEncodingError) Error() string {
	if e.Card != "" {
		return fmt.Sprintf("corrupt deal encoding: card %s %s", e.Card, e.Reason)
	}
	return fmt.Sprintf("corrupt deal encoding: %s", e.Reason)
}

// AsCorruptEncodingError attempts to unwrap an error into a CorruptEncodingError.
func AsCorruptEncodingError(err error) (*CorruptEncodingError, bool) {
	var ceErr *CorruptEncodingError
	if errors.As(err, &ceErr) {
		return ceErr, true
	}
	return nil, false
}

// MalformedAuctionError reports a bid sequence with no resolvable
// contract.
type MalformedAuctionError struct {
	Reason string
}

func (e *MalformedAuctionError) Error() string {
	return fmt.Sprintf("malformed auction: %s", e.Reason)
}

// AsMalformedAuctionError attempts to unwrap an error into a MalformedAuctionError.
func AsMalformedAuctionError(err error) (*MalformedAuctionError, bool) {
	var maErr *MalformedAuctionError
	if errors.As(err, &maErr) {
		return maErr, true
	}
	return nil, false
}

// MalformedPlayError reports structurally invalid play data, such as
// more than thirteen tricks.
type MalformedPlayError struct {
	Reason string
}

func (e *MalformedPlayError) Error() string {
	return fmt.Sprintf("malformed play: %s", e.Reason)
}

// AsMalformedPlayError attempts to unwrap an error into a MalformedPlayError.
func AsMalformedPlayError(err error) (*MalformedPlayError, bool) {
	var mpErr *MalformedPlayError
	if errors.As(err, &mpErr) {
		return mpErr, true
	}
	return nil, false
}

// ErrorKind buckets record failures for reporting.
type ErrorKind string

const (
	KindMissingField     ErrorKind = "missing_field"
	KindCorruptEncoding  ErrorKind = "corrupt_encoding"
	KindMalformedAuction ErrorKind = "malformed_auction"
	KindMalformedPlay    ErrorKind = "malformed_play"
	KindOther            ErrorKind = "other"
)

// ClassifyError maps a parse error to its taxonomy kind so batch
// callers can tally rejections without type switches of their own.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case isMissingField(err):
		return KindMissingField
	case isCorruptEncoding(err):
		return KindCorruptEncoding
	case isMalformedAuction(err):
		return KindMalformedAuction
	case isMalformedPlay(err):
		return KindMalformedPlay
	}
	return KindOther
}

// IsRecordError reports whether err is one of the per-record failure
// kinds, i.e. safe to skip in a batch.
func IsRecordError(err error) bool {
	return isMissingField(err) || isCorruptEncoding(err) ||
		isMalformedAuction(err) || isMalformedPlay(err)
}

func isMissingField(err error) bool {
	_, ok := AsMissingFieldError(err)
	return ok
}

func isCorruptEncoding(err error) bool {
	_, ok := AsCorruptEncodingError(err)
	return ok
}

func isMalformedAuction(err error) bool {
	_, ok := AsMalformedAuctionError(err)
	return ok
}

func isMalformedPlay(err error) bool {
	_, ok := AsMalformedPlayError(err)
	return ok
}
