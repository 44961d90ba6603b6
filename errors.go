package svalue

import "github.com/colinmarc/svalue/internal/errs"

// Error is the typed error every operation in this package (and the
// heap/buffer/codec packages underneath) returns on failure.
type Error = errs.Error

// ErrKind classifies an Error as a type, range, or invalid-argument
// failure.
type ErrKind = errs.Kind

const (
	ErrKindType    = errs.KindType
	ErrKindRange   = errs.KindRange
	ErrKindInvalid = errs.KindInvalid
)

// Sentinels usable with errors.Is(err, svalue.ErrType) to branch on error
// kind without inspecting the message.
var (
	ErrType    = errs.Type
	ErrRange   = errs.Range
	ErrInvalid = errs.Invalid
)
