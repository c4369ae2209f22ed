package cpu

import (
	"errors"

	"github.com/ezrec/volve/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOrgSyntax          = errors.New(f(".org syntax"))
	ErrDataSyntax         = errors.New(f("data directive syntax"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrModeInvalid        = errors.New(f("addressing mode invalid"))
	ErrValueRange         = errors.New(f("value out of range"))
	ErrBranchRange        = errors.New(f("branch out of range"))
	ErrBitMissing         = errors.New(f("bit branch target missing"))
	ErrAddressRange       = errors.New(f("address past end of memory"))

	// Program errors
	ErrProgramEmpty   = errors.New(f("program empty"))
	ErrProgramOutside = errors.New(f("program outside ROM"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}
