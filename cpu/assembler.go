// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/volve/internal"
	"github.com/ezrec/volve/memory"
)

// Assembler is a single pass assembler for the 6502 family, with link
// fixups for forward label references.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	address uint16 // Current assembly address.
	wrapped bool   // Set when the address has passed the end of memory.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Predefined system equates
var sysEquate = func() (equ map[string]string) {
	cpu := NewCpu()
	equ = maps.Collect(internal.Concat2(cpu.Memory.Defines(), cpu.Defines()))
	equ["LINENO"] = "0"
	return
}()

// opMap maps upper case mnemonics to operations.
var opMap = func() (ops map[string]Op) {
	ops = map[string]Op{}
	for op := OP_ADC; op <= OP_TYA; op++ {
		ops[op.String()] = op
	}
	return
}()

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
)

// parseNumber parses a numeric literal.
func parseNumber(word string) (value int, err error) {
	var v64 int64
	switch {
	case strings.HasPrefix(word, "$"):
		v64, err = strconv.ParseInt(word[1:], 16, 32)
	case strings.HasPrefix(word, "%"):
		v64, err = strconv.ParseInt(word[1:], 2, 32)
	default:
		v64, err = strconv.ParseInt(word, 0, 32)
	}
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// valueOf returns the value of a simple word. If the word is a label
// that is not yet defined, label is set and value is zero.
func (asm *Assembler) valueOf(word string) (value int, label string, err error) {
	return asm.valueOfDepth(word, 0)
}

func (asm *Assembler) valueOfDepth(word string, depth int) (value int, label string, err error) {
	if len(word) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	if depth > 16 {
		err = ErrParseNumber(word)
		return
	}

	switch word[0] {
	case '<', '>':
		value, label, err = asm.valueOfDepth(word[1:], depth+1)
		if err != nil {
			return
		}
		if len(label) != 0 {
			err = ErrLabelMissing(label)
			return
		}
		if word[0] == '>' {
			value >>= 8
		}
		value &= 0xff
		return
	case '\'':
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(word)
		return
	}

	if !reIdentifier.MatchString(word) {
		value, err = parseNumber(word)
		return
	}

	equate, ok := asm.Equate[word]
	if ok {
		return asm.valueOfDepth(equate, depth+1)
	}

	addr, ok := asm.Label[word]
	if ok {
		value = int(addr)
		return
	}

	label = word
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, label, err := asm.valueOf(str)
		if err != nil || len(label) != 0 {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(int(addr))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands character literals and expressions, records labels
// and equates, and returns the remaining words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Remove comments
	line, _, _ = strings.Cut(line, ";")

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		if value < 0 {
			return fmt.Sprintf("%d", value)
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok || !reIdentifier.MatchString(label) {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.address
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 || !reIdentifier.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			if _, ok := err.(ErrSyntax); !ok {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	asm.Label = map[string]uint16{}
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
	asm.address = memory.ROM_LOW
	asm.wrapped = false

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, line)
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of forward labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		for _, link := range op.Links {
			err = asm.link(op, link)
			if err != nil {
				err = ErrSyntax{LineNo: op.LineNo, Line: joinWords(op.Words), Err: err}
				return
			}
		}
		op.Links = nil
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// link patches a resolved label into an opcode.
func (asm *Assembler) link(op *Opcode, link Link) (err error) {
	addr, ok := asm.Label[link.Label]
	if !ok {
		err = ErrLabelMissing(link.Label)
		return
	}

	switch link.Kind {
	case LINK_BYTE:
		if addr > 0xff {
			err = ErrValueRange
			return
		}
		op.Bytes[link.Offset] = uint8(addr)
	case LINK_WORD:
		op.Bytes[link.Offset] = uint8(addr)
		op.Bytes[link.Offset+1] = uint8(addr >> 8)
	case LINK_RELATIVE:
		var disp uint8
		disp, err = displacement(op.Address+uint16(len(op.Bytes)), int(addr))
		if err != nil {
			return
		}
		op.Bytes[link.Offset] = disp
	}

	return
}

// displacement encodes a branch from next to target.
func displacement(next uint16, target int) (disp uint8, err error) {
	delta := int(int16(uint16(target) - next))
	if target < 0 || target > 0xffff || delta < -128 || delta > 127 {
		err = ErrBranchRange
		return
	}
	disp = uint8(int8(delta))
	return
}

// byteValue range checks a known 8-bit value.
func byteValue(value int) (b uint8, err error) {
	if value < -0x80 || value > 0xff {
		err = ErrValueRange
		return
	}
	b = uint8(value)
	return
}

// wordValue range checks a known 16-bit value.
func wordValue(value int) (w uint16, err error) {
	if value < -0x8000 || value > 0xffff {
		err = ErrValueRange
		return
	}
	w = uint16(value)
	return
}

func joinWords(words []string) string {
	return strings.Join(words, " ")
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	var bytes []uint8
	var links []Link

	defer func() {
		if err != nil || len(bytes) == 0 {
			return
		}
		if asm.wrapped || int(asm.address)+len(bytes) > memory.SIZE {
			err = ErrAddressRange
			return
		}
		opcode := Opcode{LineNo: lineno, Address: asm.address, Words: words, Bytes: bytes, Links: links}
		asm.Opcode = append(asm.Opcode, opcode)
		asm.address += uint16(len(bytes))
		asm.wrapped = asm.address == 0
	}()

	args := strings.Join(words[1:], "")

	switch words[0] {
	case ".org":
		var value int
		var label string
		value, label, err = asm.valueOf(args)
		if err != nil {
			return
		}
		if len(label) != 0 {
			err = ErrOrgSyntax
			return
		}
		asm.address, err = wordValue(value)
		asm.wrapped = false
		return
	case ".byte", ".word":
		if len(args) == 0 {
			err = ErrDataSyntax
			return
		}
		for _, arg := range strings.Split(args, ",") {
			var value int
			var label string
			value, label, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			if words[0] == ".byte" {
				if len(label) != 0 {
					links = append(links, Link{Label: label, Offset: len(bytes), Kind: LINK_BYTE})
				}
				var b uint8
				b, err = byteValue(value)
				if err != nil {
					return
				}
				bytes = append(bytes, b)
			} else {
				if len(label) != 0 {
					links = append(links, Link{Label: label, Offset: len(bytes), Kind: LINK_WORD})
				}
				var w uint16
				w, err = wordValue(value)
				if err != nil {
					return
				}
				bytes = append(bytes, uint8(w), uint8(w>>8))
			}
		}
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = ErrDirectiveInvalid
		return
	}

	op, ok := opMap[strings.ToUpper(words[0])]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	bytes, links, err = asm.encode(op, args)
	return
}

// operandForm is the syntactic shape of an instruction operand.
type operandForm struct {
	modes []Mode // Candidate modes, zero page forms first.
	value string // Operand value text.
	extra string // Second operand of the zero page relative form.
}

// parseOperand splits the operand text into its addressing form.
func parseOperand(op Op, args string) (form operandForm, err error) {
	upper := strings.ToUpper(args)

	switch {
	case len(args) == 0:
		form.modes = []Mode{MODE_IMPLIED, MODE_STACK, MODE_ACCUMULATOR}
	case upper == "A":
		form.modes = []Mode{MODE_ACCUMULATOR}
	case strings.HasPrefix(args, "#"):
		form.modes = []Mode{MODE_IMMEDIATE}
		form.value = args[1:]
	case strings.HasPrefix(args, "(") && strings.HasSuffix(upper, ",X)"):
		form.modes = []Mode{MODE_INDEXED_INDIRECT_X}
		form.value = args[1 : len(args)-3]
	case strings.HasPrefix(args, "(") && strings.HasSuffix(upper, "),Y"):
		form.modes = []Mode{MODE_INDIRECT_INDEXED_Y}
		form.value = args[1 : len(args)-3]
	case strings.HasPrefix(args, "(") && strings.HasSuffix(args, ")"):
		form.modes = []Mode{MODE_ZERO_PAGE_INDIRECT, MODE_INDIRECT}
		form.value = args[1 : len(args)-1]
	case strings.HasSuffix(upper, ",X"):
		form.modes = []Mode{MODE_ZERO_PAGE_X, MODE_ABSOLUTE_X}
		form.value = args[:len(args)-2]
	case strings.HasSuffix(upper, ",Y"):
		form.modes = []Mode{MODE_ZERO_PAGE_Y, MODE_ABSOLUTE_Y}
		form.value = args[:len(args)-2]
	case strings.Contains(args, ","):
		form.modes = []Mode{MODE_ZERO_PAGE_RELATIVE}
		form.value, form.extra, _ = strings.Cut(args, ",")
	case op.Branch():
		form.modes = []Mode{MODE_RELATIVE}
		form.value = args
	default:
		form.modes = []Mode{MODE_ZERO_PAGE, MODE_ABSOLUTE}
		form.value = args
	}

	_, bit := op.Bit()
	relative := len(form.modes) == 1 && form.modes[0] == MODE_ZERO_PAGE_RELATIVE
	switch {
	case relative && (!bit || !op.Branch()):
		err = ErrModeInvalid
	case !relative && bit && op.Branch():
		err = ErrBitMissing
	}

	return
}

// zeroPage returns true if the mode encodes its operand in one byte.
func zeroPage(mode Mode) bool {
	switch mode {
	case MODE_ZERO_PAGE, MODE_ZERO_PAGE_X, MODE_ZERO_PAGE_Y, MODE_ZERO_PAGE_INDIRECT,
		MODE_INDEXED_INDIRECT_X, MODE_INDIRECT_INDEXED_Y:
		return true
	}
	return false
}

// encode assembles a single instruction at the current address.
func (asm *Assembler) encode(op Op, args string) (bytes []uint8, links []Link, err error) {
	form, err := parseOperand(op, args)
	if err != nil {
		return
	}

	var value int
	var label string
	if len(form.value) != 0 {
		value, label, err = asm.valueOf(form.value)
		if err != nil {
			return
		}
	}

	// Select the mode, preferring a zero page form for known small values.
	var insn Instruction
	var opcode uint8
	var found bool
	for _, mode := range form.modes {
		candidate := Instruction{Op: op, Mode: mode}
		code, ok := Encode(candidate)
		if !ok {
			continue
		}
		if len(form.modes) > 1 && zeroPage(mode) && mode != MODE_ZERO_PAGE_INDIRECT {
			if len(label) != 0 || value < 0 || value > 0xff {
				continue
			}
		}
		if mode == MODE_ZERO_PAGE_INDIRECT && len(label) == 0 && (value < 0 || value > 0xff) {
			continue
		}
		insn, opcode, found = candidate, code, true
		break
	}
	if !found {
		// Fall back to a zero page only form for forward labels.
		for _, mode := range form.modes {
			candidate := Instruction{Op: op, Mode: mode}
			code, ok := Encode(candidate)
			if ok && len(label) != 0 && zeroPage(mode) {
				insn, opcode, found = candidate, code, true
				break
			}
		}
	}
	if !found {
		err = ErrModeInvalid
		return
	}

	bytes = append(bytes, opcode)
	length := insn.Mode.Length()
	next := asm.address + length

	switch insn.Mode {
	case MODE_IMPLIED, MODE_STACK, MODE_ACCUMULATOR:
		if len(form.value) != 0 {
			err = ErrOpcodeExtraArgs
			return
		}
	case MODE_RELATIVE:
		if len(label) != 0 {
			links = append(links, Link{Label: label, Offset: 1, Kind: LINK_RELATIVE})
			bytes = append(bytes, 0)
			break
		}
		var disp uint8
		disp, err = displacement(next, value)
		if err != nil {
			return
		}
		bytes = append(bytes, disp)
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y, MODE_INDIRECT:
		if len(label) != 0 {
			links = append(links, Link{Label: label, Offset: 1, Kind: LINK_WORD})
		}
		var w uint16
		w, err = wordValue(value)
		if err != nil {
			return
		}
		bytes = append(bytes, uint8(w), uint8(w>>8))
	case MODE_ZERO_PAGE_RELATIVE:
		if len(label) != 0 {
			links = append(links, Link{Label: label, Offset: 1, Kind: LINK_BYTE})
		} else if value < 0 || value > 0xff {
			err = ErrValueRange
			return
		}
		bytes = append(bytes, uint8(value))

		var target int
		var target_label string
		target, target_label, err = asm.valueOf(form.extra)
		if err != nil {
			return
		}
		if len(target_label) != 0 {
			links = append(links, Link{Label: target_label, Offset: 2, Kind: LINK_RELATIVE})
			bytes = append(bytes, 0)
			break
		}
		var disp uint8
		disp, err = displacement(next, target)
		if err != nil {
			return
		}
		bytes = append(bytes, disp)
	default:
		// Single byte operand: immediate and zero page forms.
		if len(form.value) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(label) != 0 {
			links = append(links, Link{Label: label, Offset: 1, Kind: LINK_BYTE})
		}
		if insn.Mode != MODE_IMMEDIATE && (value < 0 || value > 0xff) {
			err = ErrValueRange
			return
		}
		var b uint8
		b, err = byteValue(value)
		if err != nil {
			return
		}
		bytes = append(bytes, b)
	}

	return
}
