package main

import (
	"encoding/binary"
	"encoding/json"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/utfkit"
	uerrors "github.com/wippyai/utfkit/errors"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (\"-\" for stdin)")
		text        = flag.String("text", "", "Literal input text (alternative to -in)")
		from        = flag.String("from", "utf8", "Input form: utf8, utf16le, utf16be, utf32le, utf32be, latin1, windows1252")
		to          = flag.String("to", "utf8", "Output form: utf8, utf16le, utf16be, utf32le, utf32be")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		validate    = flag.Bool("validate", false, "Report on input well-formedness instead of converting")
		scrub       = flag.Bool("scrub", false, "Replace malformed 8-bit input sequences with U+FFFD")
		writeBOM    = flag.Bool("bom", false, "Prefix the output with a byte order mark")
		jsonOut     = flag.Bool("json", false, "Machine-readable validation report")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive byte inspector")
	)
	flag.Parse()

	if *inFile == "" && *text == "" {
		fmt.Fprintln(os.Stderr, "Usage: utfkit -in <file> [-from form] [-to form] [-out file] [-scrub] [-bom]")
		fmt.Fprintln(os.Stderr, "       utfkit -in <file> -validate [-json]")
		fmt.Fprintln(os.Stderr, "       utfkit -in <file> -i  (interactive inspector)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		utfkit.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*inFile, *text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *text, *from, *to, *outFile, *validate, *scrub, *writeBOM, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, text, from, to, outFile string, validate, scrub, writeBOM, jsonOut bool) error {
	data, err := readInput(inFile, text)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	utfkit.Logger().Debug("read input",
		zap.Int("bytes", len(data)),
		zap.String("form", from))

	if validate {
		return report(os.Stdout, data, from, jsonOut)
	}

	decoded, err := ingest(data, from, scrub)
	if err != nil {
		return fmt.Errorf("decode %s input: %w", from, err)
	}

	out, err := emit(decoded, to, writeBOM)
	if err != nil {
		return fmt.Errorf("encode %s output: %w", to, err)
	}

	return writeOutput(outFile, out)
}

func readInput(inFile, text string) ([]byte, error) {
	if text != "" {
		return []byte(text), nil
	}
	if inFile == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inFile)
}

func writeOutput(outFile string, out []byte) error {
	if outFile == "" || outFile == "-" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0o644)
}

// ingest brings input of any supported form to 8-bit Unicode. Legacy
// single-byte charsets go through their x/text decoder first; the
// Unicode forms go through the library's strict converters.
func ingest(data []byte, from string, scrub bool) ([]byte, error) {
	switch from {
	case "utf8":
		data = utfkit.TrimBOM(data)
		if scrub {
			return utfkit.ReplaceInvalid(nil, data)
		}
		if off := utfkit.FindInvalid(data); off != len(data) {
			_, _, err := utfkit.DecodeNext(data, off)
			return nil, err
		}
		return data, nil

	case "utf16le", "utf16be":
		units, err := wordsOf(data, from == "utf16be")
		if err != nil {
			return nil, err
		}
		if len(units) > 0 && units[0] == 0xFEFF {
			units = units[1:]
		}
		return utfkit.UTF16To8(nil, units)

	case "utf32le", "utf32be":
		units, err := runesOf(data, from == "utf32be")
		if err != nil {
			return nil, err
		}
		if len(units) > 0 && units[0] == 0xFEFF {
			units = units[1:]
		}
		return utfkit.UTF32To8(nil, units)

	case "latin1":
		return charmap.ISO8859_1.NewDecoder().Bytes(data)

	case "windows1252":
		return charmap.Windows1252.NewDecoder().Bytes(data)

	default:
		return nil, fmt.Errorf("unknown input form %q", from)
	}
}

// emit converts well-formed 8-bit text to the requested output form.
func emit(data []byte, to string, writeBOM bool) ([]byte, error) {
	switch to {
	case "utf8":
		if !writeBOM {
			return data, nil
		}
		out, err := utfkit.AppendRune(nil, 0xFEFF)
		if err != nil {
			return nil, err
		}
		return append(out, data...), nil

	case "utf16le", "utf16be":
		units, err := utfkit.UTF8To16(nil, data)
		if err != nil {
			return nil, err
		}
		if writeBOM {
			units = append([]uint16{0xFEFF}, units...)
		}
		return wordBytes(units, to == "utf16be"), nil

	case "utf32le", "utf32be":
		units, err := utfkit.UTF8To32(nil, data)
		if err != nil {
			return nil, err
		}
		if writeBOM {
			units = append([]rune{0xFEFF}, units...)
		}
		return runeBytes(units, to == "utf32be"), nil

	default:
		return nil, fmt.Errorf("unknown output form %q", to)
	}
}

// wordsOf reassembles raw bytes into 16-bit units.
func wordsOf(data []byte, bigEndian bool) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("length %d is not a whole number of 16-bit units", len(data))
	}
	order := orderOf(bigEndian)
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		units = append(units, order.Uint16(data[i:]))
	}
	return units, nil
}

// runesOf reassembles raw bytes into 32-bit units.
func runesOf(data []byte, bigEndian bool) ([]rune, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("length %d is not a whole number of 32-bit units", len(data))
	}
	order := orderOf(bigEndian)
	units := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		units = append(units, rune(order.Uint32(data[i:])))
	}
	return units, nil
}

func wordBytes(units []uint16, bigEndian bool) []byte {
	order := orderOf(bigEndian)
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = order.AppendUint16(out, u)
	}
	return out
}

func runeBytes(units []rune, bigEndian bool) []byte {
	order := orderOf(bigEndian)
	out := make([]byte, 0, len(units)*4)
	for _, u := range units {
		out = order.AppendUint32(out, uint32(u))
	}
	return out
}

// byteOrder reads and appends fixed-width units in one byte order.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func orderOf(bigEndian bool) byteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// validationReport is the -validate output shape.
type validationReport struct {
	Form       string `json:"form"`
	Bytes      int    `json:"bytes"`
	Valid      bool   `json:"valid"`
	CodePoints int    `json:"code_points,omitempty"`
	BOM        bool   `json:"bom,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

func report(w io.Writer, data []byte, form string, jsonOut bool) error {
	rep := inspect(data, form)

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(w, "Form: %s\n", rep.Form)
	fmt.Fprintf(w, "Bytes: %d\n", rep.Bytes)
	if rep.BOM {
		fmt.Fprintln(w, "Byte order mark: present")
	}
	if rep.Valid {
		fmt.Fprintf(w, "Valid: yes (%d codepoints)\n", rep.CodePoints)
		return nil
	}
	fmt.Fprintln(w, "Valid: no")
	fmt.Fprintf(w, "First defect: %s at offset %d\n", rep.Kind, rep.Offset)
	if rep.Detail != "" {
		fmt.Fprintf(w, "Detail: %s\n", rep.Detail)
	}
	return nil
}

func inspect(data []byte, form string) validationReport {
	rep := validationReport{Form: form, Bytes: len(data)}

	var convErr error
	switch form {
	case "utf8":
		rep.BOM = utfkit.StartsWithBOM(data)
		body := utfkit.TrimBOM(data)
		if off := utfkit.FindInvalid(body); off != len(body) {
			_, _, convErr = utfkit.DecodeNext(body, off)
			break
		}
		rep.CodePoints, _ = utfkit.Distance(body, 0, len(body))

	case "utf16le", "utf16be":
		units, err := wordsOf(data, form == "utf16be")
		if err != nil {
			rep.Detail = err.Error()
			return rep
		}
		rep.BOM = len(units) > 0 && units[0] == 0xFEFF
		var decoded []byte
		decoded, convErr = utfkit.UTF16To8(nil, units)
		if convErr == nil {
			rep.CodePoints, _ = utfkit.Distance(decoded, 0, len(decoded))
			if rep.BOM {
				rep.CodePoints--
			}
		}

	case "utf32le", "utf32be":
		units, err := runesOf(data, form == "utf32be")
		if err != nil {
			rep.Detail = err.Error()
			return rep
		}
		rep.BOM = len(units) > 0 && units[0] == 0xFEFF
		var decoded []byte
		decoded, convErr = utfkit.UTF32To8(nil, units)
		if convErr == nil {
			rep.CodePoints, _ = utfkit.Distance(decoded, 0, len(decoded))
			if rep.BOM {
				rep.CodePoints--
			}
		}

	default:
		rep.Detail = fmt.Sprintf("form %q cannot be validated", form)
		return rep
	}

	if convErr == nil {
		rep.Valid = true
		return rep
	}

	var uerr *uerrors.Error
	if stderrors.As(convErr, &uerr) {
		rep.Kind = string(uerr.Kind)
		rep.Offset = uerr.Offset
		rep.Detail = uerr.Detail
	} else {
		rep.Detail = convErr.Error()
	}
	return rep
}
