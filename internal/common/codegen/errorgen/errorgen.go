package errorgen

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/iancoleman/strcase"
)

type (
	ErrorGen struct {
		ErrorMaps     []ErrorMap
		ErrorKeys     []ErrorKey
		ErrorMessages []ErrorMessage
		ErrorCodes    []ErrorCode
	}

	ErrorMap struct {
		Key     string
		Code    string
		Message string
	}

	ErrorKey struct {
		Key         string
		Description string
	}

	ErrorMessage struct {
		Key         string
		Description string
	}

	ErrorCode struct {
		Key         string
		Description string
	}
)

type Options struct {
	CSVFile      string
	TemplateFile string
	OutputFile   string
}

// identifiers hands out one Go identifier per distinct text. Texts that camel
// case to the same name get a numeric suffix.
type identifiers struct {
	byText map[string]string
	used   map[string]bool
}

func newIdentifiers() *identifiers {
	return &identifiers{byText: make(map[string]string), used: make(map[string]bool)}
}

// get returns the identifier of text and whether it was handed out just now.
func (ids *identifiers) get(prefix, text string) (string, bool) {
	if ident, ok := ids.byText[text]; ok {
		return ident, false
	}
	base := prefix + strcase.ToCamel(text)
	ident := base
	for n := 2; ids.used[ident]; n++ {
		ident = fmt.Sprintf("%s%d", base, n)
	}
	ids.used[ident] = true
	ids.byText[text] = ident
	return ident, true
}

// Collect reads "key,code,message" rows, the first row is a header. Codes and
// messages shared by several keys are declared once, matched on exact text.
func Collect(r io.Reader) (ErrorGen, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return ErrorGen{}, fmt.Errorf("read csv: %w", err)
	}

	var (
		messages = newIdentifiers()
		codes    = newIdentifiers()
		seenKey  = make(map[string]bool)
		data     ErrorGen
	)
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) < 3 {
			return ErrorGen{}, fmt.Errorf("line %d: expected key,code,message", i+1)
		}
		key, code, message := lines[i][0], lines[i][1], lines[i][2]

		errKey := "ErrKey" + strcase.ToCamel(key)
		if seenKey[errKey] {
			return ErrorGen{}, fmt.Errorf("line %d: duplicate key %q", i+1, key)
		}
		seenKey[errKey] = true
		data.ErrorKeys = append(data.ErrorKeys, ErrorKey{Key: errKey, Description: key})

		errCodeKey, isNew := codes.get("errCode", code)
		if isNew {
			data.ErrorCodes = append(data.ErrorCodes, ErrorCode{Key: errCodeKey, Description: code})
		}

		errMessageKey, isNew := messages.get("err", message)
		if isNew {
			data.ErrorMessages = append(data.ErrorMessages, ErrorMessage{Key: errMessageKey, Description: message})
		}

		data.ErrorMaps = append(data.ErrorMaps, ErrorMap{Key: errKey, Code: errCodeKey, Message: errMessageKey})
	}

	return data, nil
}

// Render executes the template and gofmts the result.
func Render(tmplFile string, data ErrorGen) ([]byte, error) {
	tmpl, err := template.New("").Funcs(sprig.TxtFuncMap()).ParseFiles(tmplFile)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var processed bytes.Buffer
	if err := tmpl.ExecuteTemplate(&processed, filepath.Base(tmplFile), data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return format.Source(processed.Bytes())
}

func Generate(opts Options) error {
	f, err := os.Open(opts.CSVFile)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := Collect(f)
	if err != nil {
		return err
	}

	out, err := Render(opts.TemplateFile, data)
	if err != nil {
		return err
	}

	return os.WriteFile(opts.OutputFile, out, 0o644)
}
