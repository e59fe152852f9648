package ngram

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"unicode/utf8"
)

// DocumentRecord is one decoded input line. It lives only for a single call.
type DocumentRecord struct {
	ID    string `json:"id,omitempty"`
	Text  string `json:"text"`
	Label int    `json:"label,omitempty"`
}

// ParseRecord decodes a JSON object with a required string "text" field and
// optional "id" (string) and "label" (integer) fields. A null id or label is
// treated as absent. When a key repeats, the last value wins.
//
// Invalid UTF-8 anywhere in line, or a lone surrogate escape inside text or id,
// yields an *EncodingError whose Offset points into line. Everything else that
// is not a record yields an error wrapping ErrMalformedInput.
func ParseRecord(line []byte) (*DocumentRecord, error) {
	if !utf8.Valid(line) {
		return nil, &EncodingError{
			Offset: invalidOffset(line),
			Reason: "invalid UTF-8 byte sequence",
		}
	}
	fields, err := readObject(line)
	if err != nil {
		return nil, err
	}

	record := &DocumentRecord{}
	text, ok := fields["text"]
	if !ok || isNull(text.raw) {
		return nil, malformed(`"text" field is missing`)
	}
	if text.raw[0] != '"' {
		return nil, malformed(`"text" field must be a string`)
	}
	if err := text.checkSurrogates("text"); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(text.raw, &record.Text); err != nil {
		return nil, malformed(`"text": %s`, err.Error())
	}

	if id, ok := fields["id"]; ok && !isNull(id.raw) {
		if id.raw[0] != '"' {
			return nil, malformed(`"id" field must be a string`)
		}
		if err := id.checkSurrogates("id"); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(id.raw, &record.ID); err != nil {
			return nil, malformed(`"id" field must be a string`)
		}
	}
	if label, ok := fields["label"]; ok && !isNull(label.raw) {
		if err := json.Unmarshal(label.raw, &record.Label); err != nil {
			return nil, malformed(`"label" field must be an integer`)
		}
	}
	return record, nil
}

// rawField is an undecoded member value and the byte offset where it starts in the line.
type rawField struct {
	raw    json.RawMessage
	offset int
}

func (f rawField) checkSurrogates(name string) error {
	if offset, ok := loneSurrogate(f.raw); ok {
		return &EncodingError{
			Offset: f.offset + offset,
			Reason: "unpaired surrogate escape in " + name,
		}
	}
	return nil
}

// readObject reads exactly one top-level JSON object from line, keeping the
// position of every member value.
func readObject(line []byte) (map[string]rawField, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	tok, err := dec.Token()
	if err != nil {
		return nil, malformed("%s", tokenError(err))
	}
	switch tok {
	case json.Delim('{'):
	case nil:
		return nil, malformed("record is null")
	default:
		return nil, malformed("record must be a JSON object")
	}

	fields := make(map[string]rawField)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed("%s", tokenError(err))
		}
		key, ok := tok.(string)
		if !ok {
			return nil, malformed("object key must be a string")
		}
		offset := valueStart(line, int(dec.InputOffset()))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformed("%q: %s", key, tokenError(err))
		}
		fields[key] = rawField{raw: raw, offset: offset}
	}
	if _, err := dec.Token(); err != nil {
		return nil, malformed("%s", tokenError(err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed("unexpected data after record")
	}
	return fields, nil
}

// valueStart skips the whitespace and colon that follow an object key.
func valueStart(line []byte, i int) int {
	for i < len(line) {
		switch line[i] {
		case ' ', '\t', '\n', '\r', ':':
			i++
		default:
			return i
		}
	}
	return i
}

func tokenError(err error) string {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return "unexpected end of JSON input"
	}
	return err.Error()
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(raw, []byte("null"))
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// loneSurrogate scans a JSON string literal for \u escapes in the surrogate
// range that do not form a high/low pair. The literal is already known to be
// valid JSON.
func loneSurrogate(literal []byte) (int, bool) {
	for i := 0; i < len(literal); i++ {
		if literal[i] != '\\' {
			continue
		}
		if literal[i+1] != 'u' {
			i++
			continue
		}
		code := hex4(literal[i+2 : i+6])
		switch {
		case code >= 0xDC00 && code <= 0xDFFF:
			return i, true
		case code >= 0xD800 && code <= 0xDBFF:
			next := i + 6
			if next+6 > len(literal) || literal[next] != '\\' || literal[next+1] != 'u' {
				return i, true
			}
			low := hex4(literal[next+2 : next+6])
			if low < 0xDC00 || low > 0xDFFF {
				return i, true
			}
			i = next + 5
		default:
			i += 5
		}
	}
	return 0, false
}

func hex4(b []byte) int {
	v, err := strconv.ParseUint(string(b), 16, 32)
	if err != nil {
		return -1
	}
	return int(v)
}
