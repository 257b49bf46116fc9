/*
Package jsoncodec converts between the persisted JSON document and the alias
domain types. The document is the generic tree produced by unmarshalling JSON
into an interface value: []any, map[string]any, string, float64, bool and nil.

The persisted store is an array of objects of the form

	{ "name": string, "command": string, "description": string, "tags": [string, ...] }
*/
package jsoncodec

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"

	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	jsoniter "github.com/json-iterator/go"
)

// ErrParse indicates that the bytes are not syntactically valid JSON.
var ErrParse = errors.New("invalid JSON document")

// ErrSchema indicates a syntactically valid document that does not have the expected shape.
var ErrSchema = errors.New("record does not match the alias schema")

// ErrRootShape is the schema error for a document whose root is not an array.
var ErrRootShape = fmt.Errorf("%w: root is not an array", ErrSchema)

const (
	fieldName        = "name"
	fieldCommand     = "command"
	fieldDescription = "description"
	fieldTags        = "tags"
)

const indent = "    "

// Keys are sorted for reproducible files. HTML escaping is off so commands
// such as "a && b" stay readable on disk. The sorted map encoder loses the
// nesting depth under MarshalIndent, so output is always compact and Format
// indents it afterwards.
var json = jsoniter.Config{
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Parse turns raw bytes into a document tree.
func Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return doc, nil
}

// Format renders a document tree as indented JSON terminated by a newline.
func Format(doc any) ([]byte, error) {
	compact, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to format document: %w", err)
	}
	var out bytes.Buffer
	if err := stdjson.Indent(&out, compact, "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent document: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// DecodeEntry decodes one array element into an Entry. Every field must be
// present with the right type; otherwise an ErrSchema error naming the field
// is returned and the Entry is the zero value.
func DecodeEntry(doc any) (alias.Entry, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return alias.Entry{}, fmt.Errorf("%w: expected an object, got %s", ErrSchema, typeName(doc))
	}

	name, err := stringField(obj, fieldName)
	if err != nil {
		return alias.Entry{}, err
	}
	command, err := stringField(obj, fieldCommand)
	if err != nil {
		return alias.Entry{}, err
	}
	description, err := stringField(obj, fieldDescription)
	if err != nil {
		return alias.Entry{}, err
	}

	rawTags, present := obj[fieldTags]
	if !present {
		return alias.Entry{}, fmt.Errorf("%w: missing field %q", ErrSchema, fieldTags)
	}
	packedTags, ok := rawTags.([]any)
	if !ok {
		return alias.Entry{}, fmt.Errorf("%w: field %q must be an array, got %s", ErrSchema, fieldTags, typeName(rawTags))
	}
	tags := make([]string, 0, len(packedTags))
	for i, elem := range packedTags {
		tag, ok := elem.(string)
		if !ok {
			return alias.Entry{}, fmt.Errorf("%w: tag %d must be a string, got %s", ErrSchema, i, typeName(elem))
		}
		tags = append(tags, tag)
	}

	return alias.Entry{
		Name:        name,
		Command:     command,
		Description: description,
		Tags:        tags,
	}, nil
}

// DecodeStore decodes a whole document. The first bad element aborts the decode.
// When several elements share a name the last one wins.
func DecodeStore(doc any) (*alias.Store, error) {
	elems, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrRootShape, typeName(doc))
	}

	store := alias.NewStore()
	for i, elem := range elems {
		entry, err := DecodeEntry(elem)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		store.Put(entry)
	}
	return store, nil
}

// EncodeEntry converts an Entry into its document form.
func EncodeEntry(e alias.Entry) any {
	tags := make([]any, 0, len(e.Tags))
	for _, tag := range e.Tags {
		tags = append(tags, tag)
	}
	return map[string]any{
		fieldName:        e.Name,
		fieldCommand:     e.Command,
		fieldDescription: e.Description,
		fieldTags:        tags,
	}
}

// EncodeStore converts a store into its document form, entries ordered by name.
func EncodeStore(s *alias.Store) any {
	elems := make([]any, 0, s.Len())
	for _, e := range s.Entries() {
		elems = append(elems, EncodeEntry(e))
	}
	return elems
}

func stringField(obj map[string]any, field string) (string, error) {
	raw, present := obj[field]
	if !present {
		return "", fmt.Errorf("%w: missing field %q", ErrSchema, field)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string, got %s", ErrSchema, field, typeName(raw))
	}
	return value, nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
