package models

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

var (
	// ErrNullUpdate is returned when the body is the json literal null
	ErrNullUpdate = errors.New("update is null")
	// ErrNotObject is returned when the body is valid json but not an object
	ErrNotObject = errors.New("update is not a json object")
)

// TelegramUpdate is a webhook update kept as raw json values. Only the
// fields the bot reads are looked up, everything else is left untouched.
type TelegramUpdate map[string]interface{}

// DecodeUpdate reads exactly one json value from r. Numbers keep their
// literal text so ids round trip without float rounding.
func DecodeUpdate(r io.Reader) (TelegramUpdate, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after update")
	}

	switch obj := v.(type) {
	case nil:
		return nil, ErrNullUpdate
	case map[string]interface{}:
		return TelegramUpdate(obj), nil
	default:
		return nil, ErrNotObject
	}
}

// Has reports whether key is a top level field of the update, even if its value is null
func (u TelegramUpdate) Has(key string) bool {
	_, ok := u[key]
	return ok
}

// Get walks keys one level at a time. Missing keys, non-object
// intermediates and null leaves all yield false.
func (u TelegramUpdate) Get(keys ...string) (interface{}, bool) {
	var current interface{} = map[string]interface{}(u)
	for _, key := range keys {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if current, ok = obj[key]; !ok {
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// GetString is Get with the value rendered as text
func (u TelegramUpdate) GetString(keys ...string) (string, bool) {
	v, ok := u.Get(keys...)
	if !ok {
		return "", false
	}
	return toString(v), true
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
