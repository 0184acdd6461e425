package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// matchFieldMap caches JSON tag -> struct field index mappings
var (
	matchFieldMap     map[string]int
	matchFieldMapOnce sync.Once
)

func getMatchFieldMap() map[string]int {
	matchFieldMapOnce.Do(func() {
		t := reflect.TypeOf(Match{})
		matchFieldMap = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			matchFieldMap[name] = i
		}
	})
	return matchFieldMap
}

// UnmarshalJSON implements flexible JSON unmarshaling that accepts both
// string-encoded and native JSON types. Scraped fixture feeds routinely
// serialize ids and goal counts as quoted strings; this coerces them to the
// correct Go types transparently.
func (m *Match) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias Match
	a := (*Alias)(m)

	// Fast path: try standard unmarshal (works when all types match natively)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}

	// Slow path: field-by-field with coercion to the declared type
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	fieldMap := getMatchFieldMap()
	v := reflect.ValueOf(a).Elem()

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		// Try direct unmarshal first
		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		// Target is a string but the value arrived as a bare number
		if fv.Kind() == reflect.String && len(rawVal) > 0 && rawVal[0] != '"' {
			fv.SetString(string(rawVal))
		}
	}

	return nil
}

// UnmarshalJSON accepts score values either as native integers or as quoted
// numeric strings ("2", "2.0").
func (s *Score) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex score unmarshal: %w", err)
	}
	if v, ok := coerceInt(raw["home"]); ok {
		s.Home = &v
	}
	if v, ok := coerceInt(raw["away"]); ok {
		s.Away = &v
	}
	return nil
}

// coerceInt converts a raw JSON value to an int, tolerating quoted numbers.
func coerceInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil && str != "" {
		// ParseFloat tolerates "2.0"; the value is truncated
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}
