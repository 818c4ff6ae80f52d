package models

import "encoding/json"

// Optional distinguishes "field absent from the request" from "field
// explicitly set to null" in partial-update payloads. Present reports
// whether the key appeared in the JSON at all; Valid whether it carried a
// non-null value. A plain pointer field cannot make that distinction.
type Optional[T any] struct {
	Value   T
	Valid   bool
	Present bool
}

// UnmarshalJSON is only invoked for keys present in the payload, so
// Present is unconditionally true here; absent fields keep the zero value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
