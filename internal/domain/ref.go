package domain

import "encoding/json"

// Ref is a reference field that may arrive either as a bare identity or
// as an embedded record. The entry store and all derived views resolve
// it through a single path instead of type-switching on the payload.
type Ref[T any] struct {
	ID     int64
	Record *T
}

func RefByID[T any](id int64) Ref[T] {
	return Ref[T]{ID: id}
}

func RefByRecord[T any](id int64, record *T) Ref[T] {
	return Ref[T]{ID: id, Record: record}
}

// Identity returns the referenced identity, 0 when unset.
func (r Ref[T]) Identity() int64 {
	return r.ID
}

func (r Ref[T]) IsZero() bool {
	return r.ID == 0 && r.Record == nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Record != nil {
		return json.Marshal(r.Record)
	}
	return json.Marshal(r.ID)
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	// Bare identity form
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Record = nil
		return nil
	}

	// Embedded record form; the identity is lifted out of the record so
	// that equality checks never need to look inside it.
	record := new(T)
	if err := json.Unmarshal(data, record); err != nil {
		return err
	}
	var envelope struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	r.ID = envelope.ID
	r.Record = record
	return nil
}
