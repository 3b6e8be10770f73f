package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/caremetrix/duty-roster/backend/internal/domain"
)

func TestRefUnmarshalBareIdentity(t *testing.T) {
	var ref domain.Ref[domain.Employee]
	if err := json.Unmarshal([]byte(`42`), &ref); err != nil {
		t.Fatal(err)
	}
	if ref.Identity() != 42 {
		t.Errorf("identity = %d, want 42", ref.Identity())
	}
	if ref.Record != nil {
		t.Error("bare identity should not produce a record")
	}
}

func TestRefUnmarshalEmbeddedRecord(t *testing.T) {
	payload := []byte(`{"id": 7, "firstName": "Ana", "lastName": "Cruz"}`)

	var ref domain.Ref[domain.Employee]
	if err := json.Unmarshal(payload, &ref); err != nil {
		t.Fatal(err)
	}
	// The identity is lifted out of the record, so comparisons never
	// need to look inside it.
	if ref.Identity() != 7 {
		t.Errorf("identity = %d, want 7", ref.Identity())
	}
	if ref.Record == nil || ref.Record.LastName != "Cruz" {
		t.Errorf("record = %+v", ref.Record)
	}
}

func TestRefMarshalPrefersRecord(t *testing.T) {
	bare := domain.RefByID[domain.Employee](3)
	out, err := json.Marshal(bare)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "3" {
		t.Errorf("bare ref marshals to %s, want 3", out)
	}

	full := domain.RefByRecord(3, &domain.Employee{ID: 3, FirstName: "Ben", LastName: "Reyes"})
	out, err = json.Marshal(full)
	if err != nil {
		t.Fatal(err)
	}
	var round map[string]any
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("embedded ref did not marshal as an object: %s", out)
	}
	if round["lastName"] != "Reyes" {
		t.Errorf("embedded record lost fields: %s", out)
	}
}
