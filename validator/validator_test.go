package validator

import "testing"

type ordering struct {
	Name  string `json:"field" validate:"required"`
	Order string `json:"order" validate:"required,oneof=asc desc"`
}

func TestValidateStruct_Valid(t *testing.T) {
	msgs := ValidateStruct(&ordering{Name: "id", Order: "asc"})
	if len(msgs) != 0 {
		t.Fatalf("expected no violations, got %v", msgs)
	}
}

func TestValidateStruct_Violations(t *testing.T) {
	msgs := ValidateStruct(&ordering{Order: "sideways"})

	if _, ok := msgs["field"]; !ok {
		t.Errorf("expected a violation keyed on the json name 'field', got %v", msgs)
	}
	if _, ok := msgs["order"]; !ok {
		t.Errorf("expected a violation for the invalid order, got %v", msgs)
	}
}
