package schema

import (
	"reflect"
	"testing"
)

func TestResolve_AliasPriority(t *testing.T) {
	columns := []string{
		"Part_1", "Part_2", "Customer_Count", "Confidence_Score", "Revenue_Potential",
	}

	resolved := Resolve(columns, DefaultAliases())

	testCases := []struct {
		field    Field
		expected string
	}{
		{FieldPartA, "Part_1"},
		{FieldPartB, "Part_2"},
		{FieldCustomers, "Customer_Count"},
		{FieldConfidence, "Confidence_Score"},
		{FieldRevenue, "Revenue_Potential"},
	}

	for _, tc := range testCases {
		col, ok := resolved.Column(tc.field)
		if !ok {
			t.Fatalf("Expected field %s to resolve", tc.field)
		}
		if col != tc.expected {
			t.Errorf("Expected %s to resolve to %s, got %s", tc.field, tc.expected, col)
		}
	}

	if resolved.Has(FieldDescA) {
		t.Errorf("Expected desc_a to be absent for this header")
	}
}

func TestResolve_TruncatedHeaderBindsByShortAlias(t *testing.T) {
	// Real export with truncated names: "confidence" cannot match
	// Enhanced_Confidenci, so the short alias "conf" kicks in and binds
	// the first column containing it. This is the superficial-match
	// hazard that schema overrides exist for.
	columns := []string{
		"Part_1", "Part_2", "Customer_Base_Conf", "Enhanced_Confidenci", "Annual_Revenue_Pote",
	}

	resolved := Resolve(columns, DefaultAliases())
	col, _ := resolved.Column(FieldConfidence)
	if col != "Customer_Base_Conf" {
		t.Errorf("Expected short alias to bind Customer_Base_Conf, got %s", col)
	}

	pinned, err := ResolveWithOverrides(columns, DefaultAliases(), map[Field]string{
		FieldConfidence: "Enhanced_Confidenci",
	})
	if err != nil {
		t.Fatalf("Expected override resolution to succeed: %v", err)
	}
	col, _ = pinned.Column(FieldConfidence)
	if col != "Enhanced_Confidenci" {
		t.Errorf("Expected override to pin Enhanced_Confidenci, got %s", col)
	}
}

func TestResolve_FirstColumnInDeclaredOrderWins(t *testing.T) {
	// Two columns contain "confidence"; the first in declared order wins
	columns := []string{"confidence_delta", "confidence"}

	resolved := Resolve(columns, DefaultAliases())

	col, _ := resolved.Column(FieldConfidence)
	if col != "confidence_delta" {
		t.Errorf("Expected first matching column confidence_delta, got %s", col)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	columns := []string{"PartNumber1", "PartNumber2", "Customers", "Conf_Score", "Revenue_Potential"}

	first := Resolve(columns, DefaultAliases())
	second := Resolve(columns, DefaultAliases())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected resolution to be deterministic, got %v then %v", first, second)
	}
}

func TestResolve_NoMatchIsAbsentNotError(t *testing.T) {
	columns := []string{"alpha", "beta", "gamma"}

	resolved := Resolve(columns, DefaultAliases())

	if len(resolved) != 0 {
		t.Errorf("Expected empty field map for unrelated columns, got %v", resolved)
	}
}

func TestResolveWithOverrides(t *testing.T) {
	columns := []string{"confidence_delta", "confidence", "Part_1", "Part_2"}

	resolved, err := ResolveWithOverrides(columns, DefaultAliases(), map[Field]string{
		FieldConfidence: "confidence",
	})
	if err != nil {
		t.Fatalf("Expected override resolution to succeed: %v", err)
	}

	col, _ := resolved.Column(FieldConfidence)
	if col != "confidence" {
		t.Errorf("Expected override to pin confidence column, got %s", col)
	}

	// Override naming a missing column is rejected
	_, err = ResolveWithOverrides(columns, DefaultAliases(), map[Field]string{
		FieldRevenue: "no_such_column",
	})
	if err == nil {
		t.Fatalf("Expected error for override naming a missing column")
	}
}
