package models

import "testing"

func TestSchemasCoverRecordKinds(t *testing.T) {
	schemas := Schemas()
	for _, kind := range []Kind{KindFarmerProfile, KindSoilTest, KindFarmObservation, KindAnalysisResult} {
		doc, ok := schemas[kind.Collection()]
		if !ok {
			t.Fatalf("missing schema for %s", kind.Collection())
		}
		if doc["type"] != "object" {
			t.Errorf("%s: expected object schema", kind.Collection())
		}
		if _, ok := doc["properties"].(SchemaDoc); !ok {
			t.Errorf("%s: expected properties", kind.Collection())
		}
	}
	// Accounts are internal; they are not exposed to external tooling.
	if _, ok := schemas[KindFarmerAccount.Collection()]; ok {
		t.Error("farmeraccount schema should not be exposed")
	}

	required, _ := schemas["farmerprofile"]["required"].([]string)
	if len(required) != 1 || required[0] != "name" {
		t.Errorf("farmerprofile required: got %v", required)
	}
}
