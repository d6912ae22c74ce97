package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() map[string]interface{} {
	return map[string]interface{}{
		"complaintId":       "TGRERA/COMP/2026/10174821",
		"submissionDate":    "17/10/2026",
		"submissionTime":    "4:05:09 pm",
		"fullName":          "Jane Doe",
		"aadhaar":           "1234 5678 9012",
		"pan":               "",
		"mobile":            "9876543210",
		"email":             "a@b.com",
		"pin":               "500032",
		"projectName":       "Lake View",
		"complaintCategory": "Delay in Possession",
		"description":       strings.Repeat("x", 100),
		"compensation":      "0",
		"digitalSignature":  "Jane Doe",
		"docs": map[string]interface{}{
			"aadhaar": true, "pan": true, "agreement": true, "receipts": true,
			"allotment": false, "comms": false, "photos": false, "notice": false,
			"brochure": false, "bankStatement": false,
		},
	}
}

func TestComplaintRecordValidator(t *testing.T) {
	v, err := NewComplaintRecordValidator()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mutate    func(map[string]interface{})
		wantValid bool
		field     string
	}{
		{"valid record", func(map[string]interface{}) {}, true, ""},
		{"aadhaar with unicode spaces", func(r map[string]interface{}) { r["aadhaar"] = "1234\u00a05678\v9012" }, true, ""},
		{"aadhaar with letters", func(r map[string]interface{}) { r["aadhaar"] = "1234 5678 901a" }, false, "aadhaar"},
		{"bad id", func(r map[string]interface{}) { r["complaintId"] = "TGRERA/COMP/2026/1017" }, false, "complaintId"},
		{"id suffix below range", func(r map[string]interface{}) { r["complaintId"] = "TGRERA/COMP/2026/10170999" }, false, "complaintId"},
		{"short description", func(r map[string]interface{}) { r["description"] = "too short" }, false, "description"},
		{"lowercase pan", func(r map[string]interface{}) { r["pan"] = "abcde1234f" }, false, "pan"},
		{"empty compensation", func(r map[string]interface{}) { r["compensation"] = "" }, false, "compensation"},
		{"non boolean doc flag", func(r map[string]interface{}) {
			r["docs"].(map[string]interface{})["photos"] = "yes"
		}, false, "docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			result, err := v.Validate(record)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid, result.GetErrorMessages())
			if tt.field != "" {
				assert.True(t, result.HasErrors(tt.field), result.GetErrorMessages())
			}
		})
	}
}

func TestComplaintRecordValidator_MissingKey(t *testing.T) {
	v, err := NewComplaintRecordValidator()
	require.NoError(t, err)

	record := validRecord()
	delete(record, "digitalSignature")

	result, err := v.Validate(record)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.GetErrorMessages())
}

func TestNewSchemaValidator_BadSchema(t *testing.T) {
	_, err := NewSchemaValidator([]byte(`{"type": 12}`))
	assert.Error(t, err)
}

func TestValidateDocument(t *testing.T) {
	schema := map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"fieldId"},
		"properties": map[string]interface{}{
			"fieldId": map[string]interface{}{"type": "string"},
		},
	}

	assert.NoError(t, ValidateDocument(nil, map[string]interface{}{}))
	assert.NoError(t, ValidateDocument(schema, map[string]interface{}{"fieldId": "pan"}))
	assert.Error(t, ValidateDocument(schema, map[string]interface{}{"kind": "blur"}))
}
