package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintRecord_MarshalsFlat(t *testing.T) {
	record := ComplaintRecord{
		ComplaintID: "TGRERA/COMP/2026/10171234",
		Complainant: Complainant{FullName: "Jane Doe", PAN: "ABCDE1234F"},
		Project:     Project{RERARegNo: "P02400001234"},
		Grievance:   Grievance{Compensation: "0"},
		Docs:        DocumentFlags{Aadhaar: true, BankStatement: true},
	}

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "Jane Doe", out["fullName"])
	assert.Equal(t, "ABCDE1234F", out["pan"])
	assert.Equal(t, "P02400001234", out["reraRegNo"])
	assert.Equal(t, "0", out["compensation"])
	assert.NotContains(t, out, "Complainant")

	docs, ok := out["docs"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, docs, 10)
	assert.Equal(t, true, docs["bankStatement"])
	assert.Equal(t, false, docs["receipts"])
}
