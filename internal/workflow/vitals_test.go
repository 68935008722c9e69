package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

func TestVitalSignsInput_ParseAllFields(t *testing.T) {
	input := VitalSignsInput{
		BloodPressure:    "120/80",
		HeartRate:        "68",
		Temperature:      "36.8",
		OxygenSaturation: "98",
		RespiratoryRate:  "16",
		Weight:           "82.5",
		Height:           "178",
	}

	vitals, err := input.Parse()
	assert.NoError(t, err)
	assert.NotNil(t, vitals)
	assert.Equal(t, "120/80", *vitals.BloodPressure)
	assert.Equal(t, 68, *vitals.HeartRate)
	assert.Equal(t, 36.8, *vitals.Temperature)
	assert.Equal(t, 98, *vitals.OxygenSaturation)
	assert.Equal(t, 16, *vitals.RespiratoryRate)
	assert.Equal(t, 82.5, *vitals.Weight)
	assert.Equal(t, 178.0, *vitals.Height)
}

func TestVitalSignsInput_ParseEmptyFormYieldsNil(t *testing.T) {
	vitals, err := (&VitalSignsInput{}).Parse()
	assert.NoError(t, err)
	assert.Nil(t, vitals)

	vitals, err = (&VitalSignsInput{BloodPressure: "   ", HeartRate: " \t"}).Parse()
	assert.NoError(t, err)
	assert.Nil(t, vitals)
}

func TestVitalSignsInput_AbsentFieldsSerializeAsNull(t *testing.T) {
	vitals, err := (&VitalSignsInput{HeartRate: "70"}).Parse()
	assert.NoError(t, err)

	encoded, marshalErr := json.Marshal(vitals)
	assert.NoError(t, marshalErr)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(encoded, &raw))

	// Absent fields go on the wire as null, never "".
	assert.Equal(t, "null", string(raw["bloodPressure"]))
	assert.Equal(t, "null", string(raw["temperature"]))
	assert.Equal(t, "70", string(raw["heartRate"]))
}

func TestVitalSignsInput_ParseRejectsNonNumeric(t *testing.T) {
	cases := []VitalSignsInput{
		{HeartRate: "fast"},
		{Temperature: "warm"},
		{OxygenSaturation: "98%"},
		{RespiratoryRate: "16.5"}, // whole numbers only
		{Weight: "eighty"},
		{Height: "1,78"},
	}

	for _, input := range cases {
		vitals, err := input.Parse()
		assert.Error(t, err)
		assert.Nil(t, vitals)
		wfErr, ok := err.(*types.WorkflowError)
		assert.True(t, ok)
		assert.Equal(t, types.ErrCodeInvalidVitals, wfErr.Code)
	}
}

func TestVitalSignsInput_TrimsWhitespace(t *testing.T) {
	vitals, err := (&VitalSignsInput{BloodPressure: "  130/85  ", HeartRate: " 75 "}).Parse()
	assert.NoError(t, err)
	assert.Equal(t, "130/85", *vitals.BloodPressure)
	assert.Equal(t, 75, *vitals.HeartRate)
}
