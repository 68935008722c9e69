package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/israel77-1995/Nocta-system/pkg/types"
)

// VitalSignsInput carries the raw text of the vitals form fields. Every
// field is optional; whitespace-only input counts as absent.
type VitalSignsInput struct {
	BloodPressure    string
	HeartRate        string
	Temperature      string
	OxygenSaturation string
	RespiratoryRate  string
	Weight           string
	Height           string
}

// Parse converts the raw inputs into the typed vitals payload. Absent
// fields become nil (serialized as JSON null, never ""); numeric fields
// must parse as their proper type. A fully empty form yields nil.
func (in *VitalSignsInput) Parse() (*types.VitalSigns, error) {
	vitals := &types.VitalSigns{}

	if bp := strings.TrimSpace(in.BloodPressure); bp != "" {
		vitals.BloodPressure = &bp
	}

	var err error
	if vitals.HeartRate, err = parseIntField("heart rate", in.HeartRate); err != nil {
		return nil, err
	}
	if vitals.Temperature, err = parseFloatField("temperature", in.Temperature); err != nil {
		return nil, err
	}
	if vitals.OxygenSaturation, err = parseIntField("oxygen saturation", in.OxygenSaturation); err != nil {
		return nil, err
	}
	if vitals.RespiratoryRate, err = parseIntField("respiratory rate", in.RespiratoryRate); err != nil {
		return nil, err
	}
	if vitals.Weight, err = parseFloatField("weight", in.Weight); err != nil {
		return nil, err
	}
	if vitals.Height, err = parseFloatField("height", in.Height); err != nil {
		return nil, err
	}

	if vitals.IsEmpty() {
		return nil, nil
	}
	return vitals, nil
}

func parseIntField(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidVitals,
			fmt.Sprintf("Invalid %s: %q", name, raw))
	}
	return &value, nil
}

func parseFloatField(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidVitals,
			fmt.Sprintf("Invalid %s: %q", name, raw))
	}
	return &value, nil
}
