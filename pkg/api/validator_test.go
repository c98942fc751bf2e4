package api

import (
	"math"
	"testing"
)

func TestTargetPayloadValidate(t *testing.T) {
	cases := []struct {
		name    string
		payload TargetPayload
		wantErr bool
	}{
		{"valid", TargetPayload{X: 8000, Y: 4500}, false},
		{"outside field is allowed", TargetPayload{X: -5000, Y: 99999}, false},
		{"nan x", TargetPayload{X: math.NaN(), Y: 0}, true},
		{"nan y", TargetPayload{X: 0, Y: math.NaN()}, true},
		{"positive inf", TargetPayload{X: math.Inf(1), Y: 0}, true},
		{"negative inf", TargetPayload{X: 0, Y: math.Inf(-1)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestScenarioPayloadValidate(t *testing.T) {
	if err := (ScenarioPayload{ID: 0}).Validate(); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
	if err := (ScenarioPayload{ID: -1}).Validate(); err == nil {
		t.Error("negative id accepted")
	}
}

func TestStrategyPayloadValidate(t *testing.T) {
	// Пустое имя - штатный переход в ручной режим.
	if err := (StrategyPayload{Name: ""}).Validate(); err != nil {
		t.Errorf("empty name rejected: %v", err)
	}
	if err := (StrategyPayload{Name: "chase"}).Validate(); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
}
