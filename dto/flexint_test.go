package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{`45`, 45, false},
		{`"45"`, 45, false},
		{`" 45 "`, 45, false},
		{`45.9`, 45, false},
		{`"45.9"`, 45, false},
		{`-3`, -3, false},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"abc"`, 0, true},
	}
	for _, tt := range tests {
		var f FlexInt
		err := json.Unmarshal([]byte(tt.raw), &f)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Unmarshal(%s) should fail", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", tt.raw, err)
			continue
		}
		if f.Int() != tt.want {
			t.Errorf("Unmarshal(%s) = %d, want %d", tt.raw, f.Int(), tt.want)
		}
	}
}

func TestFlexIntInStruct(t *testing.T) {
	var req CreateMealRequest
	raw := `{"mealType":"lunch","time":"12:30","foodName":"Salad","calories":"450"}`
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if req.Calories.Int() != 450 {
		t.Errorf("calories = %d, want 450", req.Calories.Int())
	}
}
