package hilo

import (
	"encoding/json"
)

// Prediction is the player's wager direction for a round.
type Prediction int

const (
	PredictionHigher Prediction = iota
	PredictionLower
)

const (
	predictionHigherStr = "Higher"
	predictionLowerStr  = "Lower"
)

func (p Prediction) String() string {
	if p == PredictionHigher {
		return predictionHigherStr
	}
	return predictionLowerStr
}

func ParsePrediction(s string) (Prediction, error) {
	switch s {
	case predictionHigherStr:
		return PredictionHigher, nil
	case predictionLowerStr:
		return PredictionLower, nil
	}
	return 0, InvalidPredictionError{Prediction: s}
}

func (p Prediction) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Prediction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParsePrediction(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
