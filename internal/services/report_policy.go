package services

const maxContextFieldLength = 64

const (
	minStressLevel = 0
	maxStressLevel = 4
	minAffectScale = -2
	maxAffectScale = 2
)

type SelfReportInput struct {
	Timestamp     int64
	StressLevel   *int
	Valence       *int
	Arousal       *int
	Activity      string
	Location      string
	SocialContext string
}

func ValidateSelfReport(input SelfReportInput) map[string]string {
	fieldErrors := map[string]string{}

	if input.Timestamp <= 0 {
		fieldErrors["timestamp"] = "A positive epoch-millisecond timestamp is required"
	}

	if input.StressLevel == nil {
		fieldErrors["stress_level"] = "This field is required"
	} else if *input.StressLevel < minStressLevel || *input.StressLevel > maxStressLevel {
		fieldErrors["stress_level"] = "Stress level must be between 0 and 4"
	}

	if input.Valence == nil {
		fieldErrors["valence"] = "This field is required"
	} else if *input.Valence < minAffectScale || *input.Valence > maxAffectScale {
		fieldErrors["valence"] = "Valence must be between -2 and 2"
	}

	if input.Arousal == nil {
		fieldErrors["arousal"] = "This field is required"
	} else if *input.Arousal < minAffectScale || *input.Arousal > maxAffectScale {
		fieldErrors["arousal"] = "Arousal must be between -2 and 2"
	}

	if len(input.Activity) > maxContextFieldLength {
		fieldErrors["activity"] = "Activity must be at most 64 characters"
	}
	if len(input.Location) > maxContextFieldLength {
		fieldErrors["location"] = "Location must be at most 64 characters"
	}
	if len(input.SocialContext) > maxContextFieldLength {
		fieldErrors["social_context"] = "Social context must be at most 64 characters"
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return nil
}
