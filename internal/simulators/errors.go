package simulators

import (
	"telemetry-dashboard/internal/shared/svcerrors"
)

// ScenarioSimulator errors
const (
	codeInvalidScenarioInputs = "SIM_1000"
)

// errInvalidScenarioInputs returns an error for inputs outside their permitted ranges.
func errInvalidScenarioInputs(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidScenarioInputs, "invalid scenario inputs: "+msg, cause)
}
