package orchestrator

// ApplyBudget exposes the token budget selection for white-box tests.
var ApplyBudget = applyBudget
